// SPDX-License-Identifier: MIT
// File: catalogue.go
// Role: The fixed catalogue of connected 3- and 4-vertex topologies and the
// two-stage classifier over it.
//
// Slot order is part of the output contract:
//
//	0 open-triad  1 triangle
//	2 star4  3 path4  4 cycle4  5 paw  6 diamond  7 complete4
//
// Invariants:
//   - Built once from the topology table; immutable afterwards, so a
//     *Catalogue is safe for concurrent use without locks.
//   - Every connected pattern of size 3 or 4 maps to exactly one class.

package motif

import (
	"fmt"
)

// NumSlots is the number of catalogue classes.
const NumSlots = 8

// Slot indices of the default catalogue.
const (
	SlotOpenTriad = iota
	SlotTriangle
	SlotStar4
	SlotPath4
	SlotCycle4
	SlotPaw
	SlotDiamond
	SlotComplete4
)

// Class is one isomorphism class of connected subgraphs.
type Class struct {
	Slot      int
	Size      int
	Name      string
	EdgeCount int
	// Degrees is sorted non-increasing.
	Degrees []int
	// Canonical is the minimal-mask labeling of the topology.
	Canonical Pattern
}

// EdgeList returns the canonical topology as vertex pairs on 0..Size-1, for
// callers that draw the motif.
func (c Class) EdgeList() [][2]int { return c.Canonical.Edges() }

// String returns "<slot>:<name>".
func (c Class) String() string { return fmt.Sprintf("%d:%s", c.Slot, c.Name) }

// topology is a table row for NewCatalogue.
type topology struct {
	name  string
	size  int
	edges [][2]int
}

// topologies lists every connected graph on 3 and 4 vertices up to
// isomorphism, in slot order.
var topologies = []topology{
	{"open-triad", 3, [][2]int{{0, 1}, {1, 2}}},
	{"triangle", 3, [][2]int{{0, 1}, {1, 2}, {0, 2}}},
	{"star4", 4, [][2]int{{0, 1}, {0, 2}, {0, 3}}},
	{"path4", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
	{"cycle4", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}},
	{"paw", 4, [][2]int{{0, 1}, {1, 2}, {0, 2}, {0, 3}}},
	{"diamond", 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}}},
	{"complete4", 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}},
}

// Catalogue is an immutable, validated set of motif classes.
type Catalogue struct {
	classes []Class
	// byInvariant maps a stage-1 key to the candidate slots sharing it.
	byInvariant map[invariant][]int
}

// NewCatalogue builds the catalogue from the topology table and validates it:
// every class is connected, no two classes are isomorphic, and every
// connected labeled pattern of size 3 and 4 classifies.
//
// Errors: ErrInvalidCatalogue (wrapped with the offending entry).
func NewCatalogue() (*Catalogue, error) {
	c := &Catalogue{
		classes:     make([]Class, 0, len(topologies)),
		byInvariant: make(map[invariant][]int, len(topologies)),
	}
	canon := make(map[Pattern]string, len(topologies))

	for slot, t := range topologies {
		p, err := NewPattern(t.size, t.edges)
		if err != nil {
			return nil, fmt.Errorf("motif: topology %q: %v: %w", t.name, err, ErrInvalidCatalogue)
		}
		if !p.Connected() {
			return nil, fmt.Errorf("motif: topology %q is disconnected: %w", t.name, ErrInvalidCatalogue)
		}
		cp := p.Canonical()
		if other, dup := canon[cp]; dup {
			return nil, fmt.Errorf("motif: %q is isomorphic to %q: %w", t.name, other, ErrInvalidCatalogue)
		}
		canon[cp] = t.name

		cls := Class{
			Slot:      slot,
			Size:      t.size,
			Name:      t.name,
			EdgeCount: cp.EdgeCount(),
			Degrees:   cp.Degrees(),
			Canonical: cp,
		}
		c.classes = append(c.classes, cls)
		inv := cp.invariant()
		c.byInvariant[inv] = append(c.byInvariant[inv], slot)
	}

	if err := c.checkExhaustive(); err != nil {
		return nil, err
	}

	return c, nil
}

// checkExhaustive classifies every connected labeled pattern on 3 and 4
// vertices: 2^3 and 2^6 masks respectively.
func (c *Catalogue) checkExhaustive() error {
	for n := MinSize; n <= MaxSize; n++ {
		pairs := n * (n - 1) / 2
		for m := 0; m < 1<<uint(pairs); m++ {
			p := Pattern{N: n}
			k := 0
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if m&(1<<uint(k)) != 0 {
						p.Adj |= 1 << uint(pairBit[i][j])
					}
					k++
				}
			}
			if !p.Connected() {
				continue
			}
			if _, err := c.ClassifyStrict(p); err != nil {
				return fmt.Errorf("motif: pattern %s not covered: %w", p, ErrInvalidCatalogue)
			}
		}
	}
	return nil
}

// defaultCatalogue is built during package initialization, before any census.
var defaultCatalogue = mustCatalogue()

func mustCatalogue() *Catalogue {
	c, err := NewCatalogue()
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the process-wide catalogue.
func Default() *Catalogue { return defaultCatalogue }

// Len returns the number of classes.
func (c *Catalogue) Len() int { return len(c.classes) }

// Classes returns a copy of the classes in slot order.
func (c *Catalogue) Classes() []Class {
	out := make([]Class, len(c.classes))
	copy(out, c.classes)
	return out
}

// Class returns the class at slot.
func (c *Catalogue) Class(slot int) (Class, bool) {
	if slot < 0 || slot >= len(c.classes) {
		return Class{}, false
	}
	return c.classes[slot], true
}

// Names returns the class names in slot order.
func (c *Catalogue) Names() []string {
	out := make([]string, len(c.classes))
	for i, cls := range c.classes {
		out[i] = cls.Name
	}
	return out
}

// SlotsOfSize returns the slots whose classes have the given size.
func (c *Catalogue) SlotsOfSize(size int) []int {
	var out []int
	for _, cls := range c.classes {
		if cls.Size == size {
			out = append(out, cls.Slot)
		}
	}
	return out
}

// Classify maps p to its class. Stage 1 looks up the candidates sharing p's
// size, edge count and sorted degrees; a single candidate is returned as is.
// Stage 2 resolves several candidates by comparing canonical forms.
//
// Errors:
//   - ErrUnsupportedSize for sizes other than 3 and 4.
//   - ErrUnknownMotif if nothing matches (disconnected input, or a defect).
//
// Classify is pure: equal inputs give equal results.
func (c *Catalogue) Classify(p Pattern) (Class, error) {
	if p.N < MinSize || p.N > MaxSize {
		return Class{}, fmt.Errorf("motif: classify %d vertices: %w", p.N, ErrUnsupportedSize)
	}
	cands := c.byInvariant[p.invariant()]
	switch len(cands) {
	case 0:
		return Class{}, fmt.Errorf("motif: pattern %s: %w", p, ErrUnknownMotif)
	case 1:
		return c.classes[cands[0]], nil
	}

	cp := p.Canonical()
	for _, slot := range cands {
		if c.classes[slot].Canonical == cp {
			return c.classes[slot], nil
		}
	}
	return Class{}, fmt.Errorf("motif: pattern %s: %w", p, ErrUnknownMotif)
}

// ClassifyStrict maps p to its class by canonical form only, skipping the
// invariant filter. It cross-checks Classify.
func (c *Catalogue) ClassifyStrict(p Pattern) (Class, error) {
	if p.N < MinSize || p.N > MaxSize {
		return Class{}, fmt.Errorf("motif: classify %d vertices: %w", p.N, ErrUnsupportedSize)
	}
	cp := p.Canonical()
	for _, cls := range c.classes {
		if cls.Size == p.N && cls.Canonical == cp {
			return cls, nil
		}
	}
	return Class{}, fmt.Errorf("motif: pattern %s: %w", p, ErrUnknownMotif)
}

// Classify maps p to its class in the default catalogue.
func Classify(p Pattern) (Class, error) { return defaultCatalogue.Classify(p) }

// ClassifyStrict is Catalogue.ClassifyStrict on the default catalogue.
func ClassifyStrict(p Pattern) (Class, error) { return defaultCatalogue.ClassifyStrict(p) }
