package nullmodel

import (
	"github.com/calganaygun/networks-playground/core"
	"github.com/calganaygun/networks-playground/degseq"
)

// Source is the precomputed view of an input graph that every ensemble
// member shares: IDs and aligned degrees in sorted-ID order, the degree
// Sequence, its graphicality and the structural Signature.
// A Source is read-only and safe for concurrent use.
type Source struct {
	graph     *core.Graph
	ids       []string
	degrees   []int
	seq       degseq.Sequence
	graphical bool
	signature string
}

// NewSource snapshots g. Later mutations of g are not reflected.
func NewSource(g *core.Graph) (*Source, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	snap := g.Clone()
	ids, degrees := snap.Degrees()
	seq, err := degseq.New(degrees)
	if err != nil {
		return nil, err
	}

	return &Source{
		graph:     snap,
		ids:       ids,
		degrees:   degrees,
		seq:       seq,
		graphical: degseq.IsGraphical(seq),
		signature: Signature(snap),
	}, nil
}

// Graph returns the snapshot. It must not be mutated.
func (s *Source) Graph() *core.Graph { return s.graph }

// Signature returns the structural signature of the source.
func (s *Source) Signature() string { return s.signature }

// Sequence returns the source degree sequence.
func (s *Source) Sequence() degseq.Sequence { return s.seq }

// Graphical reports whether the source sequence passes Erdős–Gallai.
func (s *Source) Graphical() bool { return s.graphical }

// VertexCount returns the number of source vertices.
func (s *Source) VertexCount() int { return len(s.ids) }

// restoreVertices adds source vertices missing from g, which happens when a
// cache format cannot represent isolated vertices.
func (s *Source) restoreVertices(g *core.Graph) error {
	for _, id := range s.ids {
		if err := g.AddVertex(id); err != nil {
			return err
		}
	}
	return nil
}
