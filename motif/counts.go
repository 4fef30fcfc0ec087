package motif

import "fmt"

// CountVector holds one count per catalogue slot, index-aligned to Class.Slot.
type CountVector [NumSlots]uint64

// Add returns the element-wise sum of v and o.
func (v CountVector) Add(o CountVector) CountVector {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

// Total returns the number of subgraphs counted.
func (v CountVector) Total() uint64 {
	var t uint64
	for _, c := range v {
		t += c
	}
	return t
}

// Floats returns the counts as float64, for statistics and charting.
func (v CountVector) Floats() []float64 {
	out := make([]float64, len(v))
	for i, c := range v {
		out[i] = float64(c)
	}
	return out
}

// String renders the vector like a slice: "[2 0 0 1 0 0 0 0]".
func (v CountVector) String() string { return fmt.Sprint(v[:]) }
