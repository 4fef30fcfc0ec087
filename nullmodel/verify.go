package nullmodel

import (
	"fmt"

	"github.com/calganaygun/networks-playground/core"
	"github.com/calganaygun/networks-playground/degseq"
)

// Verify checks that g reproduces the degree multiset of src. It returns nil
// or an error wrapping ErrDegreeSequenceMismatch that lists the differing
// histogram buckets as degree:delta pairs.
func Verify(src *Source, g *core.Graph) error {
	got := degseq.Of(g)
	if degseq.Equal(src.seq, got) {
		return nil
	}
	diff := degseq.NewHistogram(got).Diff(degseq.NewHistogram(src.seq))
	parts := make([]string, len(diff))
	for i, b := range diff {
		parts[i] = fmt.Sprintf("%d:%+d", b.Degree, b.Count)
	}
	return fmt.Errorf("nullmodel: %d vertices vs %d, histogram delta %v: %w",
		got.Len(), src.seq.Len(), parts, ErrDegreeSequenceMismatch)
}
