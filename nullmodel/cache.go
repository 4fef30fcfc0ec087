package nullmodel

import (
	"fmt"

	"github.com/calganaygun/networks-playground/core"
)

// Key addresses one cached ensemble member.
type Key struct {
	// Signature is the structural Signature of the source graph.
	Signature string
	Index     int
	Seed      int64
}

// String renders the key for logs and storage backends.
func (k Key) String() string {
	return fmt.Sprintf("%s/%d/%d", k.Signature, k.Index, k.Seed)
}

// Cache stores generated graphs. Load reports ok=false on a miss. Graphs
// handed to Store must not be mutated afterwards; Load may return a graph
// without isolated vertices, which Generate restores from the source.
type Cache interface {
	Load(key Key) (*core.Graph, bool, error)
	Store(key Key, g *core.Graph) error
}
