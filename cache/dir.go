package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/calganaygun/networks-playground/core"
	"github.com/calganaygun/networks-playground/edgelist"
	"github.com/calganaygun/networks-playground/nullmodel"
)

// Dir stores each member as an edge-list file. Isolated vertices are lost on
// the way through and restored by nullmodel from the source graph.
type Dir struct {
	root string
}

// NewDir creates root if needed.
func NewDir(root string) (*Dir, error) {
	if root == "" {
		return nil, errors.New("cache: dir backend needs a path")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrap(err, "cache: dir")
	}
	return &Dir{root: root}, nil
}

// Path returns the file backing key.
func (d *Dir) Path(key nullmodel.Key) string {
	return filepath.Join(d.root, key.Signature, fmt.Sprintf("random_graph_%d_%d.edges", key.Index, key.Seed))
}

// Load reads the file for key; a missing file is a miss.
func (d *Dir) Load(key nullmodel.Key) (*core.Graph, bool, error) {
	g, _, err := edgelist.ReadFile(d.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "cache: load %s", key)
	}
	return g, true, nil
}

// Store writes g atomically.
func (d *Dir) Store(key nullmodel.Key, g *core.Graph) error {
	return errors.Wrapf(edgelist.WriteFile(d.Path(key), g), "cache: store %s", key)
}

// Close is a no-op.
func (d *Dir) Close() error { return nil }
