package edgelist

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/calganaygun/networks-playground/core"
)

// Write emits g as "u v" lines sorted by (From, To).
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := bw.WriteString(e.From + " " + e.To + "\n"); err != nil {
			return errors.Wrap(err, "edgelist: write")
		}
	}
	return errors.Wrap(bw.Flush(), "edgelist: flush")
}

// WriteFile writes g to path, creating parent directories. The file is
// written under a temporary name and renamed, so readers never observe a
// partial list.
func WriteFile(path string, g *core.Graph) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "edgelist: mkdir")
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "edgelist: create")
	}
	defer os.Remove(tmp.Name())

	if err = Write(tmp, g); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "edgelist: close")
	}
	return errors.Wrap(os.Rename(tmp.Name(), path), "edgelist: rename")
}
