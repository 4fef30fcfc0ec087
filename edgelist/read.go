package edgelist

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/calganaygun/networks-playground/core"
)

// ErrMalformedLine marks a data line that does not name two endpoints.
var ErrMalformedLine = errors.New("edgelist: malformed line")

// Stats describes what Read accepted and what it dropped.
type Stats struct {
	// Lines is the number of data lines, the size line included.
	Lines      int
	Edges      int
	SelfLoops  int
	Duplicates int
	// MatrixMarket is set when a banner was found; SizeLine then holds the
	// fields of the skipped "rows cols nnz" line.
	MatrixMarket bool
	SizeLine     []string
}

// Dropped returns the number of data lines that did not become edges.
func (s Stats) Dropped() int { return s.SelfLoops + s.Duplicates }

// Read parses an edge list from r. name is only used in error positions.
func Read(name string, r io.Reader) (*core.Graph, Stats, error) {
	var st Stats
	doc, err := parser.Parse(name, r)
	if err != nil {
		return nil, st, errors.Wrap(err, "edgelist: parse")
	}

	g := core.NewGraph()
	st.MatrixMarket = doc.Banner != ""
	for i, ln := range doc.Lines {
		st.Lines++
		if st.MatrixMarket && i == 0 {
			st.SizeLine = ln.Fields
			continue
		}
		if len(ln.Fields) < 2 {
			return nil, st, errors.Wrapf(ErrMalformedLine, "%s:%d: %d field(s)", name, ln.Pos.Line, len(ln.Fields))
		}

		u, v := ln.Fields[0], ln.Fields[1]
		switch err = g.AddEdge(u, v); {
		case err == nil:
			st.Edges++
		case errors.Is(err, core.ErrLoopNotAllowed):
			st.SelfLoops++
		case errors.Is(err, core.ErrMultiEdgeNotAllowed):
			st.Duplicates++
		default:
			return nil, st, errors.Wrapf(err, "%s:%d", name, ln.Pos.Line)
		}
	}

	return g, st, nil
}

// ReadFile reads the edge list at path.
func ReadFile(path string) (*core.Graph, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, errors.Wrap(err, "edgelist: open")
	}
	defer f.Close()

	g, st, err := Read(path, f)
	if err != nil {
		return nil, st, err
	}
	if st.Dropped() > 0 {
		klog.V(1).Infof("edgelist: %s: dropped %d self-loop(s) and %d duplicate edge(s)", path, st.SelfLoops, st.Duplicates)
	}
	klog.V(2).Infof("edgelist: %s: %d vertices, %d edges", path, g.VertexCount(), g.EdgeCount())

	return g, st, nil
}
