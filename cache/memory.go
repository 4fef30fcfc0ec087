package cache

import (
	"sync"

	"github.com/calganaygun/networks-playground/core"
	"github.com/calganaygun/networks-playground/nullmodel"
)

// Memory keeps private clones of stored graphs.
type Memory struct {
	mu     sync.RWMutex
	graphs map[nullmodel.Key]*core.Graph
}

// NewMemory returns an empty Memory cache.
func NewMemory() *Memory {
	return &Memory{graphs: make(map[nullmodel.Key]*core.Graph)}
}

// Load returns a clone of the stored graph.
func (m *Memory) Load(key nullmodel.Key) (*core.Graph, bool, error) {
	m.mu.RLock()
	g, ok := m.graphs[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	return g.Clone(), true, nil
}

// Store keeps a clone of g.
func (m *Memory) Store(key nullmodel.Key, g *core.Graph) error {
	cp := g.Clone()
	m.mu.Lock()
	m.graphs[key] = cp
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored graphs.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.graphs)
}

// Close drops every entry.
func (m *Memory) Close() error {
	m.mu.Lock()
	m.graphs = make(map[nullmodel.Key]*core.Graph)
	m.mu.Unlock()
	return nil
}
