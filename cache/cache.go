package cache

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/calganaygun/networks-playground/nullmodel"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("cache: unknown backend")

// Backend names accepted by Open.
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendDir    = "dir"
	BackendBadger = "badger"
)

// Store is a nullmodel.Cache that owns resources.
type Store interface {
	nullmodel.Cache
	io.Closer
}

// Open returns the backend named by kind rooted at path. "none" and ""
// return (nil, nil): no cache.
func Open(kind, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", BackendNone:
		return nil, nil
	case BackendMemory:
		return NewMemory(), nil
	case BackendDir:
		d, err := NewDir(path)
		if err != nil {
			return nil, err
		}
		return d, nil
	case BackendBadger:
		b, err := OpenBadger(path)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", kind)
	}
}
