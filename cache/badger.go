package cache

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"

	"github.com/calganaygun/networks-playground/core"
	"github.com/calganaygun/networks-playground/nullmodel"
)

/*
Badger value format:

	version  varint (codecVersion)
	n        varint
	n × (len varint, id bytes)     vertex IDs, sorted ascending
	graph6 payload                 topology over node i = i-th ID

Keys are "rg/<signature>/<index>/<seed>", so one signature is one prefix.
*/

const codecVersion = 1

var keyPrefix = []byte("rg/")

// ErrCorruptEntry marks a stored value that does not decode.
var ErrCorruptEntry = errors.New("cache: corrupt entry")

// Badger is a nullmodel.Cache over an embedded badger database.
type Badger struct {
	db *badger.DB
}

// OpenBadger opens (or creates) the database at path. An empty path opens an
// in-memory database.
func OpenBadger(path string) (*Badger, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil
	opts.MetricsEnabled = false

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "cache: open badger")
	}
	return &Badger{db: db}, nil
}

func badgerKey(key nullmodel.Key) []byte {
	return append(append([]byte(nil), keyPrefix...), key.String()...)
}

// Load returns the graph stored under key.
func (b *Badger) Load(key nullmodel.Key) (*core.Graph, bool, error) {
	var g *core.Graph
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			g, err = decodeGraph(val)
			return err
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "cache: load %s", key)
	}
	return g, true, nil
}

// Store writes g under key, replacing any previous value.
func (b *Badger) Store(key nullmodel.Key, g *core.Graph) error {
	val := encodeGraph(g)
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(key), val)
	})
	return errors.Wrapf(err, "cache: store %s", key)
}

// Count returns the number of members stored for a source signature.
func (b *Badger) Count(signature string) (int, error) {
	prefix := append(append([]byte(nil), keyPrefix...), signature+"/"...)
	n := 0
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, errors.Wrap(err, "cache: count")
}

// Close closes the database.
func (b *Badger) Close() error {
	return errors.Wrap(b.db.Close(), "cache: close badger")
}

func encodeGraph(g *core.Graph) []byte {
	ids, payload := nullmodel.EncodeGraph6(g)

	buf := proto.EncodeVarint(codecVersion)
	buf = append(buf, proto.EncodeVarint(uint64(len(ids)))...)
	for _, id := range ids {
		buf = append(buf, proto.EncodeVarint(uint64(len(id)))...)
		buf = append(buf, id...)
	}
	return append(buf, payload...)
}

func decodeGraph(val []byte) (*core.Graph, error) {
	next := func() (uint64, error) {
		x, n := proto.DecodeVarint(val)
		if n == 0 {
			return 0, errors.Wrap(ErrCorruptEntry, "truncated varint")
		}
		val = val[n:]
		return x, nil
	}

	version, err := next()
	if err != nil {
		return nil, err
	}
	if version != codecVersion {
		return nil, errors.Wrapf(ErrCorruptEntry, "codec version %d", version)
	}
	count, err := next()
	if err != nil {
		return nil, err
	}
	if count > uint64(len(val)) {
		return nil, errors.Wrapf(ErrCorruptEntry, "%d ids in %d bytes", count, len(val))
	}
	ids := make([]string, count)
	for i := range ids {
		l, err := next()
		if err != nil {
			return nil, err
		}
		if l > uint64(len(val)) {
			return nil, errors.Wrap(ErrCorruptEntry, "id overruns value")
		}
		ids[i] = string(val[:l])
		val = val[l:]
	}

	g, err := nullmodel.DecodeGraph6(ids, string(val))
	if err != nil {
		return nil, errors.Wrap(ErrCorruptEntry, err.Error())
	}
	return g, nil
}
