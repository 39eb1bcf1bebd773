package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"

	"github.com/yndnr/vmadmin-go/internal/core/domain"
)

// table stores records of type T under prefix "<name>/".
type table[T any] struct {
	db     *badger.DB
	name   string
	prefix []byte
	seq    *badger.Sequence
}

func newTable[T any](db *badger.DB, name string) (*table[T], error) {
	seq, err := db.GetSequence([]byte("seq/"+name), seqBandwidth)
	if err != nil {
		return nil, fmt.Errorf("badger: %s sequence: %w", name, err)
	}
	return &table[T]{
		db:     db,
		name:   name,
		prefix: []byte(name + "/"),
		seq:    seq,
	}, nil
}

func (t *table[T]) key(id int64) []byte {
	return []byte(fmt.Sprintf("%s/%020d", t.name, id))
}

// nextID returns the next ID. Sequences start at 0 and IDs at 1.
func (t *table[T]) nextID() (int64, error) {
	n, err := t.seq.Next()
	if err != nil {
		return 0, fmt.Errorf("badger: next %s id: %w", t.name, err)
	}
	return int64(n) + 1, nil
}

func (t *table[T]) release() error {
	return t.seq.Release()
}

func (t *table[T]) put(id int64, rec *T) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding %s %d: %w", t.name, id, err)
	}
	return t.db.Update(func(txn *badger.Txn) error {
		return txn.Set(t.key(id), value)
	})
}

// remove deletes record id, failing when it is not stored.
func (t *table[T]) remove(id int64) error {
	if id == 0 {
		return domain.ErrRecordNotSaved
	}
	return t.db.Update(func(txn *badger.Txn) error {
		key := t.key(id)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return domain.ErrRecordMissing
			}
			return err
		}
		return txn.Delete(key)
	})
}

// scan decodes every record in ID order and returns those accepted by keep.
// A nil keep accepts all.
func (t *table[T]) scan(keep func(*T) bool) ([]*T, error) {
	out := []*T{}
	err := t.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = t.prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			rec := new(T)
			err := it.Item().Value(func(v []byte) error {
				return json.Unmarshal(v, rec)
			})
			if err != nil {
				return fmt.Errorf("decoding %s: %w", it.Item().Key(), err)
			}
			if keep == nil || keep(rec) {
				out = append(out, rec)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// first returns the first record accepted by keep, or nil.
func (t *table[T]) first(keep func(*T) bool) (*T, error) {
	recs, err := t.scan(keep)
	if err != nil || len(recs) == 0 {
		return nil, err
	}
	return recs[0], nil
}

// deleteWhere removes every record accepted by keep in one transaction and
// returns how many were removed.
func (t *table[T]) deleteWhere(keep func(*T) bool, keyOf func(*T) int64) (int, error) {
	n := 0
	err := t.db.Update(func(txn *badger.Txn) error {
		doomed, err := t.matchingKeys(txn, keep, keyOf)
		if err != nil {
			return err
		}
		for _, key := range doomed {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		n = len(doomed)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("deleting %s records: %w", t.name, err)
	}
	return n, nil
}

// matchingKeys collects the keys of accepted records. The iterator is closed
// before the caller writes to txn.
func (t *table[T]) matchingKeys(txn *badger.Txn, keep func(*T) bool, keyOf func(*T) int64) ([][]byte, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = t.prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	var keys [][]byte
	for it.Rewind(); it.Valid(); it.Next() {
		rec := new(T)
		if err := it.Item().Value(func(v []byte) error { return json.Unmarshal(v, rec) }); err != nil {
			return nil, err
		}
		if keep(rec) {
			keys = append(keys, t.key(keyOf(rec)))
		}
	}
	return keys, nil
}
