package host

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var histogramBucket = []byte("histogram")

// Store persists the per-value occurrence histogram across runs using
// bbolt. Keys and values are fixed-width big-endian so the bucket
// cursor iterates in numeric order.
type Store struct {
	db   *bbolt.DB
	path string
}

// OpenStore opens (or creates) the histogram database at dbPath.
func OpenStore(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(histogramBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Merge adds counts into the persisted histogram.
func (s *Store) Merge(counts map[int64]uint64) error {
	if len(counts) == 0 {
		return nil
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(histogramBucket)
		for v, n := range counts {
			var key [8]byte
			binary.BigEndian.PutUint64(key[:], uint64(v))

			total := n
			if cur := b.Get(key[:]); cur != nil {
				total += binary.BigEndian.Uint64(cur)
			}

			var val [8]byte
			binary.BigEndian.PutUint64(val[:], total)
			if err := b.Put(key[:], val[:]); err != nil {
				return err
			}
		}
		return nil
	})
}

// Snapshot returns the persisted histogram.
func (s *Store) Snapshot() (map[int64]uint64, error) {
	out := make(map[int64]uint64)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(histogramBucket).ForEach(func(k, v []byte) error {
			out[int64(binary.BigEndian.Uint64(k))] = binary.BigEndian.Uint64(v)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read histogram: %w", err)
	}
	return out, nil
}
