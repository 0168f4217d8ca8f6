package main

import (
	"fmt"

	"gridsheet/contracts"

	"go.etcd.io/bbolt"
)

var cellsBucket = []byte("cells")

// BoltGridStore persists raw cell inputs in a single bbolt bucket keyed by
// cell label. Only inputs are stored; display values are recomputed on load.
type BoltGridStore struct {
	db         *bbolt.DB
	serializer contracts.CellSerializer
}

func NewBoltGridStore(db *bbolt.DB, serializer contracts.CellSerializer) *BoltGridStore {
	return &BoltGridStore{
		db:         db,
		serializer: serializer,
	}
}

func (s *BoltGridStore) SaveCell(label string, input string) error {
	return s.db.Batch(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(cellsBucket)
		if err != nil {
			return err
		}

		if input == "" {
			return bucket.Delete([]byte(label))
		}

		return bucket.Put([]byte(label), s.serializer.Marshal(label, input))
	})
}

func (s *BoltGridStore) LoadAll() (map[string]string, error) {
	inputs := map[string]string{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(cellsBucket)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(key []byte, value []byte) error {
			label, input, err := s.serializer.Unmarshal(value)
			if err != nil {
				return fmt.Errorf("cell %s: %w", string(key), err)
			}

			inputs[label] = input
			return nil
		})
	})

	return inputs, err
}

func (s *BoltGridStore) Close() error {
	return s.db.Close()
}
