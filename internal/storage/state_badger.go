package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"studyhub/internal/core/model"

	"github.com/dgraph-io/badger/v4"
)

const badgerDirName = "state.badger"

var badgerStateKey = []byte("pomodoro/state")

type badgerRecord struct {
	CompletedFocusCount int    `json:"completedFocusCount"`
	CurrentStage        string `json:"currentStage"`
}

// BadgerStateStore keeps the record as a JSON value in BadgerDB.
type BadgerStateStore struct {
	db *badger.DB
}

// OpenBadgerStateStore opens the database directory home/state.badger.
func OpenBadgerStateStore(home string) (*BadgerStateStore, error) {
	opts := badger.DefaultOptions(filepath.Join(home, badgerDirName))
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger state: %w", err)
	}
	return &BadgerStateStore{db: db}, nil
}

// Load reads the record key.
func (store *BadgerStateStore) Load(context.Context) (model.Record, error) {
	var value badgerRecord
	err := store.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerStateKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &value); err != nil {
				return fmt.Errorf("%w: decode state: %v", model.ErrMalformedRecord, err)
			}
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return model.DefaultRecord(), nil
	}
	if err != nil {
		return model.Record{}, err
	}
	return decodeRecord(value.CompletedFocusCount, value.CurrentStage)
}

// Save writes the record key.
func (store *BadgerStateStore) Save(_ context.Context, record model.Record) error {
	data, err := json.Marshal(badgerRecord{
		CompletedFocusCount: record.CompletedFocusCount,
		CurrentStage:        string(record.CurrentStage),
	})
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	return store.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerStateKey, data)
	})
}

// Clear deletes the record key.
func (store *BadgerStateStore) Clear(context.Context) error {
	return store.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(badgerStateKey)
	})
}

// Close closes the database.
func (store *BadgerStateStore) Close() error {
	return store.db.Close()
}

