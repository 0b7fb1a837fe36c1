// Package storage keeps named games in a badger database. A game is stored
// as its start position and exported move list, so loading it replays the
// moves through the rules engine.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

const keyPrefix = "game/"

// Archive wraps BadgerDB for persistent game storage.
type Archive struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open opens or creates an archive in dir.
func Open(dir string) (*Archive, error) {
	return open(badger.DefaultOptions(dir), dir)
}

// OpenInMemory opens an archive that lives only as long as the process.
func OpenInMemory() (*Archive, error) {
	return open(badger.DefaultOptions("").WithInMemory(true), ":memory:")
}

func open(opts badger.Options, location string) (*Archive, error) {
	logger := slog.Default().With("component", "storage")
	opts = opts.WithLogger(badgerLogger{logger})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", location, err)
	}
	logger.Debug("archive opened", "location", location)
	return &Archive{db: db, logger: logger}, nil
}

// Close closes the database.
func (a *Archive) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	a.logger.Debug("archive closed")
	return err
}

func gameKey(name string) []byte {
	return []byte(keyPrefix + name)
}

// Save stores rec under name, replacing any earlier game of that name.
func (a *Archive) Save(name string, rec Record) error {
	if name == "" {
		return fmt.Errorf("save: empty game name")
	}
	if rec.SavedAt.IsZero() {
		rec.SavedAt = time.Now().UTC()
	}
	rec.Name = name

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(name), data)
	})
}

// Load returns the game stored under name.
func (a *Archive) Load(name string) (Record, error) {
	var rec Record
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%q: %w", name, errors.ErrGameNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	return rec, err
}

// List returns the names of all stored games in key order.
func (a *Archive) List() ([]string, error) {
	var names []string
	prefix := []byte(keyPrefix)

	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			names = append(names, string(key[len(prefix):]))
		}
		return nil
	})
	return names, err
}

// Delete removes the game stored under name.
func (a *Archive) Delete(name string) error {
	return a.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(gameKey(name)); err == badger.ErrKeyNotFound {
			return fmt.Errorf("%q: %w", name, errors.ErrGameNotFound)
		} else if err != nil {
			return err
		}
		return txn.Delete(gameKey(name))
	})
}

// badgerLogger forwards badger's messages to slog. Informational chatter
// is demoted to debug.
type badgerLogger struct {
	logger *slog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
