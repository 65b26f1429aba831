// Package store implements all reads and writes of the resources of one owner.
//
// A Store is created once at startup and passed to everything that needs
// data. Writes are serialized and every write is a single transaction.
// After a transaction commits, the store notifies subscribers about the
// tables it changed.
package store

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/alocar/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Op is the kind of a change.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Change describes one row written by a committed transaction.
//
// ID is uuid.Nil when the change affected all rows of the table for the owner.
type Change struct {
	Table string
	Op    Op
	ID    uuid.UUID
	At    time.Time
}

// Store is the handle for all data of one owner.
type Store struct {
	db    *gorm.DB
	owner uuid.UUID

	// mu serializes write transactions
	mu sync.Mutex

	listenersMu sync.Mutex
	listeners   map[int]func([]Change)
	nextID      int
}

// New creates a Store for the resources of owner on an already migrated database.
func New(db *gorm.DB, owner uuid.UUID) *Store {
	return &Store{
		db:        db,
		owner:     owner,
		listeners: make(map[int]func([]Change)),
	}
}

// Owner returns the ID of the user whose resources the store handles.
func (s *Store) Owner() uuid.UUID {
	return s.owner
}

// tx is the state of one write transaction.
type tx struct {
	db      *gorm.DB
	owner   uuid.UUID
	now     time.Time
	changes []Change
}

func (t *tx) record(table string, op Op, id uuid.UUID) {
	t.changes = append(t.changes, Change{Table: table, Op: op, ID: id, At: t.now})
}

// owned scopes a query on table to the owner of the transaction.
func (t *tx) owned(table string) *gorm.DB {
	return t.db.Table(table).Where("user_id = ?", t.owner)
}

// write runs fn in a transaction. Subscribers are notified after the
// transaction committed and the write lock is released, so they may
// write themselves.
func (s *Store) write(ctx context.Context, fn func(t *tx) error) error {
	s.mu.Lock()

	t := &tx{owner: s.owner, now: s.db.NowFunc()}
	err := s.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		t.db = db
		return fn(t)
	})

	s.mu.Unlock()

	if err != nil {
		return translate(err)
	}

	for _, c := range t.changes {
		WriteCount.WithLabelValues(c.Table, string(c.Op)).Inc()
		log.Debug().Str("table", c.Table).Str("op", string(c.Op)).Str("id", c.ID.String()).Msg("store write")
	}

	if len(t.changes) > 0 {
		s.notify(t.changes)
	}

	return nil
}

// translate replaces errors from beginning or committing a transaction,
// which do not pass the gorm callbacks, with models.ErrGeneral.
func translate(err error) error {
	// "sql: database is closed" is hard-coded in database/sql
	if errors.Is(err, sql.ErrConnDone) || err.Error() == "sql: database is closed" {
		log.Error().Msgf("%T: %v", err, err.Error())
		return models.ErrGeneral
	}
	return err
}

// read returns a query scoped to the owner.
func (s *Store) read(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Where("user_id = ?", s.owner)
}

func (s *Store) notify(changes []Change) {
	s.listenersMu.Lock()
	listeners := make([]func([]Change), 0, len(s.listeners))
	for i := 0; i < s.nextID; i++ {
		if fn, ok := s.listeners[i]; ok {
			listeners = append(listeners, fn)
		}
	}
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(changes)
	}
}

// subscribe registers fn to be called with the changes of every committed
// transaction. Listeners are called in registration order.
func (s *Store) subscribe(fn func([]Change)) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			defer s.listenersMu.Unlock()
			delete(s.listeners, id)
		})
	}
}

// OnChange calls fn for every row changed by a committed transaction.
// The returned function removes the listener.
func (s *Store) OnChange(fn func(Change)) func() {
	return s.subscribe(func(changes []Change) {
		for _, c := range changes {
			fn(c)
		}
	})
}

// Purge permanently deletes all resources of the owner.
func (s *Store) Purge(ctx context.Context) error {
	return s.write(ctx, func(t *tx) error {
		// Registry order satisfies the foreign keys
		for _, model := range models.Registry {
			result := t.db.Unscoped().Where("user_id = ?", t.owner).Delete(&model)
			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected > 0 {
				t.record(model.TableName(), OpDelete, uuid.Nil)
			}
		}
		return nil
	})
}
