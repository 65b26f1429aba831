package store

import (
	"context"

	"github.com/alocar/backend/pkg/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Query is a live query over the resources of one type.
type Query[T any] struct {
	store  *Store
	tables []string
	fetch  func(ctx context.Context) ([]T, error)
}

// Fetch returns the current result of the query.
func (q *Query[T]) Fetch(ctx context.Context) ([]T, error) {
	return q.fetch(ctx)
}

// Subscribe calls fn with the current result and again after every committed
// transaction that changed one of the tables the query reads.
//
// fn is called synchronously on the goroutine that committed the write.
// Errors while fetching are logged and the emission is skipped.
// The returned function ends the subscription.
func (q *Query[T]) Subscribe(fn func([]T)) func() {
	deliver := func() {
		items, err := q.fetch(context.Background())
		if err != nil {
			log.Error().Err(err).Strs("tables", q.tables).Msg("could not refresh live query")
			return
		}
		fn(items)
	}

	unsubscribe := q.store.subscribe(func(changes []Change) {
		for _, c := range changes {
			if slices.Contains(q.tables, c.Table) {
				deliver()
				return
			}
		}
	})

	deliver()
	return unsubscribe
}

// Accounts is the live list of all non-deleted accounts, in insertion order.
func (s *Store) Accounts() *Query[models.Account] {
	return &Query[models.Account]{
		store:  s,
		tables: []string{models.Account{}.TableName()},
		fetch:  s.ListAccounts,
	}
}

// Allocations is the live list of all non-deleted allocations, newest first.
func (s *Store) Allocations() *Query[models.Allocation] {
	return &Query[models.Allocation]{
		store:  s,
		tables: []string{models.Allocation{}.TableName(), models.AccountAllocation{}.TableName()},
		fetch:  s.ListAllocations,
	}
}
