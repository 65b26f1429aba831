package view

import (
	"sync"
	"time"

	"github.com/alocar/backend/pkg/models"
	"github.com/alocar/backend/pkg/store"
)

// Source provides the live queries the dashboard is derived from.
type Source interface {
	Accounts() *store.Query[models.Account]
	Allocations() *store.Query[models.Allocation]
}

// Watcher keeps a Dashboard current.
//
// It recomputes the dashboard synchronously whenever one of the live
// queries emits, so after a write returns, Current reflects it.
type Watcher struct {
	clock func() time.Time

	mu          sync.Mutex
	accounts    []models.Account
	allocations []models.Allocation
	current     Dashboard
	subscribers map[int]func(Dashboard)
	nextID      int
	stops       []func()
}

// Watch starts keeping the dashboard of the source current. clock provides
// the current time, time.Now is used if it is nil.
func Watch(source Source, clock func() time.Time) *Watcher {
	if clock == nil {
		clock = time.Now
	}

	w := &Watcher{
		clock:       clock,
		subscribers: make(map[int]func(Dashboard)),
	}
	w.current = Compute(nil, nil, clock())

	stopAccounts := source.Accounts().Subscribe(func(accounts []models.Account) {
		w.update(func() { w.accounts = accounts })
	})
	stopAllocations := source.Allocations().Subscribe(func(allocations []models.Allocation) {
		w.update(func() { w.allocations = allocations })
	})

	w.mu.Lock()
	w.stops = []func(){stopAccounts, stopAllocations}
	w.mu.Unlock()

	return w
}

// update applies set, recomputes the dashboard and notifies subscribers
// outside of the lock.
func (w *Watcher) update(set func()) {
	w.mu.Lock()
	set()
	w.current = Compute(w.accounts, w.allocations, w.clock())
	current := w.current
	subscribers := w.subscriberList()
	w.mu.Unlock()

	for _, fn := range subscribers {
		fn(current)
	}
}

func (w *Watcher) subscriberList() []func(Dashboard) {
	list := make([]func(Dashboard), 0, len(w.subscribers))
	for i := 0; i < w.nextID; i++ {
		if fn, ok := w.subscribers[i]; ok {
			list = append(list, fn)
		}
	}
	return list
}

// Current returns the latest dashboard.
func (w *Watcher) Current() Dashboard {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Refresh recomputes the dashboard with the current time, e.g. after the
// month changed without a write.
func (w *Watcher) Refresh() Dashboard {
	w.update(func() {})
	return w.Current()
}

// Subscribe calls fn with the current dashboard and on every recomputation.
// The returned function ends the subscription.
func (w *Watcher) Subscribe(fn func(Dashboard)) func() {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.subscribers[id] = fn
	current := w.current
	w.mu.Unlock()

	fn(current)

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subscribers, id)
	}
}

// Close stops watching the store. Current keeps returning the last dashboard.
func (w *Watcher) Close() {
	w.mu.Lock()
	stops := w.stops
	w.stops = nil
	w.mu.Unlock()

	for _, stop := range stops {
		stop()
	}
}
