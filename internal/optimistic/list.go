// Package optimistic holds the screen-local list state that makes writes
// feel instant: creates show a placeholder until the backend confirms,
// boolean flips and counters apply locally first and roll back when the
// write fails.
package optimistic

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// TempPrefix marks placeholder ids. Server ids are plain UUIDs, so the
// prefix can never collide with a confirmed record.
const TempPrefix = "temp-"

var (
	// ErrBusy rejects a second create while one is in flight. The guard is
	// per list, i.e. per screen instance, not per entity type.
	ErrBusy = errors.New("another create is still in flight")
	// ErrClosed reports a call on a torn-down screen.
	ErrClosed = errors.New("list is closed")
	// ErrPendingRecord rejects interaction with an unconfirmed placeholder.
	ErrPendingRecord = errors.New("record is awaiting confirmation")
	// ErrNotFound reports an id absent from the list.
	ErrNotFound = errors.New("record not in list")
)

// TempID allocates a locally-unique placeholder id.
func TempID() string {
	return TempPrefix + uuid.NewString()
}

// IsTempID reports whether id names a placeholder.
func IsTempID(id string) bool {
	return strings.HasPrefix(id, TempPrefix)
}

// List is an ordered in-memory copy of one screen's records. All methods
// are safe for concurrent use; the list belongs to exactly one screen
// instance and dies with it.
type List[T any] struct {
	mu        sync.Mutex
	idOf      func(T) string
	items     []T
	pendingID string
	closed    bool
}

// NewList builds an empty list. idOf extracts a record's identity.
func NewList[T any](idOf func(T) string) *List[T] {
	return &List[T]{idOf: idOf}
}

// Replace resets the list from a fresh fetch. Ignored after Close so a
// late response cannot resurrect a dead screen.
func (l *List[T]) Replace(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.items = append(l.items[:0:0], items...)
	l.pendingID = ""
}

// Items returns a copy of the current list in order.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T(nil), l.items...)
}

// Get returns the record with the given id.
func (l *List[T]) Get(id string) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i := l.index(id); i >= 0 {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

// Processing reports whether a create is outstanding.
func (l *List[T]) Processing() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pendingID != ""
}

// IsPending reports whether id names the outstanding placeholder.
func (l *List[T]) IsPending(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pendingID != "" && id == l.pendingID
}

// Close tears the screen down. Late commits, rollbacks and replaces are
// discarded from here on.
func (l *List[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}

// Create is the staging handle for one optimistic insert.
type Create[T any] struct {
	list   *List[T]
	tempID string
	once   sync.Once
}

// TempID returns the placeholder id the staged record carries.
func (c *Create[T]) TempID() string {
	return c.tempID
}

// StageCreate appends placeholder to the list, marked pending, and
// returns the handle used to reconcile it. The placeholder's id must be
// a TempID and is how Commit finds the row again.
func (l *List[T]) StageCreate(placeholder T) (*Create[T], error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil, ErrClosed
	}
	if l.pendingID != "" {
		return nil, ErrBusy
	}
	id := l.idOf(placeholder)
	if !IsTempID(id) {
		return nil, errors.New("placeholder id must carry the temp prefix")
	}
	l.items = append(l.items, placeholder)
	l.pendingID = id
	return &Create[T]{list: l, tempID: id}, nil
}

// Commit replaces the placeholder, in its original position, with the
// server-confirmed record.
func (c *Create[T]) Commit(confirmed T) {
	c.once.Do(func() {
		l := c.list
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.pendingID == c.tempID {
			l.pendingID = ""
		}
		if l.closed {
			return
		}
		if i := l.index(c.tempID); i >= 0 {
			l.items[i] = confirmed
		}
	})
}

// Rollback removes the placeholder; the list is restored to its
// pre-stage state exactly.
func (c *Create[T]) Rollback() {
	c.once.Do(func() {
		l := c.list
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.pendingID == c.tempID {
			l.pendingID = ""
		}
		if l.closed {
			return
		}
		if i := l.index(c.tempID); i >= 0 {
			l.items = append(l.items[:i], l.items[i+1:]...)
		}
	})
}

// Mutate applies a local-first update to the record with the given id,
// then runs persist; when persist fails the update is reverted and the
// error returned. For boolean toggles apply and revert are the same
// flip; for counters they are the inverse adjustments. Placeholders
// refuse mutation until confirmed.
func (l *List[T]) Mutate(ctx context.Context, id string, apply, revert func(*T), persist func(context.Context) error) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	if IsTempID(id) {
		l.mu.Unlock()
		return ErrPendingRecord
	}
	i := l.index(id)
	if i < 0 {
		l.mu.Unlock()
		return ErrNotFound
	}
	apply(&l.items[i])
	l.mu.Unlock()

	if err := persist(ctx); err != nil {
		l.mu.Lock()
		if !l.closed {
			if i := l.index(id); i >= 0 {
				revert(&l.items[i])
			}
		}
		l.mu.Unlock()
		return err
	}
	return nil
}

// index must be called with the mutex held.
func (l *List[T]) index(id string) int {
	for i := range l.items {
		if l.idOf(l.items[i]) == id {
			return i
		}
	}
	return -1
}
