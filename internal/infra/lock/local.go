// Package lock holds the RoomLocker drivers that serialize writers on one room before the
// database transaction starts.
package lock

import (
	"context"
	"sync"
	"time"

	"room-reservation-engine/internal/pkg/errs"
)

// LocalLocker is a keyed mutex for a single process. Entries are reference counted and
// removed once nobody holds or waits for them.
type LocalLocker struct {
	mu    sync.Mutex
	rooms map[string]*roomSlot
	wait  time.Duration
}

type roomSlot struct {
	ch   chan struct{}
	refs int
}

func NewLocalLocker(wait time.Duration) *LocalLocker {
	return &LocalLocker{rooms: map[string]*roomSlot{}, wait: wait}
}

func (l *LocalLocker) Acquire(ctx context.Context, key string) (func(context.Context) error, error) {
	slot := l.ref(key)

	waitCtx := ctx
	if l.wait > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	select {
	case slot.ch <- struct{}{}:
	case <-waitCtx.Done():
		l.unref(key)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errs.Wrap(errs.ErrRoomLockUnavailable, key)
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			<-slot.ch
			l.unref(key)
		})
		return nil
	}, nil
}

func (l *LocalLocker) ref(key string) *roomSlot {
	l.mu.Lock()
	defer l.mu.Unlock()
	slot, ok := l.rooms[key]
	if !ok {
		slot = &roomSlot{ch: make(chan struct{}, 1)}
		l.rooms[key] = slot
	}
	slot.refs++
	return slot
}

func (l *LocalLocker) unref(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	slot := l.rooms[key]
	slot.refs--
	if slot.refs == 0 {
		delete(l.rooms, key)
	}
}

// NoopLocker leaves serialization to the store.
type NoopLocker struct{}

func (NoopLocker) Acquire(context.Context, string) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}
