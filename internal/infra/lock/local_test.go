//go:build unit

package lock_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"room-reservation-engine/internal/infra/lock"
	"room-reservation-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_SerializesOneKey(t *testing.T) {
	locker := lock.NewLocalLocker(time.Second)
	ctx := context.Background()

	var inside, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locker.Acquire(ctx, "hq/orion")
			if !assert.NoError(t, err) {
				return
			}
			n := inside.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			inside.Add(-1)
			assert.NoError(t, release(ctx))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), peak.Load())
}

func TestLocalLocker_IndependentKeys(t *testing.T) {
	locker := lock.NewLocalLocker(50 * time.Millisecond)
	ctx := context.Background()

	releaseA, err := locker.Acquire(ctx, "hq/orion")
	require.NoError(t, err)
	defer func() { _ = releaseA(ctx) }()

	releaseB, err := locker.Acquire(ctx, "hq/lyra")
	require.NoError(t, err)
	assert.NoError(t, releaseB(ctx))
}

func TestLocalLocker_TimesOut(t *testing.T) {
	locker := lock.NewLocalLocker(20 * time.Millisecond)
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "hq/orion")
	require.NoError(t, err)

	_, err = locker.Acquire(ctx, "hq/orion")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrRoomLockUnavailable))

	require.NoError(t, release(ctx))
	// double release is harmless
	require.NoError(t, release(ctx))

	again, err := locker.Acquire(ctx, "hq/orion")
	require.NoError(t, err)
	assert.NoError(t, again(ctx))
}

func TestNoopLocker(t *testing.T) {
	release, err := lock.NoopLocker{}.Acquire(context.Background(), "hq/orion")
	require.NoError(t, err)
	assert.NoError(t, release(context.Background()))
}
