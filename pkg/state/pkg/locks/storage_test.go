package locks_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/locks"
)

var errNotRunning = errors.New("not running")

func resolver(ch channel.Channel) error {
	if ch.Node != "ADC1" {
		return errNotRunning
	}

	return nil
}

func TestLock_IsExclusive(t *testing.T) {
	// given
	storage := locks.NewStorage(resolver)
	ch := channel.New("ADC1", 1)

	// when
	lockedByA, errA := storage.Lock(ch, "a")
	lockedByB, errB := storage.Lock(ch, "b")

	// then
	require.NoError(t, errA)
	assert.True(t, lockedByA)
	assert.False(t, lockedByB)
	assert.ErrorIs(t, errB, locks.ErrLockedByOther)
	assert.False(t, storage.IsAvailable(ch, "b"))
	assert.True(t, storage.IsAvailable(ch, "a"))

	// when
	unlocked, err := storage.Unlock(ch, "a")
	require.NoError(t, err)
	lockedByB, errB = storage.Lock(ch, "b")

	// then
	assert.True(t, unlocked)
	require.NoError(t, errB)
	assert.True(t, lockedByB)
	owner, ok := storage.Owner(ch)
	assert.True(t, ok)
	assert.Equal(t, "b", owner)
}

func TestLock_RelockBySameOwnerDoesNotChangeState(t *testing.T) {
	storage := locks.NewStorage(resolver)
	ch := channel.New("ADC1", 1)

	first, err := storage.Lock(ch, "a")
	require.NoError(t, err)
	second, err := storage.Lock(ch, "a")
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	assert.Equal(t, []channel.Channel{ch}, storage.Locked("a"))
}

func TestUnlock_ByOtherIdentity(t *testing.T) {
	storage := locks.NewStorage(resolver)
	ch := channel.New("ADC1", 1)

	changed, err := storage.Unlock(ch, "b")
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = storage.Lock(ch, "a")
	require.NoError(t, err)

	changed, err = storage.Unlock(ch, "b")
	assert.ErrorIs(t, err, locks.ErrLockedByOther)
	assert.False(t, changed)
	assert.False(t, storage.IsAvailable(ch, "b"))
}

func TestLock_PropagatesResolverErrors(t *testing.T) {
	storage := locks.NewStorage(resolver)

	_, err := storage.Lock(channel.New("ADC2", 1), "a")
	assert.ErrorIs(t, err, errNotRunning)

	_, err = storage.Lock(channel.New("ADC1", 1), "")
	assert.ErrorIs(t, err, locks.ErrEmptyIdentity)
}

func TestReleaseAll_DropsOnlyOwnedLocks(t *testing.T) {
	storage := locks.NewStorage(nil)
	_, _ = storage.Lock(channel.New("ADC1", 2), "a")
	_, _ = storage.Lock(channel.New("ADC1", 1), "a")
	_, _ = storage.Lock(channel.New("ADC1", 3), "b")

	released := storage.ReleaseAll("a")

	assert.Equal(t, []channel.Channel{channel.New("ADC1", 1), channel.New("ADC1", 2)}, released)
	assert.Empty(t, storage.Locked("a"))
	assert.Len(t, storage.Locked("b"), 1)

	owner, ok := storage.Release(channel.New("ADC1", 3))
	assert.True(t, ok)
	assert.Equal(t, "b", owner)
	assert.True(t, storage.IsAvailable(channel.New("ADC1", 3), "a"))
}
