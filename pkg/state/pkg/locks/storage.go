// Package locks keeps exclusive ownership of channels by client identities.
//
// The registry does not guard list mutations by itself. Callers check IsAvailable
// before mutating and report a locked channel on their own.
package locks

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sarpt/list-coordinator/pkg/channel"
)

var (
	// ErrLockedByOther informs that the channel is owned by a different identity.
	ErrLockedByOther = errors.New("channel is locked by another client")

	// ErrEmptyIdentity informs that lock operation was requested without client identity.
	ErrEmptyIdentity = errors.New("client identity is required")
)

// Resolver checks that a channel currently maps to a live list. Returned error is passed to the caller unchanged.
type Resolver = func(ch channel.Channel) error

type Storage struct {
	lock    *sync.RWMutex
	owners  map[channel.Channel]string
	resolve Resolver
}

func NewStorage(resolve Resolver) *Storage {
	return &Storage{
		lock:    &sync.RWMutex{},
		owners:  map[channel.Channel]string{},
		resolve: resolve,
	}
}

// Lock makes id the owner of the channel. Reports whether ownership changed;
// locking a channel already owned by id succeeds without a change.
func (s *Storage) Lock(ch channel.Channel, id string) (bool, error) {
	if id == "" {
		return false, ErrEmptyIdentity
	}

	if s.resolve != nil {
		if err := s.resolve(ch); err != nil {
			return false, err
		}
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	owner, locked := s.owners[ch]
	if locked && owner != id {
		return false, fmt.Errorf("%w: %s is owned by %s", ErrLockedByOther, ch, owner)
	}

	if locked {
		return false, nil
	}

	s.owners[ch] = id
	return true, nil
}

// Unlock releases a channel owned by id. Unlocking an unlocked channel does nothing.
func (s *Storage) Unlock(ch channel.Channel, id string) (bool, error) {
	if s.resolve != nil {
		if err := s.resolve(ch); err != nil {
			return false, err
		}
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	owner, locked := s.owners[ch]
	if !locked {
		return false, nil
	}

	if owner != id {
		return false, fmt.Errorf("%w: %s is owned by %s", ErrLockedByOther, ch, owner)
	}

	delete(s.owners, ch)
	return true, nil
}

// IsAvailable is true when no identity other than id owns the channel.
func (s *Storage) IsAvailable(ch channel.Channel, id string) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	owner, locked := s.owners[ch]
	return !locked || owner == id
}

func (s *Storage) Owner(ch channel.Channel) (string, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	owner, locked := s.owners[ch]
	return owner, locked
}

// Release drops the lock regardless of its owner. Returns the previous owner.
func (s *Storage) Release(ch channel.Channel) (string, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	owner, locked := s.owners[ch]
	if locked {
		delete(s.owners, ch)
	}

	return owner, locked
}

// ReleaseAll drops every lock held by id and returns released channels.
func (s *Storage) ReleaseAll(id string) []channel.Channel {
	s.lock.Lock()
	defer s.lock.Unlock()

	released := []channel.Channel{}
	for ch, owner := range s.owners {
		if owner == id {
			delete(s.owners, ch)
			released = append(released, ch)
		}
	}

	sortChannels(released)
	return released
}

// Locked returns channels owned by id.
func (s *Storage) Locked(id string) []channel.Channel {
	s.lock.RLock()
	defer s.lock.RUnlock()

	owned := []channel.Channel{}
	for ch, owner := range s.owners {
		if owner == id {
			owned = append(owned, ch)
		}
	}

	sortChannels(owned)
	return owned
}

func sortChannels(channels []channel.Channel) {
	sort.Slice(channels, func(i, j int) bool {
		if channels[i].Node != channels[j].Node {
			return channels[i].Node < channels[j].Node
		}

		return channels[i].List < channels[j].List
	})
}
