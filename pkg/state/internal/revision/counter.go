package revision

import "sync"

type Identifier = uint64

// Counter keeps monotonic revision of a piece of state, used by clients to skip unchanged reads.
type Counter struct {
	lock     *sync.RWMutex
	revision Identifier
}

func NewCounter() *Counter {
	return &Counter{
		lock:     &sync.RWMutex{},
		revision: 0,
	}
}

func (rc *Counter) Revision() Identifier {
	rc.lock.RLock()
	defer rc.lock.RUnlock()

	return rc.revision
}

// Tick bumps the revision and returns the new one.
func (rc *Counter) Tick() Identifier {
	rc.lock.Lock()
	defer rc.lock.Unlock()

	rc.revision += 1
	return rc.revision
}
