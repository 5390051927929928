package service

import "sync"

// factLocks hands out one mutex per fact ID so that reviews of the same fact
// run one at a time while reviews of different facts run in parallel.
// Entries are reference counted and dropped once nobody holds or waits on them.
type factLocks struct {
	mu    sync.Mutex
	locks map[string]*factLock
}

type factLock struct {
	mu   sync.Mutex
	refs int
}

func newFactLocks() *factLocks {
	return &factLocks{
		locks: make(map[string]*factLock),
	}
}

// Lock blocks until the lock for factID is held and returns its release func.
func (fl *factLocks) Lock(factID string) (unlock func()) {
	fl.mu.Lock()
	l, ok := fl.locks[factID]
	if !ok {
		l = &factLock{}
		fl.locks[factID] = l
	}
	l.refs++
	fl.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		fl.mu.Lock()
		defer fl.mu.Unlock()
		l.refs--
		if l.refs == 0 {
			delete(fl.locks, factID)
		}
	}
}

// held returns the number of fact IDs with a live lock entry.
func (fl *factLocks) held() int {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	return len(fl.locks)
}
