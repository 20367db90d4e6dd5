package scheduler

import "sync"

type keyedMutex struct {
	mu    sync.Mutex
	locks map[uint64]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[uint64]*refMutex)}
}

// Lock blocks until key is free and returns its unlock func. Entries are
// dropped once nobody holds or waits on them.
func (k *keyedMutex) Lock(key uint64) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
