package rivercross

import "sync"

// keyLocks serializes work per key. Entries are reference counted and dropped once no
// caller holds or waits on them.
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Lock blocks until key is free and returns the matching unlock function.
func (k *keyLocks) Lock(key string) func() {
	entry := k.acquire(key)
	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		k.release(key)
	}
}

func (k *keyLocks) acquire(key string) *lockEntry {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.locks == nil {
		k.locks = make(map[string]*lockEntry)
	}
	entry, exists := k.locks[key]
	if !exists {
		entry = &lockEntry{}
		k.locks[key] = entry
	}
	entry.refs++
	return entry
}

func (k *keyLocks) release(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()

	entry, exists := k.locks[key]
	if !exists {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(k.locks, key)
	}
}

func (k *keyLocks) len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
