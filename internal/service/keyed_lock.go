package service

import "sync"

// keyedLock provides per-key mutual exclusion. Entries are created lazily
// and reference counted so the table shrinks back once a key is idle;
// operations on different keys never contend.
type keyedLock struct {
	mu      sync.Mutex
	entries map[int64]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedLock() *keyedLock {
	return &keyedLock{entries: make(map[int64]*lockEntry)}
}

// Lock acquires the mutex for key and returns the matching unlock func.
func (l *keyedLock) Lock(key int64) func() {
	l.mu.Lock()
	entry, ok := l.entries[key]
	if !ok {
		entry = &lockEntry{}
		l.entries[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.entries, key)
		}
		l.mu.Unlock()
	}
}
