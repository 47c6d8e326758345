package app

import "sync"

// userLocks hands out one mutex per user so same-user operations
// serialize while disjoint users proceed independently. Locks are
// created lazily and live for the process's lifetime, like the state
// they guard.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *userLocks) get(user string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[user]
	if !ok {
		m = &sync.Mutex{}
		l.locks[user] = m
	}
	return m
}
