package app

import (
	"sync"
	"time"

	"oasis-lms/internal/domain"
)

// HistoryLog is an append-only per-user message log. Appends never
// fail and entries are never removed; Count and Recent always reflect
// every completed append.
type HistoryLog struct {
	mu      sync.RWMutex
	entries map[string][]domain.HistoryEntry
	now     func() time.Time
}

func NewHistoryLog() *HistoryLog {
	return NewHistoryLogWithClock(time.Now)
}

// NewHistoryLogWithClock allows deterministic timestamps in tests.
func NewHistoryLogWithClock(now func() time.Time) *HistoryLog {
	return &HistoryLog{
		entries: make(map[string][]domain.HistoryEntry),
		now:     now,
	}
}

// Append records a message for a user in arrival order.
func (l *HistoryLog) Append(user, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[user] = append(l.entries[user], domain.HistoryEntry{
		UserID: user,
		Text:   text,
		Seq:    len(l.entries[user]) + 1,
		At:     l.now(),
	})
}

// Count returns the total number of messages ever appended for a user.
func (l *HistoryLog) Count(user string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries[user])
}

// Recent returns up to n of the user's latest entries in arrival order.
func (l *HistoryLog) Recent(user string, n int) []domain.HistoryEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	entries := l.entries[user]
	if n > len(entries) {
		n = len(entries)
	}
	out := make([]domain.HistoryEntry, n)
	copy(out, entries[len(entries)-n:])
	return out
}

// Users enumerates every user the log has seen.
func (l *HistoryLog) Users() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	users := make([]string, 0, len(l.entries))
	for user := range l.entries {
		users = append(users, user)
	}
	return users
}
