package app

import "sync"

// NotificationQueue holds per-user FIFO queues of notes a teacher wants
// delivered on the student's next turn.
type NotificationQueue struct {
	mu      sync.Mutex
	pending map[string][]string
}

func NewNotificationQueue() *NotificationQueue {
	return &NotificationQueue{pending: make(map[string][]string)}
}

// Enqueue appends a note to the tail of the user's queue.
func (q *NotificationQueue) Enqueue(user, text string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending[user] = append(q.pending[user], text)
}

// DrainAll removes and returns the user's entire queue in FIFO order.
// A concurrent Enqueue lands wholly before or wholly after the drain,
// never split across it. An empty queue drains to an empty slice.
func (q *NotificationQueue) DrainAll(user string) []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	drained := q.pending[user]
	delete(q.pending, user)
	return drained
}

// Users enumerates every user with an undrained queue entry. A user
// whose queue has been drained and never refilled is not listed.
func (q *NotificationQueue) Users() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	users := make([]string, 0, len(q.pending))
	for user := range q.pending {
		users = append(users, user)
	}
	return users
}
