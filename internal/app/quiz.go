package app

import (
	"strings"
	"sync"
	"time"

	"oasis-lms/internal/domain"
)

// QuizRegistry tracks at most one outstanding challenge per user plus
// an append-only per-user result log. It is the only component with a
// two-phase protocol: Distribute issues a challenge, Answer resolves
// it, and HasPending is the dispatch signal that tells a session an
// inbound message is a quiz answer rather than free text.
type QuizRegistry struct {
	mu      sync.Mutex
	pending map[string]domain.QuizChallenge
	results map[string][]domain.QuizResult
	now     func() time.Time
}

func NewQuizRegistry() *QuizRegistry {
	return NewQuizRegistryWithClock(time.Now)
}

// NewQuizRegistryWithClock allows deterministic timestamps in tests.
func NewQuizRegistryWithClock(now func() time.Time) *QuizRegistry {
	return &QuizRegistry{
		pending: make(map[string]domain.QuizChallenge),
		results: make(map[string][]domain.QuizResult),
		now:     now,
	}
}

// Distribute issues the same challenge to every listed user. An
// unanswered challenge is overwritten; the prior question is lost and
// never scored. Kept last-write-wins for compatibility with existing
// callers.
func (r *QuizRegistry) Distribute(users []string, question, answer string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range users {
		r.pending[user] = domain.QuizChallenge{Question: question, Answer: answer}
	}
}

// HasPending reports whether the user has an unanswered challenge.
func (r *QuizRegistry) HasPending(user string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pending[user]
	return ok
}

// Answer resolves the user's pending challenge against the submitted
// text. Grading is whitespace-trimmed, case-insensitive equality. The
// challenge is removed and the result appended to the user's log.
func (r *QuizRegistry) Answer(user, submitted string) (domain.QuizResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	challenge, ok := r.pending[user]
	if !ok {
		return domain.QuizResult{}, domain.ErrNoPendingChallenge
	}
	delete(r.pending, user)

	result := domain.QuizResult{
		Question:  challenge.Question,
		Submitted: submitted,
		Expected:  challenge.Answer,
		Correct:   grade(submitted, challenge.Answer),
		At:        r.now(),
	}
	r.results[user] = append(r.results[user], result)
	return result, nil
}

// Results returns the user's graded answers, most recent last.
func (r *QuizRegistry) Results(user string) []domain.QuizResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.QuizResult, len(r.results[user]))
	copy(out, r.results[user])
	return out
}

func grade(submitted, expected string) bool {
	return strings.ToLower(strings.TrimSpace(submitted)) == strings.ToLower(strings.TrimSpace(expected))
}
