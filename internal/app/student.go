package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"oasis-lms/internal/domain"
)

// StudentSession orchestrates the per-student state: message history,
// queued teacher notes, and in-flight quiz challenges. All state for a
// given user is serialized under that user's lock; users never block
// each other.
type StudentSession struct {
	history *HistoryLog
	inbox   *NotificationQueue
	quizzes *QuizRegistry
	archive Archive
	locks   *userLocks
}

// NewStudentSession wires the session over its backing components.
// archive may be nil when durable archiving is not configured.
func NewStudentSession(history *HistoryLog, inbox *NotificationQueue, quizzes *QuizRegistry, archive Archive) *StudentSession {
	return &StudentSession{
		history: history,
		inbox:   inbox,
		quizzes: quizzes,
		archive: archive,
		locks:   newUserLocks(),
	}
}

// Handle processes one inbound student message and returns the reply.
// A pending quiz challenge takes priority: the message is graded as
// its answer and can never be swallowed as free text. Otherwise the
// message is logged, queued teacher notes are drained into the reply,
// and the standard acknowledgement is returned.
func (s *StudentSession) Handle(user, text string) string {
	mu := s.locks.get(user)
	mu.Lock()
	defer mu.Unlock()

	s.history.Append(user, text)
	s.archiveMessage(user, text)

	if s.quizzes.HasPending(user) {
		result, err := s.quizzes.Answer(user, text)
		if err != nil {
			// Unreachable under the user lock; the registry still
			// rejects explicitly to guard against caller misuse.
			return s.compose(user, text, nil)
		}
		s.archiveResult(user, result)
		if result.Correct {
			return "Correct!"
		}
		return "Incorrect. Correct answer: " + result.Expected
	}

	return s.compose(user, text, s.inbox.DrainAll(user))
}

func (s *StudentSession) compose(user, text string, notes []string) string {
	reply := fmt.Sprintf("Oasis LMS received your message: '%s'. You have sent %d messages so far.", text, s.history.Count(user))
	if len(notes) > 0 {
		reply = "Teacher says: " + strings.Join(notes, "\n") + "\n" + reply
	}
	return reply
}

// AddQuiz issues a challenge to every known student and queues the
// question text so it is shown on each student's next turn. With no
// known students this is a silent no-op. The challenge and its visible
// prompt are written together under each student's lock; a student can
// never observe one without the other.
func (s *StudentSession) AddQuiz(question, answer string) {
	users := s.KnownUsers()
	if len(users) == 0 {
		return
	}
	for _, user := range users {
		mu := s.locks.get(user)
		mu.Lock()
		s.quizzes.Distribute([]string{user}, question, answer)
		s.inbox.Enqueue(user, "Quiz: "+question)
		mu.Unlock()
	}
}

// Notify queues a note for one student, serialized with that student's
// other state changes.
func (s *StudentSession) Notify(user, note string) {
	mu := s.locks.get(user)
	mu.Lock()
	defer mu.Unlock()
	s.inbox.Enqueue(user, note)
}

// KnownUsers derives the set of students the system has interacted
// with: the union of history and notification-queue keys. A student
// who never sent a message and has no queued note is invisible here;
// there is deliberately no separate registration step.
func (s *StudentSession) KnownUsers() []string {
	seen := make(map[string]struct{})
	for _, user := range s.history.Users() {
		seen[user] = struct{}{}
	}
	for _, user := range s.inbox.Users() {
		seen[user] = struct{}{}
	}
	users := make([]string, 0, len(seen))
	for user := range seen {
		users = append(users, user)
	}
	sort.Strings(users)
	return users
}

// RecentMessages returns up to n of a student's latest message texts.
func (s *StudentSession) RecentMessages(user string, n int) []string {
	entries := s.history.Recent(user, n)
	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}
	return texts
}

// QuizResults returns a student's graded answers, most recent last.
func (s *StudentSession) QuizResults(user string) []domain.QuizResult {
	return s.quizzes.Results(user)
}

func (s *StudentSession) archiveMessage(user, text string) {
	if s.archive == nil {
		return
	}
	// best effort; failures are logged by the archive layer
	_ = s.archive.ArchiveMessage(context.Background(), user, text)
}

func (s *StudentSession) archiveResult(user string, result domain.QuizResult) {
	if s.archive == nil {
		return
	}
	_ = s.archive.ArchiveResult(context.Background(), user, result)
}
