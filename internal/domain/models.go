package domain

import "time"

// Role tags an inbound message with the kind of session that should
// handle it. The transport boundary decides the role from its teacher
// allow-list; the core trusts the tag.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// HistoryEntry is one logged message from a user. Seq is the per-user
// arrival order starting at 1; entries are never edited or removed.
type HistoryEntry struct {
	UserID string
	Text   string
	Seq    int
	At     time.Time
}

// QuizChallenge is an issued question awaiting exactly one answer from
// one user.
type QuizChallenge struct {
	Question string
	Answer   string
}

// QuizResult records a graded answer. Submitted keeps the student's
// original text; Expected is the answer the grader compared against.
type QuizResult struct {
	Question  string    `json:"question"`
	Submitted string    `json:"submitted"`
	Expected  string    `json:"expected"`
	Correct   bool      `json:"correct"`
	At        time.Time `json:"at"`
}
