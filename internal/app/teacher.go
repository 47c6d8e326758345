package app

import (
	"fmt"
	"strings"
)

const helpText = "Teacher commands:\n" +
	"broadcast <msg> - send a message to all students\n" +
	"history <number> - show recent messages from a student\n" +
	"ask <question>|<answer> - send a quiz question to students\n" +
	"results <number> - show quiz results for a student"

// reportLimit caps how many history entries and quiz results the
// reporting commands render.
const reportLimit = 5

// TeacherSession parses teacher commands against the student state it
// references. It keeps its own history log; teacher traffic is tracked
// separately from student traffic.
type TeacherSession struct {
	students *StudentSession
	history  *HistoryLog
	commands []command
}

// command pairs a lower-case prefix with its handler. The table is
// evaluated in order, first match wins; matching is case-insensitive
// but the argument keeps its original casing.
type command struct {
	prefix string
	run    func(arg string) string
}

func NewTeacherSession(students *StudentSession) *TeacherSession {
	t := &TeacherSession{
		students: students,
		history:  NewHistoryLog(),
	}
	t.commands = []command{
		{"broadcast ", t.broadcast},
		{"ask ", t.ask},
		{"results ", t.results},
		{"history ", t.studentHistory},
	}
	return t
}

// Handle logs the raw command and dispatches it. Unrecognized input
// resolves to the help text, never an error.
func (t *TeacherSession) Handle(user, text string) string {
	t.history.Append(user, text)

	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	for _, c := range t.commands {
		if strings.HasPrefix(lower, c.prefix) {
			return c.run(trimmed[len(c.prefix):])
		}
	}
	return helpText
}

// History exposes the teacher-side log for reporting.
func (t *TeacherSession) History() *HistoryLog {
	return t.history
}

func (t *TeacherSession) broadcast(note string) string {
	users := t.students.KnownUsers()
	if len(users) == 0 {
		return "No students have interacted yet."
	}
	for _, user := range users {
		t.students.Notify(user, note)
	}
	return "Broadcast sent to all students."
}

func (t *TeacherSession) ask(arg string) string {
	question, answer, ok := strings.Cut(arg, "|")
	if !ok {
		return "Format: ask <question>|<answer>"
	}
	t.students.AddQuiz(strings.TrimSpace(question), strings.TrimSpace(answer))
	return "Quiz question sent to all students."
}

func (t *TeacherSession) results(arg string) string {
	id := strings.TrimSpace(arg)
	results := t.students.QuizResults(id)
	if len(results) == 0 {
		return "No results for " + id + "."
	}
	if len(results) > reportLimit {
		results = results[len(results)-reportLimit:]
	}
	lines := make([]string, 0, len(results))
	for i, r := range results {
		status := "✅"
		if !r.Correct {
			status = "❌"
		}
		lines = append(lines, fmt.Sprintf("%d. %s -> %s %s", i+1, r.Question, r.Submitted, status))
	}
	return strings.Join(lines, "\n")
}

func (t *TeacherSession) studentHistory(arg string) string {
	id := strings.TrimSpace(arg)
	messages := t.students.RecentMessages(id, reportLimit)
	if len(messages) == 0 {
		return "No history for " + id + "."
	}
	return "Last messages from " + id + ": " + strings.Join(messages, "; ")
}
