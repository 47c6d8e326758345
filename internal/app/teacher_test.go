package app_test

import (
	"strings"
	"testing"

	"oasis-lms/internal/app"
)

func newClassroom() (*app.TeacherSession, *app.StudentSession) {
	students := newStudents()
	return app.NewTeacherSession(students), students
}

func TestBroadcastReachesKnownStudents(t *testing.T) {
	teacher, students := newClassroom()
	students.Handle("s1", "hi")
	students.Handle("s2", "hello")

	got := teacher.Handle("t1", "broadcast homework due Friday")
	if got != "Broadcast sent to all students." {
		t.Fatalf("unexpected reply %q", got)
	}

	for _, user := range []string{"s1", "s2"} {
		reply := students.Handle(user, "ok")
		if !strings.HasPrefix(reply, "Teacher says: homework due Friday\n") {
			t.Fatalf("expected note for %s, got %q", user, reply)
		}
	}
}

func TestBroadcastWithNoStudents(t *testing.T) {
	teacher, _ := newClassroom()

	got := teacher.Handle("t1", "broadcast anyone there?")
	if got != "No students have interacted yet." {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestAskDistributesQuizAndResultsReport(t *testing.T) {
	teacher, students := newClassroom()
	students.Handle("s1", "hi")

	got := teacher.Handle("t1", "ask What is 2+2?|4")
	if got != "Quiz question sent to all students." {
		t.Fatalf("unexpected reply %q", got)
	}

	if reply := students.Handle("s1", "4"); reply != "Correct!" {
		t.Fatalf("expected Correct!, got %q", reply)
	}

	report := teacher.Handle("t1", "results s1")
	if !strings.Contains(report, "What is 2+2? -> 4 ✅") {
		t.Fatalf("expected correct marker in report, got %q", report)
	}
	if !strings.HasPrefix(report, "1. ") {
		t.Fatalf("expected numbered lines, got %q", report)
	}
}

func TestAskWithoutSeparator(t *testing.T) {
	teacher, _ := newClassroom()

	got := teacher.Handle("t1", "ask badcommand")
	if got != "Format: ask <question>|<answer>" {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestResultsForUnknownStudent(t *testing.T) {
	teacher, _ := newClassroom()

	got := teacher.Handle("t1", "results s9")
	if got != "No results for s9." {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestResultsShowsLastFive(t *testing.T) {
	teacher, students := newClassroom()
	students.Handle("s1", "hi")

	for i := 0; i < 7; i++ {
		teacher.Handle("t1", "ask Q|A")
		students.Handle("s1", "A")
	}

	report := teacher.Handle("t1", "results s1")
	lines := strings.Split(report, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), report)
	}
}

func TestHistoryCommand(t *testing.T) {
	teacher, students := newClassroom()
	students.Handle("s1", "first")
	students.Handle("s1", "second")

	got := teacher.Handle("t1", "history s1")
	if got != "Last messages from s1: first; second" {
		t.Fatalf("unexpected reply %q", got)
	}

	got = teacher.Handle("t1", "history s9")
	if got != "No history for s9." {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestUnknownCommandShowsHelp(t *testing.T) {
	teacher, _ := newClassroom()

	got := teacher.Handle("t1", "xyz")
	for _, cmd := range []string{"broadcast", "history", "ask", "results"} {
		if !strings.Contains(got, cmd) {
			t.Fatalf("expected help to mention %s, got %q", cmd, got)
		}
	}
}

func TestCommandMatchingIsCaseInsensitive(t *testing.T) {
	teacher, students := newClassroom()
	students.Handle("s1", "hi")

	got := teacher.Handle("t1", "Broadcast Homework Due")
	if got != "Broadcast sent to all students." {
		t.Fatalf("unexpected reply %q", got)
	}

	// The payload keeps its original casing.
	reply := students.Handle("s1", "ok")
	if !strings.HasPrefix(reply, "Teacher says: Homework Due\n") {
		t.Fatalf("expected original casing preserved, got %q", reply)
	}
}

func TestTeacherMessagesTrackedSeparately(t *testing.T) {
	teacher, students := newClassroom()

	teacher.Handle("t1", "broadcast hi")
	if got := teacher.History().Count("t1"); got != 1 {
		t.Fatalf("expected teacher history 1, got %d", got)
	}
	// Teacher traffic does not turn the teacher into a known student.
	if users := students.KnownUsers(); len(users) != 0 {
		t.Fatalf("expected no known students, got %v", users)
	}
}
