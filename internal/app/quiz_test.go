package app_test

import (
	"errors"
	"testing"

	"oasis-lms/internal/app"
	"oasis-lms/internal/domain"
)

func TestQuizRoundTrip(t *testing.T) {
	reg := app.NewQuizRegistry()
	reg.Distribute([]string{"s1"}, "Q", "A")

	if !reg.HasPending("s1") {
		t.Fatalf("expected pending challenge for s1")
	}

	// Grading is case-insensitive and whitespace-trimmed.
	result, err := reg.Answer("s1", "  a ")
	if err != nil {
		t.Fatalf("answer failed: %v", err)
	}
	if !result.Correct {
		t.Fatalf("expected correct answer, got %+v", result)
	}
	if reg.HasPending("s1") {
		t.Fatalf("expected challenge consumed")
	}
}

func TestQuizIncorrectAnswerKeepsSubmittedText(t *testing.T) {
	reg := app.NewQuizRegistry()
	reg.Distribute([]string{"s1"}, "Q", "A")

	result, err := reg.Answer("s1", "wrong")
	if err != nil {
		t.Fatalf("answer failed: %v", err)
	}
	if result.Correct {
		t.Fatalf("expected incorrect answer")
	}
	if result.Submitted != "wrong" || result.Expected != "A" {
		t.Fatalf("expected submitted/expected recorded, got %+v", result)
	}
}

func TestQuizAnswerWithoutPendingFails(t *testing.T) {
	reg := app.NewQuizRegistry()

	_, err := reg.Answer("s1", "anything")
	if !errors.Is(err, domain.ErrNoPendingChallenge) {
		t.Fatalf("expected ErrNoPendingChallenge, got %v", err)
	}
}

func TestQuizDistributeOverwritesPending(t *testing.T) {
	reg := app.NewQuizRegistry()
	reg.Distribute([]string{"s1"}, "Q1", "A1")
	reg.Distribute([]string{"s1"}, "Q2", "A2")

	// The first challenge is gone: answering with its answer scores
	// against the second one.
	result, err := reg.Answer("s1", "A1")
	if err != nil {
		t.Fatalf("answer failed: %v", err)
	}
	if result.Correct {
		t.Fatalf("expected A1 to grade incorrect against Q2/A2")
	}
	if result.Question != "Q2" || result.Expected != "A2" {
		t.Fatalf("expected result against Q2, got %+v", result)
	}

	results := reg.Results("s1")
	if len(results) != 1 {
		t.Fatalf("expected exactly one result, got %d", len(results))
	}
}

func TestQuizResultsAppendMostRecentLast(t *testing.T) {
	reg := app.NewQuizRegistry()

	reg.Distribute([]string{"s1"}, "Q1", "A1")
	if _, err := reg.Answer("s1", "A1"); err != nil {
		t.Fatalf("answer failed: %v", err)
	}
	reg.Distribute([]string{"s1"}, "Q2", "A2")
	if _, err := reg.Answer("s1", "nope"); err != nil {
		t.Fatalf("answer failed: %v", err)
	}

	results := reg.Results("s1")
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Question != "Q1" || results[1].Question != "Q2" {
		t.Fatalf("expected Q1 then Q2, got %+v", results)
	}

	if got := reg.Results("unknown"); len(got) != 0 {
		t.Fatalf("expected no results for unknown user, got %v", got)
	}
}
