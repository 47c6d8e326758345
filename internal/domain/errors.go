package domain

import "errors"

var (
	// ErrNoPendingChallenge is returned when an answer is submitted for
	// a user who has no outstanding quiz challenge.
	ErrNoPendingChallenge = errors.New("no pending quiz challenge")
)
