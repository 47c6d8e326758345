package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"oasis-lms/internal/domain"
)

// Archive persists conversation traffic in Postgres. Schema is managed
// by the bun migrations in the migrations package.
type Archive struct {
	pool *pgxpool.Pool
}

func NewArchive(pool *pgxpool.Pool) *Archive {
	return &Archive{pool: pool}
}

func (a *Archive) ArchiveMessage(ctx context.Context, user, text string) error {
	_, err := a.pool.Exec(ctx,
		`INSERT INTO message_log (id, user_id, body) VALUES ($1, $2, $3)`,
		uuid.New().String(), user, text)
	if err != nil {
		return fmt.Errorf("archive message: %w", err)
	}
	return nil
}

func (a *Archive) ArchiveResult(ctx context.Context, user string, result domain.QuizResult) error {
	_, err := a.pool.Exec(ctx,
		`INSERT INTO quiz_results (id, user_id, question, submitted, expected, correct, graded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.New().String(), user, result.Question, result.Submitted, result.Expected, result.Correct, result.At)
	if err != nil {
		return fmt.Errorf("archive result: %w", err)
	}
	return nil
}
