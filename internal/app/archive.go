package app

import (
	"context"
	"log"
	"sync"
	"time"

	"oasis-lms/internal/domain"
)

// Archive persists conversation traffic outside the process (Redis,
// Postgres, etc). Implementations must be safe for concurrent use.
// The archive is best-effort: core semantics never depend on it.
type Archive interface {
	ArchiveMessage(ctx context.Context, user, text string) error
	ArchiveResult(ctx context.Context, user string, result domain.QuizResult) error
}

type archiveJob struct {
	user   string
	text   string
	result *domain.QuizResult
}

// AsyncArchive decorates an Archive with a buffered write-behind
// worker so message handling never blocks on archive I/O. Writes are
// dropped when the buffer is full; a slow archive must not
// back-pressure the conversation.
type AsyncArchive struct {
	inner Archive
	jobs  chan archiveJob
	done  chan struct{}
	once  sync.Once
}

func NewAsyncArchive(inner Archive, buffer int) *AsyncArchive {
	if buffer <= 0 {
		buffer = 256
	}
	a := &AsyncArchive{
		inner: inner,
		jobs:  make(chan archiveJob, buffer),
		done:  make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *AsyncArchive) ArchiveMessage(_ context.Context, user, text string) error {
	a.submit(archiveJob{user: user, text: text})
	return nil
}

func (a *AsyncArchive) ArchiveResult(_ context.Context, user string, result domain.QuizResult) error {
	a.submit(archiveJob{user: user, result: &result})
	return nil
}

func (a *AsyncArchive) submit(job archiveJob) {
	select {
	case a.jobs <- job:
	default:
		log.Printf("archive buffer full, dropping write for %s", job.user)
	}
}

// Close stops accepting writes and waits for the worker to drain the
// buffered ones.
func (a *AsyncArchive) Close() {
	a.once.Do(func() {
		close(a.jobs)
		<-a.done
	})
}

func (a *AsyncArchive) run() {
	defer close(a.done)
	for job := range a.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		var err error
		if job.result != nil {
			err = a.inner.ArchiveResult(ctx, job.user, *job.result)
		} else {
			err = a.inner.ArchiveMessage(ctx, job.user, job.text)
		}
		cancel()
		if err != nil {
			log.Printf("archive write failed for %s: %v", job.user, err)
		}
	}
}
