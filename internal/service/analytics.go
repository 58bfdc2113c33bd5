package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/solware/solware-id/internal/domain"
)

// AsyncSink buffers analytics events and writes them to a repository from a
// single background worker started with Run. Track never blocks: when the
// buffer is full the event is dropped.
type AsyncSink struct {
	events chan domain.Event
	repo   domain.EventRepository
	logger *slog.Logger
}

// NewAsyncSink creates a sink with room for buffer pending events.
func NewAsyncSink(repo domain.EventRepository, buffer int, logger *slog.Logger) *AsyncSink {
	if buffer < 1 {
		buffer = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AsyncSink{
		events: make(chan domain.Event, buffer),
		repo:   repo,
		logger: logger,
	}
}

// Track queues event for storage.
func (s *AsyncSink) Track(_ context.Context, event domain.Event) {
	select {
	case s.events <- event:
	default:
		s.logger.Warn("analytics buffer full, dropping event", "event", event.Name, "slug", event.Slug)
	}
}

// Run stores queued events until ctx is done, then flushes what is still
// buffered. It always returns nil; storage failures are logged.
func (s *AsyncSink) Run(ctx context.Context) error {
	for {
		select {
		case event := <-s.events:
			s.store(ctx, event)
		case <-ctx.Done():
			s.flush()
			return nil
		}
	}
}

func (s *AsyncSink) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for {
		select {
		case event := <-s.events:
			s.store(ctx, event)
		default:
			return
		}
	}
}

func (s *AsyncSink) store(ctx context.Context, event domain.Event) {
	if err := s.repo.Create(ctx, &event); err != nil {
		s.logger.Error("store analytics event", "error", err, "event", event.Name, "slug", event.Slug)
	}
}

// LogSink writes events to the logger only.
type LogSink struct {
	Logger *slog.Logger
}

// Track logs event at info level.
func (s LogSink) Track(ctx context.Context, event domain.Event) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "analytics event", "event", event.Name, "subject", event.Subject, "slug", event.Slug)
}
