package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/solware/solware-id/internal/domain"
)

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) Create(ctx context.Context, event *domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO events (id, name, subject, slug, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		event.ID, event.Name, event.Subject, event.Slug, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *eventRepo) CountBySlug(ctx context.Context, slug string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, COUNT(*) FROM events WHERE slug = ? GROUP BY name`, slug)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("scan event count: %w", err)
		}
		counts[name] = n
	}
	return counts, rows.Err()
}
