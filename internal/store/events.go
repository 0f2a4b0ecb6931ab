// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"

	"github.com/vinterdal/bloggverk/internal/model"
)

// InsertEvent records one diagnostic event.
func (s *Store) InsertEvent(ctx context.Context, level, source, message string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (level, source, message) VALUES (?, ?, ?)`,
		level, source, message)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

// ListRecentEvents returns the newest events, most recent first.
func (s *Store) ListRecentEvents(ctx context.Context, limit int) ([]*model.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, level, source, message, created_at
		FROM events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []*model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Level, &e.Source, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}
