// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the recurring background jobs, currently only the
// scheduled-post publisher.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vinterdal/bloggverk/internal/store"
)

// publishSchedule fires once a minute; scheduled posts go live with at most
// a minute of delay.
const publishSchedule = "* * * * *"

// Scheduler owns the cron runner.
type Scheduler struct {
	cron   *cron.Cron
	store  *store.Store
	logger *slog.Logger
}

// New creates a Scheduler with the publish job registered.
func New(st *store.Store, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scheduler{
		cron:   cron.New(),
		store:  st,
		logger: logger,
	}
	if _, err := s.cron.AddFunc(publishSchedule, s.publishScheduled); err != nil {
		return nil, err
	}
	return s, nil
}

// Start launches the cron goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop halts the cron runner and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// publishScheduled flips due posts to published.
func (s *Scheduler) publishScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.store.PublishScheduledPosts(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("publishing scheduled posts", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("published scheduled posts", "count", n)
	}
}
