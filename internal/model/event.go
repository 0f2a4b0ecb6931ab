// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Event levels.
const (
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event is one diagnostic record. Contrast repairs and parse fallbacks end
// up here via the logging handler so generation quality can be audited.
type Event struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Source    string    `json:"source"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
