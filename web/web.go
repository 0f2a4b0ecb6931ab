// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package web embeds the site templates.
package web

import "embed"

//go:embed templates
var Templates embed.FS
