// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package render

// Template variant catalogs, one entry per slot index. Order is fixed:
// stored slot indices are 1-based positions into these lists, so entries
// must never be reordered.
var (
	HeaderTemplates = []string{
		"header_1", "header_2", "header_3", "header_4", "header_5",
	}
	FooterTemplates = []string{
		"footer_1", "footer_2", "footer_3", "footer_4", "footer_5",
	}
	FrontPageTemplates = []string{
		"frontpage_1", "frontpage_2", "frontpage_3", "frontpage_4", "frontpage_5",
	}
	BlogPostTemplates = []string{
		"post_1", "post_2", "post_3", "post_4", "post_5",
	}
	PageTemplates = []string{
		"page_1", "page_2", "page_3", "page_4", "page_5",
	}
)
