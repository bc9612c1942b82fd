// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how a requested page is resolved against the size of the ranked list.
// Out-of-range requests degrade to the nearest valid page instead of failing.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultPerPage is the number of entries per page if not specified.
	DefaultPerPage = 15
	// MaxPerPage is the upper bound for entries per page to prevent system abuse.
	MaxPerPage = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Defaults configures [FromRequest].
type Defaults struct {
	PerPage    int
	MaxPerPage int
}

// Params holds the raw page and per_page from a request's query string.
//
// Values are only parsed here; range coercion happens in [Resolve] so the
// same rules apply whatever the transport.
type Params struct {
	Page    int
	PerPage int
}

// Window is a resolved page over a list of Total entries.
type Window struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	Offset     int  `json:"-"`
	End        int  `json:"-"`
	HasMore    bool `json:"has_more"`
}

// Resolve clamps page and perPage against total.
//
// # Rules
//
//   - page < 1 becomes 1.
//   - perPage <= 0 becomes defaultPerPage (or [DefaultPerPage] when that is also <= 0).
//   - TotalPages is ceil(total / perPage) with a floor of 1.
//   - page > TotalPages becomes TotalPages.
func Resolve(total, page, perPage, defaultPerPage int) Window {
	if total < 0 {
		total = 0
	}
	if page < 1 {
		page = DefaultPage
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	offset := (page - 1) * perPage
	end := min(offset+perPage, total)
	if offset > end {
		offset = end
	}

	return Window{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		Offset:     offset,
		End:        end,
		HasMore:    page < totalPages,
	}
}

// Slice returns the part of items selected by w. It never panics on a window
// resolved for a different length.
func Slice[T any](items []T, w Window) []T {
	start := min(max(w.Offset, 0), len(items))
	end := min(max(w.End, start), len(items))
	return items[start:end]
}

// FromRequest parses "page" and "per_page" query parameters from an HTTP request.
//
// # Clamping
//
// Malformed values fall back to [DefaultPage] and the configured per-page
// default. per_page above the configured maximum is capped. Values below the
// valid range are passed through for [Resolve] to coerce.
func FromRequest(r *http.Request, defaults Defaults) Params {
	perPageDefault := defaults.PerPage
	if perPageDefault <= 0 {
		perPageDefault = DefaultPerPage
	}
	maxPerPage := defaults.MaxPerPage
	if maxPerPage <= 0 {
		maxPerPage = MaxPerPage
	}

	page := parseIntParam(r, "page", DefaultPage)
	perPage := parseIntParam(r, "per_page", perPageDefault)

	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	return Params{Page: page, PerPage: perPage}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
