// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr bridges low-level database errors and application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/modhub/internal/platform/apperr"
)

// Wrap classifies a database error as NotFound (for pgx.ErrNoRows) or Internal.
// The resource name feeds the client-facing "not found" message and action
// is kept on the cause for logs.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	return apperr.Internal(fmt.Errorf("postgres: %s: %w", action, err))
}
