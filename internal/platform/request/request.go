// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package requestutil reads path parameters, bodies and caller identity off an
// incoming request, returning [apperr.AppError] values handlers can pass
// straight to respond.Error.
package requestutil

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/modhub/internal/platform/apperr"
	"github.com/taibuivan/modhub/internal/platform/ctxutil"
	"github.com/taibuivan/modhub/internal/platform/validate"
)

// maxBodyBytes bounds write payloads; pin and like bodies are a few bytes.
const maxBodyBytes = 4 << 10

/*
DecodeBody decodes a small JSON object into target.

Unknown fields and trailing data are rejected.

Returns:
  - error: validate.ErrMalformedBody on any decoding failure
*/
func DecodeBody(request *http.Request, target any) error {
	decoder := json.NewDecoder(io.LimitReader(request.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return validate.ErrMalformedBody
	}
	if decoder.More() {
		return validate.ErrMalformedBody
	}
	return nil
}

// Param returns the raw path parameter, or "".
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// PathID parses a path parameter as a positive identifier.
func PathID(request *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(Param(request, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, validate.Field(name, "Must be a positive integer")
	}
	return id, nil
}

// CallerID returns the user ID of the authenticated caller.
func CallerID(request *http.Request) (string, error) {
	claims := ctxutil.Claims(request.Context())
	if claims == nil {
		return "", apperr.Unauthorized("Authentication required")
	}
	return claims.UserID, nil
}
