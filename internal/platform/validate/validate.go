// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate gathers rejected fields of a write request into one
// VALIDATION_ERROR.
//
// Read paths never validate; listing parameters are coerced instead.
package validate

import (
	"github.com/taibuivan/modhub/internal/platform/apperr"
)

const failedMessage = "Validation failed"

// ErrMalformedBody is returned when a JSON body cannot be decoded.
var ErrMalformedBody = apperr.ValidationError("Request body must be valid JSON")

// Validator accumulates failures. The zero value is ready to use; it is not
// safe for concurrent use.
type Validator struct {
	failures []apperr.FieldError
}

// Check records message against field unless ok holds.
func (v *Validator) Check(ok bool, field, message string) *Validator {
	if !ok {
		v.failures = append(v.failures, apperr.FieldError{Field: field, Message: message})
	}
	return v
}

// PositiveID rejects identifiers that are zero or negative.
func (v *Validator) PositiveID(field string, id int64) *Validator {
	return v.Check(id > 0, field, "Must be a positive integer")
}

// Failed reports whether any check has failed so far.
func (v *Validator) Failed() bool {
	return len(v.failures) > 0
}

// Err returns nil when every check held.
func (v *Validator) Err() error {
	if !v.Failed() {
		return nil
	}
	return apperr.ValidationError(failedMessage, v.failures...)
}

// Field builds a single-field VALIDATION_ERROR.
func Field(field, message string) *apperr.AppError {
	return apperr.ValidationError(failedMessage, apperr.FieldError{Field: field, Message: message})
}
