// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/modhub/internal/platform/apperr"
	"github.com/taibuivan/modhub/internal/platform/validate"
)

/*
TestValidator_PositiveID rejects zero and negative comment identifiers.
*/
func TestValidator_PositiveID(t *testing.T) {
	tests := []struct {
		name   string
		id     int64
		failed bool
	}{
		{"positive", 12, false},
		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.PositiveID("comment_id", tt.id)

			assert.Equal(t, tt.failed, v.Failed())
			if !tt.failed {
				assert.NoError(t, v.Err())
				return
			}

			appErr := apperr.As(v.Err())
			require.NotNil(t, appErr)
			assert.Equal(t, apperr.CodeValidation, appErr.Code)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
			assert.Equal(t, "comment_id", appErr.Details[0].Field)
		})
	}
}

/*
TestValidator_Accumulates keeps every failed check in order.
*/
func TestValidator_Accumulates(t *testing.T) {
	err := (&validate.Validator{}).
		PositiveID("comment_id", 0).
		Check(true, "item", "unused").
		Check(false, "parent_id", "Only top-level comments can be pinned").
		Err()

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	require.Len(t, appErr.Details, 2)
	assert.Equal(t, "comment_id", appErr.Details[0].Field)
	assert.Equal(t, "parent_id", appErr.Details[1].Field)
}

/*
TestField builds a one-entry validation error.
*/
func TestField(t *testing.T) {
	appErr := validate.Field("commentID", "Must be a positive integer")

	assert.Equal(t, apperr.CodeValidation, appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "commentID", appErr.Details[0].Field)
}
