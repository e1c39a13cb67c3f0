/*
Copyright 2025 Ledgerline Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package apierror_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/ledgerline/ledgerline/internal/apierror"
	"github.com/stretchr/testify/assert"
)

func TestNewAPIError(t *testing.T) {
	details := "record was deleted concurrently"
	apiErr := apierror.NewAPIError(apierror.ErrNotFound, "Payout not found", details)

	assert.Equal(t, apierror.ErrNotFound, apiErr.Code)
	assert.Equal(t, "Payout not found", apiErr.Message)
	assert.Equal(t, details, apiErr.Details)
	assert.Equal(t, "NOT_FOUND: Payout not found", apiErr.Error())
}

func TestNewTransactionError_KeepsCause(t *testing.T) {
	cause := apierror.NewAPIError(apierror.ErrNotFound, "Sale not found", nil)
	txErr := apierror.NewTransactionError(cause)

	assert.Equal(t, apierror.ErrTransactionFailed, txErr.Code)
	assert.True(t, errors.Is(txErr, cause))
	assert.Equal(t, apierror.ErrNotFound, apierror.RootCode(txErr))
}

func TestMapErrorToHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "NotFound Error",
			err:      apierror.NewAPIError(apierror.ErrNotFound, "Resource not found", nil),
			expected: http.StatusNotFound,
		},
		{
			name:     "Conflict Error",
			err:      apierror.NewAPIError(apierror.ErrConflict, "Conflict occurred", nil),
			expected: http.StatusConflict,
		},
		{
			name:     "InvalidInput Error",
			err:      apierror.NewAPIError(apierror.ErrInvalidInput, "Invalid input", nil),
			expected: http.StatusBadRequest,
		},
		{
			name:     "Transaction wrapping NotFound",
			err:      apierror.NewTransactionError(apierror.NewAPIError(apierror.ErrNotFound, "Sale not found", nil)),
			expected: http.StatusNotFound,
		},
		{
			name:     "Transaction wrapping validation failure",
			err:      apierror.NewTransactionError(apierror.NewAPIError(apierror.ErrInvalidInput, "bad status", nil)),
			expected: http.StatusBadRequest,
		},
		{
			name:     "Transaction wrapping storage fault",
			err:      apierror.NewTransactionError(errors.New("connection reset")),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Unknown Error",
			err:      errors.New("unknown error"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statusCode := apierror.MapErrorToHTTPStatus(tt.err)
			assert.Equal(t, tt.expected, statusCode)
		})
	}
}
