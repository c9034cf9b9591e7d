//go:build unit

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status code and, for 2xx responses,
// decodes the body into target when one is given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, "unexpected status. Response: %s", w.Body.String())

	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), target),
			"Failed to decode response JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status code and the error envelope message.
// An empty expectedMsg only verifies the envelope shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status. Response: %s", w.Body.String())

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope),
		"Failed to decode error response JSON: %s", w.Body.String())

	if expectedMsg != "" {
		assert.Contains(t, envelope.Error.Message, expectedMsg)
	}
}
