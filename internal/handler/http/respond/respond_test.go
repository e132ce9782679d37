package respond_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"negative-mentions/internal/handler/http/respond"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	respond.JSON(rec, 200, map[string]int{"total": 3})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body["total"])
}

func TestJSONNilBody(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	respond.JSON(rec, 204, nil)

	assert.Equal(t, 204, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestSafeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		code        int
		err         error
		wantMessage string
	}{
		{
			name:        "validation error passes through",
			code:        400,
			err:         errors.New("limit must be between 5 and 50"),
			wantMessage: "limit must be between 5 and 50",
		},
		{
			name:        "parse error passes through",
			code:        400,
			err:         errors.New("parse csv: record on line 2: wrong number of fields"),
			wantMessage: "parse csv: record on line 2: wrong number of fields",
		},
		{
			name:        "opaque error is masked",
			code:        400,
			err:         errors.New("dial tcp 10.0.0.1: connection refused"),
			wantMessage: "internal server error",
		},
		{
			name:        "5xx always masked",
			code:        500,
			err:         errors.New("limit must be between 5 and 50"),
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respond.SafeError(rec, tt.code, tt.err)

			assert.Equal(t, tt.code, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body["error"])
		})
	}
}
