package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-booking/internal/data/repository"
	"shop-booking/internal/usecase"
	"shop-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "validation maps to 400",
			err:      fmt.Errorf("%w: invalid customer ID abc", usecase.ErrValidation),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "empty cart maps to 400",
			err:      usecase.ErrEmptyCart,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "not found maps to 404",
			err:      repository.ErrNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "wrapped not found maps to 404",
			err:      fmt.Errorf("get order abc: %w", repository.ErrNotFound),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "checkout failure maps to 500",
			err:      fmt.Errorf("%w: commit: broken pipe", usecase.ErrCheckout),
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "dependency failure maps to 500",
			err:      fmt.Errorf("%w: contact info missing", usecase.ErrDependency),
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "unknown error maps to 500 and hides details",
			err:      fmt.Errorf("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tt.err, "test operation")

			assert.Equal(t, tt.wantCode, rec.Code)

			var body utils.Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Status)

			if tt.name == "unknown error maps to 500 and hides details" {
				assert.Equal(t, "Internal server error", body.Message)
			}
		})
	}
}
