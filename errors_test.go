package cachet

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingArgumentError(t *testing.T) {
	err := &MissingArgumentError{Field: "name"}

	assert.Contains(t, err.Error(), "name")
	assert.True(t, IsMissingArgument(err))
	assert.True(t, IsMissingArgument(fmt.Errorf("creating component: %w", err)))
	assert.False(t, IsMissingArgument(errors.New("unrelated")))
	assert.False(t, IsMissingArgument(nil))
}

func TestUnsupportedOperationError(t *testing.T) {
	err := &UnsupportedOperationError{Resource: "metrics", Operation: "put"}

	assert.Contains(t, err.Error(), "metrics")
	assert.Contains(t, err.Error(), "put")
	assert.True(t, IsUnsupported(err))
	assert.False(t, IsUnsupported(ErrAuthRequired))
}

func TestIsAuthRequired(t *testing.T) {
	assert.True(t, IsAuthRequired(ErrAuthRequired))
	assert.True(t, IsAuthRequired(fmt.Errorf("posting incident: %w", ErrAuthRequired)))
	assert.False(t, IsAuthRequired(ErrMissingEndpoint))
	assert.False(t, IsAuthRequired(nil))
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name         string
		err          *APIError
		wantNotFound bool
		wantClient   bool
		wantServer   bool
	}{
		{
			name:         "not found",
			err:          &APIError{StatusCode: http.StatusNotFound, Body: []byte(`{"errors":[]}`)},
			wantNotFound: true,
			wantClient:   true,
		},
		{
			name:       "unauthorized",
			err:        &APIError{StatusCode: http.StatusUnauthorized},
			wantClient: true,
		},
		{
			name:       "bad gateway",
			err:        &APIError{StatusCode: http.StatusBadGateway},
			wantServer: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantNotFound, tt.err.IsNotFound())
			assert.Equal(t, tt.wantClient, tt.err.IsClientError())
			assert.Equal(t, tt.wantServer, tt.err.IsServerError())
			assert.Contains(t, tt.err.Error(), fmt.Sprintf("%d", tt.err.StatusCode))
		})
	}
}

func TestIsHTTPError(t *testing.T) {
	apiErr := &APIError{StatusCode: 500}

	assert.True(t, IsHTTPError(apiErr))
	assert.True(t, IsHTTPError(fmt.Errorf("deleting component: %w", apiErr)))
	assert.False(t, IsHTTPError(ErrAuthRequired))
	assert.False(t, IsHTTPError(nil))
}

func TestAPIErrorMessageIncludesBody(t *testing.T) {
	err := &APIError{StatusCode: 400, Body: []byte(`{"errors":[{"title":"bad status"}]}`)}
	assert.Contains(t, err.Error(), "bad status")

	empty := &APIError{StatusCode: 400}
	assert.Equal(t, "cachet: API error (status 400)", empty.Error())
}
