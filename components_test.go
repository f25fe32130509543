package cachet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statusbird/cachet-go/internal/cachettest"
)

func TestComponentsCreateRequiredFields(t *testing.T) {
	server := cachettest.New()
	defer server.Close()

	client := newTestClient(t, server, "secret-token")

	tests := []struct {
		name        string
		req         ComponentCreate
		wantMissing string
	}{
		{
			name:        "missing name",
			req:         ComponentCreate{Status: 1},
			wantMissing: "name",
		},
		{
			name:        "missing status",
			req:         ComponentCreate{Name: "API"},
			wantMissing: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server.Reset()

			_, err := client.Components.Create(context.Background(), tt.req)

			var missing *MissingArgumentError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.wantMissing, missing.Field)
			assert.Equal(t, 0, server.RequestCount(), "validation must run before dispatch")
		})
	}
}

func TestComponentsCreateAppliesEnabledDefault(t *testing.T) {
	server := cachettest.New()
	defer server.Close()
	server.Echo("POST /components", http.StatusOK, map[string]interface{}{"data": map[string]interface{}{"id": 1}})

	client := newTestClient(t, server, "secret-token")

	_, err := client.Components.Create(context.Background(), ComponentCreate{Name: "API", Status: 1})
	require.NoError(t, err)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(server.LastRequest().Body, &sent))
	assert.Equal(t, true, sent["enabled"], "enabled must default to true")
}

func TestComponentsCreateKeepsExplicitEnabled(t *testing.T) {
	server := cachettest.New()
	defer server.Close()
	server.Echo("POST /components", http.StatusOK, map[string]interface{}{"data": map[string]interface{}{"id": 1}})

	client := newTestClient(t, server, "secret-token")

	_, err := client.Components.Create(context.Background(), ComponentCreate{
		Name:    "API",
		Status:  1,
		Enabled: Bool(false),
	})
	require.NoError(t, err)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(server.LastRequest().Body, &sent))
	assert.Equal(t, false, sent["enabled"])
}

func TestComponentsTokenGating(t *testing.T) {
	server := cachettest.New()
	defer server.Close()

	client := newTestClient(t, server, "")
	ctx := context.Background()

	_, err := client.Components.Create(ctx, ComponentCreate{Name: "API", Status: 1})
	assert.ErrorIs(t, err, ErrAuthRequired)

	_, err = client.Components.Update(ctx, ComponentUpdate{ID: 1, Name: "API"})
	assert.ErrorIs(t, err, ErrAuthRequired)

	ok, err := client.Components.Delete(ctx, 1)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrAuthRequired)

	assert.Equal(t, 0, server.RequestCount(), "token check must run before any network call")
}

func TestComponentsGetAndList(t *testing.T) {
	server := cachettest.New()
	defer server.Close()
	server.Echo("GET /components", http.StatusOK, map[string]interface{}{"data": []interface{}{}})
	server.Echo("GET /components/42", http.StatusOK, map[string]interface{}{"data": map[string]interface{}{"id": 42}})

	client := newTestClient(t, server, "")
	ctx := context.Background()

	_, err := client.Components.Get(ctx, 42, nil)
	require.NoError(t, err)
	assert.Equal(t, "/components/42", server.LastRequest().Path)

	_, err = client.Components.List(ctx, url.Values{"per_page": {"50"}, "enabled": {"1"}})
	require.NoError(t, err)

	req := server.LastRequest()
	assert.Equal(t, "/components", req.Path)
	assert.Equal(t, "50", req.Query.Get("per_page"))
	assert.Equal(t, "1", req.Query.Get("enabled"))
}

func TestComponentsUpdate(t *testing.T) {
	server := cachettest.New()
	defer server.Close()
	server.Echo("PUT /components/42", http.StatusOK, map[string]interface{}{"data": map[string]interface{}{"id": 42}})

	client := newTestClient(t, server, "secret-token")
	ctx := context.Background()

	t.Run("missing id", func(t *testing.T) {
		_, err := client.Components.Update(ctx, ComponentUpdate{Name: "API"})

		var missing *MissingArgumentError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "id", missing.Field)
	})

	t.Run("dispatches to id path", func(t *testing.T) {
		_, err := client.Components.Update(ctx, ComponentUpdate{ID: 42, Status: Int(4)})
		require.NoError(t, err)

		req := server.LastRequest()
		assert.Equal(t, http.MethodPut, req.Method)
		assert.Equal(t, "/components/42", req.Path)

		var sent map[string]interface{}
		require.NoError(t, json.Unmarshal(req.Body, &sent))
		assert.Equal(t, float64(42), sent["id"])
		assert.Equal(t, float64(4), sent["status"])
	})
}

func TestComponentsDelete(t *testing.T) {
	server := cachettest.New()
	defer server.Close()
	server.Handle("DELETE /components/42", func(w http.ResponseWriter, r *http.Request) (int, interface{}) {
		return http.StatusNoContent, nil
	})

	client := newTestClient(t, server, "secret-token")

	ok, err := client.Components.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/components/42", server.LastRequest().Path)
}
