package cachet

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statusbird/cachet-go/internal/cachettest"
)

// newTestClient builds a client against the mock server, with an API token
// unless token is empty.
func newTestClient(t *testing.T, server *cachettest.Server, token string) *Client {
	t.Helper()

	config := NewConfig(server.URL)
	if token != "" {
		config = config.WithAPIToken(token)
	}

	client, err := NewClient(config)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		client, err := NewClient(NewConfig("http://localhost/api/v1"))
		require.NoError(t, err)

		assert.NotNil(t, client.Ping)
		assert.NotNil(t, client.Version)
		assert.NotNil(t, client.Components)
		assert.NotNil(t, client.Groups)
		assert.NotNil(t, client.Incidents)
		assert.NotNil(t, client.Metrics)
		assert.NotNil(t, client.Points)
		assert.NotNil(t, client.Subscribers)
		assert.NotNil(t, client.Schedules)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		_, err := NewClient(&Config{})
		assert.ErrorIs(t, err, ErrMissingEndpoint)
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := NewClient(nil)
		assert.ErrorIs(t, err, ErrMissingEndpoint)
	})
}

// Construction is purely local: a bad config must fail before any network
// activity could happen.
func TestNewClientNoNetworkActivity(t *testing.T) {
	server := cachettest.New()
	defer server.Close()

	_, err := NewClient(&Config{APIToken: "secret-token"})
	require.ErrorIs(t, err, ErrMissingEndpoint)
	assert.Equal(t, 0, server.RequestCount())
}

// Full round trip: create a component against an echoing stub and verify
// the dispatched method, path, auth header, body and the returned
// pretty-printed JSON string.
func TestClientComponentRoundTrip(t *testing.T) {
	server := cachettest.New()
	defer server.Close()

	echoed := map[string]interface{}{
		"data": map[string]interface{}{"id": 42, "name": "X"},
	}
	server.Echo("POST /components", http.StatusOK, echoed)

	client := newTestClient(t, server, "t")

	body, err := client.Components.Create(context.Background(), ComponentCreate{
		Name:    "X",
		Status:  1,
		Enabled: Bool(true),
	})
	require.NoError(t, err)

	req := server.LastRequest()
	require.NotNil(t, req)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/components", req.Path)
	assert.Equal(t, "t", req.Headers.Get("X-Cachet-Token"))

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, "X", sent["name"])
	assert.Equal(t, float64(1), sent["status"])
	assert.Equal(t, true, sent["enabled"])

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &got), "return value must be valid JSON")
	assert.Equal(t, "{\n  \"data\": {\n    \"id\": 42,\n    \"name\": \"X\"\n  }\n}", body)
}

func TestClientPingAndVersion(t *testing.T) {
	server := cachettest.New()
	defer server.Close()

	client := newTestClient(t, server, "")
	ctx := context.Background()

	pong, err := client.Ping.Get(ctx)
	require.NoError(t, err)
	assert.Contains(t, pong, "Pong!")

	version, err := client.Version.Get(ctx)
	require.NoError(t, err)
	assert.Contains(t, version, "2.3.10")
}

func TestCapabilityInterfaces(t *testing.T) {
	server := cachettest.New()
	defer server.Close()

	client := newTestClient(t, server, "")

	// Metrics has no update, Subscribers has no single-item fetch; the
	// interfaces expose exactly what the remote API supports.
	var components interface{} = client.Components
	_, ok := components.(Getter)
	assert.True(t, ok, "components should support single-item fetch")

	var subscribers interface{} = client.Subscribers
	_, ok = subscribers.(Getter)
	assert.False(t, ok, "subscribers must not support single-item fetch")
	_, ok = subscribers.(Lister)
	assert.True(t, ok, "subscribers should support listing")

	var metrics interface{} = client.Metrics
	_, ok = metrics.(Deleter)
	assert.True(t, ok, "metrics should support delete")
}

func TestPointerHelpers(t *testing.T) {
	assert.True(t, *Bool(true))
	assert.False(t, *Bool(false))
	assert.Equal(t, 3, *Int(3))
	assert.Equal(t, 1.5, *Float64(1.5))
}
