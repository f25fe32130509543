package cachet

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-cleanhttp"
)

// userAgent identifies the library on every request.
const userAgent = "cachet-go/1.0.0"

// httpTransport handles HTTP communication with the Cachet API. It owns one
// pooled http.Client and the immutable client configuration; it holds no
// other state, so every call through it is independent.
//
// The read helpers (get, post, put) return the response body re-indented as
// a pretty-printed JSON string rather than a decoded value; delete returns a
// boolean success indicator and discards the body.
type httpTransport struct {
	// client is the underlying HTTP client
	client *http.Client
	// config holds the client configuration
	config *Config
}

// newHTTPTransport creates the transport for a validated config.
func newHTTPTransport(config *Config) (*httpTransport, error) {
	if config.Endpoint == "" {
		return nil, ErrMissingEndpoint
	}

	base := cleanhttp.DefaultPooledTransport()
	base.MaxIdleConns = config.TransportConfig.MaxIdleConns
	base.MaxConnsPerHost = config.TransportConfig.MaxConnsPerHost
	base.IdleConnTimeout = config.TransportConfig.IdleConnTimeout
	if config.VerifyTLS != nil && !*config.VerifyTLS {
		base.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &httpTransport{
		client: &http.Client{
			Transport: base,
			Timeout:   config.Timeout,
		},
		config: config,
	}, nil
}

// requireToken guards token-gated operations. It runs before any request is
// built, so a missing token never reaches the network.
func (t *httpTransport) requireToken() error {
	if t.config.APIToken == "" {
		return ErrAuthRequired
	}
	return nil
}

// request performs a single HTTP round trip and soft-decodes the response.
//
// The URL is built as endpoint + "/" + path; callers supply paths without a
// leading slash and duplicate slashes are not normalized. A non-2xx status
// is returned as *APIError carrying the status code and raw body. A body
// that is not valid JSON (including an empty body) decodes to nil rather
// than failing.
func (t *httpTransport) request(ctx context.Context, method, path string, params url.Values, body interface{}) (json.RawMessage, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("cachet: failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	rawURL := t.config.Endpoint + "/" + path
	if len(params) > 0 {
		rawURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("cachet: failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if t.config.APIToken != "" {
		req.Header.Set("X-Cachet-Token", t.config.APIToken)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cachet: %s %s: %w", method, path, err)
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("cachet: reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: respBody}
	}

	if !json.Valid(respBody) {
		// Empty or malformed bodies decode to absent data, not an error.
		return nil, nil
	}
	return json.RawMessage(respBody), nil
}

// get performs a GET request and returns the pretty-printed response body
func (t *httpTransport) get(ctx context.Context, path string, params url.Values) (string, error) {
	raw, err := t.request(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return "", err
	}
	return indentJSON(raw), nil
}

// post performs a POST request and returns the pretty-printed response body
func (t *httpTransport) post(ctx context.Context, path string, body interface{}) (string, error) {
	raw, err := t.request(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return "", err
	}
	return indentJSON(raw), nil
}

// put performs a PUT request and returns the pretty-printed response body
func (t *httpTransport) put(ctx context.Context, path string, body interface{}) (string, error) {
	raw, err := t.request(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return "", err
	}
	return indentJSON(raw), nil
}

// delete performs a DELETE request, discarding the response body
func (t *httpTransport) delete(ctx context.Context, path string) (bool, error) {
	if _, err := t.request(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return false, err
	}
	return true, nil
}

// indentJSON re-encodes a raw JSON document with two-space indentation.
// Absent data renders as "null", matching a JSON encoding of nil.
func indentJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "null"
	}
	return buf.String()
}
