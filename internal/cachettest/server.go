// Package cachettest provides a recording mock of a Cachet status page API
// for package tests.
package cachettest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Server is a configurable fake Cachet API. It records every request it
// receives so tests can assert on dispatched methods, paths, headers and
// bodies, and it lets tests register per-route handlers.
type Server struct {
	*httptest.Server
	mu           sync.RWMutex
	handlers     map[string]HandlerFunc
	requestCount atomic.Int32
	requests     []RecordedRequest
}

// HandlerFunc produces the status code and JSON body for a matched route.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) (int, interface{})

// RecordedRequest stores information about a received request.
type RecordedRequest struct {
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
	Body    []byte
	Time    time.Time
}

// New creates a running mock server with default ping and version routes.
// Callers must Close it.
func New() *Server {
	s := &Server{
		handlers: make(map[string]HandlerFunc),
		requests: make([]RecordedRequest, 0),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRequest)

	s.Server = httptest.NewServer(mux)
	s.setupDefaultHandlers()

	return s
}

// setupDefaultHandlers registers the anonymous read endpoints every Cachet
// install answers.
func (s *Server) setupDefaultHandlers() {
	s.Handle("GET /ping", func(w http.ResponseWriter, r *http.Request) (int, interface{}) {
		return http.StatusOK, map[string]interface{}{
			"data": "Pong!",
		}
	})

	s.Handle("GET /version", func(w http.ResponseWriter, r *http.Request) (int, interface{}) {
		return http.StatusOK, map[string]interface{}{
			"meta": map[string]interface{}{
				"on_latest": true,
				"latest": map[string]interface{}{
					"tag_name": "v2.3.10",
				},
			},
			"data": "2.3.10",
		}
	})
}

// Handle registers a handler for a "METHOD /path" route. A route ending in
// "/" matches as a prefix, for id-bearing paths.
func (s *Server) Handle(route string, handler HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[route] = handler
}

// Echo registers a handler answering with a fixed status and body.
func (s *Server) Echo(route string, status int, body interface{}) {
	s.Handle(route, func(w http.ResponseWriter, r *http.Request) (int, interface{}) {
		return status, body
	})
}

// handleRequest records the request and routes it to a registered handler.
func (s *Server) handleRequest(w http.ResponseWriter, r *http.Request) {
	body := make([]byte, 0)
	if r.Body != nil {
		body, _ = io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
	}

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:  r.Method,
		Path:    r.URL.Path,
		Query:   r.URL.Query(),
		Headers: r.Header.Clone(),
		Body:    body,
		Time:    time.Now(),
	})
	s.mu.Unlock()

	s.requestCount.Add(1)

	route := r.Method + " " + r.URL.Path
	s.mu.RLock()
	handler, exact := s.handlers[route]
	if !exact {
		for p, h := range s.handlers {
			if strings.HasSuffix(p, "/") && strings.HasPrefix(route, p) {
				handler = h
				break
			}
		}
	}
	s.mu.RUnlock()

	if handler == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]string{{"title": "Not found"}},
		})
		return
	}

	status, response := handler(w, r)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if response != nil {
		// Write the body exactly as marshaled: Encoder.Encode would append a
		// trailing newline the stubbed bodies don't contain.
		body, _ := json.Marshal(response)
		w.Write(body)
	}
}

// RequestCount returns the total number of requests received.
func (s *Server) RequestCount() int {
	return int(s.requestCount.Load())
}

// Requests returns a copy of all recorded requests.
func (s *Server) Requests() []RecordedRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]RecordedRequest, len(s.requests))
	copy(result, s.requests)
	return result
}

// LastRequest returns the most recently recorded request, or nil when no
// request arrived.
func (s *Server) LastRequest() *RecordedRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.requests) == 0 {
		return nil
	}
	req := s.requests[len(s.requests)-1]
	return &req
}

// Reset clears all recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requestCount.Store(0)
	s.requests = s.requests[:0]
}
