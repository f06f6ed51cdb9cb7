// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// recordedRequest is what the fake record service saw.
type recordedRequest struct {
	Method      string
	Path        string
	Query       string
	Auth        string
	ContentType string
	RequestID   string
	Body        []byte
}

// fakeRecordService is a chi router mounted under /api that records every
// request and answers with a canned status and body per route.
type fakeRecordService struct {
	mu       sync.Mutex
	requests []recordedRequest
	server   *httptest.Server
}

type cannedResponse struct {
	status int
	body   any
}

func newFakeRecordService(t *testing.T, routes map[string]cannedResponse) *fakeRecordService {
	t.Helper()
	f := &fakeRecordService{}

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		for pattern, canned := range routes {
			method, path := splitRoute(pattern)
			r.MethodFunc(method, path, f.handler(canned))
		}
	})

	f.server = httptest.NewServer(router)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeRecordService) URL() string {
	return f.server.URL + "/api"
}

func (f *fakeRecordService) handler(canned cannedResponse) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.RawQuery,
			Auth:        r.Header.Get("Authorization"),
			ContentType: r.Header.Get("Content-Type"),
			RequestID:   r.Header.Get("X-Request-ID"),
			Body:        body,
		})
		f.mu.Unlock()

		switch b := canned.body.(type) {
		case nil:
			w.WriteHeader(canned.status)
		case string:
			w.WriteHeader(canned.status)
			_, _ = w.Write([]byte(b))
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(canned.status)
			_ = json.NewEncoder(w).Encode(b)
		}
	}
}

func (f *fakeRecordService) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		t.Fatal("fake record service received no requests")
	}
	return f.requests[len(f.requests)-1]
}

func splitRoute(pattern string) (string, string) {
	method, path, ok := strings.Cut(pattern, " ")
	if !ok {
		return http.MethodGet, pattern
	}
	return method, path
}

type staticToken string

func (s staticToken) Token() string { return string(s) }
