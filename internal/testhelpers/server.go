// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package testhelpers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// RecordedRequest is what the fake server saw for one token request.
type RecordedRequest struct {
	Method      string
	Path        string
	ContentType string
	UserAgent   string
	RawBody     string
	Form        url.Values
}

// TokenServer is a fake Secret Server exposing the OAuth2 token endpoint
// under FakeBaseURLPath.
type TokenServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	handler  http.HandlerFunc
}

// NewTokenServer answers every token request with status and body.
func NewTokenServer(t *testing.T, status int, body string) *TokenServer {
	t.Helper()
	return NewTokenServerFunc(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// NewTokenServerFunc delegates responses to h after recording the request.
func NewTokenServerFunc(t *testing.T, h http.HandlerFunc) *TokenServer {
	t.Helper()
	s := &TokenServer{handler: h}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *TokenServer) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	form, _ := url.ParseQuery(string(raw))
	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		UserAgent:   r.Header.Get("User-Agent"),
		RawBody:     string(raw),
		Form:        form,
	})
	s.mu.Unlock()
	s.handler(w, r)
}

// BaseURL is the Secret Server base URL clients should be configured with.
func (s *TokenServer) BaseURL() string { return s.URL + FakeBaseURLPath }

// Requests returns a copy of the recorded requests.
func (s *TokenServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest fails the test when no request was recorded.
func (s *TokenServer) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatal("expected at least one request to the token endpoint")
	}
	return reqs[len(reqs)-1]
}
