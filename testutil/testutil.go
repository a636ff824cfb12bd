// Package testutil provides utilities for testing, most notably an
// in-process key-value server that stands in for a remote repository.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"
)

// Server is a rudimentary key-value HTTP server for tests. Keys and values
// live in a map; a GET of "/some/key" returns 200 with the value of
// "some/key", or 404 when absent. Request paths are recorded so tests can
// assert on lookup order.
type Server struct {
	mu      sync.Mutex
	data    map[string]string
	log     []string
	failing string

	server *httptest.Server
}

// NewServer starts a key-value server seeded with data (may be nil).
// Callers must Close it.
func NewServer(data map[string]string) *Server {
	s := &Server{data: map[string]string{}}
	for k, v := range data {
		s.data[k] = v
	}

	s.server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(r.URL.Path, "/")

	s.mu.Lock()
	s.log = append(s.log, r.URL.Path)
	value, ok := s.data[key]
	failing := s.failing
	s.mu.Unlock()

	if failing != "" && strings.HasPrefix(key, failing) {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Write([]byte(value))
}

// URL returns the server's base URL.
func (s *Server) URL() string {
	return s.server.URL
}

// Close shuts the server down.
func (s *Server) Close() {
	s.server.Close()
}

// Set stores a key-value pair.
func (s *Server) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Reset replaces all stored data and clears the access log.
func (s *Server) Reset(data map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = map[string]string{}
	for k, v := range data {
		s.data[k] = v
	}
	s.log = nil
	s.failing = ""
}

// FailPrefix makes the server answer 500 for every key starting with
// prefix, simulating an unreachable backend for those paths.
func (s *Server) FailPrefix(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = prefix
}

// AccessLog returns the request paths seen so far, in order.
func (s *Server) AccessLog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.log...)
}

// SeedFile loads a YAML key-value document into the server's data.
func (s *Server) SeedFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var data map[string]string
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range data {
		s.data[k] = v
	}
	return nil
}

// LoadYAML loads a fixture file from testdata and unmarshals it as a YAML
// key-value map.
func LoadYAML(t *testing.T, path string) map[string]string {
	t.Helper()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", path, err)
	}

	var data map[string]string
	if err := yaml.Unmarshal(raw, &data); err != nil {
		t.Fatalf("failed to parse YAML fixture %s: %v", path, err)
	}
	return data
}
