package testutil

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func TestServer_GetAndNotFound(t *testing.T) {
	server := NewServer(map[string]string{"knock-knock": "who's there?"})
	defer server.Close()

	resp, err := http.Get(server.URL() + "/knock-knock")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if string(body) != "who's there?" {
		t.Errorf("body = %q, want %q", body, "who's there?")
	}

	resp, err = http.Get(server.URL() + "/missing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestServer_AccessLog(t *testing.T) {
	server := NewServer(nil)
	defer server.Close()

	for _, path := range []string{"/a", "/b/c"} {
		resp, err := http.Get(server.URL() + path)
		if err != nil {
			t.Fatalf("Get(%s) error = %v", path, err)
		}
		resp.Body.Close()
	}

	log := server.AccessLog()
	if len(log) != 2 || log[0] != "/a" || log[1] != "/b/c" {
		t.Errorf("AccessLog() = %v, want [/a /b/c]", log)
	}
}

func TestServer_FailPrefix(t *testing.T) {
	server := NewServer(map[string]string{"production/key": "value"})
	defer server.Close()
	server.FailPrefix("production/")

	resp, err := http.Get(server.URL() + "/production/key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}

func TestServer_SeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	if err := os.WriteFile(path, []byte("dolor: sit amet\nlorem/ipsum: value\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	server := NewServer(nil)
	defer server.Close()
	if err := server.SeedFile(path); err != nil {
		t.Fatalf("SeedFile() error = %v", err)
	}

	resp, err := http.Get(server.URL() + "/lorem/ipsum")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "value" {
		t.Errorf("body = %q, want %q", body, "value")
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	if err := os.WriteFile(path, []byte("dolor: sit amet\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data := LoadYAML(t, path)
	if data["dolor"] != "sit amet" {
		t.Errorf("LoadYAML()[dolor] = %q, want %q", data["dolor"], "sit amet")
	}
}
