package zebr0_test

import (
	"context"
	"errors"
	"testing"

	"github.com/zebr0/zebr0-go"
	"github.com/zebr0/zebr0-go/testutil"
)

func TestParseFilter(t *testing.T) {
	for _, name := range []string{"none", "strip", "render", "json", "sh", "hash", "lookup"} {
		if _, err := zebr0.ParseFilter(name); err != nil {
			t.Errorf("ParseFilter(%q) error = %v", name, err)
		}
	}

	_, err := zebr0.ParseFilter("base64")
	if !errors.Is(err, zebr0.ErrUnknownFilter) {
		t.Errorf("ParseFilter(\"base64\") error = %v, want ErrUnknownFilter", err)
	}
}

func TestApply_PureFilters(t *testing.T) {
	server := testutil.NewServer(nil)
	defer server.Close()
	client := newClient(server, "", "")

	tests := []struct {
		name   string
		filter zebr0.Filter
		in     string
		want   string
	}{
		{"none preserves value", zebr0.FilterNone, "  value\n", "  value\n"},
		{"empty filter is none", zebr0.Filter(""), "value\n", "value\n"},
		{"strip", zebr0.FilterStrip, "  value\n", "value"},
		{"hash is stable sha256 hex", zebr0.FilterHash, "hello", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
		{"sh quotes embedded single quote", zebr0.FilterSh, "it's", `'it'"'"'s'`},
		{"sh leaves safe strings bare", zebr0.FilterSh, "value", "value"},
		{"json compacts objects", zebr0.FilterJSON, "{\"a\": 1}\n", `{"a":1}`},
		{"json accepts scalars", zebr0.FilterJSON, `"text"`, `"text"`},
		{"json accepts arrays", zebr0.FilterJSON, "[1, 2]", "[1,2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.Apply(context.Background(), tt.filter, tt.in)
			if err != nil {
				t.Fatalf("Apply(%s) error = %v", tt.filter, err)
			}
			if got != tt.want {
				t.Errorf("Apply(%s, %q) = %q, want %q", tt.filter, tt.in, got, tt.want)
			}
		})
	}
}

func TestApply_InvalidJSON(t *testing.T) {
	server := testutil.NewServer(nil)
	defer server.Close()

	_, err := newClient(server, "", "").Apply(context.Background(), zebr0.FilterJSON, "{not json")
	if !errors.Is(err, zebr0.ErrInvalidJSON) {
		t.Errorf("Apply(json) error = %v, want ErrInvalidJSON", err)
	}
}

func TestApply_UnknownFilter(t *testing.T) {
	server := testutil.NewServer(nil)
	defer server.Close()

	_, err := newClient(server, "", "").Apply(context.Background(), zebr0.Filter("rot13"), "value")
	if !errors.Is(err, zebr0.ErrUnknownFilter) {
		t.Errorf("Apply(rot13) error = %v, want ErrUnknownFilter", err)
	}
}

func TestApply_Lookup(t *testing.T) {
	server := testutil.NewServer(map[string]string{
		"pointer": "default\n",
		"default": "the real value",
	})
	defer server.Close()
	client := newClient(server, "", "")

	// The stored value of "pointer" names another key, "default"; lookup
	// follows the indirection.
	value, err := client.Resolve(context.Background(), "pointer")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	got, err := client.Apply(context.Background(), zebr0.FilterLookup, value)
	if err != nil {
		t.Fatalf("Apply(lookup) error = %v", err)
	}
	if got != "the real value" {
		t.Errorf("Apply(lookup) = %q, want %q", got, "the real value")
	}
}

func TestApply_LookupMissingTarget(t *testing.T) {
	server := testutil.NewServer(nil)
	defer server.Close()

	_, err := newClient(server, "", "").Apply(context.Background(), zebr0.FilterLookup, "missing-key")
	if !zebr0.IsKeyNotFound(err) {
		t.Errorf("Apply(lookup) error = %v, want *KeyNotFoundError", err)
	}
}

func TestApply_Render(t *testing.T) {
	server := testutil.NewServer(map[string]string{
		"greeting": "hello {name}",
		"name":     "world",
	})
	defer server.Close()
	client := newClient(server, "", "")

	got, err := client.Apply(context.Background(), zebr0.FilterRender, "{greeting}!")
	if err != nil {
		t.Fatalf("Apply(render) error = %v", err)
	}
	if got != "hello world!" {
		t.Errorf("Apply(render) = %q, want %q", got, "hello world!")
	}
}
