package params

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultURL is the remote repository queried when no URL has been supplied
// or persisted.
const DefaultURL = "https://hub.zebr0.io"

// DefaultDir is the conventional location of the parameter cache for a
// system-wide installation.
const DefaultDir = "/etc/zebr0"

// ErrNotBootstrapped indicates the parameter cache is incomplete and no
// override was supplied for the missing value.
var ErrNotBootstrapped = errors.New("parameters not bootstrapped")

// File names of the three scalar records, one value each.
const (
	urlFile     = "url"
	projectFile = "project"
	stageFile   = "stage"
)

// Parameters holds the identity values used to address the remote
// repository.
type Parameters struct {
	// URL is the base URL of the remote key-value repository.
	URL string

	// Project scopes keys to a project, tried as "<project>/<key>".
	// May be empty, in which case the project tier is skipped.
	Project string

	// Stage scopes keys to a deployment stage, tried as "<stage>/<key>".
	// May be empty, in which case the stage tier is skipped.
	Stage string
}

// Load reads the persisted parameters from dir.
// It returns ErrNotBootstrapped (wrapped, naming the missing record) if any
// of the three files is absent.
func Load(dir string) (Parameters, error) {
	var p Parameters

	for _, record := range []struct {
		name string
		dst  *string
	}{
		{urlFile, &p.URL},
		{projectFile, &p.Project},
		{stageFile, &p.Stage},
	} {
		data, err := os.ReadFile(filepath.Join(dir, record.name))
		if os.IsNotExist(err) {
			return Parameters{}, fmt.Errorf("%w: missing %s (run setup first)", ErrNotBootstrapped, record.name)
		}
		if err != nil {
			return Parameters{}, fmt.Errorf("read %s: %w", record.name, err)
		}
		*record.dst = string(data)
	}

	return p, nil
}

// Bootstrap creates or refreshes the parameter cache in dir.
//
// For each field it uses the override if non-empty, else the previously
// persisted value, else the built-in default, then writes all three records
// back. Calling Bootstrap twice with no new overrides leaves the files
// byte-identical.
func Bootstrap(dir string, overrides Parameters) (Parameters, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Parameters{}, fmt.Errorf("create parameter directory: %w", err)
	}

	// Records are independent: a missing stage must not discard a persisted
	// url or project, so each one is read on its own rather than through
	// Load, which fails as a whole on any absence.
	p := Parameters{
		URL:     pick(overrides.URL, readRecord(dir, urlFile), DefaultURL),
		Project: pick(overrides.Project, readRecord(dir, projectFile), ""),
		Stage:   pick(overrides.Stage, readRecord(dir, stageFile), ""),
	}

	for _, record := range []struct {
		name  string
		value string
	}{
		{urlFile, p.URL},
		{projectFile, p.Project},
		{stageFile, p.Stage},
	} {
		if err := writeRecord(dir, record.name, record.value); err != nil {
			return Parameters{}, err
		}
	}

	return p, nil
}

// readRecord returns the persisted value of a single record, or the empty
// string when the record is absent.
func readRecord(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	return string(data)
}

// pick returns the first non-empty value, or the default.
func pick(override, previous, fallback string) string {
	if override != "" {
		return override
	}
	if previous != "" {
		return previous
	}
	return fallback
}

// writeRecord writes a single scalar record with a temp-file-then-rename
// dance, so a process killed mid-write cannot leave a half-written record.
func writeRecord(dir, name, value string) error {
	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}

	return nil
}
