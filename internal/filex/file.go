// Package filex reads and writes list-shaped JSON documents.
//
// A document is a single JSON array of objects. Reads are lenient: a missing
// file, invalid JSON, or a non-array top level all yield an empty list, and
// array entries that are not objects (or do not decode into the target type)
// are dropped. Writes replace the whole file atomically.
package filex

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moby/sys/atomicwriter"
)

// DocumentPerm is the file mode used for saved documents.
const DocumentPerm os.FileMode = 0o600

// Report describes what a lenient read had to discard.
type Report struct {
	// Corrupt is set when the document was not a JSON array.
	Corrupt bool
	// Skipped counts array entries that could not be used.
	Skipped int
}

// ReadList loads every usable entry of the JSON array stored at path.
// Only failures to read an existing file are returned as errors.
func ReadList[T any](path string) ([]T, Report, error) {
	var rep Report

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, rep, nil
		}
		return nil, rep, fmt.Errorf("read %s: %w", path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, rep, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		rep.Corrupt = true
		return []T{}, rep, nil
	}

	items := make([]T, 0, len(raw))
	for _, entry := range raw {
		if !isObject(entry) {
			rep.Skipped++
			continue
		}
		var v T
		if err := json.Unmarshal(entry, &v); err != nil {
			rep.Skipped++
			continue
		}
		items = append(items, v)
	}
	return items, rep, nil
}

// WriteList replaces the document at path with items, indented by two spaces.
// The parent directory is created if needed.
func WriteList[T any](path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if _, err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := atomicwriter.WriteFile(path, b, DocumentPerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// EnsureDir creates dir (and parents) if missing and returns its absolute path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}
	return abs, nil
}

func isObject(b json.RawMessage) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '{'
}
