package yamlfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"voice-fact-skill/internal/fact"
	"voice-fact-skill/internal/fact/repository/yamlfile"
)

func TestParse(t *testing.T) {
	t.Run("Valid document", func(t *testing.T) {
		tbl, err := yamlfile.Parse([]byte("facts:\n  Mentors: There are 50 mentors.\n  current students: 120 students.\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v, ok := tbl.Lookup("mentors"); !ok || v != "There are 50 mentors." {
			t.Errorf("unexpected lookup result %q (%v)", v, ok)
		}
		if len(tbl.Keys()) != 2 {
			t.Errorf("expected 2 keys, got %v", tbl.Keys())
		}
	})

	t.Run("Empty document", func(t *testing.T) {
		_, err := yamlfile.Parse([]byte("facts: {}\n"))
		if !errors.Is(err, fact.ErrEmptySource) {
			t.Errorf("expected ErrEmptySource, got %v", err)
		}
	})

	t.Run("Blank value", func(t *testing.T) {
		_, err := yamlfile.Parse([]byte("facts:\n  mentors: \"\"\n"))
		if !errors.Is(err, fact.ErrInvalidRow) {
			t.Errorf("expected ErrInvalidRow, got %v", err)
		}
	})

	t.Run("Keys colliding after cleaning", func(t *testing.T) {
		_, err := yamlfile.Parse([]byte("facts:\n  Mentors: There are 50 mentors.\n  mentors: Forty mentors.\n"))
		if !errors.Is(err, fact.ErrDuplicateKey) {
			t.Errorf("expected ErrDuplicateKey, got %v", err)
		}
	})

	t.Run("Key whitespace is trimmed", func(t *testing.T) {
		tbl, err := yamlfile.Parse([]byte("facts:\n  \" Robots \": One robot.\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := tbl.Lookup("robots"); !ok {
			t.Errorf("expected trimmed key robots, got %v", tbl.Keys())
		}
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		if _, err := yamlfile.Parse([]byte("facts: [unterminated")); err == nil {
			t.Errorf("expected parse error")
		}
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facts.yaml")
	if err := os.WriteFile(path, []byte("facts:\n  robots: One robot.\n"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	tbl, err := yamlfile.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := tbl.Lookup("robots"); !ok {
		t.Errorf("expected robots fact")
	}

	if _, err := yamlfile.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
