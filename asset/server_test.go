package asset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTextCaches(t *testing.T) {
	s := NewServer()
	path := filepath.Join(t.TempDir(), "hello.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	content, err := s.LoadText(path)
	if err != nil {
		t.Fatalf("LoadText failed: %v", err)
	}
	if content != "hello" {
		t.Errorf("content = %q, want hello", content)
	}

	// Mutating the file must not affect the cached value
	if err := os.WriteFile(path, []byte("changed"), 0o644); err != nil {
		t.Fatal(err)
	}
	content, err = s.LoadText(path)
	if err != nil {
		t.Fatalf("cached LoadText failed: %v", err)
	}
	if content != "hello" {
		t.Errorf("cached content = %q, want hello", content)
	}
	if s.CachedCount() != 1 {
		t.Errorf("cached count = %d, want 1", s.CachedCount())
	}
}

func TestLoadTextMissingFile(t *testing.T) {
	s := NewServer()
	if _, err := s.LoadText(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
	if s.CachedCount() != 0 {
		t.Error("failed load was cached")
	}
}

func TestLoadSoundRejectsGarbage(t *testing.T) {
	s := NewServer()
	path := filepath.Join(t.TempDir(), "noise.wav")
	if err := os.WriteFile(path, []byte("not a wav file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadSound(path); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported for garbage wav, got %v", err)
	}
}
