package preferences

import (
	"os"
	"path/filepath"
	"testing"
)

func writePrefs(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "preferences.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writePrefs(t, t.TempDir(), "sketchbook.path=/home/alice/Arduino\nboard=uno\n")
	s := NewStore(path)

	if got := s.Get("sketchbook.path"); got != "/home/alice/Arduino" {
		t.Errorf("Get(sketchbook.path) = %q", got)
	}
	if got := s.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Error("Lookup(missing) should report absent")
	}
}

func TestLoadMissingFileYieldsEmptyMap(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "preferences.txt"))

	m := s.Load()
	if m == nil || len(m) != 0 {
		t.Errorf("Load() = %v, want empty map", m)
	}
	if got := s.Get("anything"); got != "" {
		t.Errorf("Get() on empty store = %q", got)
	}
}

func TestLoadIsCached(t *testing.T) {
	dir := t.TempDir()
	path := writePrefs(t, dir, "board=uno\n")
	s := NewStore(path)

	if got := s.Get("board"); got != "uno" {
		t.Fatalf("Get(board) = %q", got)
	}

	// A change on disk is not visible until an explicit Reload.
	writePrefs(t, dir, "board=mega\n")
	if got := s.Get("board"); got != "uno" {
		t.Errorf("Get(board) after disk change = %q, want cached uno", got)
	}

	s.Reload()
	if got := s.Get("board"); got != "mega" {
		t.Errorf("Get(board) after Reload = %q, want mega", got)
	}
}

func TestReloadReplacesWholesale(t *testing.T) {
	dir := t.TempDir()
	path := writePrefs(t, dir, "a=1\nb=2\n")
	s := NewStore(path)
	s.Load()

	writePrefs(t, dir, "c=3\n")
	m := s.Reload()

	if len(m) != 1 || m["c"] != "3" {
		t.Errorf("Reload() = %v, want only c=3", m)
	}
	if _, ok := s.Lookup("a"); ok {
		t.Error("stale key survived Reload")
	}
}

func TestMalformedCount(t *testing.T) {
	path := writePrefs(t, t.TempDir(), "good=1\nbad line\n")
	s := NewStore(path)

	if got := s.Malformed(); got != 1 {
		t.Errorf("Malformed() = %d, want 1", got)
	}
	if got := s.Get("good"); got != "1" {
		t.Errorf("Get(good) = %q", got)
	}
}
