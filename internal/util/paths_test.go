package util

import (
	"path/filepath"
	"testing"
)

func TestDataDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	got := DataDir("countdown")
	want := filepath.Join("/tmp/xdg-data", "countdown")
	if got != want {
		t.Fatalf("DataDir = %q, want %q", got, want)
	}
}

func TestDataDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/tmp/home")
	got := DataDir("countdown")
	want := filepath.Join("/tmp/home", ".local", "share", "countdown")
	if got != want {
		t.Fatalf("DataDir = %q, want %q", got, want)
	}
}
