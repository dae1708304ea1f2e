package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if got.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", got.Theme, defaultTheme)
	}
}

func TestLoad_ReadsTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`theme = "Slate"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got := Load(path)
	if got.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", got.Theme)
	}
}

func TestLoad_InvalidTOMLDegradesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`theme = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got := Load(path)
	if got.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want default on parse failure", got.Theme)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")
	if err := Save(path, Prefs{Theme: "Slate"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got := Load(path)
	if got.Theme != "Slate" {
		t.Fatalf("Theme = %q after round trip, want Slate", got.Theme)
	}
}
