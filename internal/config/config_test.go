package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}

	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("default port: got %s", cfg.Port)
	}
	if len(cfg.CORSOrigins) == 0 {
		t.Error("expected default cors origin")
	}
}

func TestLoadCORSList(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ORIGIN", "https://serenity.example/, http://localhost:5173")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSOrigins)
	}
	if cfg.CORSOrigins[0] != "https://serenity.example" {
		t.Errorf("trailing slash not stripped: %s", cfg.CORSOrigins[0])
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	c, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back: %v", err)
	}
	if len(c.Counsellors) == 0 || len(c.Modes) == 0 || len(c.Concerns) == 0 {
		t.Error("defaults not applied")
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking.yaml")
	data := []byte("counsellors:\n  - Dr. A\nmodes:\n  - Video call\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c.Counsellors) != 1 || c.Counsellors[0] != "Dr. A" {
		t.Errorf("counsellors: %v", c.Counsellors)
	}
	// unlisted sections keep defaults
	if len(c.Concerns) == 0 {
		t.Error("expected default concerns")
	}
}

func TestLoadCatalogBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking.yaml")
	if err := os.WriteFile(path, []byte("counsellors: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("expected parse error")
	}
}
