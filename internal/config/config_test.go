package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaultFromEmbedded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scriptcut.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config file not materialised: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:5000" {
		t.Fatalf("unexpected default base_url %q", cfg.API.BaseURL)
	}
	if cfg.API.MaxUploadMB != 500 {
		t.Fatalf("unexpected default max_upload_mb %d", cfg.API.MaxUploadMB)
	}
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scriptcut.yaml")
	partial := "output_dir: exports\nconfig_version: 1\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != "exports" {
		t.Fatalf("explicit field lost: %q", cfg.OutputDir)
	}
	// champ absent -> valeur par défaut conservée
	if len(cfg.API.VideoTypes) == 0 {
		t.Fatal("missing api section must keep defaults")
	}
}

func TestNormalizeTrimsBaseURLAndFormats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scriptcut.yaml")
	raw := "config_version: 1\napi:\n  base_url: \"http://backend:5000/\"\nexport_formats: [\"SRT\", \"srt\", \"json\"]\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.API.BaseURL != "http://backend:5000" {
		t.Fatalf("trailing slash not trimmed: %q", cfg.API.BaseURL)
	}
	if len(cfg.ExportFormats) != 2 {
		t.Fatalf("formats must be lowercased and deduplicated: %v", cfg.ExportFormats)
	}
}

func TestValidateRejectsUnknownFormat(t *testing.T) {
	cfg := defaultConfig()
	cfg.ExportFormats = []string{"docx"}
	if _, err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown export format")
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := defaultConfig()
	if _, err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestMigrationBumpsVersionAndBacksUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scriptcut.yaml")
	old := "output_dir: \".\"\nconfig_version: 0\n"
	if err := os.WriteFile(path, []byte(old), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ConfigVersion != CurrentConfigVersion {
		t.Fatalf("version not bumped: %d", cfg.ConfigVersion)
	}

	// une sauvegarde .bak.* doit exister à côté du fichier migré
	matches, err := filepath.Glob(path + ".bak.*")
	if err != nil || len(matches) == 0 {
		t.Fatalf("expected a backup file, got %v (%v)", matches, err)
	}
}
