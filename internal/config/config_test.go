package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WORKLOG_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.DBPath != ".worklog.db" {
		t.Errorf("db path = %q, want .worklog.db", cfg.DBPath)
	}
	if cfg.AttachmentsDir != "attachments" {
		t.Errorf("attachments dir = %q, want attachments", cfg.AttachmentsDir)
	}
	if !cfg.Debug {
		t.Error("debug should default to true outside prod")
	}
}

func TestLoadFileAndEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "worklog.yaml")
	yaml := "port: \"9090\"\ndb_path: /data/worklog.db\nattachments_dir: /data/attachments\n"
	if err := os.WriteFile(file, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("WORKLOG_CONFIG", file)
	t.Setenv("PORT", "7070")

	cfg := Load()

	// Env wins over file
	if cfg.Port != "7070" {
		t.Errorf("port = %q, want env override 7070", cfg.Port)
	}
	// File wins over default
	if cfg.DBPath != "/data/worklog.db" {
		t.Errorf("db path = %q, want file value", cfg.DBPath)
	}
	if cfg.AttachmentsDir != "/data/attachments" {
		t.Errorf("attachments dir = %q, want file value", cfg.AttachmentsDir)
	}
}

func TestLoadBrokenFileIsIgnored(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "worklog.yaml")
	if err := os.WriteFile(file, []byte("port: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("WORKLOG_CONFIG", file)

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want default after broken file", cfg.Port)
	}
}

func TestLoadProdDebugDefault(t *testing.T) {
	t.Setenv("WORKLOG_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("ENVIRONMENT", "prod")

	if cfg := Load(); cfg.Debug {
		t.Error("debug should default to false in prod")
	}
}
