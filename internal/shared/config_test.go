package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.API.BaseURL != "http://127.0.0.1:8101" {
			t.Errorf("expected API base URL http://127.0.0.1:8101, got %s", config.API.BaseURL)
		}

		if config.API.TimeoutSeconds != 30 {
			t.Errorf("expected API timeout 30, got %d", config.API.TimeoutSeconds)
		}

		if config.Database.Path != "./byetz.db" {
			t.Errorf("expected database path ./byetz.db, got %s", config.Database.Path)
		}

		if config.Logging.Level != "info" {
			t.Errorf("expected logging level info, got %s", config.Logging.Level)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[api]
base_url = "http://byetz.local:9000"
timeout_seconds = 10

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[logging]
level = "debug"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.API.BaseURL != "http://byetz.local:9000" {
			t.Errorf("expected API base URL http://byetz.local:9000, got %s", config.API.BaseURL)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Database.MaxOpenConns != 20 {
			t.Errorf("expected max open conns 20, got %d", config.Database.MaxOpenConns)
		}
	})

	t.Run("LoadConfig with missing file", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
