// internal/config/config_test.go

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()

	validConfigPath := filepath.Join(tempDir, "config.yaml")
	validConfig := `
server:
  name: "Test Server"
  port: 8080
  protocol_version: "2025-06-18"

transport:
  max_message_size: 1048576

schema:
  schema_override_uri: ""

logging:
  level: "info"
  format: "text"
  file: ""
`
	if err := os.WriteFile(validConfigPath, []byte(validConfig), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Run("ValidConfig", func(t *testing.T) {
		cfg, err := LoadConfig(validConfigPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Server.Name != "Test Server" {
			t.Errorf("Server.Name = %v, want %v", cfg.Server.Name, "Test Server")
		}
		if cfg.Server.Port != 8080 {
			t.Errorf("Server.Port = %v, want %v", cfg.Server.Port, 8080)
		}
		if cfg.Transport.MaxMessageSize != 1048576 {
			t.Errorf("Transport.MaxMessageSize = %v, want %v", cfg.Transport.MaxMessageSize, 1048576)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("Logging.Level = %v, want %v", cfg.Logging.Level, "info")
		}
	})

	invalidConfigPath := filepath.Join(tempDir, "invalid.yaml")
	invalidConfig := `
server:
  name: ""
  port: 8080
`
	if err := os.WriteFile(invalidConfigPath, []byte(invalidConfig), 0o644); err != nil {
		t.Fatalf("Failed to write invalid config: %v", err)
	}

	t.Run("InvalidConfig", func(t *testing.T) {
		_, err := LoadConfig(invalidConfigPath)
		if err == nil {
			t.Error("LoadConfig() with empty server.name should return error")
		}
	})

	invalidPortPath := filepath.Join(tempDir, "invalid_port.yaml")
	invalidPortConfig := `
server:
  name: "Test Server"
  port: -1
`
	if err := os.WriteFile(invalidPortPath, []byte(invalidPortConfig), 0o644); err != nil {
		t.Fatalf("Failed to write invalid port config: %v", err)
	}

	t.Run("InvalidPort", func(t *testing.T) {
		_, err := LoadConfig(invalidPortPath)
		if err == nil {
			t.Error("LoadConfig() with invalid port should return error")
		}
	})

	t.Run("NonexistentFile", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(tempDir, "nonexistent.yaml"))
		if err == nil {
			t.Error("LoadConfig() with nonexistent file should return error")
		}
	})

	t.Run("EnvVarOverrides", func(t *testing.T) {
		os.Setenv("MCP_SERVER_NAME", "env-server")
		os.Setenv("MCP_SERVER_PORT", "9090")
		os.Setenv("MCP_LOG_LEVEL", "debug")
		defer func() {
			os.Unsetenv("MCP_SERVER_NAME")
			os.Unsetenv("MCP_SERVER_PORT")
			os.Unsetenv("MCP_LOG_LEVEL")
		}()

		cfg, err := LoadConfig(validConfigPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Server.Name != "env-server" {
			t.Errorf("Server.Name should be overridden, got %v, want %v", cfg.Server.Name, "env-server")
		}
		if cfg.Server.Port != 9090 {
			t.Errorf("Server.Port should be overridden, got %v, want %v", cfg.Server.Port, 9090)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("Logging.Level should be overridden, got %v, want %v", cfg.Logging.Level, "debug")
		}
	})

	defaultConfigPath := filepath.Join(tempDir, "default.yaml")
	defaultConfig := `
server:
  name: "Test Server"
`
	if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0o644); err != nil {
		t.Fatalf("Failed to write default config: %v", err)
	}

	t.Run("DefaultValues", func(t *testing.T) {
		cfg, err := LoadConfig(defaultConfigPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Server.Port != 8080 {
			t.Errorf("Default Server.Port = %v, want %v", cfg.Server.Port, 8080)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("Default Logging.Level = %v, want %v", cfg.Logging.Level, "info")
		}
		if cfg.Logging.Format != "text" {
			t.Errorf("Default Logging.Format = %v, want %v", cfg.Logging.Format, "text")
		}
		if cfg.Transport.MaxMessageSize != 4*1024*1024 {
			t.Errorf("Default Transport.MaxMessageSize = %v, want %v", cfg.Transport.MaxMessageSize, 4*1024*1024)
		}
	})
}

func TestExpandPath(t *testing.T) {
	homePath := expandPath("~/test/path")
	homeDir, _ := os.UserHomeDir()
	expectedPath := filepath.Join(homeDir, "test/path")
	if homePath != expectedPath {
		t.Errorf("expandPath('~/test/path') = %v, want %v", homePath, expectedPath)
	}

	normalPath := "/tmp/test/path"
	expandedPath := expandPath(normalPath)
	if expandedPath != normalPath {
		t.Errorf("expandPath('%s') = %v, want %v", normalPath, expandedPath, normalPath)
	}
}

func TestParseInt(t *testing.T) {
	testCases := []struct {
		input     string
		expected  int
		expectErr bool
	}{
		{"123", 123, false},
		{"0", 0, false},
		{"-123", -123, false},
		{"123abc", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tc := range testCases {
		result, err := parseInt(tc.input)
		if (err != nil) != tc.expectErr {
			t.Errorf("parseInt(%q) error = %v, want error = %v", tc.input, err != nil, tc.expectErr)
		}
		if !tc.expectErr && result != tc.expected {
			t.Errorf("parseInt(%q) = %v, want %v", tc.input, result, tc.expected)
		}
	}
}
