// Package config handles application configuration: defaults, YAML loading,
// and environment-variable overrides for the MCP core's ambient settings
// (server identity, transport limits, schema source, logging).
package config

// file: internal/config/config.go

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mcpcore/mcp/internal/mcperror"
	"gopkg.in/yaml.v3"
)

// Settings represents the application configuration, loaded from a YAML
// file and layered with environment-variable overrides.
type Settings struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Schema    SchemaConfig    `yaml:"schema"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig contains the implementation identity advertised during
// initialize and the address a demo transport binds to.
type ServerConfig struct {
	Name            string `yaml:"name"`
	Port            int    `yaml:"port"`
	ProtocolVersion string `yaml:"protocol_version"`
}

// TransportConfig contains transport-contract limits (§4.4).
type TransportConfig struct {
	MaxMessageSize int `yaml:"max_message_size"`
}

// SchemaConfig points the schema validator at its source. An empty
// SchemaOverrideURI means "use the embedded schema".
type SchemaConfig struct {
	SchemaOverrideURI string `yaml:"schema_override_uri"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// New returns a Settings populated with defaults, suitable as a base for
// LoadConfig's YAML unmarshal and as a fallback when no config file exists.
func New() *Settings {
	return &Settings{
		Server: ServerConfig{
			Name:            "mcpcore",
			Port:            8080,
			ProtocolVersion: "2025-06-18",
		},
		Transport: TransportConfig{
			MaxMessageSize: 4 * 1024 * 1024,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads a YAML file at path, layers default values beneath it,
// applies environment-variable overrides, and validates the result.
func LoadConfig(path string) (*Settings, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied configuration.
	if err != nil {
		return nil, mcperror.ErrorWithDetails(err, mcperror.CategoryConfig, mcperror.CodeInternalError,
			map[string]interface{}{"path": path})
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, mcperror.ErrorWithDetails(err, mcperror.CategoryConfig, mcperror.CodeInternalError,
			map[string]interface{}{"path": path, "reason": "malformed yaml"})
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks the fields LoadConfig cannot sensibly default.
func (s *Settings) validate() error {
	if s.Server.Name == "" {
		return mcperror.ErrorWithDetails(
			errors.Newf("server.name must not be empty"),
			mcperror.CategoryConfig, mcperror.CodeInvalidParams,
			map[string]interface{}{"field": "server.name"},
		)
	}
	if s.Server.Port <= 0 {
		return mcperror.ErrorWithDetails(
			errors.Newf("server.port must be positive, got %d", s.Server.Port),
			mcperror.CategoryConfig, mcperror.CodeInvalidParams,
			map[string]interface{}{"field": "server.port"},
		)
	}
	return nil
}

// applyEnvOverrides layers environment variables over whatever LoadConfig
// already parsed from YAML.
func applyEnvOverrides(cfg *Settings) {
	if v := os.Getenv("MCP_SERVER_NAME"); v != "" {
		cfg.Server.Name = v
	}
	if v := os.Getenv("MCP_SERVER_PORT"); v != "" {
		if port, err := parseInt(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("MCP_SCHEMA_OVERRIDE_URI"); v != "" {
		cfg.Schema.SchemaOverrideURI = v
	}
	if v := os.Getenv("MCP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// expandPath expands a leading ~ into the user's home directory.
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// parseInt wraps strconv.Atoi so config parsing has one call site to adjust
// if the accepted integer grammar ever needs to change.
func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}
