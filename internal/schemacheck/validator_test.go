// File: internal/schemacheck/validator_test.go.
package schemacheck

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/mcpcore/mcp/internal/config"
	"github.com/mcpcore/mcp/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary schema file for testing.
func createTempSchemaFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test_schema.json")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err, "Failed to create temporary schema file.")
	return path
}

// Minimal valid JSON Schema for override-source tests.
const minValidSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "TestSchema",
  "type": "object",
  "properties": {
    "jsonrpc": { "const": "2.0" },
    "method": { "type": "string" },
    "id": { "type": ["string", "integer", "null"] }
  },
  "required": ["jsonrpc", "method"]
}`

// Minimal invalid JSON Schema (syntax error).
const invalidSchemaSyntax = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "InvalidSchema",
  "type": "object",
  "properties": {
    "jsonrpc": { "const": "2.0" },
` // Missing closing brace.

// Valid JSON message conforming to minValidSchema.
const validMessage = `{"jsonrpc": "2.0", "method": "ping", "id": 1}`

// Invalid JSON message (missing required 'method').
const invalidMessageMissingMethod = `{"jsonrpc": "2.0", "id": 1}`

// Invalid JSON message (wrong type for 'method').
const invalidMessageWrongType = `{"jsonrpc": "2.0", "method": 123, "id": 1}`

// Invalid JSON syntax message.
const invalidJSONSyntaxMessage = `{"jsonrpc": "2.0", "method": "ping"` // Missing closing brace.

func fileOverrideConfig(path string) config.SchemaConfig {
	return config.SchemaConfig{SchemaOverrideURI: "file://" + path}
}

// Test NewValidator creation.
func TestNewValidator(t *testing.T) {
	logger := logging.GetNoopLogger()
	validator := NewValidator(config.SchemaConfig{}, logger)
	assert.NotNil(t, validator, "Validator should not be nil.")
	assert.NotNil(t, validator.compiler, "Compiler should not be nil.")
	assert.NotNil(t, validator.schemas, "Schemas map should not be nil.")
	assert.NotNil(t, validator.httpClient, "HTTP client should not be nil.")
	assert.False(t, validator.IsInitialized(), "Validator should not be initialized before Initialize().")
}

// Test Validator Initialization Success (embedded schema, no override).
func TestValidator_Initialize_Success_Embedded(t *testing.T) {
	logger := logging.GetNoopLogger()
	validator := NewValidator(config.SchemaConfig{}, logger)
	ctx := context.Background()

	err := validator.Initialize(ctx)
	require.NoError(t, err, "Initialize should succeed with the embedded schema.")
	assert.True(t, validator.IsInitialized(), "Validator should be marked as initialized.")
	assert.NotZero(t, validator.GetLoadDuration(), "Load duration should be recorded.")
	assert.NotZero(t, validator.GetCompileDuration(), "Compile duration should be recorded.")
	assert.True(t, validator.HasSchema("base"), "Base schema should be compiled and stored.")
	assert.True(t, validator.HasSchema("Tool"), "Tool definition should be compiled and stored.")
}

// Test Validator Initialization Success (file override).
func TestValidator_Initialize_Success_FileOverride(t *testing.T) {
	logger := logging.GetNoopLogger()
	schemaPath := createTempSchemaFile(t, minValidSchema)
	validator := NewValidator(fileOverrideConfig(schemaPath), logger)
	ctx := context.Background()

	err := validator.Initialize(ctx)
	require.NoError(t, err, "Initialize should succeed with a valid schema override file.")
	assert.True(t, validator.IsInitialized(), "Validator should be marked as initialized.")
}

// Test Validator Initialization Failure (invalid JSON in override file).
func TestValidator_Initialize_Failure_InvalidFileContent(t *testing.T) {
	logger := logging.GetNoopLogger()
	schemaPath := createTempSchemaFile(t, invalidSchemaSyntax)
	validator := NewValidator(fileOverrideConfig(schemaPath), logger)
	ctx := context.Background()

	err := validator.Initialize(ctx)
	require.Error(t, err, "Initialize should fail with invalid schema file content.")
	assert.False(t, validator.IsInitialized(), "Validator should not be marked as initialized on failure.")
}

// Test Validator Initialization Falls Back to Embedded (override file not found).
func TestValidator_Initialize_FallsBackToEmbedded_FileNotFound(t *testing.T) {
	logger := logging.GetNoopLogger()
	validator := NewValidator(fileOverrideConfig("/non/existent/path/schema.json"), logger)
	ctx := context.Background()

	err := validator.Initialize(ctx)
	require.NoError(t, err, "Initialize should fall back to the embedded schema when the override is missing.")
	assert.True(t, validator.IsInitialized(), "Validator should be marked as initialized via fallback.")
}

// Test Validator Validate Success against the embedded schema.
func TestValidator_Validate_Success(t *testing.T) {
	logger := logging.GetNoopLogger()
	validator := NewValidator(config.SchemaConfig{}, logger)
	ctx := context.Background()
	err := validator.Initialize(ctx)
	require.NoError(t, err, "Initialization failed.")

	err = validator.Validate(ctx, "base", []byte(validMessage))
	assert.NoError(t, err, "Validation should succeed for a valid message.")
}

// Test Validator Validate Failure (Invalid Message - Missing Required).
func TestValidator_Validate_Failure_InvalidMessage_Missing(t *testing.T) {
	logger := logging.GetNoopLogger()
	schemaPath := createTempSchemaFile(t, minValidSchema)
	validator := NewValidator(fileOverrideConfig(schemaPath), logger)
	ctx := context.Background()
	err := validator.Initialize(ctx)
	require.NoError(t, err, "Initialization failed.")

	err = validator.Validate(ctx, "base", []byte(invalidMessageMissingMethod))
	require.Error(t, err, "Validation should fail for invalid message (missing required).")

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr), "Error should be a ValidationError.")
	assert.Equal(t, ErrValidationFailed, validationErr.Code, "Error code should be ErrValidationFailed.")
}

// Test Validator Validate Failure (Invalid Message - Wrong Type).
func TestValidator_Validate_Failure_InvalidMessage_Type(t *testing.T) {
	logger := logging.GetNoopLogger()
	schemaPath := createTempSchemaFile(t, minValidSchema)
	validator := NewValidator(fileOverrideConfig(schemaPath), logger)
	ctx := context.Background()
	err := validator.Initialize(ctx)
	require.NoError(t, err, "Initialization failed.")

	err = validator.Validate(ctx, "base", []byte(invalidMessageWrongType))
	require.Error(t, err, "Validation should fail for invalid message (wrong type).")

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr), "Error should be a ValidationError.")
	assert.Equal(t, ErrValidationFailed, validationErr.Code, "Error code should be ErrValidationFailed.")
}

// Test Validator Validate Failure (Invalid JSON Syntax).
func TestValidator_Validate_Failure_InvalidJSON(t *testing.T) {
	logger := logging.GetNoopLogger()
	validator := NewValidator(config.SchemaConfig{}, logger)
	ctx := context.Background()
	err := validator.Initialize(ctx)
	require.NoError(t, err, "Initialization failed.")

	err = validator.Validate(ctx, "base", []byte(invalidJSONSyntaxMessage))
	require.Error(t, err, "Validation should fail for invalid JSON syntax.")

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr), "Error should be a ValidationError.")
	assert.Equal(t, ErrInvalidJSONFormat, validationErr.Code, "Error code should be ErrInvalidJSONFormat.")
}

// Test Validator Validate Before Initialization.
func TestValidator_Validate_NotInitialized(t *testing.T) {
	logger := logging.GetNoopLogger()
	validator := NewValidator(config.SchemaConfig{}, logger) // Not initialized.
	ctx := context.Background()

	err := validator.Validate(ctx, "base", []byte(validMessage))
	require.Error(t, err, "Validation should fail if validator is not initialized.")

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr), "Error should be a ValidationError.")
	assert.Equal(t, ErrSchemaNotFound, validationErr.Code, "Error code should indicate schema not found/uninitialized.")
}

// Test Shutdown method.
func TestValidator_Shutdown(t *testing.T) {
	logger := logging.GetNoopLogger()
	validator := NewValidator(config.SchemaConfig{}, logger)
	ctx := context.Background()
	err := validator.Initialize(ctx)
	require.NoError(t, err, "Initialization failed.")
	assert.True(t, validator.IsInitialized(), "Should be initialized.")

	err = validator.Shutdown()
	assert.NoError(t, err, "Shutdown should not return an error.")
	assert.False(t, validator.IsInitialized(), "Validator should be marked as not initialized after shutdown.")

	// Calling Shutdown again should be safe and do nothing.
	err = validator.Shutdown()
	assert.NoError(t, err, "Calling Shutdown again should not return an error.")
}
