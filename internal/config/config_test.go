package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `{"url": "https://example.com/job", "port": 9090, "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/job", cfg.URL)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"port": `)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_InputAndURLMutuallyExclusive(t *testing.T) {
	input := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(input, []byte("text"), 0o644))

	cfg := &Config{Input: input, URL: "https://example.com"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: 8080}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingInputFile(t *testing.T) {
	cfg := &Config{Input: filepath.Join(t.TempDir(), "absent.txt")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingProfileFile(t *testing.T) {
	cfg := &Config{Profile: filepath.Join(t.TempDir(), "absent.json")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Port: 9090}
	merged := cfg.MergeWithDefaults(Config{Port: 8080, Profile: "profiles/default.json", Verbose: true})

	assert.Equal(t, 9090, merged.Port, "explicit value wins")
	assert.Equal(t, "profiles/default.json", merged.Profile, "default fills the gap")
	assert.True(t, merged.Verbose)
}
