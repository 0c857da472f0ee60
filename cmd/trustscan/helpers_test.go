package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfile_EmptyPathUsesDefault(t *testing.T) {
	p, err := loadProfile("")
	require.NoError(t, err)

	assert.Equal(t, "default", p.Name)
}

func TestLoadProfile_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strict.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "strict", "decision_margin": 8}`), 0o644))

	p, err := loadProfile(path)
	require.NoError(t, err)

	assert.Equal(t, "strict", p.Name)
	assert.Equal(t, 8, p.DecisionMargin)
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := loadProfile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
