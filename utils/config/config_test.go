package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"test","value":123}`), 0o644))

	var config TestConfig
	require.NoError(t, Load(path, &config))
	assert.Equal(t, TestConfig{Name: "test", Value: 123}, config)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: test\nvalue: 7\n"), 0o644))

	var config TestConfig
	require.NoError(t, Load(path, &config))
	assert.Equal(t, TestConfig{Name: "test", Value: 7}, config)
}

func TestSaveAndLoad(t *testing.T) {
	for _, ext := range []string{".json", ".yml"} {
		path := filepath.Join(t.TempDir(), "config"+ext)
		expected := TestConfig{Name: "kernel", Value: 8001}
		require.NoError(t, Save(path, expected), ext)

		var config TestConfig
		require.NoError(t, Load(path, &config), ext)
		assert.Equal(t, expected, config, ext)
	}
}

func TestLoad_ThrowError(t *testing.T) {
	err := Load("nonexistent.json", &TestConfig{})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":`), 0o644))
	assert.Error(t, Load(path, &TestConfig{}))
}
