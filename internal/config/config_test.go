package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("empty uses defaults", func(t *testing.T) {
		cfg, err := Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("override", func(t *testing.T) {
		cfg, err := Parse([]byte("log_level: debug\noutput: out.bmp\ndump_head: 3\nfull_rescan: true\n"))
		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "debug", Output: "out.bmp", DumpHead: 3, FullRescan: true}, cfg)
	})

	t.Run("partial keeps defaults", func(t *testing.T) {
		cfg, err := Parse([]byte("dump_head: 0\n"))
		require.NoError(t, err)
		assert.Equal(t, "stego_image.png", cfg.Output)
		assert.Equal(t, 0, cfg.DumpHead)
	})

	test := []struct {
		name string
		yaml string
	}{
		{"unknown key", "colour: red\n"},
		{"bad level", "log_level: loud\n"},
		{"negative head", "dump_head: -1\n"},
		{"lossy output", "output: out.jpg\n"},
		{"unknown output", "output: out.xyz\n"},
		{"not yaml", "log_level: [\n"},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("output: hidden.tiff\n"), 0o600))

	cfg, got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, "hidden.tiff", cfg.Output)

	_, _, err = Load(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}

func TestLoadProjectFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)

	cfg, path, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(".lsbsteg.yml", []byte("log_level: warn\n"), 0o600))
	cfg, path, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, ".lsbsteg.yml", path)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
