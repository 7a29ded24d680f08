package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	p := filepath.Join(t.TempDir(), "geopoint.yaml")
	body := "precision: 2\nviewer:\n  zoom_step: 1.5\n"
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, 1.5, cfg.Viewer.ZoomStep)
	// untouched fields keep defaults
	assert.Equal(t, "#7C3AED", cfg.Viewer.AccentColor)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(":\n  - ["), 0o644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "failed to parse config")

	neg := filepath.Join(dir, "neg.yaml")
	require.NoError(t, os.WriteFile(neg, []byte("precision: -1\n"), 0o644))
	_, err = Load(neg)
	assert.ErrorContains(t, err, "precision out of range")

	zoom := filepath.Join(dir, "zoom.yaml")
	require.NoError(t, os.WriteFile(zoom, []byte("viewer:\n  zoom_step: 0.5\n"), 0o644))
	_, err = Load(zoom)
	assert.ErrorContains(t, err, "zoom_step")
}
