package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

var base = Settings{CellWidth: 16, CellHeight: 5, Items: 500}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
cell_width: "320"
cell_height: "240"
items: "1000"
debug: true
log_file: /tmp/gallery.log
`)
	got, err := Load(path, base)
	require.NoError(t, err)
	assert.Equal(t, Settings{
		CellWidth:  320,
		CellHeight: 240,
		Items:      1000,
		Debug:      true,
		LogFile:    "/tmp/gallery.log",
	}, got)
}

func TestLoad_CoercesInvalidValues(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
cell_width: "wide"
cell_height: "-12"
items: ""
`)
	got, err := Load(path, base)
	require.NoError(t, err)
	assert.Zero(t, got.CellWidth, "non-numeric must coerce to 0")
	assert.Zero(t, got.CellHeight, "negative must coerce to 0")
	assert.Zero(t, got.Items, "present-but-empty must coerce to 0")
}

func TestLoad_AbsentKeysKeepBase(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `items: "42"`)
	got, err := Load(path, base)
	require.NoError(t, err)
	assert.Equal(t, 16, got.CellWidth)
	assert.Equal(t, 5, got.CellHeight)
	assert.Equal(t, 42, got.Items)
	assert.False(t, got.Debug)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), base)
	assert.Error(t, err)
}

func TestCoerce(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"320":    320,
		" 42 ":   42,
		"0":      0,
		"":       0,
		"abc":    0,
		"-7":     0,
		"3.5":    0,
		"1e3":    0,
		"999999": 999999,
	}
	for in, want := range cases {
		assert.Equalf(t, want, Coerce(in), "Coerce(%q)", in)
	}
}
