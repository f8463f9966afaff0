package theme

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/lucky/internal/store/jsonstore"
)

// countingCatalog wraps a catalog and counts Lookup calls.
type countingCatalog struct {
	Catalog
	lookups int
}

func (c *countingCatalog) Lookup(name Name) Palette {
	c.lookups++
	return c.Catalog.Lookup(name)
}

// memoryPrefs records saves without touching disk.
type memoryPrefs struct {
	name  Name
	saves []Name
}

func (p *memoryPrefs) Load() Name {
	if p.name == "" {
		return Default
	}
	return p.name
}

func (p *memoryPrefs) Save(name Name) {
	p.name = name
	p.saves = append(p.saves, name)
}

func hex(t *testing.T, s string) colorful.Color {
	t.Helper()
	c, err := colorful.Hex(s)
	require.NoError(t, err)
	return c
}

func newFileStore(t *testing.T) (*PreferenceStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme_preference.json")
	return NewPreferenceStore(jsonstore.Open(path), zerolog.Nop()), path
}

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()

	assert.Equal(t, []Name{Default, Dark, HighContrast}, c.Names())
	for _, n := range c.Names() {
		assert.True(t, c.Contains(n), n)
	}
	assert.False(t, c.Contains("Nonexistent"))
	assert.Equal(t, c.Lookup(Default), c.Lookup("Nonexistent"))

	hc := c.Lookup(HighContrast)
	assert.Equal(t, "#000000", hc.Background.Hex())
	assert.Equal(t, "#ffffff", hc.Primary.Hex())
	assert.Equal(t, "#ffff00", hc.Secondary.Hex())
	assert.Equal(t, "#ffffff", hc.Text.Hex())
}

func TestBuiltinNamesIsACopy(t *testing.T) {
	names := Builtin().Names()
	names[0] = "mutated"
	assert.Equal(t, Default, Builtin().Names()[0])
}

func TestSetThemeThenPaletteMatchesCatalog(t *testing.T) {
	for _, name := range Builtin().Names() {
		t.Run(string(name), func(t *testing.T) {
			m := NewManager(Builtin(), &memoryPrefs{})
			m.SetTheme(name)
			assert.Equal(t, Builtin().Lookup(name), m.Palette())
			assert.Equal(t, name, m.Current())
		})
	}
}

func TestUnknownThemeLeavesStateUnchanged(t *testing.T) {
	prefs := &memoryPrefs{}
	m := NewManager(Builtin(), prefs)
	m.SetTheme(Dark)
	before := m.Palette()
	cached := m.cached

	m.SetTheme("Nonexistent")

	assert.Equal(t, Dark, m.Current())
	assert.Same(t, cached, m.cached)
	assert.Equal(t, before, m.Palette())
	assert.Equal(t, []Name{Dark}, prefs.saves)
}

func TestPaletteIsMemoized(t *testing.T) {
	cat := &countingCatalog{Catalog: Builtin()}
	m := NewManager(cat, &memoryPrefs{})

	m.SetTheme(Dark)
	assert.Nil(t, m.cached)

	first := m.Palette()
	require.NotNil(t, m.cached)
	assert.Equal(t, Dark, m.cached.name)
	assert.Equal(t, Builtin().Lookup(Dark), m.cached.palette)

	second := m.Palette()
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cat.lookups)
}

func TestSetSameThemeStillClearsCache(t *testing.T) {
	cat := &countingCatalog{Catalog: Builtin()}
	prefs := &memoryPrefs{}
	m := NewManager(cat, prefs)

	m.Palette()
	m.SetTheme(Default)
	assert.Nil(t, m.cached)
	m.Palette()

	assert.Equal(t, 2, cat.lookups)
	assert.Equal(t, []Name{Default}, prefs.saves)
}

func TestManagerStartsFromStoredPreference(t *testing.T) {
	m := NewManager(Builtin(), &memoryPrefs{name: HighContrast})
	assert.Equal(t, HighContrast, m.Current())
	assert.Nil(t, m.cached)
}

func TestStoredUnknownNameFallsBackToDefaultPalette(t *testing.T) {
	m := NewManager(Builtin(), &memoryPrefs{name: "Solarized"})
	assert.Equal(t, Name("Solarized"), m.Current())
	assert.Equal(t, Builtin().Lookup(Default), m.Palette())
}

func TestPreferenceStoreFreshLoadsDefault(t *testing.T) {
	s, _ := newFileStore(t)
	assert.Equal(t, Default, s.Load())
}

func TestPreferenceStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme_preference.json")
	NewPreferenceStore(jsonstore.Open(path), zerolog.Nop()).Save(Dark)

	fresh := NewPreferenceStore(jsonstore.Open(path), zerolog.Nop())
	assert.Equal(t, Dark, fresh.Load())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":{"name":"Dark"}}`, string(b))
}

func TestPreferenceStoreCorruptFileLogsAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme_preference.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme": [`), 0o644))

	var buf bytes.Buffer
	s := NewPreferenceStore(jsonstore.Open(path), zerolog.New(&buf))

	assert.Equal(t, Default, s.Load())
	assert.Contains(t, buf.String(), "error reading theme preference")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestCorruptPreferenceIsOverwrittenOnSetTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme_preference.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme": [`), 0o644))

	m := NewManager(Builtin(), NewPreferenceStore(jsonstore.Open(path), zerolog.Nop()))
	assert.Equal(t, Default, m.Current())

	m.SetTheme(Dark)

	fresh := NewPreferenceStore(jsonstore.Open(path), zerolog.Nop())
	assert.Equal(t, Dark, fresh.Load())
}

func TestPreferenceStoreWrongShapeDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme_preference.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme": "Dark"}`), 0o644))

	var buf bytes.Buffer
	s := NewPreferenceStore(jsonstore.Open(path), zerolog.New(&buf))

	assert.Equal(t, Default, s.Load())
	assert.NotEmpty(t, buf.String())
}

func TestPreferenceStoreSaveFailureIsSwallowed(t *testing.T) {
	dir := t.TempDir()
	// a directory where the file should be makes the rename fail
	path := filepath.Join(dir, "theme_preference.json")
	require.NoError(t, os.MkdirAll(filepath.Join(path, "child"), 0o755))

	var buf bytes.Buffer
	prefs := NewPreferenceStore(jsonstore.Open(path), zerolog.New(&buf))
	m := NewManager(Builtin(), prefs)

	m.SetTheme(Dark)

	assert.Equal(t, Dark, m.Current())
	assert.Equal(t, Builtin().Lookup(Dark), m.Palette())
	assert.Contains(t, buf.String(), "error writing theme preference")
}

func TestManagerScenario(t *testing.T) {
	prefs, path := newFileStore(t)
	m := NewManager(Builtin(), prefs)
	assert.Equal(t, Default, m.Current())

	m.SetTheme(Dark)
	assert.Equal(t, Dark, NewPreferenceStore(jsonstore.Open(path), zerolog.Nop()).Load())

	want := Palette{
		Background: hex(t, "#2C3E50"),
		Primary:    hex(t, "#3498DB"),
		Secondary:  hex(t, "#E74C3C"),
		Text:       hex(t, "#ECF0F1"),
	}
	assert.Equal(t, want, m.Palette())

	m.SetTheme("Nonexistent")
	assert.Equal(t, Dark, m.Current())
	assert.Equal(t, want, m.Palette())
}
