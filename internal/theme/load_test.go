package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/sheen/internal/model"
)

// writeFile creates a file (and its parent directories) under dir.
func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// newLoader builds a Loader rooted entirely in temp directories so
// tests never touch the real home directory.
func newLoader(t *testing.T) (*Loader, string, string) {
	t.Helper()
	configDir := t.TempDir()
	stateDir := t.TempDir()
	return &Loader{ConfigDir: configDir, StateDir: stateDir}, configDir, stateDir
}

// minimalTheme is a well-formed theme definition exercising all three
// value shapes: direct hex, defs reference, and a dark/light pair.
const minimalTheme = `{
  "defs": {
    "orange": "#fab283",
    "night": "#101010",
    "paper": "#fafafa"
  },
  "theme": {
    "primary": "orange",
    "background": { "dark": "night", "light": "paper" },
    "text": "#e0e0e0"
  }
}`

func TestLoad_NoFilesAtAll_UsesDefaults(t *testing.T) {
	l, _, _ := newLoader(t)

	// No KV store, no config, no theme files anywhere: startup must
	// complete with defaults and no error surfaced.
	colors := l.Load()

	assert.Equal(t, Default(), colors)
}

func TestLoad_ThemeFromKVStore(t *testing.T) {
	l, configDir, stateDir := newLoader(t)

	writeFile(t, stateDir, "opencode/kv.json", `{"theme":"ember","theme_mode":"dark"}`)
	writeFile(t, configDir, "themes/ember.json", minimalTheme)

	colors := l.Load()

	assert.Equal(t, "#fab283", colors.Primary.Hex(), "defs reference should resolve")
	assert.Equal(t, "#101010", colors.Background.Hex(), "dark branch should be picked")
	assert.Equal(t, "#e0e0e0", colors.Text.Hex(), "direct hex should pass through")
	// Fields absent from the theme file keep their default values.
	assert.Equal(t, Default().Error, colors.Error)
}

func TestLoad_LightMode_PicksLightBranch(t *testing.T) {
	l, configDir, stateDir := newLoader(t)

	writeFile(t, stateDir, "opencode/kv.json", `{"theme":"ember","theme_mode":"light"}`)
	writeFile(t, configDir, "themes/ember.json", minimalTheme)

	colors := l.Load()

	assert.Equal(t, "#fafafa", colors.Background.Hex())
	assert.False(t, colors.IsDark())
}

func TestLoad_ThemeFromJSONCConfig(t *testing.T) {
	l, configDir, _ := newLoader(t)

	// No KV store: resolution falls through to the config candidates.
	// The config is JSONC — comments and a trailing comma must not
	// break parsing.
	writeFile(t, configDir, "config.jsonc", `{
  // active theme
  "theme": "ember",
}`)
	writeFile(t, configDir, "themes/ember.json", minimalTheme)

	colors := l.Load()

	assert.Equal(t, "#fab283", colors.Primary.Hex())
}

func TestLoad_NestedThemeKey(t *testing.T) {
	l, configDir, _ := newLoader(t)

	// Some upstream versions nest the theme selection; the loader
	// probes sync.data.config.theme as a fallback pointer.
	writeFile(t, configDir, "opencode.json",
		`{"sync":{"data":{"config":{"theme":"ember"}}}}`)
	writeFile(t, configDir, "themes/ember.json", minimalTheme)

	colors := l.Load()

	assert.Equal(t, "#fab283", colors.Primary.Hex())
}

func TestLoad_KVStoreWinsOverConfig(t *testing.T) {
	l, configDir, stateDir := newLoader(t)

	// Both sources present: the KV store is authoritative because the
	// upstream TUI writes theme switches there first.
	writeFile(t, stateDir, "opencode/kv.json", `{"theme":"ember"}`)
	writeFile(t, configDir, "config.json", `{"theme":"other"}`)
	writeFile(t, configDir, "themes/ember.json", minimalTheme)
	writeFile(t, configDir, "themes/other.json", `{
  "defs": {},
  "theme": { "primary": "#111111" }
}`)

	colors := l.Load()

	assert.Equal(t, "#fab283", colors.Primary.Hex())
}

func TestLoad_MissingThemeFile_DegradesToDefaults(t *testing.T) {
	l, _, stateDir := newLoader(t)

	// Selection resolves but the theme JSON does not exist anywhere.
	writeFile(t, stateDir, "opencode/kv.json", `{"theme":"ghost"}`)

	colors := l.Load()

	assert.Equal(t, Default(), colors)
}

func TestLoad_MalformedThemeJSON_DegradesToDefaults(t *testing.T) {
	l, configDir, stateDir := newLoader(t)

	writeFile(t, stateDir, "opencode/kv.json", `{"theme":"broken"}`)
	writeFile(t, configDir, "themes/broken.json", `{"defs": {`)

	colors := l.Load()

	assert.Equal(t, Default(), colors)
}

func TestLoad_ProjectLocalTheme(t *testing.T) {
	l, _, stateDir := newLoader(t)
	projectDir := t.TempDir()
	l.ProjectDir = projectDir

	writeFile(t, stateDir, "opencode/kv.json", `{"theme":"ember"}`)
	writeFile(t, projectDir, ".opencode/themes/ember.json", minimalTheme)

	colors := l.Load()

	assert.Equal(t, "#fab283", colors.Primary.Hex())
}

func TestLoad_SharePathFallback(t *testing.T) {
	l, _, stateDir := newLoader(t)
	shareDir := t.TempDir()
	l.SharePaths = []string{shareDir}

	writeFile(t, stateDir, "opencode/kv.json", `{"theme":"ember"}`)
	writeFile(t, shareDir, "ember.json", minimalTheme)

	colors := l.Load()

	assert.Equal(t, "#fab283", colors.Primary.Hex())
}

func TestResolveColor_CyclicReference_Bails(t *testing.T) {
	// Two defs referencing each other must not loop the resolver.
	defs := map[string]any{
		"a": "b",
		"b": "a",
	}

	_, ok := resolveColor("a", defs, "dark", 0)

	assert.False(t, ok)
}

func TestResolveColor_ModePairWithoutRequestedMode(t *testing.T) {
	// A {dark: …} pair queried in light mode falls back to dark.
	value := map[string]any{"dark": "#123456"}

	hex, ok := resolveColor(value, map[string]any{}, "light", 0)

	require.True(t, ok)
	assert.Equal(t, "#123456", hex)
}

func TestParseTheme_MissingSections(t *testing.T) {
	_, err := parseTheme(map[string]any{"theme": map[string]any{}}, "dark")
	assert.ErrorContains(t, err, "defs")

	_, err = parseTheme(map[string]any{"defs": map[string]any{}}, "dark")
	assert.ErrorContains(t, err, "theme")
}

func TestDefault_IsDarkPalette(t *testing.T) {
	def := Default()
	assert.True(t, def.IsDark())
	assert.Equal(t, model.RGB{R: 0x0a, G: 0x0a, B: 0x0a}, def.Background)
	assert.Equal(t, "#fab283", def.Primary.Hex())
}
