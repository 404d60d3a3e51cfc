package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"go.uber.org/zap"

	"github.com/mmr-tortoise/sheen/internal/model"
)

// Loader resolves the active theme from the upstream tool's on-disk
// state. All directories are injected explicitly so the loader has no
// reliance on mutable process-wide environment state; callers build a
// Loader from flags, config, or test fixtures.
type Loader struct {
	// ConfigDir is the upstream config directory, typically
	// ~/.config/opencode. Holds both config files and the themes/
	// subdirectory of user-custom theme JSON.
	ConfigDir string

	// StateDir is the upstream state directory, typically
	// ~/.local/state. The KV store lives at <StateDir>/opencode/kv.json.
	StateDir string

	// ProjectDir is the working directory searched for project-local
	// config (opencode.jsonc, .opencode.json) and themes
	// (.opencode/themes/). Empty disables the project-local search.
	ProjectDir string

	// SharePaths are extra theme directories searched last, e.g.
	// /usr/local/share/opencode/themes.
	SharePaths []string

	// Log receives resolution diagnostics. Nil means no logging.
	Log *zap.Logger
}

// selection is the (name, mode) pair read from the KV store or config.
type selection struct {
	Name string
	Mode string
}

// Load resolves the active theme into Colors.
//
// Resolution order:
//  1. KV store <StateDir>/opencode/kv.json → "theme", "theme_mode"
//  2. Config files in ConfigDir (opencode.json, config.json,
//     config.jsonc) and ProjectDir (opencode.jsonc, .opencode.json),
//     first hit wins → "theme" key, mode defaults to dark
//  3. Neither found → the default ("opencode", dark) selection
//
// The selected theme JSON is then located (user themes dir,
// project-local themes dir, share paths) and parsed. On any failure
// Load logs a warning and returns Default() — resolution never fails
// the caller.
func (l *Loader) Load() Colors {
	colors, err := l.tryLoad()
	if err != nil {
		l.log().Warn("failed to load theme, using defaults", zap.Error(err))
		return Default()
	}
	return colors
}

// tryLoad is the fallible body of Load, split out so the error path
// is a single degrade point.
func (l *Loader) tryLoad() (Colors, error) {
	sel := l.readSelection()
	l.log().Debug("resolved active theme",
		zap.String("theme", sel.Name),
		zap.String("mode", sel.Mode))

	raw, err := l.loadThemeJSON(sel.Name)
	if err != nil {
		return Colors{}, err
	}
	return parseTheme(raw, sel.Mode)
}

// readSelection determines which theme is active, falling through the
// KV store, then config files, then the default.
func (l *Loader) readSelection() selection {
	if sel, ok := l.readKVSelection(); ok {
		return sel
	}
	if sel, ok := l.readConfigSelection(); ok {
		return sel
	}
	l.log().Debug("no upstream config found, using default theme")
	return selection{Name: "opencode", Mode: "dark"}
}

// readKVSelection reads the theme name and mode from the KV store.
// The store is a flat JSON object; the fields of interest are "theme"
// and "theme_mode". A store without a "theme" key does not count as
// a selection.
func (l *Loader) readKVSelection() (selection, bool) {
	kvPath := filepath.Join(l.StateDir, "opencode", "kv.json")

	content, err := os.ReadFile(kvPath)
	if err != nil {
		l.log().Debug("KV store not readable", zap.String("path", kvPath))
		return selection{}, false
	}

	var kv struct {
		Theme string `json:"theme"`
		Mode  string `json:"theme_mode"`
	}
	if err := json.Unmarshal(content, &kv); err != nil || kv.Theme == "" {
		return selection{}, false
	}

	if kv.Mode == "" {
		kv.Mode = "dark"
	}
	l.log().Debug("theme from KV store",
		zap.String("theme", kv.Theme),
		zap.String("mode", kv.Mode))
	return selection{Name: kv.Theme, Mode: kv.Mode}, true
}

// readConfigSelection scans the config file candidates for a "theme"
// key. Config files may be JSONC, so comments are stripped before
// parsing with encoding/json. Missing files are skipped silently;
// the first parseable candidate wins even if it lacks a theme key
// (the default name applies then).
func (l *Loader) readConfigSelection() (selection, bool) {
	candidates := []string{
		filepath.Join(l.ConfigDir, "opencode.json"),
		filepath.Join(l.ConfigDir, "config.json"),
		filepath.Join(l.ConfigDir, "config.jsonc"),
	}
	if l.ProjectDir != "" {
		candidates = append(candidates,
			filepath.Join(l.ProjectDir, "opencode.jsonc"),
			filepath.Join(l.ProjectDir, ".opencode.json"),
		)
	}

	for _, path := range candidates {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		l.log().Debug("reading upstream config", zap.String("path", path))

		var parsed map[string]any
		if err := json.Unmarshal(jsonc.ToJSON(content), &parsed); err != nil {
			l.log().Warn("unparseable upstream config, skipping",
				zap.String("path", path), zap.Error(err))
			continue
		}

		name := lookupThemeKey(parsed)
		if name == "" {
			name = "opencode"
		}
		return selection{Name: name, Mode: "dark"}, true
	}
	return selection{}, false
}

// lookupThemeKey extracts the theme name from a parsed config object.
// The key has moved around between upstream versions, so three
// locations are probed: top-level "theme", "sync.data.config.theme",
// and "config.theme".
func lookupThemeKey(parsed map[string]any) string {
	if s, ok := parsed["theme"].(string); ok {
		return s
	}
	for _, path := range [][]string{
		{"sync", "data", "config", "theme"},
		{"config", "theme"},
	} {
		node := any(parsed)
		for _, key := range path {
			m, ok := node.(map[string]any)
			if !ok {
				node = nil
				break
			}
			node = m[key]
		}
		if s, ok := node.(string); ok {
			return s
		}
	}
	return ""
}

// loadThemeJSON locates and parses the theme definition file by name.
// Search order: user themes dir, project-local themes dir, then the
// configured share paths.
func (l *Loader) loadThemeJSON(name string) (map[string]any, error) {
	fileName := name + ".json"

	searchPaths := []string{
		filepath.Join(l.ConfigDir, "themes", fileName),
	}
	if l.ProjectDir != "" {
		searchPaths = append(searchPaths,
			filepath.Join(l.ProjectDir, ".opencode", "themes", fileName))
	}
	for _, share := range l.SharePaths {
		searchPaths = append(searchPaths, filepath.Join(share, fileName))
	}

	for _, path := range searchPaths {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		l.log().Debug("loading theme JSON", zap.String("path", path))

		var parsed map[string]any
		if err := json.Unmarshal(jsonc.ToJSON(content), &parsed); err != nil {
			return nil, fmt.Errorf("parsing theme %s: %w", path, err)
		}
		return parsed, nil
	}

	return nil, fmt.Errorf("theme %q not found in any search path %v", name, searchPaths)
}

// parseTheme resolves a raw theme JSON object into Colors.
// The object must contain a "defs" map of named colors and a "theme"
// map of palette fields. Missing or unresolvable fields fall back to
// the corresponding default palette entry, so a partially broken theme
// still produces a usable palette.
func parseTheme(raw map[string]any, mode string) (Colors, error) {
	defs, ok := raw["defs"].(map[string]any)
	if !ok {
		return Colors{}, fmt.Errorf("theme JSON missing 'defs' section")
	}
	fields, ok := raw["theme"].(map[string]any)
	if !ok {
		return Colors{}, fmt.Errorf("theme JSON missing 'theme' section")
	}

	def := Default()
	resolve := func(key string, fallback model.RGB) model.RGB {
		value, ok := fields[key]
		if !ok {
			return fallback
		}
		hex, ok := resolveColor(value, defs, mode, 0)
		if !ok {
			return fallback
		}
		c, err := model.ParseHex(hex)
		if err != nil {
			return fallback
		}
		return c
	}

	return Colors{
		Primary:           resolve("primary", def.Primary),
		Secondary:         resolve("secondary", def.Secondary),
		Accent:            resolve("accent", def.Accent),
		Background:        resolve("background", def.Background),
		BackgroundPanel:   resolve("backgroundPanel", def.BackgroundPanel),
		BackgroundElement: resolve("backgroundElement", def.BackgroundElement),
		Text:              resolve("text", def.Text),
		TextMuted:         resolve("textMuted", def.TextMuted),
		Border:            resolve("border", def.Border),
		BorderActive:      resolve("borderActive", def.BorderActive),
		BorderSubtle:      resolve("borderSubtle", def.BorderSubtle),
		Error:             resolve("error", def.Error),
		Warning:           resolve("warning", def.Warning),
		Success:           resolve("success", def.Success),
		Info:              resolve("info", def.Info),
	}, nil
}

// maxRefDepth bounds reference chains through defs so a cyclic theme
// file cannot loop the resolver forever.
const maxRefDepth = 8

// resolveColor resolves one theme field value to a hex string.
// Values can be:
//   - "#hex" — direct color
//   - "refName" — a lookup into defs (which may itself be a reference)
//   - {"dark": v, "light": v} — pick by mode, then resolve the branch
func resolveColor(value any, defs map[string]any, mode string, depth int) (string, bool) {
	if depth > maxRefDepth {
		return "", false
	}

	switch v := value.(type) {
	case string:
		if len(v) > 0 && v[0] == '#' {
			return v, true
		}
		ref, ok := defs[v]
		if !ok {
			return "", false
		}
		return resolveColor(ref, defs, mode, depth+1)
	case map[string]any:
		branch, ok := v[mode]
		if !ok {
			// A mode-pair without the requested mode falls back to
			// dark, matching upstream behavior.
			branch, ok = v["dark"]
			if !ok {
				return "", false
			}
		}
		return resolveColor(branch, defs, mode, depth+1)
	default:
		return "", false
	}
}

// log returns the configured logger or a nop logger.
func (l *Loader) log() *zap.Logger {
	if l.Log == nil {
		return zap.NewNop()
	}
	return l.Log
}
