package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mmr-tortoise/sheen/internal/script"
	"github.com/mmr-tortoise/sheen/internal/theme"
)

// Writer materializes the full artifact tree for one palette. The
// layout under Dir is what the host terminal points embedded tools at:
//
//	sheen.zsh            — zsh theme (LS_COLORS, highlight styles, FZF)
//	integration.zsh      — standalone zsh hooks (for `sheen install`)
//	integration.bash     — standalone bash hooks (for `sheen install`)
//	bash_integration.sh  — bash OSC 133 integration (launched via --rcfile)
//	zdotdir/.zshrc       — zsh trampoline rc
//	zdotdir/.zshenv      — zsh trampoline env
//	nvim/init.lua        — nvim config root entry
//	nvim/colors/sheen.lua — nvim colorscheme
//	gitui/sheen.ron      — gitui theme
//	alacritty/sheen.toml — alacritty color scheme
type Writer struct {
	// Dir is the output root, typically
	// ~/.config/sheen/themes.
	Dir string

	// Sourcing configures the generated integration scripts. Its
	// ThemeFile field is filled in by Write with the generated
	// sheen.zsh path.
	Sourcing script.Sourcing

	// Log receives per-file debug output. Nil disables logging.
	Log *zap.Logger
}

// Write generates every artifact from the palette and writes the tree
// under w.Dir, creating directories as needed. It returns the list of
// written file paths in a stable order.
func (w *Writer) Write(c theme.Colors) ([]string, error) {
	themeFile := filepath.Join(w.Dir, "sheen.zsh")

	sourcing := w.Sourcing
	sourcing.ThemeFile = themeFile

	alacritty, err := AlacrittyTheme(c)
	if err != nil {
		return nil, err
	}

	files := []struct {
		rel     string
		content string
	}{
		{"sheen.zsh", ZshTheme(c)},
		{"integration.zsh", script.ZshHooks()},
		{"integration.bash", script.BashHooks()},
		{"bash_integration.sh", script.Bash(sourcing)},
		{filepath.Join("zdotdir", ".zshrc"), script.Zshrc(sourcing)},
		{filepath.Join("zdotdir", ".zshenv"), script.Zshenv(sourcing)},
		{filepath.Join("nvim", "init.lua"), NvimInit()},
		{filepath.Join("nvim", "colors", "sheen.lua"), NvimColorscheme(c)},
		{filepath.Join("gitui", "sheen.ron"), GituiTheme(c)},
		{filepath.Join("alacritty", "sheen.toml"), alacritty},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(w.Dir, f.rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		w.log().Debug("wrote artifact", zap.String("path", path))
		written = append(written, path)
	}
	return written, nil
}

// ZdotdirPath returns the directory the host should point ZDOTDIR at
// when launching zsh with the generated trampoline.
func (w *Writer) ZdotdirPath() string {
	return filepath.Join(w.Dir, "zdotdir")
}

// log returns the configured logger or a nop logger.
func (w *Writer) log() *zap.Logger {
	if w.Log == nil {
		return zap.NewNop()
	}
	return w.Log
}
