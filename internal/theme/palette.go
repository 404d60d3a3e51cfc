package theme

import (
	"fmt"

	"github.com/mmr-tortoise/sheen/internal/model"
)

// brightStep is the per-channel offset used to derive the "bright"
// ANSI variants (9-14) from their normal counterparts.
const brightStep = 30

// AnsiPalette builds a 16-entry ANSI indexed-color palette from the
// theme.
//
// Programs running inside the terminal use ANSI indexed colors (0-15)
// for most of their output — shell prompts, ls colors, git diff. The
// RGB values those indexes map to normally come from the terminal
// emulator's own palette; deriving them from the theme instead means
// every embedded tool automatically matches.
//
// For dark themes index 0 (black) is the theme background and 15
// (bright white) the text color; light themes invert the mapping so
// that "black" stays readable on the light background.
func AnsiPalette(c Colors) [16]model.RGB {
	if c.IsDark() {
		return [16]model.RGB{
			c.Background,                    // 0: black
			c.Error,                         // 1: red
			c.Success,                       // 2: green
			c.Warning,                       // 3: yellow
			c.Secondary,                     // 4: blue
			c.Accent,                        // 5: magenta
			c.Info,                          // 6: cyan
			c.TextMuted,                     // 7: white
			c.Border,                        // 8: bright black
			c.Error.Brighten(brightStep),    // 9: bright red
			c.Success.Brighten(brightStep),  // 10: bright green
			c.Warning.Brighten(brightStep),  // 11: bright yellow
			c.Secondary.Brighten(brightStep), // 12: bright blue
			c.Accent.Brighten(brightStep),   // 13: bright magenta
			c.Info.Brighten(brightStep),     // 14: bright cyan
			c.Text,                          // 15: bright white
		}
	}
	return [16]model.RGB{
		c.Text,                          // 0: black
		c.Error.Darken(brightStep),      // 1: red
		c.Success.Darken(brightStep),    // 2: green
		c.Warning.Darken(brightStep),    // 3: yellow
		c.Secondary.Darken(brightStep),  // 4: blue
		c.Accent.Darken(brightStep),     // 5: magenta
		c.Info.Darken(brightStep),       // 6: cyan
		c.TextMuted,                     // 7: white
		c.Border,                        // 8: bright black
		c.Error,                         // 9: bright red
		c.Success,                       // 10: bright green
		c.Warning,                       // 11: bright yellow
		c.Secondary,                     // 12: bright blue
		c.Accent,                        // 13: bright magenta
		c.Info,                          // 14: bright cyan
		c.Background,                    // 15: bright white
	}
}

// EnvVar is one exported environment variable hint.
type EnvVar struct {
	Name  string
	Value string
}

// EnvVars returns the environment variables that hint embedded tools
// about the current theme, so that neovim, bat, fzf and friends pick
// matching colors without any per-tool configuration.
//
// The slice order is stable so generated export blocks diff cleanly
// between runs.
func EnvVars(c Colors) []EnvVar {
	bg := c.Background.Hex()
	fg := c.Text.Hex()
	dark := c.IsDark()

	colorFgBg := "15;0"
	batTheme := "base16"
	vimBackground := "dark"
	if !dark {
		colorFgBg = "0;15"
		batTheme = "GitHub"
		vimBackground = "light"
	}

	fzfOpts := fmt.Sprintf(
		"--color=bg:%s,fg:%s,hl:%s,bg+:%s,fg+:%s,hl+:%s,info:%s,prompt:%s,pointer:%s,marker:%s,spinner:%s,header:%s,border:%s",
		bg, fg, c.Primary.Hex(),
		c.BackgroundElement.Hex(), fg, c.Accent.Hex(),
		c.Info.Hex(), c.Primary.Hex(), c.Accent.Hex(),
		c.Success.Hex(), c.Secondary.Hex(), c.TextMuted.Hex(), c.Border.Hex(),
	)

	return []EnvVar{
		{"COLORFGBG", colorFgBg},
		{"BACKGROUND", bg},
		{"FOREGROUND", fg},
		{"NVIM_TUI_ENABLE_TRUE_COLOR", "1"},
		{"BAT_THEME", batTheme},
		{"FZF_DEFAULT_OPTS", fzfOpts},
		{"VIM_BACKGROUND", vimBackground},
		{"SHEEN_BG", bg},
		{"SHEEN_FG", fg},
		{"SHEEN_BG_PANEL", c.BackgroundPanel.Hex()},
		{"SHEEN_BG_ELEMENT", c.BackgroundElement.Hex()},
		{"SHEEN_BORDER", c.Border.Hex()},
		{"SHEEN_PRIMARY", c.Primary.Hex()},
		{"SHEEN_SECONDARY", c.Secondary.Hex()},
		{"SHEEN_ACCENT", c.Accent.Hex()},
		{"SHEEN_ERROR", c.Error.Hex()},
		{"SHEEN_WARNING", c.Warning.Hex()},
		{"SHEEN_SUCCESS", c.Success.Hex()},
		{"SHEEN_INFO", c.Info.Hex()},
		{"SHEEN_MUTED", c.TextMuted.Hex()},
	}
}
