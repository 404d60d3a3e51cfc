package gen

import (
	"fmt"
	"strings"

	"github.com/mmr-tortoise/sheen/internal/theme"
)

// GituiTheme generates a gitui theme. gitui themes are RON (Rusty
// Object Notation) files: a parenthesized struct of Some("#hex")
// fields. The key set below is gitui's full color surface.
func GituiTheme(c theme.Colors) string {
	entries := []struct {
		key string
		hex string
	}{
		{"selected_tab", c.Primary.Hex()},
		{"command_fg", c.Text.Hex()},
		{"selection_bg", c.BackgroundElement.Hex()},
		{"selection_fg", c.Text.Hex()},
		{"cmdbar_bg", c.BackgroundElement.Hex()},
		{"disabled_fg", c.TextMuted.Hex()},
		{"diff_line_add", c.Success.Hex()},
		{"diff_line_delete", c.Error.Hex()},
		{"diff_file_added", c.Success.Hex()},
		{"diff_file_removed", c.Error.Hex()},
		{"diff_file_moved", c.Info.Hex()},
		{"diff_file_modified", c.Warning.Hex()},
		{"commit_hash", c.Accent.Hex()},
		{"commit_time", c.TextMuted.Hex()},
		{"commit_author", c.Secondary.Hex()},
		{"danger_fg", c.Error.Hex()},
		{"push_gauge_bg", c.Primary.Hex()},
		{"push_gauge_fg", c.Text.Hex()},
		{"tag_fg", c.Accent.Hex()},
		{"branch_fg", c.Secondary.Hex()},
		{"block_title_focused", c.Primary.Hex()},
	}

	var b strings.Builder
	b.WriteString("// sheen gitui theme (auto-generated)\n")
	b.WriteString("(\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "    %s: Some(\"%s\"),\n", e.key, e.hex)
	}
	b.WriteString(")\n")
	return b.String()
}
