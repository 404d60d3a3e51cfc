package gen

import (
	"fmt"
	"strings"

	"github.com/mmr-tortoise/sheen/internal/model"
	"github.com/mmr-tortoise/sheen/internal/theme"
)

// File extension groups for LS_COLORS. Every extension in a group gets
// the same theme color: archives use the warning color, media the
// accent, source files the text color, documents the muted color.
var (
	archiveExts = []string{"tar", "zip", "gz", "bz2", "xz", "7z", "rar"}
	mediaExts   = []string{"jpg", "jpeg", "png", "gif", "svg", "mp4", "mp3", "wav", "flac", "webm", "webp"}
	sourceExts  = []string{"rs", "go", "py", "js", "ts", "c", "cpp", "h", "lua", "sh"}
	docExts     = []string{"md", "txt", "pdf", "doc", "csv"}
)

// ZshTheme generates the zsh theme script: an LS_COLORS table, a
// zsh-syntax-highlighting style map, and FZF default options, all
// derived from the palette.
func ZshTheme(c theme.Colors) string {
	var b strings.Builder

	b.WriteString("# sheen zsh theme (auto-generated, do not edit)\n\n")
	writeLSColors(&b, c)
	b.WriteString("\n")
	writeHighlightStyles(&b, c)
	b.WriteString("\n")
	writeFZFOpts(&b, c)

	return b.String()
}

// sgrTrueColor renders a color as the 24-bit SGR parameter sequence
// LS_COLORS entries use ("38;2;r;g;b").
func sgrTrueColor(c model.RGB) string {
	r, g, b := c.Channels()
	return fmt.Sprintf("38;2;%d;%d;%d", r, g, b)
}

// writeLSColors emits the LS_COLORS export. Directories are bold in
// the secondary color; symlinks use info, executables success, and the
// extension groups map to their class colors.
func writeLSColors(b *strings.Builder, c theme.Colors) {
	b.WriteString("# LS_COLORS\n")
	b.WriteString(`export LS_COLORS="`)

	entries := []string{
		"di=1;" + sgrTrueColor(c.Secondary),
		"ln=" + sgrTrueColor(c.Info),
		"ex=" + sgrTrueColor(c.Success),
	}
	for _, ext := range archiveExts {
		entries = append(entries, "*."+ext+"="+sgrTrueColor(c.Warning))
	}
	for _, ext := range mediaExts {
		entries = append(entries, "*."+ext+"="+sgrTrueColor(c.Accent))
	}
	for _, ext := range sourceExts {
		entries = append(entries, "*."+ext+"="+sgrTrueColor(c.Text))
	}
	for _, ext := range docExts {
		entries = append(entries, "*."+ext+"="+sgrTrueColor(c.TextMuted))
	}

	b.WriteString(strings.Join(entries, ":"))
	b.WriteString("\"\n")
}

// writeHighlightStyles emits the zsh-syntax-highlighting style map.
// The whole block is guarded: ZSH_HIGHLIGHT_STYLES only exists when
// the plugin is loaded, and assigning to an undeclared associative
// array would create a plain scalar and break the plugin.
func writeHighlightStyles(b *strings.Builder, c theme.Colors) {
	b.WriteString("# zsh-syntax-highlighting\n")
	b.WriteString("if [[ -n ${ZSH_HIGHLIGHT_STYLES+x} ]]; then\n")

	styles := []struct {
		key   string
		color model.RGB
	}{
		{"command", c.Secondary},
		{"builtin", c.Secondary},
		{"alias", c.Secondary},
		{"path", c.Info},
		{"single-quoted-argument", c.Success},
		{"double-quoted-argument", c.Success},
		{"dollar-quoted-argument", c.Success},
		{"comment", c.TextMuted},
		{"unknown-token", c.Error},
		{"reserved-word", c.Accent},
		{"assign", c.Primary},
		{"named-fd", c.Primary},
		{"numeric-fd", c.Primary},
		{"commandseparator", c.TextMuted},
		{"redirection", c.TextMuted},
		{"globbing", c.Info},
		{"default", c.Text},
	}
	for _, s := range styles {
		fmt.Fprintf(b, "  ZSH_HIGHLIGHT_STYLES[%s]='fg=%s'\n", s.key, s.color.Hex())
	}

	b.WriteString("fi\n")
}

// writeFZFOpts emits FZF_DEFAULT_OPTS with the full fzf color map.
func writeFZFOpts(b *strings.Builder, c theme.Colors) {
	b.WriteString("# FZF\n")
	fmt.Fprintf(b,
		"export FZF_DEFAULT_OPTS=\"--color=fg:%s,bg:%s,hl:%s,fg+:%s,bg+:%s,hl+:%s,info:%s,prompt:%s,pointer:%s,marker:%s,spinner:%s,header:%s,border:%s\"\n",
		c.Text.Hex(), c.Background.Hex(), c.Primary.Hex(),
		c.Text.Hex(), c.BackgroundElement.Hex(), c.Accent.Hex(),
		c.Info.Hex(), c.Primary.Hex(), c.Accent.Hex(),
		c.Success.Hex(), c.Secondary.Hex(), c.TextMuted.Hex(), c.Border.Hex(),
	)
}
