package gen

import (
	"fmt"
	"strings"

	"github.com/mmr-tortoise/sheen/internal/theme"
)

// hiSpec describes one highlight group definition in the generated
// Lua colorscheme. Only the fields needed by the group set are
// modeled; fg/bg/sp are hex strings, the booleans map to the style
// attributes nvim_set_hl accepts.
type hiSpec struct {
	group     string
	fg, bg    string
	sp        string
	bold      bool
	italic    bool
	underline bool
	undercurl bool
}

// lua renders the spec as a `hi('Group', { … })` call.
func (h hiSpec) lua() string {
	var opts []string
	if h.fg != "" {
		opts = append(opts, fmt.Sprintf("fg = '%s'", h.fg))
	}
	if h.bg != "" {
		opts = append(opts, fmt.Sprintf("bg = '%s'", h.bg))
	}
	if h.sp != "" {
		opts = append(opts, fmt.Sprintf("sp = '%s'", h.sp))
	}
	if h.bold {
		opts = append(opts, "bold = true")
	}
	if h.italic {
		opts = append(opts, "italic = true")
	}
	if h.underline {
		opts = append(opts, "underline = true")
	}
	if h.undercurl {
		opts = append(opts, "undercurl = true")
	}
	return fmt.Sprintf("hi('%s', { %s })", h.group, strings.Join(opts, ", "))
}

// NvimColorscheme generates a Neovim Lua colorscheme covering editor
// UI, legacy syntax groups, treesitter captures, diagnostics, git
// signs, telescope, and LSP reference highlights.
func NvimColorscheme(c theme.Colors) string {
	primary := c.Primary.Hex()
	secondary := c.Secondary.Hex()
	accent := c.Accent.Hex()
	bg := c.Background.Hex()
	bgPanel := c.BackgroundPanel.Hex()
	bgElem := c.BackgroundElement.Hex()
	text := c.Text.Hex()
	muted := c.TextMuted.Hex()
	border := c.Border.Hex()
	borderSubtle := c.BorderSubtle.Hex()
	errorC := c.Error.Hex()
	warning := c.Warning.Hex()
	success := c.Success.Hex()
	info := c.Info.Hex()

	var b strings.Builder
	b.Grow(16384)

	b.WriteString("-- sheen colorscheme (auto-generated, do not edit)\n")
	b.WriteString("vim.cmd('highlight clear')\n")
	b.WriteString("vim.o.termguicolors = true\n")
	b.WriteString("vim.g.colors_name = 'sheen'\n\n")
	b.WriteString("local hi = function(group, opts)\n")
	b.WriteString("  vim.api.nvim_set_hl(0, group, opts)\n")
	b.WriteString("end\n\n")

	sections := []struct {
		title string
		specs []hiSpec
	}{
		{"Editor UI", []hiSpec{
			{group: "Normal", fg: text, bg: bg},
			{group: "NormalFloat", fg: text, bg: bgPanel},
			{group: "FloatBorder", fg: border, bg: bgPanel},
			{group: "CursorLine", bg: bgElem},
			{group: "CursorLineNr", fg: primary, bold: true},
			{group: "LineNr", fg: borderSubtle},
			{group: "Visual", bg: bgElem},
			{group: "Search", fg: bg, bg: warning},
			{group: "IncSearch", fg: bg, bg: primary},
			{group: "StatusLine", fg: text, bg: bgPanel},
			{group: "StatusLineNC", fg: muted, bg: bgPanel},
			{group: "TabLine", fg: muted, bg: bgPanel},
			{group: "TabLineSel", fg: text, bg: bg, bold: true},
			{group: "TabLineFill", bg: bgPanel},
			{group: "Pmenu", fg: text, bg: bgPanel},
			{group: "PmenuSel", fg: text, bg: bgElem},
			{group: "PmenuSbar", bg: bgElem},
			{group: "PmenuThumb", bg: border},
			{group: "WinSeparator", fg: borderSubtle},
			{group: "VertSplit", fg: borderSubtle},
			{group: "SignColumn", bg: bg},
			{group: "FoldColumn", fg: borderSubtle, bg: bg},
			{group: "Folded", fg: muted, bg: bgElem},
			{group: "ColorColumn", bg: bgElem},
			{group: "MsgArea", fg: text},
			{group: "MoreMsg", fg: success},
			{group: "ErrorMsg", fg: errorC},
			{group: "WarningMsg", fg: warning},
			{group: "Question", fg: secondary},
			{group: "Title", fg: primary, bold: true},
			{group: "Directory", fg: secondary},
			{group: "MatchParen", fg: primary, bold: true, underline: true},
			{group: "NonText", fg: borderSubtle},
			{group: "SpecialKey", fg: borderSubtle},
			{group: "Conceal", fg: muted},
			{group: "Cursor", fg: bg, bg: primary},
			{group: "WildMenu", fg: text, bg: bgElem},
		}},
		{"Syntax", []hiSpec{
			{group: "Comment", fg: muted, italic: true},
			{group: "Constant", fg: primary},
			{group: "String", fg: success},
			{group: "Character", fg: success},
			{group: "Number", fg: primary},
			{group: "Boolean", fg: primary},
			{group: "Float", fg: primary},
			{group: "Identifier", fg: text},
			{group: "Function", fg: secondary},
			{group: "Statement", fg: accent},
			{group: "Conditional", fg: accent},
			{group: "Repeat", fg: accent},
			{group: "Label", fg: info},
			{group: "Operator", fg: muted},
			{group: "Keyword", fg: accent},
			{group: "Exception", fg: errorC},
			{group: "PreProc", fg: info},
			{group: "Include", fg: secondary},
			{group: "Define", fg: accent},
			{group: "Macro", fg: info},
			{group: "Type", fg: info},
			{group: "StorageClass", fg: accent},
			{group: "Structure", fg: info},
			{group: "Typedef", fg: info},
			{group: "Special", fg: primary},
			{group: "SpecialChar", fg: primary},
			{group: "Tag", fg: secondary},
			{group: "Delimiter", fg: muted},
			{group: "SpecialComment", fg: muted, bold: true},
			{group: "Debug", fg: errorC},
			{group: "Underlined", fg: secondary, underline: true},
			{group: "Error", fg: errorC},
			{group: "Todo", fg: warning, bold: true},
		}},
		{"Treesitter", []hiSpec{
			{group: "@variable", fg: text},
			{group: "@variable.builtin", fg: errorC},
			{group: "@variable.parameter", fg: text, italic: true},
			{group: "@constant", fg: primary},
			{group: "@constant.builtin", fg: primary},
			{group: "@constant.macro", fg: info},
			{group: "@module", fg: info},
			{group: "@string", fg: success},
			{group: "@string.escape", fg: primary},
			{group: "@string.regex", fg: info},
			{group: "@character", fg: success},
			{group: "@number", fg: primary},
			{group: "@boolean", fg: primary},
			{group: "@float", fg: primary},
			{group: "@function", fg: secondary},
			{group: "@function.builtin", fg: secondary, italic: true},
			{group: "@function.macro", fg: info},
			{group: "@method", fg: secondary},
			{group: "@constructor", fg: secondary},
			{group: "@property", fg: text},
			{group: "@field", fg: text},
			{group: "@parameter", fg: text, italic: true},
			{group: "@keyword", fg: accent},
			{group: "@keyword.function", fg: accent},
			{group: "@keyword.return", fg: accent},
			{group: "@keyword.operator", fg: accent},
			{group: "@operator", fg: muted},
			{group: "@punctuation.bracket", fg: muted},
			{group: "@punctuation.delimiter", fg: muted},
			{group: "@punctuation.special", fg: info},
			{group: "@type", fg: info},
			{group: "@type.builtin", fg: info, italic: true},
			{group: "@type.qualifier", fg: accent},
			{group: "@tag", fg: secondary},
			{group: "@tag.attribute", fg: primary},
			{group: "@tag.delimiter", fg: muted},
			{group: "@text.literal", fg: success},
			{group: "@text.reference", fg: secondary},
			{group: "@text.title", fg: primary, bold: true},
			{group: "@text.uri", fg: secondary, underline: true},
			{group: "@text.emphasis", italic: true},
			{group: "@text.strong", bold: true},
			{group: "@comment", fg: muted, italic: true},
		}},
		{"Diagnostics", []hiSpec{
			{group: "DiagnosticError", fg: errorC},
			{group: "DiagnosticWarn", fg: warning},
			{group: "DiagnosticInfo", fg: info},
			{group: "DiagnosticHint", fg: success},
			{group: "DiagnosticUnderlineError", sp: errorC, undercurl: true},
			{group: "DiagnosticUnderlineWarn", sp: warning, undercurl: true},
			{group: "DiagnosticUnderlineInfo", sp: info, undercurl: true},
			{group: "DiagnosticUnderlineHint", sp: success, undercurl: true},
			{group: "DiagnosticVirtualTextError", fg: errorC, bg: bgElem},
			{group: "DiagnosticVirtualTextWarn", fg: warning, bg: bgElem},
			{group: "DiagnosticVirtualTextInfo", fg: info, bg: bgElem},
			{group: "DiagnosticVirtualTextHint", fg: success, bg: bgElem},
			{group: "DiagnosticSignError", fg: errorC},
			{group: "DiagnosticSignWarn", fg: warning},
			{group: "DiagnosticSignInfo", fg: info},
			{group: "DiagnosticSignHint", fg: success},
		}},
		{"Git signs", []hiSpec{
			{group: "GitSignsAdd", fg: success},
			{group: "GitSignsChange", fg: warning},
			{group: "GitSignsDelete", fg: errorC},
			{group: "DiffAdd", fg: success, bg: bgElem},
			{group: "DiffChange", fg: warning, bg: bgElem},
			{group: "DiffDelete", fg: errorC, bg: bgElem},
			{group: "DiffText", fg: secondary, bg: bgElem},
		}},
		{"Telescope", []hiSpec{
			{group: "TelescopeNormal", fg: text, bg: bgPanel},
			{group: "TelescopeBorder", fg: border, bg: bgPanel},
			{group: "TelescopeSelection", fg: text, bg: bgElem},
			{group: "TelescopeSelectionCaret", fg: primary, bg: bgElem},
			{group: "TelescopeMatching", fg: primary},
			{group: "TelescopePromptPrefix", fg: primary},
			{group: "TelescopePromptTitle", fg: bg, bg: primary, bold: true},
			{group: "TelescopePreviewTitle", fg: bg, bg: success, bold: true},
			{group: "TelescopeResultsTitle", fg: bg, bg: secondary, bold: true},
		}},
		{"LSP", []hiSpec{
			{group: "LspReferenceText", bg: bgElem},
			{group: "LspReferenceRead", bg: bgElem},
			{group: "LspReferenceWrite", bg: bgElem},
		}},
	}

	for i, section := range sections {
		fmt.Fprintf(&b, "-- %s\n", section.title)
		for _, spec := range section.specs {
			b.WriteString(spec.lua())
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// NvimInit generates the one-line init.lua that activates the
// colorscheme when nvim is launched with the generated directory as
// its config root.
func NvimInit() string {
	return "vim.cmd('colorscheme sheen')\n"
}
