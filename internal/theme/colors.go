package theme

import (
	"github.com/mmr-tortoise/sheen/internal/model"
)

// Colors is the resolved palette every artifact generator consumes.
// Field names mirror the upstream theme JSON schema (camelCase keys
// like backgroundPanel map to BackgroundPanel here).
type Colors struct {
	Primary           model.RGB
	Secondary         model.RGB
	Accent            model.RGB
	Background        model.RGB
	BackgroundPanel   model.RGB
	BackgroundElement model.RGB
	Text              model.RGB
	TextMuted         model.RGB
	Border            model.RGB
	BorderActive      model.RGB
	BorderSubtle      model.RGB
	Error             model.RGB
	Warning           model.RGB
	Success           model.RGB
	Info              model.RGB
}

// Default returns the built-in dark palette. It is both the ultimate
// fallback when resolution fails and the per-field fallback when a
// theme file omits or garbles individual entries.
func Default() Colors {
	return Colors{
		Primary:           model.MustHex("#fab283"),
		Secondary:         model.MustHex("#5c9cf5"),
		Accent:            model.MustHex("#9d7cd8"),
		Background:        model.MustHex("#0a0a0a"),
		BackgroundPanel:   model.MustHex("#141414"),
		BackgroundElement: model.MustHex("#1e1e1e"),
		Text:              model.MustHex("#eeeeee"),
		TextMuted:         model.MustHex("#808080"),
		Border:            model.MustHex("#484848"),
		BorderActive:      model.MustHex("#606060"),
		BorderSubtle:      model.MustHex("#3c3c3c"),
		Error:             model.MustHex("#e06c75"),
		Warning:           model.MustHex("#f5a742"),
		Success:           model.MustHex("#7fd88f"),
		Info:              model.MustHex("#56b6c2"),
	}
}

// IsDark reports whether the palette has a dark background. Several
// generators branch on this: the ANSI palette mapping inverts, and
// env var hints (BAT_THEME, VIM_BACKGROUND) change value.
func (c Colors) IsDark() bool {
	return c.Background.Luma() < 128
}
