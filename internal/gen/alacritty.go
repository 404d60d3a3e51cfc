package gen

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mmr-tortoise/sheen/internal/theme"
)

// alacrittyColors is the TOML document shape of an Alacritty color
// scheme: a primary fg/bg pair plus the normal and bright halves of
// the 16-entry ANSI palette.
type alacrittyColors struct {
	Colors struct {
		Primary struct {
			Background string `toml:"background"`
			Foreground string `toml:"foreground"`
		} `toml:"primary"`
		Normal alacrittyAnsiBlock `toml:"normal"`
		Bright alacrittyAnsiBlock `toml:"bright"`
	} `toml:"colors"`
}

// alacrittyAnsiBlock holds one half (normal or bright) of the ANSI
// palette under Alacritty's color names.
type alacrittyAnsiBlock struct {
	Black   string `toml:"black"`
	Red     string `toml:"red"`
	Green   string `toml:"green"`
	Yellow  string `toml:"yellow"`
	Blue    string `toml:"blue"`
	Magenta string `toml:"magenta"`
	Cyan    string `toml:"cyan"`
	White   string `toml:"white"`
}

// AlacrittyTheme generates an Alacritty color scheme as TOML. The 16
// palette entries come from theme.AnsiPalette, so a terminal using the
// generated file shows embedded programs in exactly the colors the
// host renders.
func AlacrittyTheme(c theme.Colors) (string, error) {
	palette := theme.AnsiPalette(c)

	var doc alacrittyColors
	doc.Colors.Primary.Background = c.Background.Hex()
	doc.Colors.Primary.Foreground = c.Text.Hex()
	doc.Colors.Normal = alacrittyAnsiBlock{
		Black:   palette[0].Hex(),
		Red:     palette[1].Hex(),
		Green:   palette[2].Hex(),
		Yellow:  palette[3].Hex(),
		Blue:    palette[4].Hex(),
		Magenta: palette[5].Hex(),
		Cyan:    palette[6].Hex(),
		White:   palette[7].Hex(),
	}
	doc.Colors.Bright = alacrittyAnsiBlock{
		Black:   palette[8].Hex(),
		Red:     palette[9].Hex(),
		Green:   palette[10].Hex(),
		Yellow:  palette[11].Hex(),
		Blue:    palette[12].Hex(),
		Magenta: palette[13].Hex(),
		Cyan:    palette[14].Hex(),
		White:   palette[15].Hex(),
	}

	var b strings.Builder
	b.WriteString("# sheen alacritty colors (auto-generated)\n")
	if err := toml.NewEncoder(&b).Encode(doc); err != nil {
		return "", fmt.Errorf("encoding alacritty theme: %w", err)
	}
	return b.String(), nil
}
