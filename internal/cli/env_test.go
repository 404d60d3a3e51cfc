// Package cli — env_test.go contains unit tests for the export line
// rendering used by the env command.
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmr-tortoise/sheen/internal/theme"
)

// TestExportLine verifies that values are single-quoted so the output
// is safe to eval in zsh and bash.
func TestExportLine(t *testing.T) {
	tests := []struct {
		name string
		v    theme.EnvVar
		want string
	}{
		{
			name: "plain value",
			v:    theme.EnvVar{Name: "BAT_THEME", Value: "base16"},
			want: "export BAT_THEME='base16'",
		},
		{
			name: "value with spaces and shell metacharacters",
			v:    theme.EnvVar{Name: "FZF_DEFAULT_OPTS", Value: "--color=bg:#0a0a0a,fg:#eeeeee"},
			want: "export FZF_DEFAULT_OPTS='--color=bg:#0a0a0a,fg:#eeeeee'",
		},
		{
			name: "embedded single quote is close-escape-reopen quoted",
			v:    theme.EnvVar{Name: "X", Value: "it's"},
			want: `export X='it'\''s'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exportLine(tt.v))
		})
	}
}

// TestExportLines_CoverDefaultPalette walks the full default variable
// set through the renderer as a smoke check that every line is a
// well-formed export statement.
func TestExportLines_CoverDefaultPalette(t *testing.T) {
	for _, v := range theme.EnvVars(theme.Default()) {
		line := exportLine(v)
		assert.Regexp(t, `^export [A-Z_]+='.*'$`, line)
	}
}
