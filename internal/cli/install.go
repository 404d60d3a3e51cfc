// Package cli — install.go implements the "sheen install" command.
//
// Install hooks sheen into the user's existing shell setup: it appends
// one guarded source line to the dialect's rc file, pointing at the
// standalone hook snippet in the output directory. The snippet installs
// the OSC 133 hooks without re-sourcing any rc files, so it is safe to
// load from .zshrc/.bashrc directly (unlike the trampoline scripts,
// which source the user rc themselves).
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/sheen/internal/install"
	"github.com/mmr-tortoise/sheen/internal/model"
)

// installFlags holds the flag values for the install command.
type installFlags struct {
	shell string // --shell: target dialect (default: detect from $SHELL)
	all   bool   // --all: install for every configured dialect
}

// NewInstallCommand creates the "install" cobra command.
func NewInstallCommand() *cobra.Command {
	flags := &installFlags{}

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Hook the shell integration into your rc file",
		Long: `Append a guarded source line for sheen's integration snippet to the
shell's rc file (~/.zshrc or ~/.bashrc). Running install again is a
no-op: the rc file is checked for the existing line before appending,
so the hooks are registered exactly once per session.

Examples:
  sheen install                 # detect shell from $SHELL
  sheen install --shell bash
  sheen install --all           # every dialect enabled in config`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(flags)
		},
	}

	cmd.Flags().StringVar(&flags.shell, "shell", "", "Shell dialect to install for (zsh or bash; default: detect)")
	cmd.Flags().BoolVar(&flags.all, "all", false, "Install for all dialects enabled in config")

	return cmd
}

// installResult records the outcome of one dialect's installation.
type installResult struct {
	Dialect      model.Dialect `json:"dialect"`
	RCPath       string        `json:"rcPath"`
	ScriptPath   string        `json:"scriptPath"`
	Installed    bool          `json:"installed"`
	ScriptExists bool          `json:"scriptExists"`
}

// runInstall resolves the target dialects and appends the source line
// to each rc file.
func runInstall(flags *installFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dialects, err := targetDialects(flags, cfg.Dialects)
	if err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to determine home directory", err)
	}

	results := make([]installResult, 0, len(dialects))
	for _, d := range dialects {
		scriptPath := integrationScriptPath(cfg.OutputDir, d)
		rcPath := install.RCPath(home, d)

		installed, err := install.Install(d, rcPath, scriptPath)
		if err != nil {
			return model.WrapCLIError(model.ExitInstallFailed,
				fmt.Sprintf("failed to install %s integration", d), err)
		}

		_, statErr := os.Stat(scriptPath)
		results = append(results, installResult{
			Dialect:      d,
			RCPath:       rcPath,
			ScriptPath:   scriptPath,
			Installed:    installed,
			ScriptExists: statErr == nil,
		})
	}

	printInstallResults(results)
	return nil
}

// targetDialects resolves the dialects to install for, from flags and
// config. Precedence: --all (config dialects) > --shell > $SHELL.
func targetDialects(flags *installFlags, configured []model.Dialect) ([]model.Dialect, error) {
	if flags.all {
		return configured, nil
	}

	if flags.shell != "" {
		d, err := model.ParseDialect(flags.shell)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError, "invalid --shell value", err)
		}
		return []model.Dialect{d}, nil
	}

	d, err := install.DetectDialect()
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError,
			"could not detect shell from $SHELL (use --shell)", err)
	}
	return []model.Dialect{d}, nil
}

// integrationScriptPath returns the standalone hook snippet generated
// for a dialect.
func integrationScriptPath(outputDir string, d model.Dialect) string {
	return filepath.Join(outputDir, fmt.Sprintf("integration.%s", d))
}

// printInstallResults outputs the install results in text or JSON format.
func printInstallResults(results []installResult) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(data))
		return
	}

	needGenerate := false
	for _, r := range results {
		if r.Installed {
			fmt.Printf("Installed %s integration: %s sources %s\n", r.Dialect, r.RCPath, r.ScriptPath)
		} else {
			fmt.Printf("Already installed for %s: %s\n", r.Dialect, r.RCPath)
		}
		if !r.ScriptExists {
			needGenerate = true
		}
	}
	if needGenerate {
		fmt.Println()
		fmt.Println("Some integration scripts do not exist yet — run `sheen generate` to create them.")
	}
}
