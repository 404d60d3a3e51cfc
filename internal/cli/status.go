// Package cli — status.go implements the "sheen status" command.
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

// NewStatusCommand creates the "status" cobra command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show integration and artifact status",
		Long: `Report, per configured shell dialect, whether the rc file carries the
integration source line and whether the generated script it points at
exists. Nothing is modified; status only reads.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

// runStatus probes every configured dialect and prints the result.
func runStatus() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to determine home directory", err)
	}

	statuses := make([]install.Status, 0, len(cfg.Dialects))
	for _, d := range cfg.Dialects {
		rcPath := install.RCPath(home, d)
		scriptPath := integrationScriptPath(cfg.OutputDir, d)
		statuses = append(statuses, install.Check(d, rcPath, scriptPath))
	}

	printStatuses(cfg.OutputDir, statuses)
	return nil
}

// printStatuses outputs the status report in text or JSON format.
func printStatuses(outputDir string, statuses []install.Status) {
	if IsJSONOutput() {
		result := struct {
			OutputDir string           `json:"outputDir"`
			Shells    []install.Status `json:"shells"`
		}{OutputDir: outputDir, Shells: statuses}

		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Output directory: %s\n", outputDir)
	if _, err := os.Stat(filepath.Join(outputDir, "sheen.zsh")); err == nil {
		fmt.Println("Artifacts:        generated")
	} else {
		fmt.Println("Artifacts:        not generated (run `sheen generate`)")
	}

	fmt.Println()
	for _, st := range statuses {
		fmt.Printf("%s:\n", st.Dialect)
		fmt.Printf("  rc file:  %s (%s)\n", st.RCPath, yesNo(st.RCInstalled, "installed", "not installed"))
		fmt.Printf("  script:   %s (%s)\n", st.ScriptPath, yesNo(st.ScriptExists, "exists", "missing"))
	}
}

// yesNo picks one of two labels based on a condition.
func yesNo(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
