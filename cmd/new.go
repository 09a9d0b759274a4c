package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/tui"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Interactive sandbox creation wizard",
	Long: `Opens an interactive TUI for creating a sandbox.

Keys:
  Tab/Shift+Tab  - Move between name, presets and the button
  ←/→ (h/l)      - Move between presets
  Space/Enter    - Select the preset under the cursor
  Enter          - On the button: create the sandbox
  Ctrl+S         - Create the sandbox from anywhere
  Esc/Ctrl+C     - Cancel`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

// isTerminal reports whether stdin and stdout are attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runNew(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return errors.NotATerminal()
	}

	// The wizard owns the terminal, so debug logs go to a file.
	if verbose {
		closeLog, err := logging.SetupFile(verbose, jsonOutput, current.Paths.LogFile)
		if err != nil {
			return errors.ConfigError("failed to open log file", err)
		}
		defer closeLog()
		defer logging.Setup(verbose, jsonOutput, os.Stderr)
	}

	logging.Debug("wizard started", "api_url", current.Config.APIURL)

	result, err := tui.RunWizard(cmd.Context(), current.Service, current.Navigator)
	if err != nil {
		return err
	}
	if result.Cancelled {
		return errors.Cancelled()
	}

	logSuccess("Sandbox %s created", result.Sandbox.Title)
	return nil
}
