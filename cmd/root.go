package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string
	apiURL     string

	// current is the application context built before each command runs.
	current *app.App
)

// newApp builds the application context; replaced in tests.
var newApp = func(cfg *config.Config, paths *config.Paths) *app.App {
	return app.New(app.WithConfig(cfg), app.WithPaths(paths))
}

var rootCmd = &cobra.Command{
	Use:   "sandbox-ctl",
	Short: "Create sandboxes from starter presets",
	Long: `sandbox-ctl creates sandboxes on a sandbox API.

Run without arguments to open the interactive creation wizard:
  - Name the sandbox
  - Pick a starter preset, or "No Preset" for an empty sandbox
  - Press GET STARTED and the editor opens once the sandbox exists`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runNew,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && errors.GetExitCode(err) != errors.ExitCancelled {
		logging.UserError("%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.toml (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Sandbox API base URL (overrides config)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func setup(cmd *cobra.Command, args []string) error {
	logging.Setup(verbose, jsonOutput, os.Stderr)

	paths := config.DefaultPaths()
	if configPath == "" {
		configPath = paths.ConfigFile
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.ConfigError("failed to load configuration", err)
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
		if err := cfg.Validate(); err != nil {
			return errors.ConfigError("invalid --api-url", err)
		}
	}

	logging.Debug("configuration loaded", "path", configPath, "api_url", cfg.APIURL)

	current = newApp(cfg, paths)
	return nil
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
)
