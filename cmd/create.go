package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/create"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/preset"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/sandbox"
)

var (
	createTitle  string
	createPreset string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a sandbox without the wizard",
	Long: `Creates a sandbox from a preset without opening the wizard.

Use --preset nopreset (the default) for an empty sandbox. Run
'sandbox-ctl presets' to see the available preset ids.`,
	Example: `  sandbox-ctl create --title my-app --preset react
  sandbox-ctl create --title blank`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createTitle, "title", "t", "", "Sandbox title (required)")
	createCmd.Flags().StringVarP(&createPreset, "preset", "p", preset.NoPreset, "Preset id, or \"nopreset\"")
	_ = createCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	sb, err := createSandbox(cmd.Context(), current, createTitle, createPreset)
	if err != nil {
		return err
	}
	logSuccess("Sandbox %s created", sb.Title)
	return nil
}

// createSandbox drives a creation form non-interactively. Unlike the wizard,
// which only offers known presets, an unknown preset id is reported.
func createSandbox(ctx context.Context, a *app.App, title, presetID string) (*sandbox.Sandbox, error) {
	presets, err := a.Service.FetchPresets(ctx)
	if err != nil {
		return nil, err
	}

	if presetID != preset.NoPreset {
		if _, ok := preset.Find(presets, presetID); !ok {
			return nil, errors.PresetNotFound(presetID)
		}
	}

	form := create.NewForm()
	form.Load(presets)
	form.UpdateTitle(title)
	form.SelectPreset(presetID)
	if !form.IsValid() {
		return nil, errors.ValidationError("a title and a preset are required")
	}

	logging.Debug("creating sandbox", "title", title, "preset", presetID, "fork", form.ForkTarget())

	result, err := form.Submit(ctx, a.Service, a.Navigator)
	if result.Failed() {
		var sbErr *errors.SandboxError
		if errors.As(result.Err(), &sbErr) {
			return nil, sbErr
		}
		return nil, errors.CreateFailed(title, result.Err())
	}
	if err != nil {
		return result.Sandbox(), fmt.Errorf("sandbox created but navigation failed: %w", err)
	}
	return result.Sandbox(), nil
}
