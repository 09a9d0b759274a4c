package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/tui"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available sandbox presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listPresets(cmd.Context(), current, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func listPresets(ctx context.Context, a *app.App, w io.Writer) error {
	presets, err := a.Service.FetchPresets(ctx)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, tui.PresetTable(presets))
	return err
}
