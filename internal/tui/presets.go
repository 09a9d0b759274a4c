package tui

import (
	"fmt"
	"strings"

	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/preset"
)

// PresetTable renders a non-interactive listing of presets.
func PresetTable(presets []preset.Preset) string {
	var sb strings.Builder

	sb.WriteString("Sandbox Presets\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(presets) == 0 {
		sb.WriteString("No presets available.\n")
		sb.WriteString("Create an empty sandbox with: sandbox-ctl create --title <name>\n")
		return sb.String()
	}

	for i, p := range presets {
		icon := preset.Icon(p.Icon)
		if icon == "" {
			icon = " "
		}
		fork := p.SandboxID
		if fork == "" {
			fork = "-"
		}
		sb.WriteString(fmt.Sprintf("%d. %s %s (%s)\n", i+1, icon, p.Name, p.ID))
		sb.WriteString(fmt.Sprintf("   Forks: %s\n\n", truncate(fork, 40)))
	}

	return sb.String()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return "..." + s[len(s)-maxLen+3:]
}
