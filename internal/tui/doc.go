// Package tui provides terminal user interface components for sandbox-ctl.
//
// This package uses the Bubble Tea framework for the interactive sandbox
// creation wizard.
//
// # Creation Wizard
//
// The wizard fetches presets, lets the user name the sandbox and pick a
// preset, then submits the creation request:
//
//	result, err := tui.RunWizard(ctx, svc, nav)
//	switch {
//	case err != nil:
//	    // Terminal or navigation failure
//	case result.Cancelled:
//	    // User pressed Esc or Ctrl+C
//	default:
//	    // result.URL was handed to nav
//	}
//
// # Wizard Screens
//
//   - Loading: shown until a non-empty preset list arrives
//   - Form: title input, "No Preset" tile followed by one tile per preset,
//     and a GET STARTED button that stays disabled until both a title and a
//     preset are chosen
//   - Creating: shown while the creation request is in flight; keys other
//     than Ctrl+C are ignored
//
// A failed creation returns to the form with the title and selection kept.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
