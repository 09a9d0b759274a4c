package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/create"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/preset"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/sandbox"
)

// focusArea identifies which part of the form receives keys.
type focusArea int

const (
	focusTitle focusArea = iota
	focusPresets
	focusButton
	focusCount
)

// presetsLoadedMsg carries the result of the preset fetch.
type presetsLoadedMsg struct {
	presets []preset.Preset
	err     error
}

// createdMsg carries the result of the creation request.
type createdMsg struct {
	result sandbox.Result
}

// WizardResult holds the outcome of a wizard run.
type WizardResult struct {
	// URL is the editor path of the created sandbox; empty if cancelled.
	URL string

	// Sandbox is the created sandbox; nil if cancelled.
	Sandbox *sandbox.Sandbox

	Cancelled bool
}

// tile is one selectable preset option.
type tile struct {
	id   string
	icon string
	name string
}

// pendingNavigator holds the editor URL until the program has released the
// terminal.
type pendingNavigator struct {
	url string
}

func (p *pendingNavigator) Navigate(url string) error {
	p.url = url
	return nil
}

// Wizard is the bubbletea model for the sandbox creation form.
type Wizard struct {
	ctx  context.Context
	svc  create.Service
	form *create.Form
	nav  pendingNavigator

	titleInput textinput.Model
	spinner    spinner.Model
	focus      focusArea
	cursor     int

	result   WizardResult
	quitting bool
	width    int
}

// NewWizard creates a wizard that fetches presets from and creates sandboxes
// through svc.
func NewWizard(ctx context.Context, svc create.Service) *Wizard {
	ti := textinput.New()
	ti.Placeholder = "Enter a Sandbox Name"
	ti.Focus()
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	return &Wizard{
		ctx:        ctx,
		svc:        svc,
		form:       create.NewForm(),
		titleInput: ti,
		spinner:    sp,
	}
}

func (w *Wizard) Init() tea.Cmd {
	return tea.Batch(w.fetchPresets(), w.spinner.Tick, textinput.Blink)
}

func (w *Wizard) fetchPresets() tea.Cmd {
	return func() tea.Msg {
		presets, err := w.svc.FetchPresets(w.ctx)
		return presetsLoadedMsg{presets: presets, err: err}
	}
}

func (w *Wizard) createSandbox(req create.Request) tea.Cmd {
	return func() tea.Msg {
		return createdMsg{result: w.svc.CreateSandbox(w.ctx, req.Title, req.ForkTarget)}
	}
}

func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		return w, nil

	case spinner.TickMsg:
		state := w.form.State()
		if state != create.StateLoading && state != create.StateCreating {
			return w, nil
		}
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return w, cmd

	case presetsLoadedMsg:
		if msg.err != nil {
			logging.Debug("preset fetch failed", "error", msg.err)
			return w, nil
		}
		w.form.Load(msg.presets)
		return w, nil

	case createdMsg:
		return w.handleCreated(msg.result)

	case tea.KeyMsg:
		return w.handleKey(msg)
	}

	if w.focus == focusTitle && w.form.State() == create.StateEditing {
		return w, w.updateTitle(msg)
	}
	return w, nil
}

func (w *Wizard) handleCreated(result sandbox.Result) (tea.Model, tea.Cmd) {
	url, _ := w.form.Complete(result, &w.nav)
	if result.Failed() {
		w.focusOn(focusTitle)
		return w, textinput.Blink
	}

	w.result = WizardResult{URL: url, Sandbox: result.Sandbox()}
	w.quitting = true
	return w, tea.Quit
}

func (w *Wizard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return w.cancel()
	}

	switch w.form.State() {
	case create.StateLoading:
		if msg.Type == tea.KeyEsc {
			return w.cancel()
		}
		return w, nil
	case create.StateCreating, create.StateNavigated:
		return w, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		return w.cancel()
	case tea.KeyTab:
		w.focusOn((w.focus + 1) % focusCount)
		return w, w.focusCmd()
	case tea.KeyShiftTab:
		w.focusOn((w.focus - 1 + focusCount) % focusCount)
		return w, w.focusCmd()
	case tea.KeyCtrlS:
		return w, w.submit()
	}

	switch w.focus {
	case focusTitle:
		if msg.Type == tea.KeyEnter {
			w.focusOn(focusPresets)
			return w, nil
		}
		return w, w.updateTitle(msg)

	case focusPresets:
		switch msg.String() {
		case "left", "h":
			if w.cursor > 0 {
				w.cursor--
			}
		case "right", "l":
			if w.cursor < len(w.tiles())-1 {
				w.cursor++
			}
		case " ", "enter":
			w.form.SelectPreset(w.tiles()[w.cursor].id)
		}
		return w, nil

	case focusButton:
		if msg.Type == tea.KeyEnter {
			return w, w.submit()
		}
	}

	return w, nil
}

func (w *Wizard) updateTitle(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	w.titleInput, cmd = w.titleInput.Update(msg)
	w.form.UpdateTitle(w.titleInput.Value())
	return cmd
}

func (w *Wizard) focusOn(f focusArea) {
	w.focus = f
	if f == focusTitle {
		w.titleInput.Focus()
	} else {
		w.titleInput.Blur()
	}
}

func (w *Wizard) focusCmd() tea.Cmd {
	if w.focus == focusTitle {
		return textinput.Blink
	}
	return nil
}

// submit starts the creation request. A form that is not valid is inert,
// like a disabled button.
func (w *Wizard) submit() tea.Cmd {
	if !w.form.IsValid() {
		return nil
	}
	req := w.form.Begin()
	w.titleInput.Blur()
	return tea.Batch(w.spinner.Tick, w.createSandbox(req))
}

func (w *Wizard) cancel() (tea.Model, tea.Cmd) {
	w.result = WizardResult{Cancelled: true}
	w.quitting = true
	return w, tea.Quit
}

// tiles returns the selectable options: "No Preset" first, then one per
// preset in fetch order.
func (w *Wizard) tiles() []tile {
	tiles := make([]tile, 0, len(w.form.Presets)+1)
	tiles = append(tiles, tile{id: preset.NoPreset, icon: preset.NoPresetIcon, name: "No Preset"})
	for _, p := range w.form.Presets {
		tiles = append(tiles, tile{id: p.ID, icon: preset.Icon(p.Icon), name: p.Name})
	}
	return tiles
}

func (w *Wizard) View() string {
	if w.quitting {
		return ""
	}

	switch w.form.State() {
	case create.StateLoading:
		return titleStyle.Render(w.spinner.View() + " Loading...")
	case create.StateCreating, create.StateNavigated:
		return titleStyle.Render(w.spinner.View() + " Creating sandbox, hang tight!")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Creating a sandbox"))
	b.WriteString("\n")
	b.WriteString(w.titleInput.View())
	b.WriteString("\n\n")
	b.WriteString(w.renderTiles())
	b.WriteString("\n\n")
	b.WriteString(w.renderButton())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[tab] Next field  [←/→] Move  [space] Select  [ctrl+s] Create  [esc] Cancel"))

	return b.String()
}

func (w *Wizard) renderTiles() string {
	tiles := w.tiles()
	rendered := make([]string, 0, len(tiles))
	for i, t := range tiles {
		active := w.form.SelectedPreset == t.id
		underCursor := w.focus == focusPresets && w.cursor == i

		style := tileStyle
		switch {
		case active && underCursor:
			style = activeCursorTileStyle
		case active:
			style = activeTileStyle
		case underCursor:
			style = cursorTileStyle
		}
		rendered = append(rendered, style.Render(t.icon+"\n\n"+t.name))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if w.width > 0 && lipgloss.Width(row) > w.width {
		return lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}
	return row
}

func (w *Wizard) renderButton() string {
	const label = "GET STARTED"
	switch {
	case !w.form.IsValid():
		return disabledButtonStyle.Render(label)
	case w.focus == focusButton:
		return focusedButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

// Result returns the wizard result
func (w *Wizard) Result() WizardResult {
	return w.result
}

// RunWizard runs the interactive creation wizard. On success the editor URL
// is handed to nav once the terminal has been restored.
func RunWizard(ctx context.Context, svc create.Service, nav create.Navigator) (WizardResult, error) {
	w := NewWizard(ctx, svc)
	p := tea.NewProgram(w, tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		return WizardResult{}, err
	}

	result := finalModel.(*Wizard).Result()
	if result.Cancelled || result.URL == "" {
		return result, nil
	}
	return result, nav.Navigate(result.URL)
}
