package create

import (
	"context"

	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/preset"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/sandbox"
)

// Service is the sandbox API as seen by the form.
type Service interface {
	FetchPresets(ctx context.Context) ([]preset.Preset, error)
	// CreateSandbox creates a sandbox, forking forkTarget unless it is empty.
	CreateSandbox(ctx context.Context, title, forkTarget string) sandbox.Result
}

// Navigator moves the user to another view.
type Navigator interface {
	Navigate(url string) error
}

// State identifies where the form is in its lifecycle.
type State int

const (
	StateLoading State = iota
	StateEditing
	StateCreating
	StateNavigated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEditing:
		return "editing"
	case StateCreating:
		return "creating"
	case StateNavigated:
		return "navigated"
	}
	return "unknown"
}

// Request is what Begin hands to the Service.
type Request struct {
	Title      string
	ForkTarget string
}

// Form holds the state of one creation form.
type Form struct {
	Presets        []preset.Preset
	SelectedPreset string
	SandboxTitle   string
	Creating       bool

	navigatedTo string
}

// NewForm returns a form in the Loading state.
func NewForm() *Form {
	return &Form{}
}

// State derives the current state from the form's fields.
func (f *Form) State() State {
	switch {
	case len(f.Presets) == 0:
		return StateLoading
	case f.navigatedTo != "":
		return StateNavigated
	case f.Creating:
		return StateCreating
	}
	return StateEditing
}

// Load installs the fetched presets. Only the first non-empty list is kept.
func (f *Form) Load(presets []preset.Preset) {
	if len(f.Presets) > 0 {
		return
	}
	f.Presets = presets
}

// UpdateTitle sets the sandbox title as typed.
func (f *Form) UpdateTitle(text string) {
	f.SandboxTitle = text
}

// SelectPreset sets the selection to a preset id or preset.NoPreset.
func (f *Form) SelectPreset(id string) {
	f.SelectedPreset = id
}

// IsValid reports whether both a title and a selection are present.
func (f *Form) IsValid() bool {
	return f.SandboxTitle != "" && f.SelectedPreset != ""
}

// ForkTarget resolves the current selection to the sandbox to fork.
func (f *Form) ForkTarget() string {
	return preset.ForkTarget(f.Presets, f.SelectedPreset)
}

// Begin marks the form as creating and returns the request to send.
// Callers gate on IsValid; Begin does not.
func (f *Form) Begin() Request {
	f.Creating = true
	return Request{
		Title:      f.SandboxTitle,
		ForkTarget: f.ForkTarget(),
	}
}

// Complete applies the outcome of a creation request. On failure the form
// returns to editing with its values intact. On success the editor URL is
// handed to nav and returned.
func (f *Form) Complete(result sandbox.Result, nav Navigator) (string, error) {
	if result.Failed() {
		logging.Debug("sandbox creation failed", "title", f.SandboxTitle, "error", result.Err())
		f.Creating = false
		return "", nil
	}

	sb := result.Sandbox()
	url := sandbox.EditURL(sb, sandbox.AuthorName(sb))
	f.navigatedTo = url
	logging.Debug("sandbox created", "id", sb.ID, "url", url)

	return url, nav.Navigate(url)
}

// Submit runs a creation request synchronously: Begin, the Service call, and
// Complete.
func (f *Form) Submit(ctx context.Context, svc Service, nav Navigator) (sandbox.Result, error) {
	req := f.Begin()
	logging.Debug("creating sandbox", "title", req.Title, "fork", req.ForkTarget)

	result := svc.CreateSandbox(ctx, req.Title, req.ForkTarget)
	_, err := f.Complete(result, nav)
	return result, err
}

// NavigatedTo returns the URL handed to the Navigator, if any.
func (f *Form) NavigatedTo() string {
	return f.navigatedTo
}
