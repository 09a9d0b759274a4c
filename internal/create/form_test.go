package create

import (
	"context"
	"errors"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/navigate"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/preset"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/sandbox"
)

type createCall struct {
	title      string
	forkTarget string
}

// fakeService records creation calls and answers with a fixed result.
type fakeService struct {
	presets []preset.Preset
	result  sandbox.Result
	calls   []createCall
}

func (s *fakeService) FetchPresets(ctx context.Context) ([]preset.Preset, error) {
	return s.presets, nil
}

func (s *fakeService) CreateSandbox(ctx context.Context, title, forkTarget string) sandbox.Result {
	s.calls = append(s.calls, createCall{title, forkTarget})
	return s.result
}

var scenarioPresets = []preset.Preset{
	{ID: "p1", Icon: "react", Name: "React", SandboxID: "s1"},
}

func loadedForm() *Form {
	f := NewForm()
	f.Load(scenarioPresets)
	return f
}

func TestFormStates(t *testing.T) {
	f := NewForm()
	if f.State() != StateLoading {
		t.Fatalf("initial state = %v, want loading", f.State())
	}

	f.Load(nil)
	if f.State() != StateLoading {
		t.Errorf("empty preset list should stay loading, got %v", f.State())
	}

	f.Load(scenarioPresets)
	if f.State() != StateEditing {
		t.Errorf("state = %v, want editing", f.State())
	}

	f.Begin()
	if f.State() != StateCreating {
		t.Errorf("state = %v, want creating", f.State())
	}
}

func TestFormLoadFiresOnce(t *testing.T) {
	f := loadedForm()
	f.Load([]preset.Preset{{ID: "other", Name: "Other"}})

	if len(f.Presets) != 1 || f.Presets[0].ID != "p1" {
		t.Errorf("second Load should be ignored, presets = %+v", f.Presets)
	}
}

func TestFormIsValid(t *testing.T) {
	tests := []struct {
		title    string
		selected string
		want     bool
	}{
		{"", "", false},
		{"", "p1", false},
		{"", preset.NoPreset, false},
		{"my-app", "", false},
		{"my-app", "p1", true},
		{"my-app", preset.NoPreset, true},
		{" ", "p1", true},
	}

	for _, tt := range tests {
		t.Run(tt.title+"/"+tt.selected, func(t *testing.T) {
			f := loadedForm()
			f.UpdateTitle(tt.title)
			f.SelectPreset(tt.selected)
			if got := f.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateTitleKeepsText(t *testing.T) {
	f := loadedForm()
	f.UpdateTitle("  spaced  ")
	if f.SandboxTitle != "  spaced  " {
		t.Errorf("SandboxTitle = %q, title must not be trimmed", f.SandboxTitle)
	}
}

func TestSubmitWithPreset(t *testing.T) {
	svc := &fakeService{result: sandbox.Success(&sandbox.Sandbox{ID: "new1"})}
	nav := &navigate.Recorder{}

	f := loadedForm()
	f.UpdateTitle("my-app")
	f.SelectPreset("p1")

	if _, err := f.Submit(context.Background(), svc, nav); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if len(svc.calls) != 1 {
		t.Fatalf("CreateSandbox called %d times, want 1", len(svc.calls))
	}
	if svc.calls[0] != (createCall{"my-app", "s1"}) {
		t.Errorf("CreateSandbox(%q, %q), want (\"my-app\", \"s1\")", svc.calls[0].title, svc.calls[0].forkTarget)
	}
}

func TestSubmitWithoutPreset(t *testing.T) {
	svc := &fakeService{result: sandbox.Success(&sandbox.Sandbox{ID: "new1"})}
	nav := &navigate.Recorder{}

	f := loadedForm()
	f.SelectPreset(preset.NoPreset)
	f.UpdateTitle("blank")

	if _, err := f.Submit(context.Background(), svc, nav); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if svc.calls[0] != (createCall{"blank", ""}) {
		t.Errorf("CreateSandbox(%q, %q), want (\"blank\", no fork)", svc.calls[0].title, svc.calls[0].forkTarget)
	}
}

func TestSubmitFailure(t *testing.T) {
	svc := &fakeService{result: sandbox.Failure(errors.New("quota exceeded"))}
	nav := &navigate.Recorder{}

	f := loadedForm()
	f.UpdateTitle("my-app")
	f.SelectPreset("p1")

	result, err := f.Submit(context.Background(), svc, nav)
	if err != nil {
		t.Fatalf("Submit() error = %v, failures are not surfaced", err)
	}
	if !result.Failed() {
		t.Error("result should be a failure")
	}
	if f.Creating {
		t.Error("Creating should be reset after failure")
	}
	if f.State() != StateEditing {
		t.Errorf("state = %v, want editing", f.State())
	}
	if f.SandboxTitle != "my-app" || f.SelectedPreset != "p1" {
		t.Errorf("values not preserved: title=%q preset=%q", f.SandboxTitle, f.SelectedPreset)
	}
	if len(nav.Calls()) != 0 {
		t.Errorf("navigation on failure: %v", nav.Calls())
	}
}

func TestSubmitSuccessNavigatesOnce(t *testing.T) {
	tests := []struct {
		name string
		sb   *sandbox.Sandbox
		want string
	}{
		{"anonymous", &sandbox.Sandbox{ID: "abc"}, "/sandbox/abc/edit"},
		{"with author", &sandbox.Sandbox{ID: "abc", Author: &sandbox.Author{Username: "ives"}}, "/ives/abc/edit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{result: sandbox.Success(tt.sb)}
			nav := &navigate.Recorder{}

			f := loadedForm()
			f.UpdateTitle("my-app")
			f.SelectPreset("p1")

			if _, err := f.Submit(context.Background(), svc, nav); err != nil {
				t.Fatalf("Submit() error = %v", err)
			}

			calls := nav.Calls()
			if len(calls) != 1 {
				t.Fatalf("Navigate called %d times, want 1", len(calls))
			}
			if calls[0] != tt.want {
				t.Errorf("Navigate(%q), want %q", calls[0], tt.want)
			}
			if f.State() != StateNavigated {
				t.Errorf("state = %v, want navigated", f.State())
			}
			if f.NavigatedTo() != tt.want {
				t.Errorf("NavigatedTo() = %q", f.NavigatedTo())
			}
		})
	}
}

func TestCompleteNavigationError(t *testing.T) {
	boom := errors.New("no browser")
	nav := &navigate.Recorder{Err: boom}

	f := loadedForm()
	f.Begin()
	url, err := f.Complete(sandbox.Success(&sandbox.Sandbox{ID: "abc"}), nav)
	if !errors.Is(err, boom) {
		t.Errorf("Complete() error = %v, want %v", err, boom)
	}
	if url != "/sandbox/abc/edit" {
		t.Errorf("url = %q", url)
	}
}

func TestBeginDoesNotValidate(t *testing.T) {
	f := loadedForm()
	req := f.Begin()
	if !f.Creating {
		t.Error("Begin should set Creating")
	}
	if req.Title != "" || req.ForkTarget != "" {
		t.Errorf("Begin() = %+v", req)
	}
}
