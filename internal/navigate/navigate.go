// Package navigate provides the ways sandbox-ctl can take the user to the
// editor of a newly created sandbox.
package navigate

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os/exec"
	"strings"
	"sync"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/logging"
)

// Resolve joins an editor path onto the web base URL. Paths from
// sandbox.EditURL are already escaped and are appended verbatim.
func Resolve(baseURL, path string) (string, error) {
	if baseURL == "" {
		return path, nil
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid web url %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("invalid web url %q: scheme and host are required", baseURL)
	}
	return strings.TrimSuffix(baseURL, "/") + path, nil
}

// Printer writes the resolved URL to Out.
type Printer struct {
	BaseURL string
	Out     io.Writer
}

func (p *Printer) Navigate(path string) error {
	target, err := Resolve(p.BaseURL, path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.Out, target)
	return err
}

// Browser opens the resolved URL with a user-configured command such as
// "xdg-open" or "firefox --new-tab". The URL is appended as the last argument.
type Browser struct {
	BaseURL string
	Command string

	// Run starts the command; defaults to exec.CommandContext(...).Start.
	Run func(ctx context.Context, name string, args ...string) error
}

func (b *Browser) Navigate(path string) error {
	target, err := Resolve(b.BaseURL, path)
	if err != nil {
		return err
	}

	argv, err := shellquote.Split(b.Command)
	if err != nil {
		return fmt.Errorf("invalid open command %q: %w", b.Command, err)
	}
	if len(argv) == 0 {
		return fmt.Errorf("open command is empty")
	}
	argv = append(argv, target)

	logging.Debug("opening editor", "command", shellquote.Join(argv...))

	run := b.Run
	if run == nil {
		run = startCommand
	}
	return run(context.Background(), argv[0], argv[1:]...)
}

func startCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Recorder remembers every URL it is asked to navigate to.
type Recorder struct {
	mu   sync.Mutex
	URLs []string
	Err  error
}

func (r *Recorder) Navigate(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.URLs = append(r.URLs, path)
	return r.Err
}

// Calls returns a copy of the recorded URLs.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.URLs))
	copy(out, r.URLs)
	return out
}
