package navigate

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		path    string
		want    string
		wantErr bool
	}{
		{"no base", "", "/sandbox/abc/edit", "/sandbox/abc/edit", false},
		{"base", "http://localhost:8080", "/sandbox/abc/edit", "http://localhost:8080/sandbox/abc/edit", false},
		{"base with slash", "https://example.com/", "/ives/abc/edit", "https://example.com/ives/abc/edit", false},
		{"base with prefix", "https://example.com/s", "/sandbox/a%20b/edit", "https://example.com/s/sandbox/a%20b/edit", false},
		{"relative base", "example.com", "/x", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.base, tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{BaseURL: "http://localhost:8080", Out: &buf}

	if err := p.Navigate("/sandbox/abc/edit"); err != nil {
		t.Fatalf("Navigate() error = %v", err)
	}
	if got := buf.String(); got != "http://localhost:8080/sandbox/abc/edit\n" {
		t.Errorf("output = %q", got)
	}
}

func TestBrowser(t *testing.T) {
	var gotName string
	var gotArgs []string
	b := &Browser{
		BaseURL: "http://localhost:8080",
		Command: `firefox --new-tab "--profile=My Profile"`,
		Run: func(ctx context.Context, name string, args ...string) error {
			gotName = name
			gotArgs = args
			return nil
		},
	}

	if err := b.Navigate("/sandbox/abc/edit"); err != nil {
		t.Fatalf("Navigate() error = %v", err)
	}
	if gotName != "firefox" {
		t.Errorf("name = %q, want firefox", gotName)
	}
	want := []string{"--new-tab", "--profile=My Profile", "http://localhost:8080/sandbox/abc/edit"}
	if !reflect.DeepEqual(gotArgs, want) {
		t.Errorf("args = %q, want %q", gotArgs, want)
	}
}

func TestBrowserErrors(t *testing.T) {
	run := func(ctx context.Context, name string, args ...string) error { return nil }

	if err := (&Browser{Command: "", Run: run}).Navigate("/x"); err == nil {
		t.Error("expected error for empty command")
	}
	if err := (&Browser{Command: `open "unterminated`, Run: run}).Navigate("/x"); err == nil {
		t.Error("expected error for unterminated quote")
	}

	boom := errors.New("boom")
	b := &Browser{Command: "xdg-open", Run: func(ctx context.Context, name string, args ...string) error { return boom }}
	if err := b.Navigate("/x"); !errors.Is(err, boom) {
		t.Errorf("Navigate() error = %v, want %v", err, boom)
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	_ = r.Navigate("/a")
	_ = r.Navigate("/b")

	if got := r.Calls(); !reflect.DeepEqual(got, []string{"/a", "/b"}) {
		t.Errorf("Calls() = %v", got)
	}
}
