package sandbox

import (
	"errors"
	"testing"
)

func TestEditURL(t *testing.T) {
	tests := []struct {
		name   string
		sb     *Sandbox
		author string
		want   string
	}{
		{"anonymous", &Sandbox{ID: "abc"}, "", "/sandbox/abc/edit"},
		{"with author", &Sandbox{ID: "abc"}, "ives", "/ives/abc/edit"},
		{"escaped", &Sandbox{ID: "a b"}, "x/y", "/x%2Fy/a%20b/edit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EditURL(tt.sb, tt.author); got != tt.want {
				t.Errorf("EditURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthorName(t *testing.T) {
	if got := AuthorName(nil); got != "" {
		t.Errorf("AuthorName(nil) = %q", got)
	}
	if got := AuthorName(&Sandbox{ID: "a"}); got != "" {
		t.Errorf("AuthorName(no author) = %q", got)
	}
	if got := AuthorName(&Sandbox{ID: "a", Author: &Author{Username: "ives"}}); got != "ives" {
		t.Errorf("AuthorName() = %q, want ives", got)
	}
}

func TestResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		sb := &Sandbox{ID: "abc"}
		r := Success(sb)
		if r.Failed() {
			t.Error("Success should not be failed")
		}
		if r.Sandbox() != sb {
			t.Error("Sandbox() should return the wrapped sandbox")
		}
		if r.Err() != nil {
			t.Errorf("Err() = %v, want nil", r.Err())
		}
	})

	t.Run("failure", func(t *testing.T) {
		reason := errors.New("boom")
		r := Failure(reason)
		if !r.Failed() {
			t.Error("Failure should be failed")
		}
		if r.Sandbox() != nil {
			t.Error("Sandbox() should be nil on failure")
		}
		if !errors.Is(r.Err(), reason) {
			t.Errorf("Err() = %v, want %v", r.Err(), reason)
		}
	})

	t.Run("nil sandbox is failure", func(t *testing.T) {
		r := Success(nil)
		if !r.Failed() {
			t.Error("Success(nil) should be failed")
		}
		if !errors.Is(r.Err(), ErrEmptyResult) {
			t.Errorf("Err() = %v, want ErrEmptyResult", r.Err())
		}
	})

	t.Run("zero value is failure", func(t *testing.T) {
		var r Result
		if !r.Failed() {
			t.Error("zero Result should be failed")
		}
		if r.Err() == nil {
			t.Error("zero Result should carry a reason")
		}
	})
}
