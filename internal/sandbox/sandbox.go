// Package sandbox holds the created-sandbox record, the outcome of a
// creation request and the editor URL derived from it.
package sandbox

import (
	"errors"
	"net/url"
)

// Author is the owner of a sandbox.
type Author struct {
	Username string `json:"username"`
}

// Sandbox is a sandbox as returned by the API.
type Sandbox struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	ForkedFrom string  `json:"forkedFrom,omitempty"`
	Author     *Author `json:"author,omitempty"`
}

// AuthorName reduces the author to its username, or "" when there is none.
func AuthorName(sb *Sandbox) string {
	if sb == nil || sb.Author == nil {
		return ""
	}
	return sb.Author.Username
}

// EditURL returns the editor path for a sandbox. author is the username or ""
// for anonymous sandboxes.
func EditURL(sb *Sandbox, author string) string {
	id := url.PathEscape(sb.ID)
	if author == "" {
		return "/sandbox/" + id + "/edit"
	}
	return "/" + url.PathEscape(author) + "/" + id + "/edit"
}

// ErrEmptyResult is the failure reason for a success without a sandbox.
var ErrEmptyResult = errors.New("creation returned no sandbox")

// Result is the outcome of a creation request: either a created sandbox or a
// failure reason, never both.
type Result struct {
	sandbox *Sandbox
	err     error
}

// Success wraps a created sandbox. A nil sandbox is a failure.
func Success(sb *Sandbox) Result {
	if sb == nil {
		return Failure(ErrEmptyResult)
	}
	return Result{sandbox: sb}
}

// Failure wraps the reason a creation request failed.
func Failure(reason error) Result {
	if reason == nil {
		reason = ErrEmptyResult
	}
	return Result{err: reason}
}

// Failed reports whether r is a failure.
func (r Result) Failed() bool {
	return r.err != nil || r.sandbox == nil
}

// Sandbox returns the created sandbox, nil on failure.
func (r Result) Sandbox() *Sandbox {
	if r.Failed() {
		return nil
	}
	return r.sandbox
}

// Err returns the failure reason, nil on success.
func (r Result) Err() error {
	if r.err == nil && r.sandbox == nil {
		return ErrEmptyResult
	}
	return r.err
}
