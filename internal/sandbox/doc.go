// Package sandbox holds the sandbox record returned by the API and the
// result of a creation request.
//
// A creation attempt yields a Result that is either a Success carrying the
// created Sandbox or a Failure carrying the reason:
//
//	res := svc.CreateSandbox(ctx, "my-app", "s1")
//	if res.Failed() {
//	    return res.Err()
//	}
//	url := sandbox.EditURL(res.Sandbox(), sandbox.AuthorName(res.Sandbox()))
//
// # Edit URLs
//
// The editor lives at /<username>/<id>/edit for sandboxes with an author and
// at /sandbox/<id>/edit otherwise.
package sandbox
