// Package create implements the sandbox creation form independently of any
// user interface.
//
// A Form moves through four states:
//
//	Loading   no presets yet
//	Editing   presets loaded, user edits title and selection
//	Creating  a creation request is in flight
//	Navigated the request succeeded and the editor URL was handed to a Navigator
//
// The form reaches the outside world only through the Service and Navigator
// capabilities it is given:
//
//	f := create.NewForm()
//	presets, _ := svc.FetchPresets(ctx)
//	f.Load(presets)
//	f.UpdateTitle("my-app")
//	f.SelectPreset("react")
//	if f.IsValid() {
//	    f.Submit(ctx, svc, nav)
//	}
//
// Interactive front ends that run the request asynchronously split Submit
// into Begin and Complete.
package create
