// Package preset models the starter templates a new sandbox can be forked
// from, and the catalog the development server serves them from.
package preset

// NoPreset is the selection meaning "create an empty sandbox".
const NoPreset = "nopreset"

// Preset is a named starter template. SandboxID is the sandbox a new one is
// forked from; it may be empty.
type Preset struct {
	ID        string `json:"id" toml:"id" yaml:"id"`
	Icon      string `json:"icon" toml:"icon" yaml:"icon"`
	Name      string `json:"name" toml:"name" yaml:"name"`
	SandboxID string `json:"sandboxId,omitempty" toml:"sandbox_id" yaml:"sandbox_id"`
}

// Find returns the preset with the given id.
func Find(presets []Preset, id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// ForkTarget resolves a selection to the sandbox to fork. The empty string
// means no fork target, which is what NoPreset and unknown ids resolve to.
func ForkTarget(presets []Preset, selected string) string {
	p, ok := Find(presets, selected)
	if !ok {
		return ""
	}
	return p.SandboxID
}
