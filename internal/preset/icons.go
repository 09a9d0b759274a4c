package preset

// NoPresetIcon is the glyph shown on the "No Preset" tile.
const NoPresetIcon = "</>"

var iconMap = map[string]string{
	"react": "⚛",
}

// Icon resolves an icon key to its glyph. Unknown keys render nothing.
func Icon(key string) string {
	return iconMap[key]
}
