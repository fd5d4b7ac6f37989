package render

// Theme holds the styling configuration of the diagram. Styling is
// configuration, not core: changing a theme never changes layout or
// hit-test semantics, except for Radius and YOffset, which feed the
// shared geometry.
type Theme struct {
	Background Color            // surface background fill
	Connector  Color            // parent–child and sibling-span lines
	Label      Color            // text labels
	Glyph      Color            // back-navigation glyph
	Fallback   Color            // marker color for unlisted tags
	TagColors  map[string]Color // marker color per tag
	Labeled    map[string]bool  // tags that always get a text label
	Radius     float64          // marker radius
	YOffset    float64          // vertical offset of the depth-0 band
}

// DefaultTheme returns the stock look of the visualizer.
func DefaultTheme() Theme {
	return Theme{
		Background: "#1d1f21",
		Connector:  "#5f6160",
		Label:      "#c5c8c6",
		Glyph:      "#c5c8c6",
		Fallback:   "#888888",
		TagColors: map[string]Color{
			"#document": "#ffffff",
			"html":      "#de935f",
			"head":      "#b5bd68",
			"body":      "#81a2be",
			"a":         "#f0c674",
			"img":       "#b294bb",
			"script":    "#cc6666",
			"form":      "#8abeb7",
			"div":       "#969896",
		},
		Labeled: map[string]bool{
			"#document": true,
			"html":      true,
			"head":      true,
			"body":      true,
		},
		Radius:  5,
		YOffset: 20,
	}
}

// color returns the marker color for a tag.
func (t Theme) color(tag string) Color {
	if c, ok := t.TagColors[tag]; ok {
		return c
	}
	return t.Fallback
}
