package ui

import "github.com/lucasb-eyer/go-colorful"

// Theme is a named color set for the dial: outline ring, progress arc and
// center fill.
type Theme struct {
	Name    string
	Outline colorful.Color
	Ring    colorful.Color
	Center  colorful.Color
}

var themes = []Theme{
	{Name: "ember", Outline: mustHex("#5A5A5A"), Ring: mustHex("#FF8C00"), Center: mustHex("#2B1B0E")},
	{Name: "ocean", Outline: mustHex("#44617B"), Ring: mustHex("#00AEFF"), Center: mustHex("#0B1C2B")},
	{Name: "mint", Outline: mustHex("#4E6E5D"), Ring: mustHex("#14FFA1"), Center: mustHex("#0E231A")},
	{Name: "plum", Outline: mustHex("#6B5B73"), Ring: mustHex("#D946EF"), Center: mustHex("#23112B")},
	{Name: "mono", Outline: mustHex("#777777"), Ring: mustHex("#EEEEEE"), Center: mustHex("#111111")},
}

// ThemeByName returns the index of the named theme, falling back to the
// first one when the name is unknown.
func ThemeByName(name string) int {
	for i, t := range themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// LookupTheme returns the named theme, falling back to the first one when
// the name is unknown.
func LookupTheme(name string) Theme {
	return themes[ThemeByName(name)]
}

// ThemeNames lists the available theme names in cycling order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("ui: bad theme color " + s)
	}
	return c
}

// gradientEnd is the light end of the linear readout gradient, derived from
// the arc color so the bar matches the dial.
func (t Theme) gradientEnd() string {
	white := colorful.Color{R: 1, G: 1, B: 1}
	return t.Ring.BlendRgb(white, 0.4).Hex()
}
