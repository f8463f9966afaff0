// Package theme holds the built-in color palettes, the persisted theme
// preference and the Manager that ties them together for the UI.
package theme

import colorful "github.com/lucasb-eyer/go-colorful"

// Name identifies a theme. The known set is closed; see Builtin.
type Name string

const (
	Default      Name = "Default"
	Dark         Name = "Dark"
	HighContrast Name = "High Contrast"
)

// Palette is the four semantic colors every screen draws with.
// Palettes compare with ==.
type Palette struct {
	Background colorful.Color
	Primary    colorful.Color
	Secondary  colorful.Color
	Text       colorful.Color
}

func mustPalette(background, primary, secondary, text string) Palette {
	return Palette{
		Background: mustHex(background),
		Primary:    mustHex(primary),
		Secondary:  mustHex(secondary),
		Text:       mustHex(text),
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("theme: bad color " + s + ": " + err.Error())
	}
	return c
}
