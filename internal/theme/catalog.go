package theme

// Catalog maps theme names to palettes.
type Catalog interface {
	// Lookup returns the palette for name, or the Default palette when
	// name is unknown.
	Lookup(name Name) Palette
	Contains(name Name) bool
	// Names lists the known themes in display order.
	Names() []Name
}

type staticCatalog struct {
	order    []Name
	palettes map[Name]Palette
}

var builtin = &staticCatalog{
	order: []Name{Default, Dark, HighContrast},
	palettes: map[Name]Palette{
		Default:      mustPalette("#FFFFFF", "#3498DB", "#E74C3C", "#2C3E50"),
		Dark:         mustPalette("#2C3E50", "#3498DB", "#E74C3C", "#ECF0F1"),
		HighContrast: mustPalette("#000000", "#FFFFFF", "#FFFF00", "#FFFFFF"),
	},
}

// Builtin returns the read-only catalog of the three shipped themes.
func Builtin() Catalog { return builtin }

func (c *staticCatalog) Lookup(name Name) Palette {
	if p, ok := c.palettes[name]; ok {
		return p
	}
	return c.palettes[Default]
}

func (c *staticCatalog) Contains(name Name) bool {
	_, ok := c.palettes[name]
	return ok
}

func (c *staticCatalog) Names() []Name {
	out := make([]Name, len(c.order))
	copy(out, c.order)
	return out
}
