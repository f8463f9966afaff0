package theme

type cachedPalette struct {
	name    Name
	palette Palette
}

// Manager owns the active theme. It is built once at startup and handed to
// every screen; all calls happen on the UI goroutine, so it takes no locks.
type Manager struct {
	catalog Catalog
	prefs   Preferences
	current Name
	cached  *cachedPalette
}

// NewManager starts from the persisted preference with an empty cache.
func NewManager(catalog Catalog, prefs Preferences) *Manager {
	return &Manager{
		catalog: catalog,
		prefs:   prefs,
		current: prefs.Load(),
	}
}

func (m *Manager) Current() Name { return m.current }

func (m *Manager) Names() []Name { return m.catalog.Names() }

// Palette returns the palette of the current theme. The catalog is asked at
// most once between two SetTheme calls.
func (m *Manager) Palette() Palette {
	if m.cached == nil || m.cached.name != m.current {
		m.cached = &cachedPalette{
			name:    m.current,
			palette: m.catalog.Lookup(m.current),
		}
	}
	return m.cached.palette
}

// SetTheme switches to name and persists it. Unknown names are ignored.
// A failed save keeps the new theme for the rest of the session.
func (m *Manager) SetTheme(name Name) {
	if !m.catalog.Contains(name) {
		return
	}
	m.current = name
	m.cached = nil
	m.prefs.Save(name)
}
