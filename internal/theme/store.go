package theme

import (
	"github.com/rs/zerolog"

	"github.com/idilsaglam/lucky/internal/store/jsonstore"
)

const preferenceKey = "theme"

// Preferences persists the selected theme name.
type Preferences interface {
	Load() Name
	Save(name Name)
}

type preference struct {
	Name Name `json:"name"`
}

// PreferenceStore keeps the theme name under the "theme" key of a JSON
// document. Persistence is best-effort: failures are logged, never returned.
type PreferenceStore struct {
	db     *jsonstore.Store
	logger zerolog.Logger
}

func NewPreferenceStore(db *jsonstore.Store, logger zerolog.Logger) *PreferenceStore {
	return &PreferenceStore{db: db, logger: logger}
}

// Load returns the stored theme name, or Default when nothing usable is stored.
func (s *PreferenceStore) Load() Name {
	ok, err := s.db.Exists(preferenceKey)
	if err != nil {
		s.logger.Error().Err(err).Str("path", s.db.Path()).Msg("error reading theme preference")
		return Default
	}
	if !ok {
		return Default
	}
	var p preference
	if err := s.db.Get(preferenceKey, &p); err != nil {
		s.logger.Error().Err(err).Str("path", s.db.Path()).Msg("error reading theme preference")
		return Default
	}
	if p.Name == "" {
		return Default
	}
	return p.Name
}

func (s *PreferenceStore) Save(name Name) {
	if err := s.db.Put(preferenceKey, preference{Name: name}); err != nil {
		s.logger.Error().Err(err).Str("path", s.db.Path()).Str("theme", string(name)).Msg("error writing theme preference")
	}
}
