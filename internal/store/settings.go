package store

import (
	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/notify"
)

// Settings returns the stored settings, lazily falling back to defaults
// when nothing has been saved yet
func (s *Store) Settings() models.Settings {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if s.settings == nil {
		return models.DefaultSettings()
	}
	return *s.settings
}

// SaveSettings replaces and persists the settings singleton
func (s *Store) SaveSettings(settings models.Settings) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.settings = &settings
	s.save(keySettings, settings)
	s.notify.Notify("Settings saved successfully", notify.Success)
}
