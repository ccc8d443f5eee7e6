package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/notify"
)

// Backup is the full-backup document: human-inspectable JSON holding
// every collection plus settings. Importing one must reproduce an
// identical snapshot.
type Backup struct {
	Tasks       []models.Task                  `json:"tasks"`
	Projects    []models.Project               `json:"projects"`
	Teams       []models.Team                  `json:"teams"`
	StickyNotes map[string][]models.StickyNote `json:"stickyNotes"`
	Settings    models.Settings                `json:"settings"`
	ExportDate  time.Time                      `json:"exportDate"`
}

// Export captures the current state of all collections and settings
func (s *Store) Export() Backup {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	tasks := make([]models.Task, len(s.tasks))
	copy(tasks, s.tasks)
	projects := make([]models.Project, len(s.projects))
	copy(projects, s.projects)
	teams := make([]models.Team, len(s.teams))
	copy(teams, s.teams)
	notes := make(map[string][]models.StickyNote, len(s.notes))
	for date, list := range s.notes {
		copied := make([]models.StickyNote, len(list))
		copy(copied, list)
		notes[date] = copied
	}

	settings := models.DefaultSettings()
	if s.settings != nil {
		settings = *s.settings
	}

	return Backup{
		Tasks:       tasks,
		Projects:    projects,
		Teams:       teams,
		StickyNotes: notes,
		Settings:    settings,
		ExportDate:  time.Now(),
	}
}

// ExportJSON serializes the backup document, indented for inspection
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s.Export(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return data, nil
}

// Import replaces every collection and the settings with the contents
// of a backup document and persists the result
func (s *Store) Import(data []byte) error {
	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("decode backup: %w", err)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.tasks = backup.Tasks
	s.projects = backup.Projects
	s.teams = backup.Teams
	s.notes = backup.StickyNotes
	if s.notes == nil {
		s.notes = make(map[string][]models.StickyNote)
	}
	settings := backup.Settings
	s.settings = &settings

	s.saveTasks()
	s.saveProjects()
	s.saveTeams()
	s.saveNotes()
	s.save(keySettings, settings)

	s.notify.Notify("Data imported successfully", notify.Success)
	return nil
}

// ClearAll wipes the four collections after confirmation, removing
// their persistence keys. Settings survive. Returns whether the wipe
// happened.
func (s *Store) ClearAll(ctx context.Context) (bool, error) {
	// The prompt needs no state, so it resolves before any lock
	ok, err := s.confirm.Confirm(ctx, "This will delete ALL tasks, projects, teams, and sticky notes. This cannot be undone! Are you absolutely sure?")
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.tasks = nil
	s.projects = nil
	s.teams = nil
	s.notes = make(map[string][]models.StickyNote)

	for _, key := range []string{keyTasks, keyProjects, keyTeams, keyStickyNotes} {
		if err := s.kv.Delete(key); err != nil {
			s.notify.Notify("Failed to clear stored data", notify.Error)
			return true, err
		}
	}

	s.notify.Notify("All data cleared", notify.Info)
	return true, nil
}
