// Package store is the single authoritative in-memory holder of the
// four entity collections and settings. Every mutation is followed by a
// whole-collection snapshot save to the persistence adapter; a failed
// save is reported and logged but in-memory state stays the source of
// truth for the rest of the session.
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/tomhall/projex/internal/confirm"
	"github.com/tomhall/projex/internal/logger"
	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/notify"
	"github.com/tomhall/projex/internal/storage"
)

// Fixed persistence keys, one JSON blob per collection
const (
	keyTasks       = "tasks"
	keyProjects    = "projects"
	keyTeams       = "teams"
	keyStickyNotes = "stickyNotes"
	keySettings    = "settings"
)

type Store struct {
	mtx     sync.RWMutex
	kv      storage.KV
	confirm confirm.Confirmer
	notify  notify.Notifier

	tasks    []models.Task
	projects []models.Project
	teams    []models.Team
	notes    map[string][]models.StickyNote
	settings *models.Settings
}

// Open loads every collection from the persistence adapter. An absent
// key is an empty collection, not an error.
func Open(kv storage.KV, confirmer confirm.Confirmer, notifier notify.Notifier) (*Store, error) {
	s := &Store{
		kv:      kv,
		confirm: confirmer,
		notify:  notifier,
		notes:   make(map[string][]models.StickyNote),
	}

	if err := s.load(keyTasks, &s.tasks); err != nil {
		return nil, err
	}
	if err := s.load(keyProjects, &s.projects); err != nil {
		return nil, err
	}
	if err := s.load(keyTeams, &s.teams); err != nil {
		return nil, err
	}
	if err := s.load(keyStickyNotes, &s.notes); err != nil {
		return nil, err
	}
	if s.notes == nil {
		s.notes = make(map[string][]models.StickyNote)
	}

	var settings models.Settings
	data, err := kv.Get(keySettings)
	if err != nil {
		return nil, err
	}
	if data != nil {
		if err := json.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("decode %s: %w", keySettings, err)
		}
		s.settings = &settings
	}

	return s, nil
}

func (s *Store) load(key string, dst interface{}) error {
	data, err := s.kv.Get(key)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// save serializes one collection under its key. Persistence failures do
// not unwind the mutation that triggered them: the error is logged and
// surfaced through the notifier only.
func (s *Store) save(key string, src interface{}) {
	data, err := json.Marshal(src)
	if err != nil {
		logger.Error("encode snapshot", err, zap.String("key", key))
		s.notify.Notify("Failed to save changes", notify.Error)
		return
	}
	if err := s.kv.Put(key, data); err != nil {
		logger.Error("save snapshot", err, zap.String("key", key))
		s.notify.Notify("Failed to save changes", notify.Error)
	}
}

func (s *Store) saveTasks()    { s.save(keyTasks, s.tasks) }
func (s *Store) saveProjects() { s.save(keyProjects, s.projects) }
func (s *Store) saveTeams()    { s.save(keyTeams, s.teams) }
func (s *Store) saveNotes()    { s.save(keyStickyNotes, s.notes) }
