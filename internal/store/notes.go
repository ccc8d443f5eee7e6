package store

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/notify"
)

// DefaultNoteColor is applied when a sticky note is saved without one
const DefaultNoteColor = "#fff8dc"

// StickyNotes returns the ordered note list for a calendar date key
func (s *Store) StickyNotes(date string) []models.StickyNote {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	notes := s.notes[date]
	out := make([]models.StickyNote, len(notes))
	copy(out, notes)
	return out
}

// NotesByDate returns a copy of the full date→notes mapping
func (s *Store) NotesByDate() map[string][]models.StickyNote {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	out := make(map[string][]models.StickyNote, len(s.notes))
	for date, list := range s.notes {
		copied := make([]models.StickyNote, len(list))
		copy(copied, list)
		out[date] = copied
	}
	return out
}

// NoteDates returns every date key holding at least one note, sorted
func (s *Store) NoteDates() []string {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	dates := make([]string, 0, len(s.notes))
	for d := range s.notes {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// UpsertStickyNote updates the note with existingID under date in
// place when found, otherwise appends a new note with a fresh id.
func (s *Store) UpsertStickyNote(date string, existingID *uuid.UUID, text, color string) (models.StickyNote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.StickyNote{}, &ValidationError{Field: "text"}
	}
	if color == "" {
		color = DefaultNoteColor
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if existingID != nil {
		notes := s.notes[date]
		for i := range notes {
			if notes[i].ID == *existingID {
				notes[i].Text = text
				notes[i].Color = color
				s.saveNotes()
				s.notify.Notify("Sticky note saved", notify.Success)
				return notes[i], nil
			}
		}
	}

	note := models.StickyNote{
		ID:        uuid.New(),
		Text:      text,
		Color:     color,
		CreatedAt: time.Now(),
	}
	s.notes[date] = append(s.notes[date], note)
	s.saveNotes()

	s.notify.Notify("Sticky note saved", notify.Success)
	return note, nil
}

// DeleteStickyNote removes the note from whichever date list holds it;
// a date whose list becomes empty loses its key. Idempotent.
func (s *Store) DeleteStickyNote(id uuid.UUID) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for date, notes := range s.notes {
		for i := range notes {
			if notes[i].ID != id {
				continue
			}
			notes = append(notes[:i], notes[i+1:]...)
			if len(notes) == 0 {
				delete(s.notes, date)
			} else {
				s.notes[date] = notes
			}
			s.saveNotes()
			s.notify.Notify("Sticky note deleted", notify.Info)
			return
		}
	}
}
