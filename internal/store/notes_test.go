package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertStickyNoteAppends(t *testing.T) {
	f := newFixture(t)

	first, err := f.store.UpsertStickyNote("2026-09-01", nil, "standup notes", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultNoteColor, first.Color)

	second, err := f.store.UpsertStickyNote("2026-09-01", nil, "retro ideas", "#aadcff")
	require.NoError(t, err)

	notes := f.store.StickyNotes("2026-09-01")
	require.Len(t, notes, 2)
	assert.Equal(t, first.ID, notes[0].ID, "insertion order is kept")
	assert.Equal(t, second.ID, notes[1].ID)
}

func TestUpsertStickyNoteUpdatesInPlace(t *testing.T) {
	f := newFixture(t)

	note, err := f.store.UpsertStickyNote("2026-09-02", nil, "draft", "")
	require.NoError(t, err)

	updated, err := f.store.UpsertStickyNote("2026-09-02", &note.ID, "final", "#ffd1dc")
	require.NoError(t, err)
	assert.Equal(t, note.ID, updated.ID)

	notes := f.store.StickyNotes("2026-09-02")
	require.Len(t, notes, 1)
	assert.Equal(t, "final", notes[0].Text)
	assert.Equal(t, "#ffd1dc", notes[0].Color)
}

func TestUpsertStickyNoteUnknownIDFallsBackToAppend(t *testing.T) {
	f := newFixture(t)

	stale := uuid.New()
	note, err := f.store.UpsertStickyNote("2026-09-03", &stale, "fresh", "")
	require.NoError(t, err)
	assert.NotEqual(t, stale, note.ID)
	assert.Len(t, f.store.StickyNotes("2026-09-03"), 1)
}

func TestUpsertStickyNoteEmptyText(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.UpsertStickyNote("2026-09-04", nil, "   ", "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "text", verr.Field)
}

func TestDeleteStickyNoteRemovesEmptyDate(t *testing.T) {
	f := newFixture(t)

	note, err := f.store.UpsertStickyNote("2026-09-05", nil, "only one", "")
	require.NoError(t, err)
	_, err = f.store.UpsertStickyNote("2026-09-06", nil, "elsewhere", "")
	require.NoError(t, err)

	f.store.DeleteStickyNote(note.ID)

	assert.Empty(t, f.store.StickyNotes("2026-09-05"))
	assert.Equal(t, []string{"2026-09-06"}, f.store.NoteDates(), "an emptied date drops its key")

	// idempotent
	f.store.DeleteStickyNote(note.ID)
	assert.Equal(t, []string{"2026-09-06"}, f.store.NoteDates())
}

func TestNoteDatesSorted(t *testing.T) {
	f := newFixture(t)

	for _, date := range []string{"2026-12-01", "2026-01-15", "2026-06-30"} {
		_, err := f.store.UpsertStickyNote(date, nil, "note for "+date, "")
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"2026-01-15", "2026-06-30", "2026-12-01"}, f.store.NoteDates())
}
