package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/notify"
	"github.com/tomhall/projex/internal/storage"
)

func populate(t *testing.T, f *fixture) {
	t.Helper()

	team, err := f.store.CreateTeam(TeamFields{Name: "Core"})
	require.NoError(t, err)
	project, err := f.store.CreateProject(ProjectFields{Name: "Launch", Team: &team.ID})
	require.NoError(t, err)
	_, err = f.store.CreateTask(TaskFields{Title: "Prepare", Project: &project.ID, Deadline: "2026-10-01"})
	require.NoError(t, err)
	_, err = f.store.CreateTask(TaskFields{Title: "Finish", Status: models.StatusDone})
	require.NoError(t, err)
	_, err = f.store.UpsertStickyNote("2026-10-01", nil, "launch day", "")
	require.NoError(t, err)
}

func TestExportShape(t *testing.T) {
	f := newFixture(t)
	populate(t, f)

	data, err := f.store.ExportJSON()
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"tasks", "projects", "teams", "stickyNotes", "settings", "exportDate"} {
		assert.Contains(t, doc, key)
	}
}

func TestImportRoundTrip(t *testing.T) {
	f := newFixture(t)
	populate(t, f)

	data, err := f.store.ExportJSON()
	require.NoError(t, err)
	// Reopen from the backend so both snapshots carry JSON-decoded
	// timestamps without monotonic clock readings
	want := f.reopen(t).Export()

	fresh, err := Open(storage.NewMemory(), f.confirmer, notify.Discard)
	require.NoError(t, err)
	require.NoError(t, fresh.Import(data))

	got := fresh.Export()
	assert.Equal(t, want.Tasks, got.Tasks)
	assert.Equal(t, want.Projects, got.Projects)
	assert.Equal(t, want.Teams, got.Teams)
	assert.Equal(t, want.StickyNotes, got.StickyNotes)
	assert.Equal(t, want.Settings, got.Settings)
}

func TestImportRejectsGarbage(t *testing.T) {
	f := newFixture(t)
	populate(t, f)

	err := f.store.Import([]byte("not json at all"))
	require.Error(t, err)
	assert.Len(t, f.store.Tasks(), 2, "a failed import leaves state untouched")
}

func TestClearAllKeepsSettings(t *testing.T) {
	f := newFixture(t)
	populate(t, f)

	custom := models.Settings{Username: "Taylor", Role: "Lead", Theme: models.ThemeLight, Notifications: true}
	f.store.SaveSettings(custom)

	wiped, err := f.store.ClearAll(context.Background())
	require.NoError(t, err)
	assert.True(t, wiped)

	assert.Empty(t, f.store.Tasks())
	assert.Empty(t, f.store.Projects())
	assert.Empty(t, f.store.Teams())
	assert.Empty(t, f.store.NoteDates())
	assert.Equal(t, custom, f.store.Settings())

	assert.Equal(t, []string{"settings"}, f.kv.Keys(), "collection keys are removed from the backend")
}

func TestClearAllDeclined(t *testing.T) {
	f := newFixture(t)
	populate(t, f)
	f.confirmer.answer = false

	wiped, err := f.store.ClearAll(context.Background())
	require.NoError(t, err)
	assert.False(t, wiped)
	assert.Len(t, f.store.Tasks(), 2)
}

func TestSettingsLazyDefaults(t *testing.T) {
	f := newFixture(t)

	settings := f.store.Settings()
	assert.Equal(t, models.DefaultSettings(), settings)
	assert.NotContains(t, f.kv.Keys(), "settings", "defaults are not persisted until saved")

	settings.Theme = models.ThemeHome
	f.store.SaveSettings(settings)

	reopened := f.reopen(t)
	assert.Equal(t, models.ThemeHome, reopened.Settings().Theme)
	assert.Equal(t, settings.Username, reopened.Settings().Username)
}
