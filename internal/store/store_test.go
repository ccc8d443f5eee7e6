package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomhall/projex/internal/confirm"
	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/notify"
	"github.com/tomhall/projex/internal/storage"
)

// scriptedConfirmer answers every confirmation with a fixed decision
// and records the messages it was asked
type scriptedConfirmer struct {
	answer   bool
	messages []string
}

func (c *scriptedConfirmer) Confirm(_ context.Context, message string) (bool, error) {
	c.messages = append(c.messages, message)
	return c.answer, nil
}

type notification struct {
	message  string
	severity notify.Severity
}

type recordingNotifier struct {
	events []notification
}

func (n *recordingNotifier) Notify(message string, severity notify.Severity) {
	n.events = append(n.events, notification{message: message, severity: severity})
}

func (n *recordingNotifier) last(t *testing.T) notification {
	t.Helper()
	require.NotEmpty(t, n.events)
	return n.events[len(n.events)-1]
}

type fixture struct {
	store     *Store
	kv        *storage.Memory
	confirmer *scriptedConfirmer
	notifier  *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	kv := storage.NewMemory()
	confirmer := &scriptedConfirmer{answer: true}
	notifier := &recordingNotifier{}

	s, err := Open(kv, confirmer, notifier)
	require.NoError(t, err)

	return &fixture{store: s, kv: kv, confirmer: confirmer, notifier: notifier}
}

// reopen builds a fresh store over the same backend, simulating an
// application restart
func (f *fixture) reopen(t *testing.T) *Store {
	t.Helper()
	s, err := Open(f.kv, confirm.Always, notify.Discard)
	require.NoError(t, err)
	return s
}

func TestOpenEmptyBackend(t *testing.T) {
	f := newFixture(t)

	require.Empty(t, f.store.Tasks())
	require.Empty(t, f.store.Projects())
	require.Empty(t, f.store.Teams())
	require.Empty(t, f.store.NoteDates())
}

func TestOpenCorruptBlob(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Put("tasks", []byte("{not json")))

	_, err := Open(kv, confirm.Always, notify.Discard)
	require.Error(t, err)
}

// readingConfirmer reads the store while answering, the way a prompt
// that renders current state would
type readingConfirmer struct {
	store *Store
	seen  int
}

func (c *readingConfirmer) Confirm(context.Context, string) (bool, error) {
	c.seen = len(c.store.Tasks())
	return true, nil
}

func TestConfirmerMayReadStore(t *testing.T) {
	c := &readingConfirmer{}
	s, err := Open(storage.NewMemory(), c, notify.Discard)
	require.NoError(t, err)
	c.store = s

	_, err = s.CreateTask(TaskFields{Title: "done", Status: models.StatusDone})
	require.NoError(t, err)

	count, err := s.ClearCompleted(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, c.seen, "the confirmer observed the store mid-operation")

	project, err := s.CreateProject(ProjectFields{Name: "locked"})
	require.NoError(t, err)
	_, err = s.CreateTask(TaskFields{Title: "attached", Project: &project.ID})
	require.NoError(t, err)

	removed, err := s.DeleteProject(context.Background(), project.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	wiped, err := s.ClearAll(context.Background())
	require.NoError(t, err)
	assert.True(t, wiped)
	assert.Empty(t, s.Tasks())
}
