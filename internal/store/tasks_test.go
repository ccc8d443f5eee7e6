package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/notify"
)

func TestCreateTaskDefaults(t *testing.T) {
	f := newFixture(t)

	task, err := f.store.CreateTask(TaskFields{Title: "  Write report  "})
	require.NoError(t, err)

	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, models.CategoryDevelopment, task.Category)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, models.StatusToDo, task.Status)
	assert.False(t, task.Completed)
	assert.NotEqual(t, uuid.Nil, task.ID)

	last := f.notifier.last(t)
	assert.Equal(t, "Task created successfully", last.message)
	assert.Equal(t, notify.Success, last.severity)
}

func TestCreateTaskEmptyTitle(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.CreateTask(TaskFields{Title: "   "})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
	assert.Empty(t, f.store.Tasks())
}

func TestCreateTaskInDoneColumnIsCompleted(t *testing.T) {
	f := newFixture(t)

	task, err := f.store.CreateTask(TaskFields{Title: "Ship it", Status: models.StatusDone})
	require.NoError(t, err)
	assert.True(t, task.Completed)
}

func TestTasksNewestFirst(t *testing.T) {
	f := newFixture(t)

	for _, title := range []string{"first", "second", "third"} {
		_, err := f.store.CreateTask(TaskFields{Title: title})
		require.NoError(t, err)
	}

	tasks := f.store.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, "third", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "first", tasks[2].Title)
}

func TestUpdateTaskLeavesWorkflowAlone(t *testing.T) {
	f := newFixture(t)

	task, err := f.store.CreateTask(TaskFields{Title: "Review PR", Status: models.StatusReview})
	require.NoError(t, err)

	updated, err := f.store.UpdateTask(task.ID, TaskFields{
		Title:    "Review the PR",
		Priority: models.PriorityHigh,
	})
	require.NoError(t, err)

	assert.Equal(t, "Review the PR", updated.Title)
	assert.Equal(t, models.PriorityHigh, updated.Priority)
	assert.Equal(t, models.StatusReview, updated.Status)
	assert.False(t, updated.Completed)
}

func TestUpdateTaskMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.UpdateTask(uuid.New(), TaskFields{Title: "anything"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestToggleTaskCompletionKeepsStatus(t *testing.T) {
	f := newFixture(t)

	task, err := f.store.CreateTask(TaskFields{Title: "Fix bug", Status: models.StatusInProgress})
	require.NoError(t, err)

	f.store.ToggleTaskCompletion(task.ID)

	got, err := f.store.TaskByID(task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, models.StatusInProgress, got.Status, "toggle must not move the task")
	assert.Equal(t, "Task completed", f.notifier.last(t).message)

	f.store.ToggleTaskCompletion(task.ID)

	got, err = f.store.TaskByID(task.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
	assert.Equal(t, "Task reopened", f.notifier.last(t).message)
}

func TestToggleTaskCompletionMissingIsNoOp(t *testing.T) {
	f := newFixture(t)

	before := len(f.notifier.events)
	f.store.ToggleTaskCompletion(uuid.New())
	assert.Len(t, f.notifier.events, before)
}

func TestMoveTaskToStatusDerivesCompletion(t *testing.T) {
	f := newFixture(t)

	task, err := f.store.CreateTask(TaskFields{Title: "Deploy"})
	require.NoError(t, err)

	f.store.MoveTaskToStatus(task.ID, models.StatusDone)
	got, err := f.store.TaskByID(task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, models.StatusDone, got.Status)

	f.store.MoveTaskToStatus(task.ID, models.StatusQA)
	got, err = f.store.TaskByID(task.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed, "leaving done clears completion")
	assert.Equal(t, models.StatusQA, got.Status)
}

func TestMoveTaskToUnknownStatusIsNoOp(t *testing.T) {
	f := newFixture(t)

	task, err := f.store.CreateTask(TaskFields{Title: "Odd", Status: models.StatusDone})
	require.NoError(t, err)

	f.store.MoveTaskToStatus(task.ID, models.Status("garbage"))

	got, err := f.store.TaskByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, got.Status, "only board columns are valid move targets")
	assert.True(t, got.Completed)
}

func TestDeleteTaskIdempotent(t *testing.T) {
	f := newFixture(t)

	task, err := f.store.CreateTask(TaskFields{Title: "Temp"})
	require.NoError(t, err)

	f.store.DeleteTask(task.ID)
	assert.Empty(t, f.store.Tasks())

	f.store.DeleteTask(task.ID)
	assert.Empty(t, f.store.Tasks())
}

func TestClearCompleted(t *testing.T) {
	f := newFixture(t)

	keep, err := f.store.CreateTask(TaskFields{Title: "keep"})
	require.NoError(t, err)
	done1, err := f.store.CreateTask(TaskFields{Title: "done one", Status: models.StatusDone})
	require.NoError(t, err)
	done2, err := f.store.CreateTask(TaskFields{Title: "done two", Status: models.StatusDone})
	require.NoError(t, err)

	count, err := f.store.ClearCompleted(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"Delete 2 completed task(s)?"}, f.confirmer.messages)

	tasks := f.store.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].ID)

	_, err = f.store.TaskByID(done1.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.store.TaskByID(done2.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClearCompletedDeclined(t *testing.T) {
	f := newFixture(t)
	f.confirmer.answer = false

	_, err := f.store.CreateTask(TaskFields{Title: "done", Status: models.StatusDone})
	require.NoError(t, err)

	count, err := f.store.ClearCompleted(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Len(t, f.store.Tasks(), 1, "a declined confirmation must change nothing")
}

func TestClearCompletedNothingToClear(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.CreateTask(TaskFields{Title: "active"})
	require.NoError(t, err)

	count, err := f.store.ClearCompleted(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, f.confirmer.messages, "no prompt when nothing is completed")

	last := f.notifier.last(t)
	assert.Equal(t, "No completed tasks to clear", last.message)
	assert.Equal(t, notify.Info, last.severity)
}

func TestTasksSurviveReopen(t *testing.T) {
	f := newFixture(t)

	created, err := f.store.CreateTask(TaskFields{
		Title:    "Persisted",
		Deadline: "2026-09-15",
		Time:     "14:30",
		Priority: models.PriorityCritical,
	})
	require.NoError(t, err)

	reopened := f.reopen(t)
	got, err := reopened.TaskByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Deadline, got.Deadline)
	assert.Equal(t, created.Time, got.Time)
	assert.Equal(t, created.Priority, got.Priority)
}
