package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tomhall/projex/internal/logger"
	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/notify"
	"github.com/tomhall/projex/internal/workflow"
)

// TaskFields carries caller-supplied values for creating or updating a
// task. Zero values fall back to defaults where one exists.
type TaskFields struct {
	Title       string
	Description string
	Category    models.Category
	Priority    models.Priority
	Deadline    string
	Time        string
	Assignee    string
	Project     *uuid.UUID
	Status      models.Status
}

// Tasks returns the task sequence, newest-created first
func (s *Store) Tasks() []models.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// TaskByID returns the task with the given id or ErrNotFound
func (s *Store) TaskByID(id uuid.UUID) (models.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, ErrNotFound
}

// CreateTask inserts a new task at the front of the sequence: all task
// lists show newest-created first unless a view re-sorts them.
func (s *Store) CreateTask(fields TaskFields) (models.Task, error) {
	title := strings.TrimSpace(fields.Title)
	if title == "" {
		return models.Task{}, &ValidationError{Field: "title"}
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	status := workflow.Normalize(fields.Status)
	task := models.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: strings.TrimSpace(fields.Description),
		Category:    fields.Category,
		Priority:    fields.Priority,
		Deadline:    fields.Deadline,
		Time:        fields.Time,
		Assignee:    strings.TrimSpace(fields.Assignee),
		Project:     fields.Project,
		Status:      status,
		Completed:   workflow.Completes(status),
		CreatedAt:   time.Now(),
	}
	if task.Category == "" {
		task.Category = models.CategoryDevelopment
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}

	s.tasks = append([]models.Task{task}, s.tasks...)
	s.saveTasks()

	logger.Info("task created", zap.String("id", task.ID.String()), zap.String("status", string(task.Status)))
	s.notify.Notify("Task created successfully", notify.Success)
	return task, nil
}

// UpdateTask replaces the editable fields of an existing task. Status
// and completion are untouched; those move through the workflow.
func (s *Store) UpdateTask(id uuid.UUID, fields TaskFields) (models.Task, error) {
	title := strings.TrimSpace(fields.Title)
	if title == "" {
		return models.Task{}, &ValidationError{Field: "title"}
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		t.Title = title
		t.Description = strings.TrimSpace(fields.Description)
		if fields.Category != "" {
			t.Category = fields.Category
		}
		if fields.Priority != "" {
			t.Priority = fields.Priority
		}
		t.Deadline = fields.Deadline
		t.Time = fields.Time
		t.Assignee = strings.TrimSpace(fields.Assignee)
		t.Project = fields.Project

		s.saveTasks()
		s.notify.Notify("Task updated", notify.Success)
		return *t, nil
	}
	return models.Task{}, ErrNotFound
}

// ToggleTaskCompletion flips the completed flag only, leaving status
// unchanged. This is the one path that lets completion drift from the
// workflow. Missing ids are a silent no-op.
func (s *Store) ToggleTaskCompletion(id uuid.UUID) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks[i].Completed = !s.tasks[i].Completed
		s.saveTasks()

		if s.tasks[i].Completed {
			s.notify.Notify("Task completed", notify.Success)
		} else {
			s.notify.Notify("Task reopened", notify.Info)
		}
		return
	}
}

// MoveTaskToStatus sets a task's kanban status through the workflow,
// deriving completed from the target column. A status outside the five
// board columns is rejected as a no-op, as are missing ids.
func (s *Store) MoveTaskToStatus(id uuid.UUID, status models.Status) {
	if !workflow.Valid(status) {
		return
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks[i].Status = status
		s.tasks[i].Completed = workflow.Completes(status)
		s.saveTasks()

		s.notify.Notify(fmt.Sprintf("Task moved to %s", status.Label()), notify.Success)
		return
	}
}

// DeleteTask removes a task. Idempotent: deleting an absent id changes
// nothing.
func (s *Store) DeleteTask(id uuid.UUID) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		s.saveTasks()
		s.notify.Notify("Task deleted", notify.Info)
		return
	}
}

// ClearCompleted deletes every completed task after confirmation.
// Returns the number removed; zero when nothing was completed or the
// confirmation resolved no.
func (s *Store) ClearCompleted(ctx context.Context) (int, error) {
	s.mtx.RLock()
	count := 0
	for _, t := range s.tasks {
		if t.Completed {
			count++
		}
	}
	s.mtx.RUnlock()

	if count == 0 {
		s.notify.Notify("No completed tasks to clear", notify.Info)
		return 0, nil
	}

	// The confirmer may suspend or read back into the store, so no
	// lock is held across the prompt; the completed set is recounted
	// under the write lock before mutating
	ok, err := s.confirm.Confirm(ctx, fmt.Sprintf("Delete %d completed task(s)?", count))
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	removed := 0
	remaining := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Completed {
			removed++
			continue
		}
		remaining = append(remaining, t)
	}
	s.tasks = remaining
	if removed == 0 {
		return 0, nil
	}
	s.saveTasks()

	s.notify.Notify(fmt.Sprintf("%d task(s) cleared", removed), notify.Success)
	return removed, nil
}
