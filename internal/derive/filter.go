// Package derive computes read-only views from current entity state:
// filtered lists, kanban buckets, calendar grids, stats, and deadline
// labels. Everything here is a pure function over snapshots, recomputed
// on demand and never cached.
package derive

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tomhall/projex/internal/models"
)

// StatusFilter narrows tasks by completion state
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// Query holds the task list filters; zero values mean "all"
type Query struct {
	Search   string
	Category models.Category
	Priority models.Priority
	Status   StatusFilter
	Project  *uuid.UUID
}

// Filter returns the tasks matching every set filter, preserving input
// order. Search is a case-insensitive substring match against title,
// description, and assignee.
func Filter(tasks []models.Task, q Query) []models.Task {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) &&
			!strings.Contains(strings.ToLower(t.Assignee), search) {
			continue
		}
		if q.Category != "" && q.Category != "all" && t.Category != q.Category {
			continue
		}
		if q.Priority != "" && q.Priority != "all" && t.Priority != q.Priority {
			continue
		}
		switch q.Status {
		case StatusActive:
			if t.Completed {
				continue
			}
		case StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		if q.Project != nil && (t.Project == nil || *t.Project != *q.Project) {
			continue
		}
		out = append(out, t)
	}
	return out
}
