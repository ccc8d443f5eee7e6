// Package workflow is the kanban status state machine: five statuses in
// a strict linear order. Any transition is permitted, including
// backward; only the done status marks a task completed.
package workflow

import "github.com/tomhall/projex/internal/models"

// Order is the fixed column sequence, index 0..4
var Order = []models.Status{
	models.StatusToDo,
	models.StatusInProgress,
	models.StatusReview,
	models.StatusQA,
	models.StatusDone,
}

// Index returns the position of s in the column order. Unknown or empty
// statuses map to the first column, matching how legacy tasks without a
// status are bucketed.
func Index(s models.Status) int {
	for i, status := range Order {
		if status == s {
			return i
		}
	}
	return 0
}

// Normalize maps an empty or unknown status to to-do
func Normalize(s models.Status) models.Status {
	return Order[Index(s)]
}

// Valid reports whether s is one of the five board statuses
func Valid(s models.Status) bool {
	for _, status := range Order {
		if status == s {
			return true
		}
	}
	return false
}

// Next returns the following status, or false at the last column
func Next(s models.Status) (models.Status, bool) {
	i := Index(s)
	if i >= len(Order)-1 {
		return s, false
	}
	return Order[i+1], true
}

// Prev returns the preceding status, or false at the first column
func Prev(s models.Status) (models.Status, bool) {
	i := Index(s)
	if i <= 0 {
		return s, false
	}
	return Order[i-1], true
}

// Completes reports whether reaching s marks the task completed. Every
// workflow-driven status change derives completed from this; it is the
// only path that keeps status and completed synchronized.
func Completes(s models.Status) bool {
	return s == models.StatusDone
}
