package derive

import (
	"time"

	"github.com/tomhall/projex/internal/models"
)

// Stats summarizes the task collection for the dashboard header
type Stats struct {
	Total      int
	Completed  int
	InProgress int
	Overdue    int
}

// ComputeStats recounts the dashboard figures from the full task
// collection; callers rerun it after every task mutation
func ComputeStats(tasks []models.Task, now time.Time) Stats {
	var s Stats
	s.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
		if t.Status == models.StatusInProgress {
			s.InProgress++
		}
		if IsOverdue(t, now) {
			s.Overdue++
		}
	}
	return s
}
