package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomhall/projex/internal/models"
)

// noon on a fixed day keeps the scenarios deterministic
var testNow = time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC)

func TestIsOverdue(t *testing.T) {
	tests := []struct {
		name string
		task models.Task
		want bool
	}{
		{"no deadline", models.Task{}, false},
		{"past date", models.Task{Deadline: "2026-09-09"}, true},
		{"future date", models.Task{Deadline: "2026-09-11"}, false},
		{"today without time covers the whole day", models.Task{Deadline: "2026-09-10"}, false},
		{"today with earlier time", models.Task{Deadline: "2026-09-10", Time: "09:00"}, true},
		{"today with later time", models.Task{Deadline: "2026-09-10", Time: "15:00"}, false},
		{"completed is never overdue", models.Task{Deadline: "2020-01-01", Completed: true}, false},
		{"unparseable date", models.Task{Deadline: "next tuesday"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOverdue(tt.task, testNow))
		})
	}
}

func TestDeadlineLabel(t *testing.T) {
	tests := []struct {
		name string
		task models.Task
		want string
	}{
		{"no deadline", models.Task{}, ""},
		{"today", models.Task{Deadline: "2026-09-10"}, "Today"},
		{"today with time", models.Task{Deadline: "2026-09-10", Time: "15:00"}, "Today at 3:00 PM"},
		{"tomorrow", models.Task{Deadline: "2026-09-11"}, "Tomorrow"},
		{"same year date", models.Task{Deadline: "2026-10-24"}, "Oct 24"},
		{"other year carries the year", models.Task{Deadline: "2027-01-05"}, "Jan 5, 2027"},
		{"overdue", models.Task{Deadline: "2026-09-08"}, "Overdue: Sep 8"},
		{"overdue with time", models.Task{Deadline: "2026-09-10", Time: "08:30"}, "Overdue: Sep 10 at 8:30 AM"},
		{"completed past date is plain", models.Task{Deadline: "2026-09-08", Completed: true}, "Sep 8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeadlineLabel(tt.task, testNow))
		})
	}
}

func TestDeadlineLabelAcrossDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2027-03-14 is the US spring-forward date, a 23-hour day. Two
	// calendar days out must not collapse into "Tomorrow".
	springNow := time.Date(2027, time.March, 13, 12, 0, 0, 0, loc)
	assert.Equal(t, "Tomorrow", DeadlineLabel(models.Task{Deadline: "2027-03-14"}, springNow))
	assert.Equal(t, "Mar 15", DeadlineLabel(models.Task{Deadline: "2027-03-15"}, springNow))

	// 2026-11-01 is the fall-back date, a 25-hour day
	fallNow := time.Date(2026, time.October, 31, 12, 0, 0, 0, loc)
	assert.Equal(t, "Tomorrow", DeadlineLabel(models.Task{Deadline: "2026-11-01"}, fallNow))
	assert.Equal(t, "Nov 2", DeadlineLabel(models.Task{Deadline: "2026-11-02"}, fallNow))
}

func TestComputeStats(t *testing.T) {
	tasks := []models.Task{
		{Status: models.StatusInProgress},
		{Status: models.StatusInProgress, Completed: true},
		{Status: models.StatusToDo, Deadline: "2026-09-01"},
		{Status: models.StatusDone, Completed: true, Deadline: "2026-09-01"},
	}

	got := ComputeStats(tasks, testNow)
	assert.Equal(t, Stats{Total: 4, Completed: 2, InProgress: 2, Overdue: 1}, got)
}

func TestComputeStatsEmpty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil, testNow))
}
