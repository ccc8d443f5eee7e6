package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomhall/projex/internal/models"
)

func TestMonthShape(t *testing.T) {
	view := Month(nil, nil, 2026, time.September, testNow)

	assert.Equal(t, 2026, view.Year)
	assert.Equal(t, time.September, view.Month)
	// September 1st 2026 is a Tuesday
	assert.Equal(t, 2, view.LeadingWeekday)
	require.Len(t, view.Days, 30)
	assert.Equal(t, 1, view.Days[0].Day)
	assert.Equal(t, "2026-09-01", view.Days[0].Date)
	assert.Equal(t, "2026-09-30", view.Days[29].Date)
}

func TestMonthMarksToday(t *testing.T) {
	view := Month(nil, nil, 2026, time.September, testNow)

	for _, day := range view.Days {
		assert.Equal(t, day.Day == 10, day.IsToday, day.Date)
	}

	other := Month(nil, nil, 2026, time.October, testNow)
	for _, day := range other.Days {
		assert.False(t, day.IsToday, "today never appears in another month")
	}
}

func TestMonthBucketsTasksAndNotes(t *testing.T) {
	tasks := []models.Task{
		{Title: "due mid-month", Deadline: "2026-09-15"},
		{Title: "also mid-month", Deadline: "2026-09-15"},
		{Title: "missed", Deadline: "2026-09-05"},
		{Title: "other month", Deadline: "2026-10-15"},
		{Title: "no deadline"},
	}
	notes := map[string][]models.StickyNote{
		"2026-09-15": {{Text: "remember"}},
	}

	view := Month(tasks, notes, 2026, time.September, testNow)

	mid := view.Days[14]
	assert.Len(t, mid.Tasks, 2)
	assert.Len(t, mid.Notes, 1)
	assert.False(t, mid.HasOverdue)

	fifth := view.Days[4]
	require.Len(t, fifth.Tasks, 1)
	assert.True(t, fifth.HasOverdue)

	for _, day := range view.Days {
		for _, task := range day.Tasks {
			assert.NotEqual(t, "other month", task.Title)
			assert.NotEqual(t, "no deadline", task.Title)
		}
	}
}

func TestMonthFebruaryLeapYear(t *testing.T) {
	view := Month(nil, nil, 2028, time.February, testNow)
	assert.Len(t, view.Days, 29)

	plain := Month(nil, nil, 2026, time.February, testNow)
	assert.Len(t, plain.Days, 28)
}
