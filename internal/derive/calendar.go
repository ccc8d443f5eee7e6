package derive

import (
	"time"

	"github.com/tomhall/projex/internal/models"
)

// Day is one calendar cell: the tasks due that day plus its sticky
// notes
type Day struct {
	Day        int
	Date       string // ISO date key
	Tasks      []models.Task
	Notes      []models.StickyNote
	IsToday    bool
	HasOverdue bool
}

// MonthView is the computed calendar grid for one month
type MonthView struct {
	Year           int
	Month          time.Month
	LeadingWeekday int // weekday of day 1, Sunday = 0
	Days           []Day
}

// Month buckets tasks and sticky notes into the days of the given
// month. A task belongs to a day when its deadline equals that ISO
// date.
func Month(tasks []models.Task, notes map[string][]models.StickyNote, year int, month time.Month, now time.Time) MonthView {
	loc := now.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	today := now.Format(dateLayout)

	view := MonthView{
		Year:           year,
		Month:          month,
		LeadingWeekday: int(first.Weekday()),
		Days:           make([]Day, 0, daysInMonth),
	}

	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		date := time.Date(year, month, dayNum, 0, 0, 0, 0, loc).Format(dateLayout)
		cell := Day{
			Day:     dayNum,
			Date:    date,
			Notes:   notes[date],
			IsToday: date == today,
		}
		for _, t := range tasks {
			if t.Deadline != date {
				continue
			}
			cell.Tasks = append(cell.Tasks, t)
			if IsOverdue(t, now) {
				cell.HasOverdue = true
			}
		}
		view.Days = append(view.Days, cell)
	}
	return view
}
