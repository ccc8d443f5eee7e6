package derive

import (
	"fmt"
	"time"

	"github.com/tomhall/projex/internal/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// deadlineAt resolves a task's deadline to a point in time. Without a
// time-of-day the deadline covers the whole day, so it resolves to the
// last second of it.
func deadlineAt(task models.Task, loc *time.Location) (time.Time, bool) {
	if task.Deadline == "" {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation(dateLayout, task.Deadline, loc)
	if err != nil {
		return time.Time{}, false
	}
	if task.Time != "" {
		if tod, err := time.ParseInLocation(timeLayout, task.Time, loc); err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(),
				tod.Hour(), tod.Minute(), 0, 0, loc), true
		}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, loc), true
}

// IsOverdue reports whether the task's deadline has passed. Always
// false for completed tasks and tasks without a deadline.
func IsOverdue(task models.Task, now time.Time) bool {
	if task.Completed {
		return false
	}
	deadline, ok := deadlineAt(task, now.Location())
	if !ok {
		return false
	}
	return deadline.Before(now)
}

// DeadlineLabel renders the human deadline badge: "Overdue: <date>",
// "Today", "Tomorrow", or the date itself, each with an optional
// " at <time>" suffix. The year appears only when it differs from now's
// year. Returns "" for tasks without a deadline.
func DeadlineLabel(task models.Task, now time.Time) string {
	deadline, ok := deadlineAt(task, now.Location())
	if !ok {
		return ""
	}

	dateStr := deadline.Format("Jan 2")
	if deadline.Year() != now.Year() {
		dateStr = deadline.Format("Jan 2, 2006")
	}

	suffix := ""
	if task.Time != "" {
		if tod, err := time.ParseInLocation(timeLayout, task.Time, now.Location()); err == nil {
			suffix = " at " + tod.Format("3:04 PM")
		}
	}

	if IsOverdue(task, now) {
		return fmt.Sprintf("Overdue: %s%s", dateStr, suffix)
	}

	switch calendarDayOffset(now, deadline) {
	case 0:
		return "Today" + suffix
	case 1:
		return "Tomorrow" + suffix
	}
	return dateStr + suffix
}

// calendarDayOffset counts whole calendar days from now's day to t's
// day; 0 means today, 1 tomorrow, negative values lie in the past.
// Both days are re-anchored at UTC midnight so a DST transition in the
// local zone cannot shorten or stretch the difference.
func calendarDayOffset(now, t time.Time) int {
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(nowDay) / (24 * time.Hour))
}
