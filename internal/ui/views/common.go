package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomhall/projex/internal/derive"
	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/store"
	"github.com/tomhall/projex/internal/ui/styles"
)

func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// ThemeChanged tells the app to rebuild styles after a theme switch
type ThemeChanged struct{}

// taskBadges renders the metadata line under a task title
func taskBadges(s *styles.Styles, st *store.Store, task models.Task, now time.Time) string {
	parts := []string{
		s.Badge.Render(task.Category.Label()),
		s.Badge.Render(task.Priority.Label()),
	}
	if task.Assignee != "" {
		parts = append(parts, s.Badge.Render("@"+task.Assignee))
	}
	if task.Project != nil {
		if project, err := st.ProjectByID(*task.Project); err == nil {
			parts = append(parts, s.Badge.Render("["+project.Name+"]"))
		}
	}
	if label := derive.DeadlineLabel(task, now); label != "" {
		badge := s.Badge
		if derive.IsOverdue(task, now) {
			badge = s.BadgeOverdue
		}
		parts = append(parts, badge.Render(label))
	}
	return strings.Join(parts, " · ")
}

// renderConfirm draws the shared y/n confirmation screen
func renderConfirm(s *styles.Styles, title, message string, width, height int) string {
	contentWidth := styles.ContentWidth(width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render(title),
		"",
		s.TitleMuted.Render(message),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, width, height)
}

// cycleField renders a left/right selectable value inside a form
func cycleField(s *styles.Styles, label, value string, focused bool) string {
	style := s.Input
	if focused {
		style = s.InputFocused
	}
	return fmt.Sprintf("%s\n%s", label, style.Render("◂ "+value+" ▸"))
}
