package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/tomhall/projex/internal/derive"
	"github.com/tomhall/projex/internal/store"
	"github.com/tomhall/projex/internal/ui/keys"
	"github.com/tomhall/projex/internal/ui/styles"
)

var weekdayHeaders = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// CalendarView renders a month grid with deadline tasks and sticky
// notes, and hosts the sticky note editor for the selected day
type CalendarView struct {
	store  *store.Store
	styles *styles.Styles
	keys   keys.KeyMap
	width  int
	height int

	year     int
	month    time.Month
	selected int // day of month, 1-based
	view     derive.MonthView

	editing    bool
	editID     *uuid.UUID
	noteInput  textinput.Model
	noteCursor int

	confirmingDelete bool
	deleteTargetID   uuid.UUID
}

func NewCalendarView(st *store.Store) *CalendarView {
	now := time.Now()

	input := textinput.New()
	input.Placeholder = "Note text..."
	input.CharLimit = 200

	v := &CalendarView{
		store:     st,
		styles:    styles.NewStyles(),
		keys:      keys.DefaultKeyMap(),
		year:      now.Year(),
		month:     now.Month(),
		selected:  now.Day(),
		noteInput: input,
	}
	v.Refresh()
	return v
}

func (v *CalendarView) Refresh() {
	v.view = derive.Month(v.store.Tasks(), v.store.NotesByDate(), v.year, v.month, time.Now())
	v.selected = clamp(v.selected, 1, len(v.view.Days))
}

func (v *CalendarView) Capturing() bool {
	return v.editing || v.confirmingDelete
}

func (v *CalendarView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

func (v *CalendarView) selectedDay() derive.Day {
	return v.view.Days[v.selected-1]
}

func (v *CalendarView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if v.confirmingDelete {
		switch keyMsg.String() {
		case "y", "Y":
			v.store.DeleteStickyNote(v.deleteTargetID)
			v.confirmingDelete = false
			v.Refresh()
		case "n", "N", "esc":
			v.confirmingDelete = false
		}
		return nil
	}

	if v.editing {
		switch {
		case key.Matches(keyMsg, v.keys.Back):
			v.editing = false
			return nil
		case key.Matches(keyMsg, v.keys.Enter):
			text := strings.TrimSpace(v.noteInput.Value())
			if text != "" {
				v.store.UpsertStickyNote(v.selectedDay().Date, v.editID, text, store.DefaultNoteColor)
			}
			v.editing = false
			v.Refresh()
			return nil
		}
		var cmd tea.Cmd
		v.noteInput, cmd = v.noteInput.Update(keyMsg)
		return cmd
	}

	switch {
	case key.Matches(keyMsg, v.keys.Left):
		v.selected = clamp(v.selected-1, 1, len(v.view.Days))
	case key.Matches(keyMsg, v.keys.Right):
		v.selected = clamp(v.selected+1, 1, len(v.view.Days))
	case key.Matches(keyMsg, v.keys.Up):
		v.selected = clamp(v.selected-7, 1, len(v.view.Days))
	case key.Matches(keyMsg, v.keys.Down):
		v.selected = clamp(v.selected+7, 1, len(v.view.Days))

	case keyMsg.String() == "[":
		v.month--
		if v.month < time.January {
			v.month = time.December
			v.year--
		}
		v.Refresh()
	case keyMsg.String() == "]":
		v.month++
		if v.month > time.December {
			v.month = time.January
			v.year++
		}
		v.Refresh()
	case keyMsg.String() == "t":
		now := time.Now()
		v.year = now.Year()
		v.month = now.Month()
		v.selected = now.Day()
		v.Refresh()

	case key.Matches(keyMsg, v.keys.New):
		v.editing = true
		v.editID = nil
		v.noteInput.Reset()
		v.noteInput.Focus()
		v.noteCursor = 0
		return textinput.Blink

	case key.Matches(keyMsg, v.keys.Edit):
		notes := v.selectedDay().Notes
		if len(notes) == 0 {
			return nil
		}
		v.noteCursor = clamp(v.noteCursor, 0, len(notes)-1)
		note := notes[v.noteCursor]
		id := note.ID
		v.editing = true
		v.editID = &id
		v.noteInput.SetValue(note.Text)
		v.noteInput.Focus()
		return textinput.Blink

	case key.Matches(keyMsg, v.keys.Delete):
		notes := v.selectedDay().Notes
		if len(notes) == 0 {
			return nil
		}
		v.noteCursor = clamp(v.noteCursor, 0, len(notes)-1)
		v.confirmingDelete = true
		v.deleteTargetID = notes[v.noteCursor].ID

	case key.Matches(keyMsg, v.keys.Tab):
		if notes := v.selectedDay().Notes; len(notes) > 0 {
			v.noteCursor = (v.noteCursor + 1) % len(notes)
		}
	}
	return nil
}

func (v *CalendarView) View() string {
	if v.confirmingDelete {
		return renderConfirm(v.styles, "Delete Note?", "This cannot be undone.", v.width, v.height)
	}
	if v.editing {
		return v.renderNoteEditor()
	}

	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	cellWidth := max(6, (contentWidth-2)/7)

	title := s.Title.Render(fmt.Sprintf("%s %d", v.month, v.year))

	var header strings.Builder
	for _, wd := range weekdayHeaders {
		header.WriteString(s.ColumnHeader.Width(cellWidth).Render(wd))
	}

	var weeks []string
	var row []string
	for i := 0; i < v.view.LeadingWeekday; i++ {
		row = append(row, lipgloss.NewStyle().Width(cellWidth).Render(""))
	}
	for _, day := range v.view.Days {
		style := s.CalendarCell
		switch {
		case day.Day == v.selected:
			style = s.CalendarSelected
		case day.HasOverdue:
			style = s.CalendarOverdue
		case day.IsToday:
			style = s.CalendarToday
		}

		label := fmt.Sprintf("%2d", day.Day)
		if len(day.Tasks) > 0 {
			label += fmt.Sprintf(" •%d", len(day.Tasks))
		}
		if len(day.Notes) > 0 {
			label += fmt.Sprintf(" ◆%d", len(day.Notes))
		}

		row = append(row, style.Width(cellWidth).Render(label))
		if len(row) == 7 {
			weeks = append(weeks, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		weeks = append(weeks, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	detail := v.renderDayDetail(cellWidth * 7)

	help := s.Help.Render(fmt.Sprintf(
		"%s navigate • %s/%s month • %s today • %s note • %s edit • %s del",
		s.HelpKey.Render("←↑↓→"),
		s.HelpKey.Render("["), s.HelpKey.Render("]"),
		s.HelpKey.Render("t"),
		s.HelpKey.Render("n"),
		s.HelpKey.Render("e"),
		s.HelpKey.Render("d"),
	))

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		header.String(),
		strings.Join(weeks, "\n"),
		"",
		detail,
		help,
	)
	return styles.CenterView(content, v.width, v.height)
}

func (v *CalendarView) renderDayDetail(width int) string {
	s := v.styles
	day := v.selectedDay()
	now := time.Now()

	var lines []string
	lines = append(lines, s.TitleMuted.Render(day.Date))

	for _, task := range day.Tasks {
		badge := s.Badge
		if derive.IsOverdue(task, now) {
			badge = s.BadgeOverdue
		} else if task.Completed {
			badge = s.BadgeDone
		}
		lines = append(lines, "  "+badge.Render(task.Priority.Label())+" "+task.Title)
	}
	for i, note := range day.Notes {
		marker := "  "
		if i == v.noteCursor {
			marker = "▸ "
		}
		lines = append(lines, marker+s.ListItem.Render("◆ "+note.Text))
	}
	if len(day.Tasks) == 0 && len(day.Notes) == 0 {
		lines = append(lines, s.TitleMuted.Render("  Nothing scheduled"))
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (v *CalendarView) renderNoteEditor() string {
	s := v.styles
	title := "New Note"
	if v.editID != nil {
		title = "Edit Note"
	}
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(title),
		s.TitleMuted.Render(v.selectedDay().Date),
		"",
		s.InputFocused.Width(inputWidth).Render(v.noteInput.View()),
		"",
		s.TitleMuted.Render("Enter: save • Esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}
