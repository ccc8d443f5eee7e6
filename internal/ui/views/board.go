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
	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/store"
	"github.com/tomhall/projex/internal/ui/keys"
	"github.com/tomhall/projex/internal/ui/styles"
	"github.com/tomhall/projex/internal/workflow"
)

// BoardView is the kanban board: five status columns with per-column
// quick-add and forward/back task moves
type BoardView struct {
	store  *store.Store
	styles *styles.Styles
	keys   keys.KeyMap
	width  int
	height int

	buckets map[models.Status][]models.Task
	col     int // focused column, index into workflow.Order
	row     int // selected card within the column

	confirmingDelete bool
	deleteTargetID   uuid.UUID

	adding      bool
	focusIdx    int // 0=title, 1=assignee, 2=deadline, 3=priority, 4=add
	newTitle    textinput.Model
	newAssignee textinput.Model
	newDeadline textinput.Model
	priorityIdx int
}

func NewBoardView(st *store.Store) *BoardView {
	s := styles.NewStyles()

	newTitle := textinput.New()
	newTitle.Placeholder = "Task title..."
	newTitle.CharLimit = 100

	newAssignee := textinput.New()
	newAssignee.Placeholder = "Assignee..."
	newAssignee.CharLimit = 60

	newDeadline := textinput.New()
	newDeadline.Placeholder = "YYYY-MM-DD (optional)"
	newDeadline.CharLimit = 10

	v := &BoardView{
		store:       st,
		styles:      s,
		keys:        keys.DefaultKeyMap(),
		newTitle:    newTitle,
		newAssignee: newAssignee,
		newDeadline: newDeadline,
		priorityIdx: 2, // medium
	}
	v.Refresh()
	return v
}

// Refresh regroups the board from the current task snapshot
func (v *BoardView) Refresh() {
	v.buckets = derive.GroupByStatus(v.store.Tasks())
	v.row = clamp(v.row, 0, max(0, len(v.column())-1))
}

// Capturing reports whether the view owns all key input
func (v *BoardView) Capturing() bool {
	return v.adding || v.confirmingDelete
}

func (v *BoardView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

func (v *BoardView) column() []models.Task {
	return v.buckets[workflow.Order[v.col]]
}

func (v *BoardView) selected() (models.Task, bool) {
	col := v.column()
	if v.row < 0 || v.row >= len(col) {
		return models.Task{}, false
	}
	return col[v.row], true
}

func (v *BoardView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if v.confirmingDelete {
		return v.updateConfirmDelete(keyMsg)
	}
	if v.adding {
		return v.updateAdding(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, v.keys.Left):
		v.col = clamp(v.col-1, 0, len(workflow.Order)-1)
		v.row = clamp(v.row, 0, max(0, len(v.column())-1))
	case key.Matches(keyMsg, v.keys.Right):
		v.col = clamp(v.col+1, 0, len(workflow.Order)-1)
		v.row = clamp(v.row, 0, max(0, len(v.column())-1))
	case key.Matches(keyMsg, v.keys.Up):
		v.row = clamp(v.row-1, 0, max(0, len(v.column())-1))
	case key.Matches(keyMsg, v.keys.Down):
		v.row = clamp(v.row+1, 0, max(0, len(v.column())-1))

	case keyMsg.String() == ">":
		if task, ok := v.selected(); ok {
			if next, ok := workflow.Next(task.Status); ok {
				v.store.MoveTaskToStatus(task.ID, next)
				v.Refresh()
			}
		}
	case keyMsg.String() == "<":
		if task, ok := v.selected(); ok {
			if prev, ok := workflow.Prev(task.Status); ok {
				v.store.MoveTaskToStatus(task.ID, prev)
				v.Refresh()
			}
		}

	case key.Matches(keyMsg, v.keys.New):
		v.adding = true
		v.focusIdx = 0
		v.newTitle.Reset()
		v.newAssignee.Reset()
		v.newDeadline.Reset()
		v.priorityIdx = 2
		v.newTitle.Focus()
		return textinput.Blink

	case key.Matches(keyMsg, v.keys.Delete):
		if task, ok := v.selected(); ok {
			v.confirmingDelete = true
			v.deleteTargetID = task.ID
		}
	}
	return nil
}

func (v *BoardView) updateConfirmDelete(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		v.store.DeleteTask(v.deleteTargetID)
		v.confirmingDelete = false
		v.Refresh()
	case "n", "N", "esc":
		v.confirmingDelete = false
	}
	return nil
}

func (v *BoardView) updateAdding(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.adding = false
		return nil

	case key.Matches(msg, v.keys.Tab):
		v.focusIdx = (v.focusIdx + 1) % 5
		v.updateAddFocus()
		return nil

	case msg.String() == "shift+tab":
		v.focusIdx = (v.focusIdx + 4) % 5
		v.updateAddFocus()
		return nil

	case key.Matches(msg, v.keys.Left) && v.focusIdx == 3:
		v.priorityIdx = clamp(v.priorityIdx-1, 0, len(models.Priorities)-1)
		return nil

	case key.Matches(msg, v.keys.Right) && v.focusIdx == 3:
		v.priorityIdx = clamp(v.priorityIdx+1, 0, len(models.Priorities)-1)
		return nil

	case msg.String() == "ctrl+s", key.Matches(msg, v.keys.Enter) && v.focusIdx == 4:
		return v.submitAdd()

	case key.Matches(msg, v.keys.Enter):
		v.focusIdx++
		v.updateAddFocus()
		return nil
	}

	var cmd tea.Cmd
	switch v.focusIdx {
	case 0:
		v.newTitle, cmd = v.newTitle.Update(msg)
	case 1:
		v.newAssignee, cmd = v.newAssignee.Update(msg)
	case 2:
		v.newDeadline, cmd = v.newDeadline.Update(msg)
	}
	return cmd
}

func (v *BoardView) submitAdd() tea.Cmd {
	status := workflow.Order[v.col]
	_, err := v.store.CreateTask(store.TaskFields{
		Title:    v.newTitle.Value(),
		Assignee: v.newAssignee.Value(),
		Deadline: strings.TrimSpace(v.newDeadline.Value()),
		Priority: models.Priorities[v.priorityIdx],
		Status:   status,
	})
	if err != nil {
		return nil
	}
	v.adding = false
	v.Refresh()
	return nil
}

func (v *BoardView) updateAddFocus() {
	v.newTitle.Blur()
	v.newAssignee.Blur()
	v.newDeadline.Blur()
	switch v.focusIdx {
	case 0:
		v.newTitle.Focus()
	case 1:
		v.newAssignee.Focus()
	case 2:
		v.newDeadline.Focus()
	}
}

func (v *BoardView) View() string {
	if v.confirmingDelete {
		return renderConfirm(v.styles, "Delete Task?", "This cannot be undone.", v.width, v.height)
	}
	if v.adding {
		return v.renderAddForm()
	}

	now := time.Now()
	contentWidth := styles.ContentWidth(v.width)
	colWidth := max(16, contentWidth/len(workflow.Order)-2)

	columns := make([]string, 0, len(workflow.Order))
	for i, status := range workflow.Order {
		tasks := v.buckets[status]

		header := v.styles.ColumnHeader.Render(fmt.Sprintf("%s (%d)", status.Label(), len(tasks)))
		lines := []string{header}

		if len(tasks) == 0 {
			lines = append(lines, v.styles.TitleMuted.Render("No tasks"))
		}
		for j, task := range tasks {
			card := v.styles.Card
			if i == v.col && j == v.row {
				card = v.styles.CardSelected
			}
			title := task.Title
			if len(title) > colWidth-4 {
				title = title[:colWidth-4] + "…"
			}
			line := card.Width(colWidth - 2).Render(title)
			meta := v.styles.Badge.Render(task.Priority.Label())
			if label := derive.DeadlineLabel(task, now); label != "" {
				badge := v.styles.Badge
				if derive.IsOverdue(task, now) {
					badge = v.styles.BadgeOverdue
				}
				meta += " " + badge.Render(label)
			}
			lines = append(lines, line, " "+meta)
		}

		colStyle := v.styles.Column
		if i == v.col {
			colStyle = v.styles.ColumnFocus
		}
		columns = append(columns, colStyle.Width(colWidth).Render(strings.Join(lines, "\n")))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	help := v.styles.Help.Render(
		fmt.Sprintf("%s column • %s card • %s/%s move task • %s add • %s del",
			v.styles.HelpKey.Render("←→"),
			v.styles.HelpKey.Render("↑↓"),
			v.styles.HelpKey.Render("<"),
			v.styles.HelpKey.Render(">"),
			v.styles.HelpKey.Render("n"),
			v.styles.HelpKey.Render("d"),
		),
	)
	return styles.CenterView(board+"\n"+help, v.width, v.height)
}

func (v *BoardView) renderAddForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	titleStyle := s.Input
	assigneeStyle := s.Input
	deadlineStyle := s.Input
	btnStyle := s.Button
	switch v.focusIdx {
	case 0:
		titleStyle = s.InputFocused
	case 1:
		assigneeStyle = s.InputFocused
	case 2:
		deadlineStyle = s.InputFocused
	case 4:
		btnStyle = s.ButtonFocused
	}

	status := workflow.Order[v.col]
	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("New Task in "+status.Label()),
		"",
		"Title:",
		titleStyle.Width(inputWidth).Render(v.newTitle.View()),
		"",
		"Assignee:",
		assigneeStyle.Width(inputWidth).Render(v.newAssignee.View()),
		"",
		"Deadline:",
		deadlineStyle.Width(inputWidth).Render(v.newDeadline.View()),
		"",
		cycleField(s, "Priority:", models.Priorities[v.priorityIdx].Label(), v.focusIdx == 3),
		"",
		btnStyle.Render(" Add "),
		"",
		s.TitleMuted.Render("Tab: next • Ctrl+S: save • Esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}
