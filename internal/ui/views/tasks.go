package views

import (
	"context"
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
)

// searchDebouncedMsg fires after the search quiet window; only the
// latest sequence number triggers a re-derivation
type searchDebouncedMsg struct {
	seq int
}

// TaskListView is the dashboard: stats, filter bar, and the filtered
// task list, newest first
type TaskListView struct {
	store    *store.Store
	styles   *styles.Styles
	keys     keys.KeyMap
	debounce time.Duration
	width    int
	height   int

	search      textinput.Model
	searchSeq   int
	categoryIdx int // 0 = all, then models.Categories
	priorityIdx int // 0 = all, then models.Priorities
	statusIdx   int // index into statusFilters

	filtered []models.Task
	cursor   int

	confirmingDelete bool
	deleteTargetID   uuid.UUID
	confirmingClear  bool

	creating bool
	focusIdx int
	inputs   []textinput.Model // title, description, assignee, deadline, time
	catIdx   int
	prioIdx  int
}

var statusFilters = []derive.StatusFilter{derive.StatusAll, derive.StatusActive, derive.StatusCompleted}

func NewTaskListView(st *store.Store, debounce time.Duration) *TaskListView {
	s := styles.NewStyles()

	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.CharLimit = 100

	labels := []string{"Task title...", "Description...", "Assignee...", "YYYY-MM-DD", "HH:MM"}
	inputs := make([]textinput.Model, len(labels))
	for i, placeholder := range labels {
		input := textinput.New()
		input.Placeholder = placeholder
		input.CharLimit = 200
		inputs[i] = input
	}

	v := &TaskListView{
		store:    st,
		styles:   s,
		keys:     keys.DefaultKeyMap(),
		debounce: debounce,
		search:   search,
		inputs:   inputs,
		prioIdx:  2, // medium
	}
	v.Refresh()
	return v
}

// Refresh recomputes the filtered list from the current snapshot
func (v *TaskListView) Refresh() {
	v.filtered = derive.Filter(v.store.Tasks(), v.query())
	v.cursor = clamp(v.cursor, 0, len(v.filtered)-1)
	if len(v.filtered) == 0 {
		v.cursor = 0
	}
}

func (v *TaskListView) query() derive.Query {
	q := derive.Query{
		Search: v.search.Value(),
		Status: statusFilters[v.statusIdx],
	}
	if v.categoryIdx > 0 {
		q.Category = models.Categories[v.categoryIdx-1]
	}
	if v.priorityIdx > 0 {
		q.Priority = models.Priorities[v.priorityIdx-1]
	}
	return q
}

func (v *TaskListView) Capturing() bool {
	return v.creating || v.confirmingDelete || v.confirmingClear || v.search.Focused()
}

func (v *TaskListView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

func (v *TaskListView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case searchDebouncedMsg:
		// Stale timers from earlier keystrokes are dropped
		if msg.seq == v.searchSeq {
			v.Refresh()
		}
		return nil

	case tea.KeyMsg:
		return v.updateKey(msg)
	}
	return nil
}

func (v *TaskListView) updateKey(msg tea.KeyMsg) tea.Cmd {
	if v.confirmingDelete {
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

	if v.confirmingClear {
		switch msg.String() {
		case "y", "Y":
			v.store.ClearCompleted(context.Background())
			v.confirmingClear = false
			v.Refresh()
		case "n", "N", "esc":
			v.confirmingClear = false
		}
		return nil
	}

	if v.creating {
		return v.updateCreating(msg)
	}

	if v.search.Focused() {
		switch {
		case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Enter):
			v.search.Blur()
			v.Refresh()
			return nil
		}
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		v.searchSeq++
		seq := v.searchSeq
		// Coalesce rapid keystrokes: only the last event inside the
		// quiet window recomputes the list
		return tea.Batch(cmd, tea.Tick(v.debounce, func(time.Time) tea.Msg {
			return searchDebouncedMsg{seq: seq}
		}))
	}

	switch {
	case key.Matches(msg, v.keys.Up):
		v.cursor = clamp(v.cursor-1, 0, len(v.filtered)-1)
	case key.Matches(msg, v.keys.Down):
		v.cursor = clamp(v.cursor+1, 0, len(v.filtered)-1)

	case key.Matches(msg, v.keys.Search):
		v.search.Focus()
		return textinput.Blink

	case msg.String() == "c":
		v.categoryIdx = (v.categoryIdx + 1) % (len(models.Categories) + 1)
		v.Refresh()
	case msg.String() == "p":
		v.priorityIdx = (v.priorityIdx + 1) % (len(models.Priorities) + 1)
		v.Refresh()
	case msg.String() == "s":
		v.statusIdx = (v.statusIdx + 1) % len(statusFilters)
		v.Refresh()

	case key.Matches(msg, v.keys.Toggle):
		if v.cursor < len(v.filtered) {
			v.store.ToggleTaskCompletion(v.filtered[v.cursor].ID)
			v.Refresh()
		}

	case key.Matches(msg, v.keys.Delete):
		if v.cursor < len(v.filtered) {
			v.confirmingDelete = true
			v.deleteTargetID = v.filtered[v.cursor].ID
		}

	case msg.String() == "C":
		v.confirmingClear = true

	case key.Matches(msg, v.keys.New):
		v.creating = true
		v.focusIdx = 0
		for i := range v.inputs {
			v.inputs[i].Reset()
			v.inputs[i].Blur()
		}
		v.catIdx = 0
		v.prioIdx = 2
		v.inputs[0].Focus()
		return textinput.Blink
	}
	return nil
}

// Form focus slots: 0..4 are the text inputs, 5 category, 6 priority,
// 7 the create button
const taskFormSlots = 8

func (v *TaskListView) updateCreating(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.creating = false
		return nil

	case key.Matches(msg, v.keys.Tab):
		v.focusIdx = (v.focusIdx + 1) % taskFormSlots
		v.updateCreateFocus()
		return nil

	case msg.String() == "shift+tab":
		v.focusIdx = (v.focusIdx + taskFormSlots - 1) % taskFormSlots
		v.updateCreateFocus()
		return nil

	case key.Matches(msg, v.keys.Left) && v.focusIdx == 5:
		v.catIdx = clamp(v.catIdx-1, 0, len(models.Categories)-1)
		return nil
	case key.Matches(msg, v.keys.Right) && v.focusIdx == 5:
		v.catIdx = clamp(v.catIdx+1, 0, len(models.Categories)-1)
		return nil
	case key.Matches(msg, v.keys.Left) && v.focusIdx == 6:
		v.prioIdx = clamp(v.prioIdx-1, 0, len(models.Priorities)-1)
		return nil
	case key.Matches(msg, v.keys.Right) && v.focusIdx == 6:
		v.prioIdx = clamp(v.prioIdx+1, 0, len(models.Priorities)-1)
		return nil

	case msg.String() == "ctrl+s", key.Matches(msg, v.keys.Enter) && v.focusIdx == 7:
		_, err := v.store.CreateTask(store.TaskFields{
			Title:       v.inputs[0].Value(),
			Description: v.inputs[1].Value(),
			Assignee:    v.inputs[2].Value(),
			Deadline:    strings.TrimSpace(v.inputs[3].Value()),
			Time:        strings.TrimSpace(v.inputs[4].Value()),
			Category:    models.Categories[v.catIdx],
			Priority:    models.Priorities[v.prioIdx],
		})
		if err != nil {
			return nil
		}
		v.creating = false
		v.Refresh()
		return nil

	case key.Matches(msg, v.keys.Enter):
		v.focusIdx = (v.focusIdx + 1) % taskFormSlots
		v.updateCreateFocus()
		return nil
	}

	if v.focusIdx < len(v.inputs) {
		var cmd tea.Cmd
		v.inputs[v.focusIdx], cmd = v.inputs[v.focusIdx].Update(msg)
		return cmd
	}
	return nil
}

func (v *TaskListView) updateCreateFocus() {
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
	if v.focusIdx < len(v.inputs) {
		v.inputs[v.focusIdx].Focus()
	}
}

func (v *TaskListView) View() string {
	if v.confirmingDelete {
		return renderConfirm(v.styles, "Delete Task?", "This cannot be undone.", v.width, v.height)
	}
	if v.confirmingClear {
		return renderConfirm(v.styles, "Clear Completed?", "Every completed task will be deleted.", v.width, v.height)
	}
	if v.creating {
		return v.renderCreateForm()
	}

	s := v.styles
	now := time.Now()
	contentWidth := styles.ContentWidth(v.width)

	stats := derive.ComputeStats(v.store.Tasks(), now)
	statsLine := s.TitleMuted.Render(fmt.Sprintf(
		"Total %d • Completed %d • In Progress %d • Overdue %d",
		stats.Total, stats.Completed, stats.InProgress, stats.Overdue,
	))

	filterLine := s.StatusBar.Render(fmt.Sprintf(
		"search: %s  category: %s  priority: %s  status: %s",
		v.search.View(),
		v.categoryLabel(), v.priorityLabel(), string(statusFilters[v.statusIdx]),
	))

	var rows []string
	if len(v.filtered) == 0 {
		rows = append(rows, s.TitleMuted.Render("No tasks found. Try adjusting your filters."))
	}
	visible := max(5, v.height-10)
	start := clamp(v.cursor-visible/2, 0, max(0, len(v.filtered)-visible))
	for i := start; i < len(v.filtered) && i < start+visible; i++ {
		task := v.filtered[i]

		marker := "[ ]"
		titleStyle := s.ListItem
		if task.Completed {
			marker = "[x]"
			titleStyle = s.ListItem.Foreground(styles.Current.ForegroundDim).Strikethrough(true)
		}
		if i == v.cursor {
			titleStyle = s.ListSelected
		}

		rows = append(rows,
			titleStyle.Width(contentWidth-4).Render(marker+" "+task.Title),
			"    "+taskBadges(s, v.store, task, now),
		)
	}

	help := s.Help.Render(fmt.Sprintf(
		"%s search • %s/%s/%s filters • %s toggle • %s new • %s del • %s clear done",
		s.HelpKey.Render("/"),
		s.HelpKey.Render("c"), s.HelpKey.Render("p"), s.HelpKey.Render("s"),
		s.HelpKey.Render("space"),
		s.HelpKey.Render("n"),
		s.HelpKey.Render("d"),
		s.HelpKey.Render("C"),
	))

	content := lipgloss.JoinVertical(lipgloss.Left,
		statsLine,
		filterLine,
		"",
		strings.Join(rows, "\n"),
		help,
	)
	return styles.CenterView(content, v.width, v.height)
}

func (v *TaskListView) categoryLabel() string {
	if v.categoryIdx == 0 {
		return "all"
	}
	return models.Categories[v.categoryIdx-1].Label()
}

func (v *TaskListView) priorityLabel() string {
	if v.priorityIdx == 0 {
		return "all"
	}
	return models.Priorities[v.priorityIdx-1].Label()
}

func (v *TaskListView) renderCreateForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	labels := []string{"Title:", "Description:", "Assignee:", "Deadline:", "Time:"}
	fields := make([]string, 0, taskFormSlots*2)
	for i, label := range labels {
		style := s.Input
		if v.focusIdx == i {
			style = s.InputFocused
		}
		fields = append(fields, label, style.Width(inputWidth).Render(v.inputs[i].View()))
	}
	fields = append(fields,
		cycleField(s, "Category:", models.Categories[v.catIdx].Label(), v.focusIdx == 5),
		cycleField(s, "Priority:", models.Priorities[v.prioIdx].Label(), v.focusIdx == 6),
	)

	btnStyle := s.Button
	if v.focusIdx == 7 {
		btnStyle = s.ButtonFocused
	}
	fields = append(fields, "", btnStyle.Render(" Create "),
		"", s.TitleMuted.Render("Tab: next • Ctrl+S: save • Esc: cancel"))

	form := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Title.Render("New Task"), ""}, fields...)...,
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}
