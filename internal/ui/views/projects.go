package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/store"
	"github.com/tomhall/projex/internal/ui/keys"
	"github.com/tomhall/projex/internal/ui/styles"
)

// projectColors mirrors the palette the project form cycles through
var projectColors = []string{"#d4a574", "#8fbc8f", "#87ceeb", "#dda0dd", "#f0a0a0", "#f5deb3"}

type projectItem struct {
	project models.Project
	tasks   int
	team    string
}

func (i projectItem) Title() string       { return i.project.Name }
func (i projectItem) FilterValue() string { return i.project.Name }

func (i projectItem) Description() string {
	parts := []string{fmt.Sprintf("%d task(s)", i.tasks)}
	if i.team != "" {
		parts = append(parts, i.team)
	}
	if i.project.Description != "" {
		parts = append(parts, i.project.Description)
	}
	return strings.Join(parts, " • ")
}

type projectDelegate struct {
	styles *styles.Styles
	width  int
}

func (d projectDelegate) Height() int                               { return 2 }
func (d projectDelegate) Spacing() int                              { return 1 }
func (d projectDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d projectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	p, ok := item.(projectItem)
	if !ok {
		return
	}

	selected := index == m.Index()
	width := max(d.width-4, 20)

	var titleStyle, descStyle lipgloss.Style
	if selected {
		titleStyle = d.styles.ListSelected.Width(width)
		descStyle = d.styles.ListSelected.Foreground(styles.Current.ForegroundDim).Width(width)
	} else {
		titleStyle = d.styles.ListItem.Width(width)
		descStyle = d.styles.ListItem.Foreground(styles.Current.ForegroundDim).Width(width)
	}

	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(p.project.Color)).Render("■ ")
	fmt.Fprintf(w, "%s\n%s", titleStyle.Render(swatch+p.Title()), descStyle.Render(p.Description()))
}

// ProjectListView lists projects and hosts the create and delete
// flows. Deleting a project detaches its tasks rather than removing
// them.
type ProjectListView struct {
	store    *store.Store
	list     list.Model
	delegate *projectDelegate
	styles   *styles.Styles
	keys     keys.KeyMap
	width    int
	height   int

	creating bool
	newName  textinput.Model
	newDesc  textinput.Model
	colorIdx int
	teamIdx  int // 0 = none, then store.Teams()
	focusIdx int // 0=name, 1=desc, 2=color, 3=team, 4=confirm

	confirmingDelete bool
	deleteTargetID   uuid.UUID
	deleteTargetName string
	deleteTaskCount  int
}

func NewProjectListView(st *store.Store) *ProjectListView {
	s := styles.NewStyles()

	newName := textinput.New()
	newName.Placeholder = "Project name"
	newName.CharLimit = 100

	newDesc := textinput.New()
	newDesc.Placeholder = "Description (optional)"
	newDesc.CharLimit = 200

	delegate := &projectDelegate{styles: s, width: 80}

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Projects"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = s.Title
	l.SetShowHelp(false)

	v := &ProjectListView{
		store:    st,
		list:     l,
		delegate: delegate,
		styles:   s,
		keys:     keys.DefaultKeyMap(),
		newName:  newName,
		newDesc:  newDesc,
	}
	v.Refresh()
	return v
}

func (v *ProjectListView) Refresh() {
	projects := v.store.Projects()
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		item := projectItem{project: p, tasks: v.store.ProjectTaskCount(p.ID)}
		if p.Team != nil {
			if team, err := v.store.TeamByID(*p.Team); err == nil {
				item.team = team.Name
			}
		}
		items[i] = item
	}
	v.list.SetItems(items)
}

func (v *ProjectListView) Capturing() bool {
	return v.creating || v.confirmingDelete || v.list.FilterState() == list.Filtering
}

func (v *ProjectListView) SetSize(width, height int) {
	v.width = width
	v.height = height
	contentWidth := styles.ContentWidth(width)
	v.delegate.width = contentWidth
	v.list.SetSize(contentWidth-4, height-6)
}

func (v *ProjectListView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		if v.confirmingDelete {
			v.updateConfirmDelete(keyMsg)
			return nil
		}
		if v.creating {
			return v.updateCreating(keyMsg)
		}

		switch {
		case key.Matches(keyMsg, v.keys.New):
			v.creating = true
			v.focusIdx = 0
			v.newName.Reset()
			v.newDesc.Reset()
			v.colorIdx = 0
			v.teamIdx = 0
			v.newName.Focus()
			return textinput.Blink

		case key.Matches(keyMsg, v.keys.Delete):
			if item, ok := v.list.SelectedItem().(projectItem); ok {
				v.confirmingDelete = true
				v.deleteTargetID = item.project.ID
				v.deleteTargetName = item.project.Name
				v.deleteTaskCount = item.tasks
			}
			return nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return cmd
}

func (v *ProjectListView) updateConfirmDelete(msg tea.KeyMsg) {
	switch msg.String() {
	case "y", "Y":
		v.store.DeleteProject(context.Background(), v.deleteTargetID)
		v.confirmingDelete = false
		v.Refresh()
	case "n", "N", "esc":
		v.confirmingDelete = false
	}
}

const projectFormSlots = 5

func (v *ProjectListView) updateCreating(msg tea.KeyMsg) tea.Cmd {
	teams := v.store.Teams()

	switch {
	case key.Matches(msg, v.keys.Back):
		v.creating = false
		return nil

	case msg.String() == "shift+tab":
		v.focusIdx = (v.focusIdx + projectFormSlots - 1) % projectFormSlots
		v.updateFocus()
		return nil

	case key.Matches(msg, v.keys.Tab):
		v.focusIdx = (v.focusIdx + 1) % projectFormSlots
		v.updateFocus()
		return nil

	case key.Matches(msg, v.keys.Left) && v.focusIdx == 2:
		v.colorIdx = clamp(v.colorIdx-1, 0, len(projectColors)-1)
		return nil
	case key.Matches(msg, v.keys.Right) && v.focusIdx == 2:
		v.colorIdx = clamp(v.colorIdx+1, 0, len(projectColors)-1)
		return nil
	case key.Matches(msg, v.keys.Left) && v.focusIdx == 3:
		v.teamIdx = clamp(v.teamIdx-1, 0, len(teams))
		return nil
	case key.Matches(msg, v.keys.Right) && v.focusIdx == 3:
		v.teamIdx = clamp(v.teamIdx+1, 0, len(teams))
		return nil

	case msg.String() == "ctrl+s", key.Matches(msg, v.keys.Enter) && v.focusIdx == 4:
		fields := store.ProjectFields{
			Name:        strings.TrimSpace(v.newName.Value()),
			Description: strings.TrimSpace(v.newDesc.Value()),
			Color:       projectColors[v.colorIdx],
		}
		if v.teamIdx > 0 {
			id := teams[v.teamIdx-1].ID
			fields.Team = &id
		}
		if _, err := v.store.CreateProject(fields); err != nil {
			return nil
		}
		v.creating = false
		v.Refresh()
		return nil

	case key.Matches(msg, v.keys.Enter):
		v.focusIdx = (v.focusIdx + 1) % projectFormSlots
		v.updateFocus()
		return nil
	}

	var cmd tea.Cmd
	switch v.focusIdx {
	case 0:
		v.newName, cmd = v.newName.Update(msg)
	case 1:
		v.newDesc, cmd = v.newDesc.Update(msg)
	}
	return cmd
}

func (v *ProjectListView) updateFocus() {
	v.newName.Blur()
	v.newDesc.Blur()
	switch v.focusIdx {
	case 0:
		v.newName.Focus()
	case 1:
		v.newDesc.Focus()
	}
}

func (v *ProjectListView) View() string {
	if v.confirmingDelete {
		message := "This cannot be undone."
		if v.deleteTaskCount > 0 {
			message = fmt.Sprintf("%q has %d task(s). They will be kept without a project.",
				v.deleteTargetName, v.deleteTaskCount)
		}
		return renderConfirm(v.styles, "Delete Project?", message, v.width, v.height)
	}

	if v.creating {
		return v.renderCreateForm()
	}

	if len(v.list.Items()) == 0 {
		return v.renderEmpty()
	}

	content := v.list.View() + "\n" + v.renderHelp()
	return styles.CenterView(content, v.width, v.height)
}

func (v *ProjectListView) renderEmpty() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render("No Projects"),
		"",
		s.TitleMuted.Render("Press 'n' to create your first project"),
		"",
		s.ButtonPrimary.Render(" New Project "),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ProjectListView) renderCreateForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	nameStyle := s.Input
	descStyle := s.Input
	btnStyle := s.Button
	switch v.focusIdx {
	case 0:
		nameStyle = s.InputFocused
	case 1:
		descStyle = s.InputFocused
	case 4:
		btnStyle = s.ButtonFocused
	}

	teamLabel := "None"
	if teams := v.store.Teams(); v.teamIdx > 0 && v.teamIdx <= len(teams) {
		teamLabel = teams[v.teamIdx-1].Name
	}

	colorValue := lipgloss.NewStyle().
		Foreground(lipgloss.Color(projectColors[v.colorIdx])).
		Render("■ " + projectColors[v.colorIdx])

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("New Project"),
		"",
		"Name:",
		nameStyle.Width(inputWidth).Render(v.newName.View()),
		"",
		"Description:",
		descStyle.Width(inputWidth).Render(v.newDesc.View()),
		"",
		cycleField(s, "Color:", colorValue, v.focusIdx == 2),
		cycleField(s, "Team:", teamLabel, v.focusIdx == 3),
		"",
		btnStyle.Render(" Create "),
		"",
		s.TitleMuted.Render("Tab: next • Ctrl+S: save • Esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ProjectListView) renderHelp() string {
	return v.styles.Help.Render(
		fmt.Sprintf("%s filter • %s new • %s delete",
			v.styles.HelpKey.Render("/"),
			v.styles.HelpKey.Render("n"),
			v.styles.HelpKey.Render("d"),
		),
	)
}
