package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/store"
	"github.com/tomhall/projex/internal/ui/keys"
	"github.com/tomhall/projex/internal/ui/styles"
)

// TeamsView lists teams with their member rosters. The cursor walks
// teams; tab walks the selected team's members for removal.
type TeamsView struct {
	store  *store.Store
	styles *styles.Styles
	keys   keys.KeyMap
	width  int
	height int

	teams     []models.Team
	cursor    int
	memberIdx int

	creating   bool
	newName    textinput.Model
	newDesc    textinput.Model
	projectIdx int // 0 = none, then store.Projects()
	focusIdx   int // 0=name, 1=desc, 2=project, 3=confirm

	addingMember bool
	memberName   textinput.Model
	memberRole   textinput.Model
	memberFocus  int // 0=name, 1=role, 2=confirm

	confirmingDelete bool
	deleteTargetID   uuid.UUID
	deleteTargetName string
}

func NewTeamsView(st *store.Store) *TeamsView {
	newName := textinput.New()
	newName.Placeholder = "Team name"
	newName.CharLimit = 100

	newDesc := textinput.New()
	newDesc.Placeholder = "Description (optional)"
	newDesc.CharLimit = 200

	memberName := textinput.New()
	memberName.Placeholder = "Member name"
	memberName.CharLimit = 100

	memberRole := textinput.New()
	memberRole.Placeholder = "Role (default Member)"
	memberRole.CharLimit = 100

	v := &TeamsView{
		store:      st,
		styles:     styles.NewStyles(),
		keys:       keys.DefaultKeyMap(),
		newName:    newName,
		newDesc:    newDesc,
		memberName: memberName,
		memberRole: memberRole,
	}
	v.Refresh()
	return v
}

func (v *TeamsView) Refresh() {
	v.teams = v.store.Teams()
	v.cursor = clamp(v.cursor, 0, len(v.teams)-1)
	if len(v.teams) == 0 {
		v.cursor = 0
	}
	v.memberIdx = 0
}

func (v *TeamsView) Capturing() bool {
	return v.creating || v.addingMember || v.confirmingDelete
}

func (v *TeamsView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

func (v *TeamsView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if v.confirmingDelete {
		switch keyMsg.String() {
		case "y", "Y":
			v.store.DeleteTeam(v.deleteTargetID)
			v.confirmingDelete = false
			v.Refresh()
		case "n", "N", "esc":
			v.confirmingDelete = false
		}
		return nil
	}

	if v.creating {
		return v.updateCreating(keyMsg)
	}
	if v.addingMember {
		return v.updateAddingMember(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, v.keys.Up):
		v.cursor = clamp(v.cursor-1, 0, len(v.teams)-1)
		v.memberIdx = 0
	case key.Matches(keyMsg, v.keys.Down):
		v.cursor = clamp(v.cursor+1, 0, len(v.teams)-1)
		v.memberIdx = 0

	case key.Matches(keyMsg, v.keys.Tab):
		if v.cursor < len(v.teams) {
			if members := v.teams[v.cursor].Members; len(members) > 0 {
				v.memberIdx = (v.memberIdx + 1) % len(members)
			}
		}

	case key.Matches(keyMsg, v.keys.New):
		v.creating = true
		v.focusIdx = 0
		v.newName.Reset()
		v.newDesc.Reset()
		v.projectIdx = 0
		v.newName.Focus()
		return textinput.Blink

	case keyMsg.String() == "m":
		if v.cursor < len(v.teams) {
			v.addingMember = true
			v.memberFocus = 0
			v.memberName.Reset()
			v.memberRole.Reset()
			v.memberName.Focus()
			return textinput.Blink
		}

	case keyMsg.String() == "r":
		if v.cursor < len(v.teams) {
			members := v.teams[v.cursor].Members
			if v.memberIdx < len(members) {
				v.store.RemoveTeamMember(v.teams[v.cursor].ID, members[v.memberIdx].ID)
				v.Refresh()
			}
		}

	case key.Matches(keyMsg, v.keys.Delete):
		if v.cursor < len(v.teams) {
			v.confirmingDelete = true
			v.deleteTargetID = v.teams[v.cursor].ID
			v.deleteTargetName = v.teams[v.cursor].Name
		}
	}
	return nil
}

const teamFormSlots = 4

func (v *TeamsView) updateCreating(msg tea.KeyMsg) tea.Cmd {
	projects := v.store.Projects()

	switch {
	case key.Matches(msg, v.keys.Back):
		v.creating = false
		return nil

	case msg.String() == "shift+tab":
		v.focusIdx = (v.focusIdx + teamFormSlots - 1) % teamFormSlots
		v.updateCreateFocus()
		return nil

	case key.Matches(msg, v.keys.Tab):
		v.focusIdx = (v.focusIdx + 1) % teamFormSlots
		v.updateCreateFocus()
		return nil

	case key.Matches(msg, v.keys.Left) && v.focusIdx == 2:
		v.projectIdx = clamp(v.projectIdx-1, 0, len(projects))
		return nil
	case key.Matches(msg, v.keys.Right) && v.focusIdx == 2:
		v.projectIdx = clamp(v.projectIdx+1, 0, len(projects))
		return nil

	case msg.String() == "ctrl+s", key.Matches(msg, v.keys.Enter) && v.focusIdx == 3:
		fields := store.TeamFields{
			Name:        strings.TrimSpace(v.newName.Value()),
			Description: strings.TrimSpace(v.newDesc.Value()),
		}
		if v.projectIdx > 0 {
			id := projects[v.projectIdx-1].ID
			fields.Project = &id
		}
		if _, err := v.store.CreateTeam(fields); err != nil {
			return nil
		}
		v.creating = false
		v.Refresh()
		return nil

	case key.Matches(msg, v.keys.Enter):
		v.focusIdx = (v.focusIdx + 1) % teamFormSlots
		v.updateCreateFocus()
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

func (v *TeamsView) updateCreateFocus() {
	v.newName.Blur()
	v.newDesc.Blur()
	switch v.focusIdx {
	case 0:
		v.newName.Focus()
	case 1:
		v.newDesc.Focus()
	}
}

func (v *TeamsView) updateAddingMember(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.addingMember = false
		return nil

	case msg.String() == "shift+tab":
		v.memberFocus = (v.memberFocus + 2) % 3
		v.updateMemberFocus()
		return nil

	case key.Matches(msg, v.keys.Tab):
		v.memberFocus = (v.memberFocus + 1) % 3
		v.updateMemberFocus()
		return nil

	case msg.String() == "ctrl+s", key.Matches(msg, v.keys.Enter) && v.memberFocus == 2:
		if v.cursor < len(v.teams) {
			_, err := v.store.AddTeamMember(v.teams[v.cursor].ID,
				strings.TrimSpace(v.memberName.Value()),
				strings.TrimSpace(v.memberRole.Value()))
			if err != nil {
				return nil
			}
		}
		v.addingMember = false
		v.Refresh()
		return nil

	case key.Matches(msg, v.keys.Enter):
		v.memberFocus = (v.memberFocus + 1) % 3
		v.updateMemberFocus()
		return nil
	}

	var cmd tea.Cmd
	switch v.memberFocus {
	case 0:
		v.memberName, cmd = v.memberName.Update(msg)
	case 1:
		v.memberRole, cmd = v.memberRole.Update(msg)
	}
	return cmd
}

func (v *TeamsView) updateMemberFocus() {
	v.memberName.Blur()
	v.memberRole.Blur()
	switch v.memberFocus {
	case 0:
		v.memberName.Focus()
	case 1:
		v.memberRole.Focus()
	}
}

func (v *TeamsView) View() string {
	if v.confirmingDelete {
		message := fmt.Sprintf("Delete %q? Its projects are kept.", v.deleteTargetName)
		return renderConfirm(v.styles, "Delete Team?", message, v.width, v.height)
	}
	if v.creating {
		return v.renderCreateForm()
	}
	if v.addingMember {
		return v.renderMemberForm()
	}
	if len(v.teams) == 0 {
		return v.renderEmpty()
	}

	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	var rows []string
	for i, team := range v.teams {
		titleStyle := s.ListItem
		if i == v.cursor {
			titleStyle = s.ListSelected
		}

		line := fmt.Sprintf("%s (%d member(s))", team.Name, len(team.Members))
		rows = append(rows, titleStyle.Width(contentWidth-4).Render(line))
		if team.Description != "" {
			rows = append(rows, "    "+s.TitleMuted.Render(team.Description))
		}
		if team.Project != nil {
			if p, err := v.store.ProjectByID(*team.Project); err == nil {
				rows = append(rows, "    "+s.TitleMuted.Render("Project: "+p.Name))
			}
		}

		if i == v.cursor {
			for j, member := range team.Members {
				marker := "    "
				if j == v.memberIdx {
					marker = "  ▸ "
				}
				rows = append(rows, marker+s.ListItem.Render(member.Name+" · "+member.Role))
			}
		}
	}

	help := s.Help.Render(fmt.Sprintf(
		"%s select • %s new team • %s add member • %s member • %s remove • %s delete",
		s.HelpKey.Render("↑↓"),
		s.HelpKey.Render("n"),
		s.HelpKey.Render("m"),
		s.HelpKey.Render("tab"),
		s.HelpKey.Render("r"),
		s.HelpKey.Render("d"),
	))

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Teams"),
		"",
		strings.Join(rows, "\n"),
		"",
		help,
	)
	return styles.CenterView(content, v.width, v.height)
}

func (v *TeamsView) renderEmpty() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render("No Teams"),
		"",
		s.TitleMuted.Render("Press 'n' to create your first team"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TeamsView) renderCreateForm() string {
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
	case 3:
		btnStyle = s.ButtonFocused
	}

	projectLabel := "None"
	if projects := v.store.Projects(); v.projectIdx > 0 && v.projectIdx <= len(projects) {
		projectLabel = projects[v.projectIdx-1].Name
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("New Team"),
		"",
		"Name:",
		nameStyle.Width(inputWidth).Render(v.newName.View()),
		"",
		"Description:",
		descStyle.Width(inputWidth).Render(v.newDesc.View()),
		"",
		cycleField(s, "Project:", projectLabel, v.focusIdx == 2),
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

func (v *TeamsView) renderMemberForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	nameStyle := s.Input
	roleStyle := s.Input
	btnStyle := s.Button
	switch v.memberFocus {
	case 0:
		nameStyle = s.InputFocused
	case 1:
		roleStyle = s.InputFocused
	case 2:
		btnStyle = s.ButtonFocused
	}

	teamName := ""
	if v.cursor < len(v.teams) {
		teamName = v.teams[v.cursor].Name
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Add Member"),
		s.TitleMuted.Render(teamName),
		"",
		"Name:",
		nameStyle.Width(inputWidth).Render(v.memberName.View()),
		"",
		"Role:",
		roleStyle.Width(inputWidth).Render(v.memberRole.View()),
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
