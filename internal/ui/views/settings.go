package views

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/store"
	"github.com/tomhall/projex/internal/ui/keys"
	"github.com/tomhall/projex/internal/ui/styles"
)

// SettingsView edits user settings and hosts the backup export and
// the clear-all flow. Edits stay local until saved with ctrl+s.
type SettingsView struct {
	store  *store.Store
	styles *styles.Styles
	keys   keys.KeyMap
	width  int
	height int

	username      textinput.Model
	role          textinput.Model
	themeIdx      int
	notifications bool
	sound         bool
	focusIdx      int // 0=username, 1=role, 2=theme, 3=notifications, 4=sound, 5=save

	confirmingClear bool
	lastExport      string
}

func NewSettingsView(st *store.Store) *SettingsView {
	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 100

	role := textinput.New()
	role.Placeholder = "Role"
	role.CharLimit = 100

	v := &SettingsView{
		store:    st,
		styles:   styles.NewStyles(),
		keys:     keys.DefaultKeyMap(),
		username: username,
		role:     role,
	}
	v.Refresh()
	return v
}

// Refresh reloads the form from the persisted settings, discarding
// unsaved edits
func (v *SettingsView) Refresh() {
	settings := v.store.Settings()
	v.username.SetValue(settings.Username)
	v.role.SetValue(settings.Role)
	v.themeIdx = 0
	for i, t := range models.Themes {
		if t == settings.Theme {
			v.themeIdx = i
			break
		}
	}
	v.notifications = settings.Notifications
	v.sound = settings.Sound
	// Start on the theme row so the digit keys still switch tabs;
	// tabbing into a text input takes over key capture
	v.focusIdx = 2
	v.username.Blur()
	v.role.Blur()
}

func (v *SettingsView) Capturing() bool {
	return v.confirmingClear || v.username.Focused() || v.role.Focused()
}

func (v *SettingsView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

const settingsSlots = 6

func (v *SettingsView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if v.confirmingClear {
		switch keyMsg.String() {
		case "y", "Y":
			v.store.ClearAll(context.Background())
			v.confirmingClear = false
		case "n", "N", "esc":
			v.confirmingClear = false
		}
		return nil
	}

	switch {
	case key.Matches(keyMsg, v.keys.Back):
		v.focusIdx = 2
		v.updateFocus()
		return nil

	case keyMsg.String() == "shift+tab":
		v.focusIdx = (v.focusIdx + settingsSlots - 1) % settingsSlots
		v.updateFocus()
		return nil

	case key.Matches(keyMsg, v.keys.Tab),
		key.Matches(keyMsg, v.keys.Down) && v.focusIdx >= 2:
		v.focusIdx = (v.focusIdx + 1) % settingsSlots
		v.updateFocus()
		return nil

	case key.Matches(keyMsg, v.keys.Up) && v.focusIdx >= 2:
		v.focusIdx = (v.focusIdx + settingsSlots - 1) % settingsSlots
		v.updateFocus()
		return nil

	case key.Matches(keyMsg, v.keys.Left) && v.focusIdx == 2:
		v.themeIdx = clamp(v.themeIdx-1, 0, len(models.Themes)-1)
		return nil
	case key.Matches(keyMsg, v.keys.Right) && v.focusIdx == 2:
		v.themeIdx = clamp(v.themeIdx+1, 0, len(models.Themes)-1)
		return nil

	case key.Matches(keyMsg, v.keys.Toggle) && v.focusIdx == 3,
		key.Matches(keyMsg, v.keys.Enter) && v.focusIdx == 3:
		v.notifications = !v.notifications
		return nil
	case key.Matches(keyMsg, v.keys.Toggle) && v.focusIdx == 4,
		key.Matches(keyMsg, v.keys.Enter) && v.focusIdx == 4:
		v.sound = !v.sound
		return nil

	case keyMsg.String() == "ctrl+s", key.Matches(keyMsg, v.keys.Enter) && v.focusIdx == 5:
		return v.save()

	case keyMsg.String() == "ctrl+e":
		v.export()
		return nil

	case keyMsg.String() == "ctrl+x":
		v.confirmingClear = true
		return nil

	case key.Matches(keyMsg, v.keys.Enter):
		v.focusIdx = (v.focusIdx + 1) % settingsSlots
		v.updateFocus()
		return nil
	}

	var cmd tea.Cmd
	switch v.focusIdx {
	case 0:
		v.username, cmd = v.username.Update(keyMsg)
	case 1:
		v.role, cmd = v.role.Update(keyMsg)
	}
	return cmd
}

func (v *SettingsView) updateFocus() {
	v.username.Blur()
	v.role.Blur()
	switch v.focusIdx {
	case 0:
		v.username.Focus()
	case 1:
		v.role.Focus()
	}
}

func (v *SettingsView) save() tea.Cmd {
	previous := v.store.Settings()
	next := models.Settings{
		Username:      strings.TrimSpace(v.username.Value()),
		Role:          strings.TrimSpace(v.role.Value()),
		Theme:         models.Themes[v.themeIdx],
		Notifications: v.notifications,
		Sound:         v.sound,
	}
	v.store.SaveSettings(next)

	if next.Theme != previous.Theme {
		styles.Apply(next.Theme)
		return func() tea.Msg { return ThemeChanged{} }
	}
	return nil
}

// export writes the JSON backup next to the working directory, named
// by today's date the way the download flow names files
func (v *SettingsView) export() {
	data, err := v.store.ExportJSON()
	if err != nil {
		return
	}
	name := fmt.Sprintf("projex-backup-%s.json", time.Now().Format("2006-01-02"))
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return
	}
	v.lastExport = name
}

func (v *SettingsView) View() string {
	if v.confirmingClear {
		return renderConfirm(v.styles, "Clear All Data?",
			"Tasks, projects, teams and notes will be deleted. Settings are kept.",
			v.width, v.height)
	}

	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	usernameStyle := s.Input
	roleStyle := s.Input
	btnStyle := s.Button
	switch v.focusIdx {
	case 0:
		usernameStyle = s.InputFocused
	case 1:
		roleStyle = s.InputFocused
	case 5:
		btnStyle = s.ButtonFocused
	}

	toggle := func(on bool) string {
		if on {
			return "on"
		}
		return "off"
	}

	rows := []string{
		s.Title.Render("Settings"),
		"",
		"Username:",
		usernameStyle.Width(inputWidth).Render(v.username.View()),
		"",
		"Role:",
		roleStyle.Width(inputWidth).Render(v.role.View()),
		"",
		cycleField(s, "Theme:", models.Themes[v.themeIdx].Label(), v.focusIdx == 2),
		cycleField(s, "Notifications:", toggle(v.notifications), v.focusIdx == 3),
		cycleField(s, "Sound:", toggle(v.sound), v.focusIdx == 4),
		"",
		btnStyle.Render(" Save "),
		"",
		s.TitleMuted.Render("Ctrl+S: save • Ctrl+E: export backup • Ctrl+X: clear all data"),
	}
	if v.lastExport != "" {
		rows = append(rows, s.TitleMuted.Render("Exported to "+v.lastExport))
	}

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}
