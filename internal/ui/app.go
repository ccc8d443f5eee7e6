package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tomhall/projex/internal/notify"
	"github.com/tomhall/projex/internal/store"
	"github.com/tomhall/projex/internal/ui/keys"
	"github.com/tomhall/projex/internal/ui/styles"
	"github.com/tomhall/projex/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewTasks View = iota
	ViewBoard
	ViewCalendar
	ViewProjects
	ViewTeams
	ViewSettings
)

var viewTabs = []struct {
	view  View
	label string
}{
	{ViewTasks, "1 Tasks"},
	{ViewBoard, "2 Board"},
	{ViewCalendar, "3 Calendar"},
	{ViewProjects, "4 Projects"},
	{ViewTeams, "5 Teams"},
	{ViewSettings, "6 Settings"},
}

// Status buffers the latest store notification for the status bar.
// It is safe for the store to call from inside Update.
type Status struct {
	mtx sync.Mutex
	msg string
	sev notify.Severity
	seq int
}

func (s *Status) Notify(message string, severity notify.Severity) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.msg = message
	s.sev = severity
	s.seq++
}

// Latest returns the current message with its sequence number; the
// sequence distinguishes a fresh message from one already shown
func (s *Status) Latest() (string, notify.Severity, int) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.msg, s.sev, s.seq
}

func (s *Status) clear(seq int) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.seq == seq {
		s.msg = ""
	}
}

type statusExpiredMsg struct {
	seq int
}

// view is the shape every tab shares
type view interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
	Refresh()
	Capturing() bool
	SetSize(width, height int)
}

type App struct {
	store   *store.Store
	status  *Status
	styles  *styles.Styles
	keys    keys.KeyMap
	current View
	width   int
	height  int

	taskList *views.TaskListView
	board    *views.BoardView
	calendar *views.CalendarView
	projects *views.ProjectListView
	teams    *views.TeamsView
	settings *views.SettingsView

	debounce time.Duration
	shownSeq int
}

// NewApp builds the shell and all tabs. The status buffer must be the
// same Notifier the store was opened with.
func NewApp(st *store.Store, status *Status, debounce time.Duration) *App {
	styles.Apply(st.Settings().Theme)

	a := &App{
		store:    st,
		status:   status,
		keys:     keys.DefaultKeyMap(),
		current:  ViewTasks,
		debounce: debounce,
	}
	a.buildViews()
	return a
}

// buildViews constructs every tab, also used to pick up a theme change
func (a *App) buildViews() {
	a.styles = styles.NewStyles()
	a.taskList = views.NewTaskListView(a.store, a.debounce)
	a.board = views.NewBoardView(a.store)
	a.calendar = views.NewCalendarView(a.store)
	a.projects = views.NewProjectListView(a.store)
	a.teams = views.NewTeamsView(a.store)
	a.settings = views.NewSettingsView(a.store)
	a.fanOutSize()
}

func (a *App) fanOutSize() {
	if a.width == 0 {
		return
	}
	contentHeight := a.height - 2 // tab bar and status bar
	for _, v := range a.views() {
		v.SetSize(a.width, contentHeight)
	}
}

func (a *App) views() []view {
	return []view{a.taskList, a.board, a.calendar, a.projects, a.teams, a.settings}
}

func (a *App) active() view {
	switch a.current {
	case ViewBoard:
		return a.board
	case ViewCalendar:
		return a.calendar
	case ViewProjects:
		return a.projects
	case ViewTeams:
		return a.teams
	case ViewSettings:
		return a.settings
	}
	return a.taskList
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.fanOutSize()
		return a, nil

	case views.ThemeChanged:
		a.buildViews()
		return a, nil

	case statusExpiredMsg:
		a.status.clear(msg.seq)
		return a, nil

	case tea.KeyMsg:
		// Global bindings stand down while a form or prompt is open
		if !a.active().Capturing() {
			switch {
			case key.Matches(msg, a.keys.Quit):
				return a, tea.Quit
			case len(msg.String()) == 1 && msg.String() >= "1" && msg.String() <= "6":
				a.switchTo(View(msg.String()[0] - '1'))
				return a, nil
			}
		} else if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	cmd := a.active().Update(msg)

	// A store call inside Update may have produced a notification
	if _, _, seq := a.status.Latest(); seq != a.shownSeq {
		a.shownSeq = seq
		cmd = tea.Batch(cmd, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return statusExpiredMsg{seq: seq}
		}))
	}
	return a, cmd
}

func (a *App) switchTo(v View) {
	a.current = v
	a.active().Refresh()
}

func (a *App) View() string {
	tabs := make([]string, 0, len(viewTabs))
	for _, t := range viewTabs {
		style := a.styles.Tab
		if t.view == a.current {
			style = a.styles.TabActive
		}
		tabs = append(tabs, style.Render(t.label))
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	return lipgloss.JoinVertical(lipgloss.Left,
		tabBar,
		a.active().View(),
		a.statusBar(),
	)
}

func (a *App) statusBar() string {
	msg, sev, _ := a.status.Latest()
	if msg == "" || !a.store.Settings().Notifications {
		return a.styles.StatusBar.Width(a.width).Render("")
	}

	style := a.styles.StatusInfo
	switch sev {
	case notify.Success:
		style = a.styles.StatusSuccess
	case notify.Error:
		style = a.styles.StatusError
	}
	return a.styles.StatusBar.Width(a.width).Render(style.Render(fmt.Sprintf(" %s", msg)))
}
