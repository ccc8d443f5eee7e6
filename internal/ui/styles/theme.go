package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tomhall/projex/internal/models"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name string

	// Base colors
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// UI element colors
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
}

// Dark is the default retro brown-on-cream scheme
var Dark = Theme{
	Name: "Dark",

	Background:    lipgloss.Color("#4a3829"),
	Foreground:    lipgloss.Color("#f5f5dc"),
	ForegroundDim: lipgloss.Color("#b8916a"),

	Primary:   lipgloss.Color("#d4a574"),
	Secondary: lipgloss.Color("#8b7355"),
	Accent:    lipgloss.Color("#fff8dc"),

	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),
	Info:    lipgloss.Color("#d4a574"),

	Border:      lipgloss.Color("#6b5744"),
	BorderFocus: lipgloss.Color("#d4a574"),
	Selection:   lipgloss.Color("#6b5744"),
}

// Light is the high-contrast paper scheme
var Light = Theme{
	Name: "Light",

	Background:    lipgloss.Color("#ffffff"),
	Foreground:    lipgloss.Color("#2c1810"),
	ForegroundDim: lipgloss.Color("#5a4a3a"),

	Primary:   lipgloss.Color("#b8916a"),
	Secondary: lipgloss.Color("#d4a574"),
	Accent:    lipgloss.Color("#a0826d"),

	Success: lipgloss.Color("#4d7c0f"),
	Warning: lipgloss.Color("#b45309"),
	Error:   lipgloss.Color("#b91c1c"),
	Info:    lipgloss.Color("#b8916a"),

	Border:      lipgloss.Color("#d4a574"),
	BorderFocus: lipgloss.Color("#a0826d"),
	Selection:   lipgloss.Color("#e8c4a0"),
}

// Office is the professional blue-gray scheme
var Office = Theme{
	Name: "Office",

	Background:    lipgloss.Color("#1e293b"),
	Foreground:    lipgloss.Color("#f0f4f8"),
	ForegroundDim: lipgloss.Color("#94a3b8"),

	Primary:   lipgloss.Color("#7b9eb8"),
	Secondary: lipgloss.Color("#5a7c99"),
	Accent:    lipgloss.Color("#cbd5e1"),

	Success: lipgloss.Color("#86efac"),
	Warning: lipgloss.Color("#fcd34d"),
	Error:   lipgloss.Color("#fda4af"),
	Info:    lipgloss.Color("#7b9eb8"),

	Border:      lipgloss.Color("#3d5a73"),
	BorderFocus: lipgloss.Color("#7b9eb8"),
	Selection:   lipgloss.Color("#2a3f52"),
}

// Home is the warm terracotta-and-sage scheme
var Home = Theme{
	Name: "Home",

	Background:    lipgloss.Color("#3e2723"),
	Foreground:    lipgloss.Color("#faf7f2"),
	ForegroundDim: lipgloss.Color("#c48b7a"),

	Primary:   lipgloss.Color("#d4a190"),
	Secondary: lipgloss.Color("#b5705f"),
	Accent:    lipgloss.Color("#f0e8dc"),

	Success: lipgloss.Color("#a3be8c"),
	Warning: lipgloss.Color("#ebcb8b"),
	Error:   lipgloss.Color("#bf616a"),
	Info:    lipgloss.Color("#d4a190"),

	Border:      lipgloss.Color("#7a4133"),
	BorderFocus: lipgloss.Color("#d4a190"),
	Selection:   lipgloss.Color("#7a4133"),
}

// Current holds the active theme
var Current = Dark

// Apply switches the active theme by its settings value
func Apply(theme models.Theme) {
	switch theme {
	case models.ThemeLight:
		Current = Light
	case models.ThemeOffice:
		Current = Office
	case models.ThemeHome:
		Current = Home
	default:
		Current = Dark
	}
}

// MaxWidth is the maximum content width for the app
const MaxWidth = 120

// ContentWidth returns the actual content width to use (min of terminal width and MaxWidth)
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView wraps content and centers it horizontally if terminal is wider than MaxWidth
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// Styles holds all the pre-computed styles for the UI
type Styles struct {
	// Title bar
	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	// Navigation tabs
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Lists
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	// Kanban columns
	Column       lipgloss.Style
	ColumnFocus  lipgloss.Style
	ColumnHeader lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style

	// Badges
	Badge        lipgloss.Style
	BadgeOverdue lipgloss.Style
	BadgeDone    lipgloss.Style

	// Buttons
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonPrimary lipgloss.Style

	// Input fields
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Calendar cells
	CalendarCell     lipgloss.Style
	CalendarToday    lipgloss.Style
	CalendarSelected lipgloss.Style
	CalendarOverdue  lipgloss.Style

	// Help text
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Status bar
	StatusBar     lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
}

// NewStyles creates styles based on the current theme
func NewStyles() *Styles {
	t := Current

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Tab: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(0, 2),

		TabActive: lipgloss.NewStyle().
			Foreground(t.Primary).
			Padding(0, 2).
			Bold(true).
			Underline(true),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 2),

		ListSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 2).
			Bold(true),

		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		ColumnFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 1).
			Bold(true),

		Badge: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		BadgeOverdue: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		BadgeDone: lipgloss.NewStyle().
			Foreground(t.Success),

		Button: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(t.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 2).
			Bold(true),

		ButtonPrimary: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Padding(0, 2).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		CalendarCell: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		CalendarToday: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1).
			Bold(true),

		CalendarSelected: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.BorderFocus).
			Background(t.Selection).
			Padding(0, 1),

		CalendarOverdue: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Error).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(0, 1),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(t.Success).
			Padding(0, 1).
			Bold(true),

		StatusInfo: lipgloss.NewStyle().
			Foreground(t.Info).
			Padding(0, 1),

		StatusError: lipgloss.NewStyle().
			Foreground(t.Error).
			Padding(0, 1).
			Bold(true),
	}
}
