package models

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a single unit of work on the board
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Priority    Priority   `json:"priority"`
	Deadline    string     `json:"deadline,omitempty"` // ISO date (2006-01-02), empty if none
	Time        string     `json:"time,omitempty"`     // HH:MM, only meaningful with a deadline
	Assignee    string     `json:"assignee,omitempty"`
	Project     *uuid.UUID `json:"project,omitempty"` // nil if unassigned
	Status      Status     `json:"status"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Project groups tasks under a name and display color
type Project struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	Status      string     `json:"status"`
	Team        *uuid.UUID `json:"team,omitempty"` // best-effort back-pointer, may go stale
	CreatedAt   time.Time  `json:"createdAt"`
}

// Team holds an ordered member list and an optional project link.
// Team.Project and Project.Team are synced only when a project is
// created with a team attached; edits after that may leave them apart.
type Team struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Project     *uuid.UUID `json:"project,omitempty"`
	Members     []Member   `json:"members"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Member belongs exclusively to its team
type Member struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

// StickyNote is a freeform annotation owned by a calendar date key
type StickyNote struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// Settings is the singleton user profile and preference set
type Settings struct {
	Username      string `json:"username"`
	Role          string `json:"role"`
	Theme         Theme  `json:"theme"`
	Notifications bool   `json:"notifications"`
	Sound         bool   `json:"sound"`
}

// DefaultSettings returns the lazily applied defaults
func DefaultSettings() Settings {
	return Settings{
		Username:      "Administrator",
		Role:          "Project Manager",
		Theme:         ThemeDark,
		Notifications: true,
		Sound:         true,
	}
}

type Status string

const (
	StatusToDo       Status = "to-do"
	StatusInProgress Status = "in-progress"
	StatusReview     Status = "review"
	StatusQA         Status = "qa"
	StatusDone       Status = "done"
)

// Label returns the display name for a kanban column
func (s Status) Label() string {
	switch s {
	case StatusToDo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusReview:
		return "In Review"
	case StatusQA:
		return "QA"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

type Category string

const (
	CategoryDevelopment Category = "development"
	CategoryDesign      Category = "design"
	CategoryMarketing   Category = "marketing"
	CategorySales       Category = "sales"
	CategoryOperations  Category = "operations"
	CategoryHR          Category = "hr"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryDevelopment,
	CategoryDesign,
	CategoryMarketing,
	CategorySales,
	CategoryOperations,
	CategoryHR,
}

func (c Category) Label() string {
	switch c {
	case CategoryDevelopment:
		return "Development"
	case CategoryDesign:
		return "Design"
	case CategoryMarketing:
		return "Marketing"
	case CategorySales:
		return "Sales"
	case CategoryOperations:
		return "Operations"
	case CategoryHR:
		return "Human Resources"
	}
	return string(c)
}

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Priorities lists every priority from most to least urgent
var Priorities = []Priority{
	PriorityCritical,
	PriorityHigh,
	PriorityMedium,
	PriorityLow,
}

func (p Priority) Label() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	}
	return string(p)
}

type Theme string

const (
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
	ThemeOffice Theme = "office"
	ThemeHome   Theme = "home"
)

// Themes lists the selectable themes in settings order
var Themes = []Theme{ThemeDark, ThemeLight, ThemeOffice, ThemeHome}

func (t Theme) Label() string {
	switch t {
	case ThemeDark:
		return "Dark"
	case ThemeLight:
		return "Light"
	case ThemeOffice:
		return "Office"
	case ThemeHome:
		return "Home"
	}
	return string(t)
}
