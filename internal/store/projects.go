package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tomhall/projex/internal/logger"
	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/notify"
)

// ProjectFields carries caller-supplied values for a new project
type ProjectFields struct {
	Name        string
	Description string
	Color       string
	Status      string
	Team        *uuid.UUID
}

// Projects returns the project collection in creation order
func (s *Store) Projects() []models.Project {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// ProjectByID returns the project with the given id or ErrNotFound
func (s *Store) ProjectByID(id uuid.UUID) (models.Project, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, p := range s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, ErrNotFound
}

// ProjectTaskCount returns how many tasks reference the project
func (s *Store) ProjectTaskCount(id uuid.UUID) int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	count := 0
	for _, t := range s.tasks {
		if t.Project != nil && *t.Project == id {
			count++
		}
	}
	return count
}

// CreateProject appends a new project. When a team id is supplied the
// team's project reference is set as a side effect; this one-directional
// sync happens at creation only and is never maintained afterward.
func (s *Store) CreateProject(fields ProjectFields) (models.Project, error) {
	name := strings.TrimSpace(fields.Name)
	if name == "" {
		return models.Project{}, &ValidationError{Field: "name"}
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	project := models.Project{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(fields.Description),
		Color:       fields.Color,
		Status:      fields.Status,
		Team:        fields.Team,
		CreatedAt:   time.Now(),
	}
	if project.Color == "" {
		project.Color = "#d4a574"
	}
	if project.Status == "" {
		project.Status = "active"
	}

	s.projects = append(s.projects, project)
	s.saveProjects()

	if fields.Team != nil {
		for i := range s.teams {
			if s.teams[i].ID == *fields.Team {
				id := project.ID
				s.teams[i].Project = &id
				s.saveTeams()
				break
			}
		}
	}

	logger.Info("project created", zap.String("id", project.ID.String()))
	s.notify.Notify("Project created successfully", notify.Success)
	return project, nil
}

// DeleteProject removes a project and clears the project reference on
// every task that pointed at it; the tasks themselves survive. When at
// least one task is attached the confirmation capability is consulted
// first, and a "no" leaves everything untouched. Returns whether the
// project was removed.
func (s *Store) DeleteProject(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mtx.RLock()
	found := false
	for _, p := range s.projects {
		if p.ID == id {
			found = true
			break
		}
	}
	attached := 0
	for _, t := range s.tasks {
		if t.Project != nil && *t.Project == id {
			attached++
		}
	}
	s.mtx.RUnlock()

	if !found {
		return false, nil
	}
	if attached > 0 {
		// No lock across the prompt; the project is looked up again
		// under the write lock before mutating
		ok, err := s.confirm.Confirm(ctx, fmt.Sprintf("This project has %d task(s). Delete anyway?", attached))
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	idx := -1
	for i, p := range s.projects {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	s.projects = append(s.projects[:idx], s.projects[idx+1:]...)
	for i := range s.tasks {
		if s.tasks[i].Project != nil && *s.tasks[i].Project == id {
			s.tasks[i].Project = nil
		}
	}
	s.saveProjects()
	s.saveTasks()

	s.notify.Notify("Project deleted", notify.Info)
	return true, nil
}
