package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/notify"
)

// TeamFields carries caller-supplied values for a new team
type TeamFields struct {
	Name        string
	Description string
	Project     *uuid.UUID
}

// Teams returns the team collection in creation order
func (s *Store) Teams() []models.Team {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	out := make([]models.Team, len(s.teams))
	copy(out, s.teams)
	return out
}

// TeamByID returns the team with the given id or ErrNotFound
func (s *Store) TeamByID(id uuid.UUID) (models.Team, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, t := range s.teams {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Team{}, ErrNotFound
}

// CreateTeam appends a new team with an empty member list
func (s *Store) CreateTeam(fields TeamFields) (models.Team, error) {
	name := strings.TrimSpace(fields.Name)
	if name == "" {
		return models.Team{}, &ValidationError{Field: "name"}
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	team := models.Team{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(fields.Description),
		Project:     fields.Project,
		Members:     []models.Member{},
		CreatedAt:   time.Now(),
	}

	s.teams = append(s.teams, team)
	s.saveTeams()

	s.notify.Notify("Team created successfully", notify.Success)
	return team, nil
}

// DeleteTeam removes a team and its members. Any project whose Team
// field pointed at it keeps the now-dangling reference; callers resolve
// team lookups defensively.
func (s *Store) DeleteTeam(id uuid.UUID) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.teams {
		if s.teams[i].ID != id {
			continue
		}
		s.teams = append(s.teams[:i], s.teams[i+1:]...)
		s.saveTeams()
		s.notify.Notify("Team deleted", notify.Info)
		return
	}
}

// AddTeamMember appends a member to the team's ordered list. Role
// defaults to "Member" when blank.
func (s *Store) AddTeamMember(teamID uuid.UUID, name, role string) (models.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Member{}, &ValidationError{Field: "name"}
	}
	role = strings.TrimSpace(role)
	if role == "" {
		role = "Member"
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.teams {
		if s.teams[i].ID != teamID {
			continue
		}
		member := models.Member{ID: uuid.New(), Name: name, Role: role}
		s.teams[i].Members = append(s.teams[i].Members, member)
		s.saveTeams()

		s.notify.Notify(fmt.Sprintf("%s added to %s", name, s.teams[i].Name), notify.Success)
		return member, nil
	}
	return models.Member{}, ErrNotFound
}

// RemoveTeamMember drops a member from the team's list; a silent no-op
// when either id is missing
func (s *Store) RemoveTeamMember(teamID, memberID uuid.UUID) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.teams {
		if s.teams[i].ID != teamID {
			continue
		}
		members := s.teams[i].Members
		for j := range members {
			if members[j].ID != memberID {
				continue
			}
			s.teams[i].Members = append(members[:j], members[j+1:]...)
			s.saveTeams()
			s.notify.Notify("Member removed", notify.Info)
			return
		}
		return
	}
}
