package model

import (
	"time"

	"tracker-api/pkg/permission"
)

type ProjectStatus string

const (
	ProjectStatusPlanned   ProjectStatus = "planned"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusPaused    ProjectStatus = "paused"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// IsValid checks if the project status is valid.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanned,
		ProjectStatusActive,
		ProjectStatusPaused,
		ProjectStatusCompleted:
		return true
	default:
		return false
	}
}

func (s ProjectStatus) String() string {
	return string(s)
}

// Project is a tracked piece of work owned by a user.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	Status      ProjectStatus `json:"status"`
	OwnerID     string        `json:"owner_id"`
	StartDate   *time.Time    `json:"start_date,omitempty"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	DeletedAt   *time.Time    `json:"deleted_at,omitempty"`
}

// VisibleTo reports whether sc may see the project: its owner always can,
// anyone holding viewAllProjects can see every project.
func (p Project) VisibleTo(sc Scope) bool {
	return p.OwnerID == sc.UserID || sc.Can(permission.ViewAllProjects)
}
