package postgre

import (
	"time"

	"tracker-api/internal/model"

	"github.com/aarondl/null/v8"
)

const (
	tableProjects = "projects"
	projectCols   = "id, name, description, status, owner_id, start_date, end_date, created_at, updated_at, deleted_at"
)

type projectRow struct {
	ID          string      `boil:"id"`
	Name        string      `boil:"name"`
	Description null.String `boil:"description"`
	Status      string      `boil:"status"`
	OwnerID     string      `boil:"owner_id"`
	StartDate   null.Time   `boil:"start_date"`
	EndDate     null.Time   `boil:"end_date"`
	CreatedAt   time.Time   `boil:"created_at"`
	UpdatedAt   time.Time   `boil:"updated_at"`
	DeletedAt   null.Time   `boil:"deleted_at"`
}

func (r projectRow) toModel() model.Project {
	return model.Project{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description.Ptr(),
		Status:      model.ProjectStatus(r.Status),
		OwnerID:     r.OwnerID,
		StartDate:   r.StartDate.Ptr(),
		EndDate:     r.EndDate.Ptr(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		DeletedAt:   r.DeletedAt.Ptr(),
	}
}

func toModels(rows []projectRow) []model.Project {
	res := make([]model.Project, len(rows))
	for i, r := range rows {
		res[i] = r.toModel()
	}
	return res
}
