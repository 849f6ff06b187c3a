package usecase

import (
	"context"
	"encoding/csv"
	"io"
	"time"

	"tracker-api/internal/model"
	"tracker-api/internal/project"
	"tracker-api/internal/project/repository"
)

var exportHeader = []string{"id", "name", "status", "owner_id", "start_date", "end_date", "description", "created_at"}

func (uc *usecase) Export(ctx context.Context, sc model.Scope, ip project.ExportInput, w io.Writer) error {
	if ip.Filter.Status != "" && !ip.Filter.Status.IsValid() {
		return project.ErrInvalidStatus
	}

	ps, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: visibleFilter(sc, ip.Filter),
		Order:  resolveOrder(ip.Sort),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.project.usecase.Export.List: %v", err)
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, p := range ps {
		if err := cw.Write(toRecord(p)); err != nil {
			uc.l.Errorf(ctx, "internal.project.usecase.Export.Write: %v", err)
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func toRecord(p model.Project) []string {
	rec := []string{p.ID, p.Name, p.Status.String(), p.OwnerID, "", "", "", p.CreatedAt.Format(time.RFC3339)}
	if p.StartDate != nil {
		rec[4] = p.StartDate.Format(time.DateOnly)
	}
	if p.EndDate != nil {
		rec[5] = p.EndDate.Format(time.DateOnly)
	}
	if p.Description != nil {
		rec[6] = *p.Description
	}
	return rec
}
