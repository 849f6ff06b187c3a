package usecase

import (
	"context"
	"errors"
	"strings"

	"tracker-api/internal/model"
	"tracker-api/internal/project"
	"tracker-api/internal/project/repository"
	postgrePkg "tracker-api/pkg/postgre"
)

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip project.GetInput) (project.GetProjectOutput, error) {
	if ip.Filter.Status != "" && !ip.Filter.Status.IsValid() {
		return project.GetProjectOutput{}, project.ErrInvalidStatus
	}

	ps, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter:        visibleFilter(sc, ip.Filter),
		Order:         resolveOrder(ip.Sort),
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.project.usecase.Get: %v", err)
		return project.GetProjectOutput{}, err
	}

	return project.GetProjectOutput{Projects: ps, Paginator: pag}, nil
}

// Detail hides projects the caller may not see behind ErrProjectNotFound.
func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.Project, error) {
	p, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Project{}, project.ErrProjectNotFound
		}
		uc.l.Errorf(ctx, "internal.project.usecase.Detail: %v", err)
		return model.Project{}, err
	}
	if !p.VisibleTo(sc) {
		return model.Project{}, project.ErrProjectNotFound
	}

	return p, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip project.CreateInput) (model.Project, error) {
	name := strings.TrimSpace(ip.Name)
	if name == "" {
		return model.Project{}, project.ErrNameRequired
	}
	status := ip.Status
	if status == "" {
		status = model.ProjectStatusPlanned
	}
	if !status.IsValid() {
		return model.Project{}, project.ErrInvalidStatus
	}
	if err := validateDates(ip.StartDate, ip.EndDate); err != nil {
		return model.Project{}, err
	}

	p, err := uc.repo.Create(ctx, sc, repository.CreateOptions{Project: model.Project{
		ID:          postgrePkg.NewUUID(),
		Name:        name,
		Description: trimmedPtr(ip.Description),
		Status:      status,
		OwnerID:     sc.UserID,
		StartDate:   ip.StartDate,
		EndDate:     ip.EndDate,
	}})
	if err != nil {
		uc.l.Errorf(ctx, "internal.project.usecase.Create: %v", err)
		return model.Project{}, err
	}

	return p, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip project.UpdateInput) (model.Project, error) {
	p, err := uc.Detail(ctx, sc, ip.ID)
	if err != nil {
		return model.Project{}, err
	}

	if ip.Name != nil {
		name := strings.TrimSpace(*ip.Name)
		if name == "" {
			return model.Project{}, project.ErrNameRequired
		}
		p.Name = name
	}
	if ip.Description != nil {
		p.Description = trimmedPtr(*ip.Description)
	}
	if ip.Status != nil {
		if !ip.Status.IsValid() {
			return model.Project{}, project.ErrInvalidStatus
		}
		p.Status = *ip.Status
	}
	if ip.StartDate != nil {
		p.StartDate = ip.StartDate
	}
	if ip.EndDate != nil {
		p.EndDate = ip.EndDate
	}
	if err := validateDates(p.StartDate, p.EndDate); err != nil {
		return model.Project{}, err
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Project: p})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Project{}, project.ErrProjectNotFound
		}
		uc.l.Errorf(ctx, "internal.project.usecase.Update: %v", err)
		return model.Project{}, err
	}

	return updated, nil
}

// Delete soft-deletes the project and then removes its files.
func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.Detail(ctx, sc, id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return project.ErrProjectNotFound
		}
		uc.l.Errorf(ctx, "internal.project.usecase.Delete: %v", err)
		return err
	}

	if uc.files != nil {
		if err := uc.files.DeleteByProject(ctx, sc, id); err != nil {
			// The project is already gone; orphaned objects are only logged.
			uc.l.Warnf(ctx, "internal.project.usecase.Delete.DeleteByProject: %v", err)
		}
	}

	return nil
}
