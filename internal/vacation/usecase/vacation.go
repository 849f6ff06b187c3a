package usecase

import (
	"context"
	"errors"

	"tracker-api/internal/model"
	"tracker-api/internal/vacation"
	"tracker-api/internal/vacation/repository"
	"tracker-api/pkg/permission"
	postgrePkg "tracker-api/pkg/postgre"
)

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip vacation.GetInput) (vacation.GetVacationOutput, error) {
	f := repository.Filter{
		UserID: sc.UserID,
		Status: ip.Filter.Status,
	}
	if f.Status != "" && !f.Status.IsValid() {
		return vacation.GetVacationOutput{}, vacation.ErrInvalidStatus
	}
	if ip.Filter.All || (ip.Filter.UserID != "" && ip.Filter.UserID != sc.UserID) {
		if !sc.Can(permission.ViewReports) {
			return vacation.GetVacationOutput{}, vacation.ErrForbidden
		}
		f.UserID = ip.Filter.UserID
	}
	if ip.Filter.Month != "" {
		from, to, err := monthRange(ip.Filter.Month)
		if err != nil {
			return vacation.GetVacationOutput{}, err
		}
		f.From, f.To = from, to
	}

	vs, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{Filter: f, PaginateQuery: ip.PaginateQuery})
	if err != nil {
		uc.l.Errorf(ctx, "internal.vacation.usecase.Get: %v", err)
		return vacation.GetVacationOutput{}, err
	}

	return vacation.GetVacationOutput{Vacations: vs, Paginator: pag}, nil
}

// Detail returns the caller's own request, or any request to viewReports holders.
func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.Vacation, error) {
	v, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Vacation{}, vacation.ErrVacationNotFound
		}
		uc.l.Errorf(ctx, "internal.vacation.usecase.Detail: %v", err)
		return model.Vacation{}, err
	}
	if v.UserID != sc.UserID && !sc.Can(permission.ViewReports) {
		return model.Vacation{}, vacation.ErrVacationNotFound
	}

	return v, nil
}

func (uc *usecase) checkOverlap(ctx context.Context, sc model.Scope, opts repository.OverlapOptions) error {
	vs, err := uc.repo.Overlapping(ctx, sc, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.vacation.usecase.checkOverlap: %v", err)
		return err
	}
	if len(vs) > 0 {
		return vacation.ErrOverlap
	}
	return nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip vacation.CreateInput) (model.Vacation, error) {
	start, end := dateOnly(ip.StartDate), dateOnly(ip.EndDate)
	if end.Before(start) {
		return model.Vacation{}, vacation.ErrInvalidDateRange
	}

	if err := uc.checkOverlap(ctx, sc, repository.OverlapOptions{UserID: sc.UserID, From: start, To: end}); err != nil {
		return model.Vacation{}, err
	}

	v, err := uc.repo.Create(ctx, sc, repository.CreateOptions{Vacation: model.Vacation{
		ID:        postgrePkg.NewUUID(),
		UserID:    sc.UserID,
		StartDate: start,
		EndDate:   end,
		Reason:    ip.Reason,
		Status:    model.VacationStatusPending,
	}})
	if err != nil {
		if errors.Is(err, repository.ErrOverlap) {
			return model.Vacation{}, vacation.ErrOverlap
		}
		uc.l.Errorf(ctx, "internal.vacation.usecase.Create: %v", err)
		return model.Vacation{}, err
	}

	return v, nil
}

// Decide records a reviewer's approval or rejection. Approving re-checks
// overlap so a rejected request cannot be revived on top of another one.
func (uc *usecase) Decide(ctx context.Context, sc model.Scope, ip vacation.DecideInput) (model.Vacation, error) {
	if !ip.Status.IsDecision() {
		return model.Vacation{}, vacation.ErrInvalidStatus
	}

	v, err := uc.Detail(ctx, sc, ip.ID)
	if err != nil {
		return model.Vacation{}, err
	}

	if ip.Status == model.VacationStatusApproved && v.Status != model.VacationStatusApproved {
		if err := uc.checkOverlap(ctx, sc, repository.OverlapOptions{
			UserID:    v.UserID,
			From:      v.StartDate,
			To:        v.EndDate,
			ExcludeID: v.ID,
		}); err != nil {
			return model.Vacation{}, err
		}
	}

	updated, err := uc.repo.UpdateStatus(ctx, sc, repository.UpdateStatusOptions{
		ID:         v.ID,
		Status:     ip.Status,
		ReviewedBy: sc.UserID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Vacation{}, vacation.ErrVacationNotFound
		}
		if errors.Is(err, repository.ErrOverlap) {
			return model.Vacation{}, vacation.ErrOverlap
		}
		uc.l.Errorf(ctx, "internal.vacation.usecase.Decide: %v", err)
		return model.Vacation{}, err
	}

	uc.l.Infof(ctx, "internal.vacation.usecase.Decide: vacation %s %s by %s", v.ID, ip.Status, sc.Username)
	return updated, nil
}

// Delete lets the requester withdraw a pending request. Admins may delete any.
func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	v, err := uc.Detail(ctx, sc, id)
	if err != nil {
		return err
	}
	if !sc.IsAdmin() {
		if v.UserID != sc.UserID {
			return vacation.ErrVacationNotFound
		}
		if v.Status != model.VacationStatusPending {
			return vacation.ErrNotPending
		}
	}

	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return vacation.ErrVacationNotFound
		}
		uc.l.Errorf(ctx, "internal.vacation.usecase.Delete: %v", err)
		return err
	}

	return nil
}
