package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"tracker-api/internal/model"
	"tracker-api/internal/note"
	"tracker-api/internal/note/repository"
	"tracker-api/pkg/permission"
	postgrePkg "tracker-api/pkg/postgre"
)

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", note.ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > note.MaxTitleLen {
		return "", note.ErrTitleTooLong
	}
	return title, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip note.GetInput) (note.GetNoteOutput, error) {
	f := repository.Filter{
		UserID: sc.UserID,
		Search: ip.Filter.Search,
		Pinned: ip.Filter.Pinned,
	}
	if ip.Filter.All || (ip.Filter.UserID != "" && ip.Filter.UserID != sc.UserID) {
		if !sc.Can(permission.ViewAllProjects) {
			return note.GetNoteOutput{}, note.ErrForbidden
		}
		f.UserID = ip.Filter.UserID
	}

	ns, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{Filter: f, PaginateQuery: ip.PaginateQuery})
	if err != nil {
		uc.l.Errorf(ctx, "internal.note.usecase.Get: %v", err)
		return note.GetNoteOutput{}, err
	}

	return note.GetNoteOutput{Notes: ns, Paginator: pag}, nil
}

// Detail returns a note its author owns, or any note to viewAllProjects holders.
func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.Note, error) {
	n, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Note{}, note.ErrNoteNotFound
		}
		uc.l.Errorf(ctx, "internal.note.usecase.Detail: %v", err)
		return model.Note{}, err
	}
	if n.UserID != sc.UserID && !sc.Can(permission.ViewAllProjects) {
		return model.Note{}, note.ErrNoteNotFound
	}

	return n, nil
}

// own loads a note only its author may change.
func (uc *usecase) own(ctx context.Context, sc model.Scope, id string) (model.Note, error) {
	n, err := uc.Detail(ctx, sc, id)
	if err != nil {
		return model.Note{}, err
	}
	if n.UserID != sc.UserID {
		return model.Note{}, note.ErrNoteNotFound
	}
	return n, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip note.CreateInput) (model.Note, error) {
	title, err := validateTitle(ip.Title)
	if err != nil {
		return model.Note{}, err
	}

	n, err := uc.repo.Create(ctx, sc, repository.CreateOptions{Note: model.Note{
		ID:      postgrePkg.NewUUID(),
		UserID:  sc.UserID,
		Title:   title,
		Content: ip.Content,
		Pinned:  ip.Pinned,
	}})
	if err != nil {
		uc.l.Errorf(ctx, "internal.note.usecase.Create: %v", err)
		return model.Note{}, err
	}

	return n, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip note.UpdateInput) (model.Note, error) {
	n, err := uc.own(ctx, sc, ip.ID)
	if err != nil {
		return model.Note{}, err
	}

	if ip.Title != nil {
		title, err := validateTitle(*ip.Title)
		if err != nil {
			return model.Note{}, err
		}
		n.Title = title
	}
	if ip.Content != nil {
		n.Content = *ip.Content
	}
	if ip.Pinned != nil {
		n.Pinned = *ip.Pinned
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Note: n})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Note{}, note.ErrNoteNotFound
		}
		uc.l.Errorf(ctx, "internal.note.usecase.Update: %v", err)
		return model.Note{}, err
	}

	return updated, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.own(ctx, sc, id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return note.ErrNoteNotFound
		}
		uc.l.Errorf(ctx, "internal.note.usecase.Delete: %v", err)
		return err
	}

	return nil
}
