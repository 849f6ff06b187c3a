package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tracker-api/internal/model"
	"tracker-api/internal/user"
	"tracker-api/internal/user/repository"
	"tracker-api/pkg/permission"
	postgrePkg "tracker-api/pkg/postgre"
)

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, postgrePkg.ErrInvalidUUID) {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Detail: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}

func (uc *usecase) DetailMe(ctx context.Context, sc model.Scope) (user.UserOutput, error) {
	return uc.Detail(ctx, sc, sc.UserID)
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip user.GetInput) (user.GetUserOutput, error) {
	f := repository.Filter{
		IDs:      ip.Filter.IDs,
		Search:   ip.Filter.Search,
		IsActive: ip.Filter.IsActive,
	}
	if ip.Filter.Role != "" {
		role, ok := permission.ParseKnownRole(ip.Filter.Role)
		if !ok {
			return user.GetUserOutput{}, user.ErrInvalidRole
		}
		f.Role = role.String()
	}

	usrs, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{Filter: f, PaginateQuery: ip.PaginateQuery})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Get: %v", err)
		return user.GetUserOutput{}, err
	}

	return user.GetUserOutput{Users: usrs, Paginator: pag}, nil
}

func (uc *usecase) GetOne(ctx context.Context, sc model.Scope, ip user.GetOneInput) (model.User, error) {
	usr, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{
		Username: strings.TrimSpace(ip.Username),
		ID:       ip.ID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, postgrePkg.ErrInvalidUUID) {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.GetOne: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (uc *usecase) UpdateProfile(ctx context.Context, sc model.Scope, ip user.UpdateProfileInput) (user.UserOutput, error) {
	out, err := uc.DetailMe(ctx, sc)
	if err != nil {
		return user.UserOutput{}, err
	}
	usr := out.User

	if name := strings.TrimSpace(ip.FullName); name != "" {
		usr.FullName = &name
	}
	if ip.AvatarURL != "" {
		usr.AvatarURL = &ip.AvatarURL
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{User: usr})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.UpdateProfile.Update: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: updated}, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip user.CreateInput) (user.UserOutput, error) {
	username := strings.TrimSpace(ip.Username)
	if username == "" {
		return user.UserOutput{}, user.ErrFieldRequired
	}
	if len(ip.Password) < user.MinPasswordLen {
		return user.UserOutput{}, user.ErrWeakPassword
	}

	role := permission.DefaultRole
	if ip.Role != "" {
		r, ok := permission.ParseKnownRole(ip.Role)
		if !ok {
			return user.UserOutput{}, user.ErrInvalidRole
		}
		role = r
	}

	_, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Username: username})
	if err == nil {
		return user.UserOutput{}, user.ErrUserExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "internal.user.usecase.Create.GetOne: %v", err)
		return user.UserOutput{}, err
	}

	hash, err := uc.enc.HashPassword(ip.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Create.HashPassword: %v", err)
		return user.UserOutput{}, err
	}

	active := true
	usr := model.User{
		ID:           postgrePkg.NewUUID(),
		Username:     username,
		PasswordHash: &hash,
		Role:         role.String(),
		IsActive:     &active,
	}
	if name := strings.TrimSpace(ip.FullName); name != "" {
		usr.FullName = &name
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{User: usr})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return user.UserOutput{}, user.ErrUserExists
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Create: %v", err)
		return user.UserOutput{}, err
	}

	if role != permission.DefaultRole {
		uc.logRoleChange(ctx, sc, created, "", created.Role)
	}

	return user.UserOutput{User: created}, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip user.UpdateInput) (user.UserOutput, error) {
	out, err := uc.Detail(ctx, sc, ip.ID)
	if err != nil {
		return user.UserOutput{}, err
	}
	usr := out.User
	previousRole := usr.Role

	if ip.Role != nil {
		role, ok := permission.ParseKnownRole(*ip.Role)
		if !ok {
			return user.UserOutput{}, user.ErrInvalidRole
		}
		if usr.ID == sc.UserID && role.String() != usr.Role {
			return user.UserOutput{}, user.ErrCannotModifySelf
		}
		usr.Role = role.String()
	}
	if ip.IsActive != nil {
		if usr.ID == sc.UserID && !*ip.IsActive {
			return user.UserOutput{}, user.ErrCannotModifySelf
		}
		usr.IsActive = ip.IsActive
	}
	if ip.FullName != nil {
		usr.FullName = ip.FullName
	}
	if ip.AvatarURL != nil {
		usr.AvatarURL = ip.AvatarURL
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{User: usr})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Update: %v", err)
		return user.UserOutput{}, err
	}

	if updated.Role != previousRole {
		uc.logRoleChange(ctx, sc, updated, previousRole, updated.Role)
	}

	return user.UserOutput{User: updated}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if id == sc.UserID {
		return user.ErrCannotModifySelf
	}
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, postgrePkg.ErrInvalidUUID) {
			return user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Delete: %v", err)
		return err
	}

	return nil
}

func (uc *usecase) logRoleChange(ctx context.Context, sc model.Scope, target model.User, from, to string) {
	uc.security.LogRoleChange(ctx, sc.UserID, target.ID, from, to)
	if uc.d == nil {
		return
	}
	details := fmt.Sprintf("%s: %q -> %q by %s", target.Username, from, to, sc.Username)
	go func() {
		if err := uc.d.SendActivityLog(context.Background(), "role_changed", sc.Username, details); err != nil {
			uc.l.Warnf(context.Background(), "internal.user.usecase.logRoleChange.SendActivityLog: %v", err)
		}
	}()
}
