package usecase

import (
	"context"
	"errors"
	"strings"

	"tracker-api/internal/auth"
	"tracker-api/internal/model"
	"tracker-api/internal/user"
	"tracker-api/pkg/permission"
	"tracker-api/pkg/scope"
)

// Register creates a base-tier account. The role is never taken from input.
func (uc *usecase) Register(ctx context.Context, ip auth.RegisterInput) (model.User, error) {
	out, err := uc.userUC.Create(ctx, model.Scope{}, user.CreateInput{
		Username: ip.Username,
		Password: ip.Password,
		FullName: ip.FullName,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserExists):
			return model.User{}, auth.ErrUsernameTaken
		case errors.Is(err, user.ErrWeakPassword):
			return model.User{}, auth.ErrWeakPassword
		case errors.Is(err, user.ErrFieldRequired):
			return model.User{}, auth.ErrFieldRequired
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Register.Create: %v", err)
		return model.User{}, err
	}

	return out.User, nil
}

func (uc *usecase) Login(ctx context.Context, ip auth.LoginInput) (auth.LoginOutput, error) {
	username := strings.TrimSpace(ip.Username)
	if username == "" || ip.Password == "" {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	usr, err := uc.userUC.GetOne(ctx, model.Scope{}, user.GetOneInput{Username: username})
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			uc.security.LogAuthenticationFailure(ctx, username, "unknown user")
			return auth.LoginOutput{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.GetOne: %v", err)
		return auth.LoginOutput{}, err
	}

	if usr.PasswordHash == nil || !uc.enc.CheckPassword(ip.Password, *usr.PasswordHash) {
		uc.security.LogAuthenticationFailure(ctx, username, "wrong password")
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}
	if !usr.Active() {
		uc.security.LogAuthenticationFailure(ctx, username, "inactive")
		return auth.LoginOutput{}, auth.ErrUserInactive
	}

	role := permission.ParseRole(usr.Role)
	payload := scope.Payload{
		Username: usr.Username,
		Name:     usr.DisplayName(),
		Role:     usr.Role,
	}
	payload.Subject = usr.ID

	token, err := uc.jwt.CreateToken(payload)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.CreateToken: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{
		Token:       token,
		ExpiresAt:   uc.clock().Add(uc.jwt.TTL()),
		User:        usr,
		Permissions: permission.Derive(role),
	}, nil
}

// Logout revokes the token until it would have expired anyway.
func (uc *usecase) Logout(ctx context.Context, sc model.Scope, ip auth.LogoutInput) error {
	if ip.JTI == "" {
		return auth.ErrSessionNotFound
	}

	ttl := ip.ExpiresAt.Sub(uc.clock())
	if err := uc.repo.Revoke(ctx, ip.JTI, ttl); err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Logout.Revoke: %v", err)
		return err
	}

	uc.l.Infof(ctx, "internal.auth.usecase.Logout: user %s revoked %s", sc.UserID, ip.JTI)
	return nil
}

func (uc *usecase) Me(ctx context.Context, sc model.Scope) (auth.MeOutput, error) {
	out, err := uc.userUC.DetailMe(ctx, sc)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.MeOutput{}, auth.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Me.DetailMe: %v", err)
		return auth.MeOutput{}, err
	}

	return auth.MeOutput{
		User:        out.User,
		Principal:   sc.Principal(),
		Permissions: sc.Permissions(),
	}, nil
}
