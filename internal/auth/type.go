package auth

import (
	"time"

	"tracker-api/internal/model"
	"tracker-api/pkg/permission"
)

type RegisterInput struct {
	Username string
	Password string
	FullName string
}

type LoginInput struct {
	Username string
	Password string
}

// LoginOutput is everything the client keeps after signing in.
type LoginOutput struct {
	Token       string
	ExpiresAt   time.Time
	User        model.User
	Permissions permission.Set
}

// LogoutInput identifies the token being revoked.
type LogoutInput struct {
	JTI       string
	ExpiresAt time.Time
}

type MeOutput struct {
	User        model.User
	Principal   permission.Principal
	Permissions permission.Set
}
