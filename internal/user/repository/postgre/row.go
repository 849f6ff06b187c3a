package postgre

import (
	"time"

	"tracker-api/internal/model"

	"github.com/aarondl/null/v8"
)

const (
	tableUsers = "users"
	userCols   = "id, username, full_name, password_hash, avatar_url, role, is_active, created_at, updated_at, deleted_at"
)

type userRow struct {
	ID           string      `boil:"id"`
	Username     string      `boil:"username"`
	FullName     null.String `boil:"full_name"`
	PasswordHash null.String `boil:"password_hash"`
	AvatarURL    null.String `boil:"avatar_url"`
	Role         string      `boil:"role"`
	IsActive     null.Bool   `boil:"is_active"`
	CreatedAt    time.Time   `boil:"created_at"`
	UpdatedAt    time.Time   `boil:"updated_at"`
	DeletedAt    null.Time   `boil:"deleted_at"`
}

func (r userRow) toModel() model.User {
	return model.User{
		ID:           r.ID,
		Username:     r.Username,
		FullName:     r.FullName.Ptr(),
		PasswordHash: r.PasswordHash.Ptr(),
		AvatarURL:    r.AvatarURL.Ptr(),
		Role:         r.Role,
		IsActive:     r.IsActive.Ptr(),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		DeletedAt:    r.DeletedAt.Ptr(),
	}
}

func toModels(rows []userRow) []model.User {
	res := make([]model.User, len(rows))
	for i, r := range rows {
		res[i] = r.toModel()
	}
	return res
}
