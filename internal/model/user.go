package model

import "time"

// User represents a user entity in the domain layer.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	FullName     *string    `json:"full_name,omitempty"`
	PasswordHash *string    `json:"-"`
	AvatarURL    *string    `json:"avatar_url,omitempty"`
	Role         string     `json:"role"`
	IsActive     *bool      `json:"is_active,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// DisplayName is the full name when set, otherwise the username.
func (u User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Username
}

// Active reports whether the account may sign in. A missing flag counts as active.
func (u User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}
