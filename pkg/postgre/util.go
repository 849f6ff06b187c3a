package postgre

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// IsUUID returns an error when u is not a valid UUID.
func IsUUID(u string) error {
	if u == "" {
		return fmt.Errorf("%w: UUID cannot be empty", ErrInvalidUUID)
	}
	if _, err := uuid.Parse(u); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUUID, err)
	}
	return nil
}

func IsValidUUID(u string) bool {
	return IsUUID(u) == nil
}

func NewUUID() string {
	return uuid.NewString()
}

// IsUniqueViolation reports whether err is a Postgres unique_violation,
// optionally restricted to the given constraint names.
func IsUniqueViolation(err error, constraints ...string) bool {
	return violates(err, uniqueViolation, constraints)
}

// IsExclusionViolation reports whether err is a Postgres exclusion_violation,
// optionally restricted to the given constraint names.
func IsExclusionViolation(err error, constraints ...string) bool {
	return violates(err, exclusionViolation, constraints)
}

func violates(err error, code string, constraints []string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != code {
		return false
	}
	if len(constraints) == 0 {
		return true
	}
	for _, c := range constraints {
		if pqErr.Constraint == c {
			return true
		}
	}
	return false
}

// LikeEscape is the escape character used by ContainsPattern. Queries must
// declare it with ESCAPE '!'.
const LikeEscape = "!"

var likeReplacer = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ContainsPattern builds a LIKE pattern matching s literally anywhere in a value.
func ContainsPattern(s string) string {
	return "%" + likeReplacer.Replace(s) + "%"
}

// ToInterfaces widens a string slice for WhereIn style query mods.
func ToInterfaces(slice []string) []interface{} {
	out := make([]interface{}, len(slice))
	for i, v := range slice {
		out[i] = v
	}
	return out
}
