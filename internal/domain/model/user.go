//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/seekwell/jobboard/internal/domain/auth"
)

const maxUsernameLen = 64

// User represents a registered account. Users are created at registration
// and are never updated or deleted.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	Role         auth.Role `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest represents parameters to register a User.
type RegisterRequest struct {
	Username string
	Password string
	Role     auth.Role
}

// Validate validates RegisterRequest and normalizes the role.
func (r *RegisterRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	if r.Username == "" {
		return errors.New("username is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Username) > maxUsernameLen {
		return errors.New("username cannot exceed 64 characters")
	}
	if r.Password == "" {
		return errors.New("password is required and cannot be empty")
	}
	r.Role = auth.ParseRole(string(r.Role))
	return nil
}
