package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/seekwell/jobboard/internal/core"
	"github.com/seekwell/jobboard/internal/data"
	domainauth "github.com/seekwell/jobboard/internal/domain/auth"
	"github.com/seekwell/jobboard/internal/domain/model"
	apperrors "github.com/seekwell/jobboard/internal/errors"
	"github.com/seekwell/jobboard/internal/ports"
)

// DefaultSessionTTL is used when no TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users      core.UserRepository
	Sessions   ports.SessionStore
	SessionTTL time.Duration
	BcryptCost int
	Now        func() time.Time
}

// AuthService handles registration, credential checks, and session lifecycle.
// Passwords are stored as bcrypt hashes; a successful login mints a
// server-side session addressed by a random ID.
type AuthService struct {
	users      core.UserRepository
	sessions   ports.SessionStore
	sessionTTL time.Duration
	bcryptCost int
	now        func() time.Time
}

var errSessionExpired = errors.New("session expired")

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		users:      opts.Users,
		sessions:   opts.Sessions,
		sessionTTL: ttl,
		bcryptCost: cost,
		now:        now,
	}
}

// Register creates a new user account. A duplicate username fails with a
// Conflict error; the pre-insert lookup gives the friendly message and the
// unique index closes the race two concurrent registrations would otherwise
// slip through.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if req == nil {
		return nil, apperrors.Validation("registration details are required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return nil, errUsernameTaken()
	} else if !errors.Is(err, data.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hash password")
	}

	user, err := s.users.Create(ctx, req, hash)
	if err != nil {
		if errors.Is(err, data.ErrUsernameExists) {
			return nil, errUsernameTaken()
		}
		return nil, err
	}
	return user, nil
}

func errUsernameTaken() *apperrors.AppError {
	return &apperrors.AppError{
		Code:    apperrors.ErrCodeConflict,
		Message: "This username is already taken. Please choose a different one.",
		Field:   "username",
	}
}

// Login verifies the credentials and mints a session on success. Failed
// lookups and hash mismatches produce the same Unauthorized error, so the
// response does not reveal whether the username exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domainauth.Session, error) {
	if username == "" || password == "" {
		return nil, apperrors.Unauthorized("Invalid username or password.")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, apperrors.Unauthorized("Invalid username or password.")
		}
		return nil, err
	}

	if compareErr := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); compareErr != nil {
		return nil, apperrors.Unauthorized("Invalid username or password.")
	}

	now := s.now()
	session := domainauth.Session{
		ID:        generateSessionID(),
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &session, nil
}

// GetSession retrieves a session by ID.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	// Check if session is expired
	if s.now().After(session.ExpiresAt) {
		// Clean up expired session
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// Logout removes a session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	// Use UUID for session ID - it's URL-safe and has good entropy
	id := uuid.New()
	return id.String()
}
