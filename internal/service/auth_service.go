package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/atharvgarg18/iet-csbs-backend/internal/config"
	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/atharvgarg18/iet-csbs-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("no valid session")
)

// sessionTokenBytes is the entropy of a session token. 32 bytes = 256 bits,
// hex-encoded to 64 characters on the wire.
const sessionTokenBytes = 32

// AuthService handles password verification and session lifecycle. Sessions
// are opaque random tokens stored in PostgreSQL; a token is valid iff its row
// exists, is unexpired, and the owning user is active.
type AuthService struct {
	cfg         *config.Config
	userRepo    *repository.UserRepository
	sessionRepo *repository.SessionRepository
	log         zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	cfg *config.Config,
	userRepo *repository.UserRepository,
	sessionRepo *repository.SessionRepository,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		cfg:         cfg,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		log:         log.With().Str("component", "auth_service").Logger(),
	}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateToken mints a cryptographically random session token.
func GenerateToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Login verifies credentials and, on success, creates a session row expiring
// SessionTTL from now. Unknown email, wrong password, and deactivated account
// all fail with ErrInvalidCredentials and create no session. Multiple
// concurrent sessions per user are allowed.
func (s *AuthService) Login(ctx context.Context, email, password, ip, userAgent string) (*model.User, *model.Session, error) {
	user, err := s.userRepo.GetActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := s.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := GenerateToken()
	if err != nil {
		return nil, nil, err
	}

	session := &model.Session{
		Token:     token,
		UserID:    user.ID,
		IPAddress: ip,
		UserAgent: userAgent,
		ExpiresAt: time.Now().Add(s.cfg.SessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}

	// Best effort; a failed timestamp update must not fail the login.
	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		s.log.Warn().Err(err).Int("user_id", user.ID).Msg("last_login update failed")
	}

	return user, session, nil
}

// ValidateToken resolves a session token to its owning user. Expired tokens,
// unknown tokens, and tokens of deactivated users all fail with
// ErrUnauthenticated. A token that no longer validates is lazily deleted so
// expired rows do not accumulate between cleanup runs.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*model.User, error) {
	user, err := s.sessionRepo.GetUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if delErr := s.sessionRepo.DeleteByToken(ctx, token); delErr != nil {
				s.log.Warn().Err(delErr).Msg("lazy session delete failed")
			}
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("validate token: %w", err)
	}
	return user, nil
}

// Logout revokes a session. It never fails: deletion errors are logged and
// swallowed so logout is idempotent from the caller's point of view.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
		s.log.Warn().Err(err).Msg("session delete failed")
	}
}

// RevokeUserSessions deletes every session of a user, forcing re-login on
// all devices. Called on password change and deactivation.
func (s *AuthService) RevokeUserSessions(ctx context.Context, userID int) error {
	return s.sessionRepo.DeleteByUser(ctx, userID)
}

// CookieMaxAge returns the session cookie Max-Age in seconds.
func (s *AuthService) CookieMaxAge() int {
	return int(s.cfg.SessionTTL / time.Second)
}

// CookieSecure reports whether the session cookie carries the Secure flag.
func (s *AuthService) CookieSecure() bool {
	return s.cfg.CookieSecure
}
