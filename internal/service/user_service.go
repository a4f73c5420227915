package service

import (
	"context"

	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/atharvgarg18/iet-csbs-backend/internal/repository"
)

// UserService handles portal account management.
type UserService struct {
	userRepo    *repository.UserRepository
	authService *AuthService
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository, authService *AuthService) *UserService {
	return &UserService{userRepo: userRepo, authService: authService}
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// List retrieves all users.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// Create hashes the password and inserts a new account.
func (s *UserService) Create(ctx context.Context, u *model.User, password string) error {
	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return s.userRepo.Create(ctx, u)
}

// Update modifies a user's name, role, and active flag. Deactivating an
// account revokes its live sessions so the change takes effect at the next
// auth check on every device.
func (s *UserService) Update(ctx context.Context, u *model.User) error {
	if _, err := s.userRepo.GetByID(ctx, u.ID); err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, u); err != nil {
		return err
	}
	if !u.IsActive {
		return s.authService.RevokeUserSessions(ctx, u.ID)
	}
	return nil
}

// ChangePassword rehashes the password and revokes every session of the user.
func (s *UserService) ChangePassword(ctx context.Context, id int, password string) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}
	return s.authService.RevokeUserSessions(ctx, id)
}

// Deactivate soft-deletes a user and revokes their sessions. Accounts are
// never physically removed.
func (s *UserService) Deactivate(ctx context.Context, id int) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.Deactivate(ctx, id); err != nil {
		return err
	}
	return s.authService.RevokeUserSessions(ctx, id)
}
