package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/finnews-portal/internal/db"
	"github.com/finnews-portal/internal/domain"
	"github.com/finnews-portal/internal/validation"
)

// accountService implements the AccountService interface
type accountService struct {
	database *db.DB
	logger   *slog.Logger
}

// NewAccountService creates a new account service
func NewAccountService(database *db.DB, logger *slog.Logger) domain.AccountService {
	return &accountService{
		database: database,
		logger:   logger,
	}
}

// SignUp creates a new account. The password is bcrypt-hashed before it
// touches storage; a duplicate email leaves the existing record untouched.
func (s *accountService) SignUp(ctx context.Context, req domain.SignUpRequest) (*db.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := validation.ValidateEmail(email); err != nil {
		return nil, domain.WrapValidationError("email", err)
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, domain.WrapValidationError("password", err)
	}
	if req.Password != req.ConfirmPassword {
		return nil, domain.WrapValidationError("confirm_password", fmt.Errorf("passwords do not match"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.WrapDatabaseOperation("hash password", err)
	}

	user := db.NewUser(email, string(hash))
	if err := s.database.CreateUser(user); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			s.logger.InfoContext(ctx, "signup rejected for registered email")
			return nil, domain.ErrDuplicateEmail
		}
		s.logger.ErrorContext(ctx, "failed to create user", "error", err)
		return nil, domain.WrapDatabaseOperation("create user", err)
	}

	s.logger.InfoContext(ctx, "account created", "user_id", user.ID)
	return user, nil
}

// Authenticate verifies credentials against the stored hash. Unknown
// email and wrong password return the same error so responses never
// reveal which accounts exist.
func (s *accountService) Authenticate(ctx context.Context, email, password string) (*db.User, error) {
	user, err := s.database.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		s.logger.ErrorContext(ctx, "failed to look up user", "error", err)
		return nil, domain.WrapDatabaseOperation("get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.InfoContext(ctx, "user authenticated", "user_id", user.ID)
	return user, nil
}

// GetUser retrieves an account by email
func (s *accountService) GetUser(ctx context.Context, email string) (*db.User, error) {
	user, err := s.database.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.WrapDatabaseOperation("get user", err)
	}
	return user, nil
}
