package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"groomingshop-backend/models"
	"groomingshop-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Authenticate looks the account up by username only; the role comes from
// the stored record. Unknown user and wrong password fail the same way.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.Account, error) {
	var account models.Account
	err := s.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(username)).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthFailure
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if !utils.CheckPasswordHash(password, account.Password) {
		return nil, ErrAuthFailure
	}
	return &account, nil
}

// GetAccount returns the account with id or ErrNotFound.
func (s *AuthService) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: account %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return &account, nil
}

// ResolveCaller turns a session subject into a Caller. The stored role wins
// over whatever the session claimed.
func (s *AuthService) ResolveCaller(ctx context.Context, accountID uuid.UUID) (Caller, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Caller{}, ErrAuthFailure
		}
		return Caller{}, err
	}
	if _, err := models.ParseRole(string(account.Role)); err != nil {
		return Caller{}, fmt.Errorf("%w: %v", ErrAuthFailure, err)
	}
	return CallerFromAccount(account), nil
}
