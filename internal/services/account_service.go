package services

import (
	"context"
	"errors"

	dbm "voyager/internal/models/db_models"
	"voyager/internal/models/request_models"
	"voyager/internal/repositories"
	"voyager/pkg/memcache"
	"voyager/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	Logout(token string)
}

type AccountService struct {
	userRepo repositories.UserRepository
	revoked  memcache.RevokedTokenStore
}

func NewAccountService(userRepo repositories.UserRepository, revoked memcache.RevokedTokenStore) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		revoked:  revoked,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	user := &dbm.User{
		Username:     request.Username,
		PasswordHash: hashed,
	}
	if err := a.userRepo.Create(ctx, user); err != nil {
		// Lost a registration race for the same username.
		if errors.Is(err, utils.ErrUsernameTaken) {
			return err
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AccountService) Logout(token string) {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		// Invalid or expired tokens need no revocation.
		return
	}
	a.revoked.Revoke(token, claims.ExpiresAt.Time)
}
