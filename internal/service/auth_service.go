package service

import (
	"context"
	"fmt"

	"eventhub/internal/models"
	"eventhub/internal/repository"
	"eventhub/internal/token"
)

type RegisterRequest struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     *string
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, string, string, error)
	Refresh(ctx context.Context, claims *token.Claims) (*models.User, string, string, error)
	Register(ctx context.Context, req RegisterRequest) error
}

type authService struct {
	userRepo repository.UserRepository
	issuer   *token.Issuer
}

func NewAuthService(userRepo repository.UserRepository, issuer *token.Issuer) AuthService {
	return &authService{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

// Login checks the credentials and mints an access/refresh token pair.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.FindByCredentials(ctx, username, password)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := s.issuePair(user)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

// Refresh re-resolves the user behind a verified refresh token and mints a
// fresh pair. The role comes from the database, not from the old token, so a
// stale role claim cannot be reused indefinitely.
func (s *authService) Refresh(ctx context.Context, claims *token.Claims) (*models.User, string, string, error) {
	user, err := s.userRepo.FindByIDAndUsername(ctx, claims.UserID, claims.Username)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := s.issuePair(user)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *authService) issuePair(user *models.User) (string, string, error) {
	accessToken, err := s.issuer.IssueAccess(user)
	if err != nil {
		return "", "", fmt.Errorf("failed to issue access token: %w", err)
	}

	refreshToken, err := s.issuer.IssueRefresh(user)
	if err != nil {
		return "", "", fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) error {
	user := &models.User{
		Username: req.Username,
		Role:     "user",
	}

	profile := &models.Profile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}

	return s.userRepo.CreateWithProfile(ctx, user, profile, req.Password)
}
