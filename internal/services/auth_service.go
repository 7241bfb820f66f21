package services

import (
	"gudang/internal/models"
	"gudang/internal/repositories"
)

// LoginResult is returned on a successful login.
type LoginResult struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	User         models.UserInfo `json:"user"`
}

// AuthService handles business logic for authentication.
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   PasswordHasher
	tokens   *TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, hasher PasswordHasher, tokens *TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Login authenticates a user by email and password and issues an access and
// a refresh token. An unknown email and a wrong password fail identically
// with ErrInvalidCredentials so callers cannot enumerate accounts. Inactive
// accounts fail with ErrAccountInactive after the credential check.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, models.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.Password) {
		return nil, models.ErrInvalidCredentials
	}

	if user.Status == models.UserInactive {
		return nil, models.ErrAccountInactive
	}

	claims := Claims{
		Email:  user.Email,
		UserID: user.ID,
		Role:   user.Role,
	}

	accessToken, err := s.tokens.IssueAccessToken(claims)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(claims)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		User:         user.Info(),
	}, nil
}

// Logout is a stateless acknowledgment. Tokens are self-contained and there
// is no blacklist, so the token remains valid until it expires. This is a
// documented limitation, not a bug.
func (s *AuthService) Logout(userID uint) {
	_ = userID
}
