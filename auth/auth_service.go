package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type AuthRepository interface {
	InsertUser(ctx context.Context, user User) (User, error)
	GetUserByPhone(ctx context.Context, phoneNumber string) (User, error)
	GetUserByID(ctx context.Context, id string) (User, error)
	UpsertSession(ctx context.Context, session Session) error
	RotateSession(ctx context.Context, session Session, previousTokenID string) error
	GetSession(ctx context.Context, userID string) (Session, error)
	DeleteSession(ctx context.Context, userID string) error
}

type Service struct {
	repo            AuthRepository
	tokens          *TokenManager
	rotateThreshold time.Duration
}

func NewService(repo AuthRepository, tokens *TokenManager, rotateThreshold time.Duration) *Service {
	return &Service{repo: repo, tokens: tokens, rotateThreshold: rotateThreshold}
}

type RegisterParams struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Image       string `json:"image"`
	Skill       string `json:"skill"`
}

func (s *Service) Register(ctx context.Context, params RegisterParams) (User, TokenPair, error) {
	if params.Email == "" || params.PhoneNumber == "" || params.Username == "" || params.Password == "" {
		return User{}, TokenPair{}, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)

	if err != nil {
		return User{}, TokenPair{}, err
	}

	user, err := s.repo.InsertUser(ctx, User{
		Email:        params.Email,
		PhoneNumber:  params.PhoneNumber,
		Username:     params.Username,
		PasswordHash: string(hash),
		Image:        params.Image,
		Skill:        params.Skill,
	})

	if err != nil {
		return User{}, TokenPair{}, err
	}

	pair, err := s.startSession(ctx, user)

	if err != nil {
		return User{}, TokenPair{}, err
	}

	return user, pair, nil
}

func (s *Service) Login(ctx context.Context, phoneNumber, password string) (User, TokenPair, error) {
	user, err := s.repo.GetUserByPhone(ctx, phoneNumber)

	if errors.Is(err, ErrUserNotFound) {
		return User{}, TokenPair{}, ErrInvalidCredentials
	}

	if err != nil {
		return User{}, TokenPair{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return User{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.startSession(ctx, user)

	if err != nil {
		return User{}, TokenPair{}, err
	}

	return user, pair, nil
}

// Refresh verifies the submitted refresh token against the stored one
// and returns a fresh access token. A token close to expiry (under the
// rotation threshold) is rotated: a new refresh token is persisted and
// the old one stops working. A token that does not match the stored one
// was superseded and is rejected outright. The rotation write swaps
// against the submitted token id, so of two concurrent rotations only
// one can succeed; the loser never receives an already-dead token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)

	if err != nil {
		return TokenPair{}, err
	}

	session, err := s.repo.GetSession(ctx, claims.Subject)

	if errors.Is(err, ErrSessionNotFound) {
		return TokenPair{}, ErrTokenRevoked
	}

	if err != nil {
		return TokenPair{}, err
	}

	if session.RefreshTokenID != claims.ID {
		return TokenPair{}, ErrTokenRevoked
	}

	user, err := s.repo.GetUserByID(ctx, claims.Subject)

	if err != nil {
		return TokenPair{}, err
	}

	accessToken, err := s.tokens.MintAccessToken(user.ID, user.Email)

	if err != nil {
		return TokenPair{}, err
	}

	if time.Until(claims.ExpiresAt.Time) >= s.rotateThreshold {
		return TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
	}

	rotated, jti, expiresAt, err := s.tokens.MintRefreshToken(user.ID)

	if err != nil {
		return TokenPair{}, err
	}

	err = s.repo.RotateSession(ctx, Session{
		UserID:         user.ID,
		RefreshTokenID: jti,
		IssuedAt:       time.Now(),
		ExpiresAt:      expiresAt,
	}, claims.ID)

	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: accessToken, RefreshToken: rotated}, nil
}

// Logout invalidates future refresh calls. Already-issued access tokens
// stay valid until natural expiry; stateless tokens cannot be revoked
// without a blocklist.
func (s *Service) Logout(ctx context.Context, userID string) error {
	return s.repo.DeleteSession(ctx, userID)
}

// VerifyAccessToken is the stateless check used by the HTTP middleware.
func (s *Service) VerifyAccessToken(token string) (*AccessClaims, error) {
	return s.tokens.ParseAccessToken(token)
}

func (s *Service) GetUser(ctx context.Context, id string) (User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *Service) startSession(ctx context.Context, user User) (TokenPair, error) {
	accessToken, err := s.tokens.MintAccessToken(user.ID, user.Email)

	if err != nil {
		return TokenPair{}, err
	}

	refreshToken, jti, expiresAt, err := s.tokens.MintRefreshToken(user.ID)

	if err != nil {
		return TokenPair{}, err
	}

	err = s.repo.UpsertSession(ctx, Session{
		UserID:         user.ID,
		RefreshTokenID: jti,
		IssuedAt:       time.Now(),
		ExpiresAt:      expiresAt,
	})

	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
