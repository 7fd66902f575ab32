package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skills-tracker-backend/internal/database/models"
	apperrors "skills-tracker-backend/internal/errors"
	"skills-tracker-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserStore defines the user operations needed by the auth service
type UserStore interface {
	Create(ctx context.Context, user *models.User, permissions ...models.GlobalPermission) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService provides authentication functionality
type AuthService struct {
	config    *AuthConfig
	users     UserStore
	validator *validator.Validate
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               int64  `json:"user_id" example:"12345"`
	Username             string `json:"username" example:"johndoe"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// CredentialsRequest is the body of the register and login endpoints
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,min=3,max=40" example:"johndoe"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"correct-horse"`
}

// TokenResponse is returned after a successful register or login
type TokenResponse struct {
	AccessToken      string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType        string `json:"tokenType" example:"bearer"`
	ExpiresInSeconds int64  `json:"expiresInSeconds" example:"3600"`
	UserID           int64  `json:"userId" example:"1"`
	Username         string `json:"username" example:"johndoe"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users UserStore) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{
		config:    config,
		users:     users,
		validator: validation.New(),
	}, nil
}

// Register creates a user holding the baseline READER permission and issues a token
func (s *AuthService) Register(ctx context.Context, req *CredentialsRequest) (*TokenResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validation.Translate(s.validator.Struct(req)); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Username: req.Username, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user, models.GlobalPermissionReader); err != nil {
		return nil, err
	}
	return s.issue(user)
}

// Login verifies the credentials and issues a token
func (s *AuthService) Login(ctx context.Context, req *CredentialsRequest) (*TokenResponse, error) {
	if err := validation.Translate(s.validator.Struct(req)); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*TokenResponse, error) {
	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &TokenResponse{
		AccessToken:      token,
		TokenType:        "bearer",
		ExpiresInSeconds: int64(s.config.TokenTTL.Seconds()),
		UserID:           user.ID,
		Username:         user.Username,
	}, nil
}

// GenerateJWT generates a signed token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
