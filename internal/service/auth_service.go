package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/internal/repository"
	"github.com/easyqist/storefront/pkg/apperr"
)

// AuthService checks credentials against the user directory and issues session
// tokens. Credentials are compared in plaintext; that is the seed-data lookup
// contract this store runs on, not a recommendation.
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cartRepo    repository.CartRepository
	notifier    *Notifier
	logger      *zap.SugaredLogger

	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	cartRepo repository.CartRepository,
	notifier *Notifier,
	logger *zap.SugaredLogger,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cartRepo:    cartRepo,
		notifier:    notifier,
		logger:      logger,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
	}
}

// Login resolves email+password to a session user and token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil || user.Password != password {
		// no session inbox to notify; the error response carries the message
		return nil, apperr.WrapInvalidCredentials()
	}

	if err := s.sessionRepo.SetCurrentUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("user logged in", "user_id", user.ID, "role", user.Role)
	s.notifier.Publish(user.ID, fmt.Sprintf("Welcome back, %s!", user.Name), domain.NotificationSuccess)

	return &domain.AuthResponse{Token: token, User: user}, nil
}

// Register creates a customer account and logs it in. Registered users live in
// memory only and do not survive a restart.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*domain.AuthResponse, error) {
	user := &domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  password,
		Name:      name,
		Role:      domain.RoleCustomer,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.SetCurrentUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("user registered", "user_id", user.ID)
	s.notifier.Publish(user.ID, "Account created successfully!", domain.NotificationSuccess)

	return &domain.AuthResponse{Token: token, User: user}, nil
}

// Logout clears the snapshotted session and the user's cart.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.sessionRepo.SetCurrentUser(ctx, nil); err != nil {
		return err
	}
	if err := s.cartRepo.ClearByUser(ctx, userID); err != nil {
		return err
	}

	s.notifier.Publish(userID, "Logged out successfully", domain.NotificationInfo)
	return nil
}

// CurrentSession returns the persisted session user, if any.
func (s *AuthService) CurrentSession(ctx context.Context) (*domain.User, error) {
	return s.sessionRepo.CurrentUser(ctx)
}

type sessionClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	claims := sessionClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ParseToken validates a session token and returns the user ID and role.
func (s *AuthService) ParseToken(tokenString string) (string, string, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", "", apperr.New(apperr.CodeInvalidCredentials, "invalid or expired token", apperr.ErrAuth)
	}

	return claims.UserID, claims.Role, nil
}
