package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"ciao-api/internal/domain"
	"ciao-api/internal/dto"
	"ciao-api/internal/repository"
	"ciao-api/internal/response"
)

// verificationTokenTTL is how long an email verification token stays valid
const verificationTokenTTL = 24 * time.Hour

// AuthService defines the interface for registration and authentication
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl is the implementation of AuthService
type authServiceImpl struct {
	userRepo  repository.UserRepository
	tokenRepo repository.VerificationTokenRepository
	jwtSecret string
	jwtTTL    time.Duration
	logger    *zap.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.VerificationTokenRepository,
	jwtSecret string,
	jwtTTL time.Duration,
	logger *zap.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
		logger:    logger,
	}
}

// Register creates an account and issues a verification token, rotating any
// previously issued token for the email
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if !req.Role.IsValid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Role must be student or freelancer", "")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check email", err.Error())
	}
	if exists {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "An account with this email already exists", "")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}

	user := &domain.User{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	tokenValue, err := generateToken()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate verification token", err.Error())
	}
	expiresAt := time.Now().UTC().Add(verificationTokenTTL)
	token := &domain.VerificationToken{
		Email:     email,
		Token:     tokenValue,
		ExpiresAt: expiresAt,
	}
	if err := s.tokenRepo.Replace(ctx, token); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store verification token", err.Error())
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	return &dto.RegisterResponse{
		User:              dto.ToUserResponse(user),
		VerificationToken: tokenValue,
		TokenExpiresAt:    expiresAt,
	}, nil
}

// VerifyEmail consumes a verification token. Tokens are single use; a rotated
// or expired token is rejected.
func (s *authServiceImpl) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	token, err := s.tokenRepo.FindByToken(ctx, req.Token)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up token", err.Error())
	}
	if token == nil || token.Email != email {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid verification token", "")
	}
	if time.Now().After(token.ExpiresAt) {
		// Expired tokens are swept on sight
		_ = s.tokenRepo.Delete(ctx, token)
		return nil, response.NewAppError(response.ErrCodeValidation, "Verification token has expired", "")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}
	if user == nil {
		return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
	}

	now := time.Now().UTC()
	user.EmailVerifiedAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to mark email verified", err.Error())
	}

	if err := s.tokenRepo.Delete(ctx, token); err != nil {
		s.logger.Warn("Failed to delete consumed verification token", zap.Error(err))
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// Login checks credentials and issues an HMAC JWT carrying the user ID
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}
	if user == nil {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid email or password", "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid email or password", "")
	}

	expiresAt := time.Now().Add(s.jwtTTL)
	token, err := s.issueToken(user.ID, expiresAt)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to issue token", err.Error())
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}, nil
}

func (s *authServiceImpl) issueToken(userID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"iat":     time.Now().Unix(),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// generateToken returns 32 bytes of hex-encoded randomness
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
