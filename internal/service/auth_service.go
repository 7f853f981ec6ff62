package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/secureride/booking-service/internal/domain"
	"github.com/secureride/booking-service/internal/dto"
	"github.com/secureride/booking-service/internal/repository"
	"github.com/secureride/booking-service/internal/utils"
)

// authService implements AuthService interface
type authService struct {
	userRepo           repository.UserRepository
	tokenRepo          repository.TokenRepository
	verificationRepo   repository.VerificationRepository
	jwtManager         *utils.JWTManager
	blacklistService   *TokenBlacklistService
	audit              AuditService
	bcryptCost         int
	refreshTokenExpiry time.Duration
	verificationExpiry time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	verificationRepo repository.VerificationRepository,
	jwtManager *utils.JWTManager,
	blacklistService *TokenBlacklistService,
	audit AuditService,
	bcryptCost int,
	refreshTokenExpiry time.Duration,
	verificationExpiry time.Duration,
) AuthService {
	return &authService{
		userRepo:           userRepo,
		tokenRepo:          tokenRepo,
		verificationRepo:   verificationRepo,
		jwtManager:         jwtManager,
		blacklistService:   blacklistService,
		audit:              audit,
		bcryptCost:         bcryptCost,
		refreshTokenExpiry: refreshTokenExpiry,
		verificationExpiry: verificationExpiry,
	}
}

// Register creates a new account in pending status and issues a one-time
// email verification token. The raw token is returned to the caller; only
// its hash is persisted.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest, ip string) (*dto.UserResponse, string, error) {
	email := utils.SanitizeEmail(req.Email)

	if !utils.ValidateEmail(email) {
		return nil, "", NewValidationError("email", "invalid email format")
	}
	if !utils.ValidatePassword(req.Password) {
		return nil, "", NewValidationError("password", "password must be at least 8 characters long and contain uppercase, lowercase, and number")
	}
	if req.Phone != nil && !utils.ValidatePhone(*req.Phone) {
		return nil, "", NewValidationError("phone", "invalid phone number")
	}

	exists, err := s.userRepo.ExistsByEmailOrPhone(ctx, email, req.Phone)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return nil, "", fmt.Errorf("user with this email or phone already exists: %w", ErrConflict)
	}

	passwordHash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: passwordHash,
		Role:         domain.RoleUser,
		Status:       domain.UserStatusPending,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Racing registration can slip past the existence check.
		if errors.Is(err, repository.ErrDuplicateEmail) || errors.Is(err, repository.ErrDuplicatePhone) {
			return nil, "", fmt.Errorf("user with this email or phone already exists: %w", ErrConflict)
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	verificationToken, err := s.issueVerificationToken(ctx, email)
	if err != nil {
		return nil, "", err
	}

	s.audit.Record(ctx, domain.AuditUserRegistered, &user.ID, optional(ip), map[string]string{"email": email})

	return userResponse(user), verificationToken, nil
}

// VerifyEmail consumes a one-time verification token and activates the
// account. The token mark and the status flip are a single transaction; an
// expired, used, or unknown token performs no mutation at all.
func (s *authService) VerifyEmail(ctx context.Context, token string) (*dto.UserResponse, error) {
	tokenHash := s.hashToken(token)

	record, err := s.verificationRepo.GetByTokenHash(ctx, tokenHash, domain.VerificationPurposeEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidVerification
		}
		return nil, fmt.Errorf("failed to look up verification token: %w", err)
	}

	if !record.Consumable(time.Now()) {
		return nil, ErrInvalidVerification
	}

	user, err := s.userRepo.GetByEmail(ctx, record.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidVerification
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.verificationRepo.ConsumeAndActivate(ctx, record.ID, user.ID); err != nil {
		if errors.Is(err, repository.ErrTokenConsumed) {
			return nil, ErrInvalidVerification
		}
		return nil, fmt.Errorf("failed to verify email: %w", err)
	}

	s.audit.Record(ctx, domain.AuditUserVerified, &user.ID, nil, map[string]string{"email": user.Email})

	user, err = s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return userResponse(user), nil
}

// ResendVerification issues a fresh verification token for a still-pending
// account
func (s *authService) ResendVerification(ctx context.Context, email string) (string, error) {
	email = utils.SanitizeEmail(email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if user.Status != domain.UserStatusPending {
		return "", fmt.Errorf("account is not awaiting verification: %w", ErrConflict)
	}

	return s.issueVerificationToken(ctx, email)
}

// Login authenticates an active user
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ip string) (*AuthResponseWithRefreshToken, error) {
	email := utils.SanitizeEmail(req.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.audit.Record(ctx, domain.AuditLoginFailed, nil, optional(ip), map[string]string{"email": email})
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.audit.Record(ctx, domain.AuditLoginFailed, &user.ID, optional(ip), nil)
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive() {
		s.audit.Record(ctx, domain.AuditLoginFailed, &user.ID, optional(ip), map[string]string{"status": string(user.Status)})
		return nil, ErrAccountInactive
	}

	// Best effort; login proceeds even if the stamp fails.
	_ = s.userRepo.UpdateLastLogin(ctx, user.ID)

	s.audit.Record(ctx, domain.AuditLoginSucceeded, &user.ID, optional(ip), nil)

	return s.generateAuthResponseWithRefreshToken(ctx, user, optional(ip))
}

// RefreshToken rotates a refresh token into a new token pair. Every failure
// is reported uniformly; the caller must re-authenticate.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponseWithRefreshToken, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	tokenHash := s.hashToken(refreshToken)

	dbToken, err := s.tokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	if time.Now().After(dbToken.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	isBlacklisted, err := s.blacklistService.IsTokenBlacklisted(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	if isBlacklisted {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsActive() {
		return nil, ErrAccountInactive
	}

	// Invalidate the old refresh token before minting the new pair.
	_ = s.blacklistService.AddToken(ctx, refreshToken, s.refreshTokenExpiry)
	_ = s.tokenRepo.DeleteByTokenHash(ctx, tokenHash)

	return s.generateAuthResponseWithRefreshToken(ctx, user, dbToken.IPAddress)
}

// Logout invalidates the caller's refresh token
func (s *authService) Logout(ctx context.Context, userID, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	tokenHash := s.hashToken(refreshToken)

	dbToken, err := s.tokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil || dbToken.UserID != userID {
		return nil
	}

	_ = s.blacklistService.AddToken(ctx, refreshToken, s.refreshTokenExpiry)
	_ = s.tokenRepo.DeleteByTokenHash(ctx, tokenHash)

	return nil
}

// GetUser gets user profile information
func (s *authService) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return userResponse(user), nil
}

// ValidateToken validates an access token
func (s *authService) ValidateToken(ctx context.Context, token string) (*domain.TokenClaims, error) {
	isBlacklisted, err := s.blacklistService.IsTokenBlacklisted(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	if isBlacklisted {
		return nil, ErrInvalidToken
	}

	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// issueVerificationToken mints a one-time token and stores its hash
func (s *authService) issueVerificationToken(ctx context.Context, email string) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate verification token: %w", err)
	}
	token := hex.EncodeToString(raw)

	record := &domain.VerificationToken{
		Email:     email,
		TokenHash: s.hashToken(token),
		Purpose:   domain.VerificationPurposeEmail,
		ExpiresAt: time.Now().Add(s.verificationExpiry),
	}

	if err := s.verificationRepo.Create(ctx, record); err != nil {
		return "", fmt.Errorf("failed to save verification token: %w", err)
	}

	return token, nil
}

// hashToken hashes a token using SHA256
func (s *authService) hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

func userResponse(user *domain.User) *dto.UserResponse {
	response := &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}

	if user.EmailVerifiedAt != nil {
		verifiedAt := user.EmailVerifiedAt.Format(time.RFC3339)
		response.EmailVerifiedAt = &verifiedAt
	}
	if user.LastLoginAt != nil {
		lastLogin := user.LastLoginAt.Format(time.RFC3339)
		response.LastLoginAt = &lastLogin
	}

	return response
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
