package services

import (
	"errors"

	"eventbridge_admin/internal/auth"
	"eventbridge_admin/internal/logger"
	"eventbridge_admin/internal/models"
	"eventbridge_admin/internal/repositories"
	"eventbridge_admin/internal/services/dto"
	"eventbridge_admin/pkg/apperrors"
)

type AuthService interface {
	Login(req dto.LoginRequest, ip, userAgent string) (*dto.AuthResponse, error)
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	ChangePassword(user *models.User, req dto.ChangePasswordRequest) error
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
	audit    AuditService
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager, audit AuditService) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		audit:    audit,
	}
}

// Login verifies credentials and issues a token. Wrong email, wrong password,
// federated accounts without a local password, and deactivated accounts all
// answer with the same credentials error so probes learn nothing.
func (s *AuthServiceImpl) Login(req dto.LoginRequest, ip, userAgent string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.PasswordHash == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPasswordHash(req.Password, *user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.AccountType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateLastActive(user.ID); err != nil {
		logger.Warn("failed to update last active timestamp", "user_id", user.ID, "error", err)
	}

	actorID := user.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "auth.login",
		EntityType: "user",
		EntityID:   &actorID,
		IPAddress:  ip,
		UserAgent:  userAgent,
	})

	return &dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}

// Register creates an account and auto-logs it in. The account type defaults
// to CUSTOMER; ADMIN cannot be self-assigned here.
func (s *AuthServiceImpl) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	accountType := models.AccountTypeCustomer
	if req.AccountType != "" {
		accountType = models.AccountType(req.AccountType)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: &hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Location:     req.Location,
		AccountType:  accountType,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.AccountType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}

// ChangePassword verifies the current password before accepting the new one.
func (s *AuthServiceImpl) ChangePassword(user *models.User, req dto.ChangePasswordRequest) error {
	if user.PasswordHash == nil || !auth.CheckPasswordHash(req.CurrentPassword, *user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(user.ID, hash); err != nil {
		return apperrors.InternalError(err)
	}

	actorID := user.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "auth.change_password",
		EntityType: "user",
		EntityID:   &actorID,
	})
	return nil
}
