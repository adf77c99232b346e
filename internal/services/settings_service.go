package services

import (
	"encoding/json"
	"errors"

	"eventbridge_admin/internal/models"
	"eventbridge_admin/internal/repositories"
	"eventbridge_admin/internal/services/dto"
	"eventbridge_admin/pkg/apperrors"
)

type SettingsService interface {
	GetGeneral() (*models.AdminSettings, error)
	UpdateGeneral(actor *models.User, req dto.UpdateAdminSettingsRequest) (*models.AdminSettings, error)
	GetPayments() (*models.PaymentSettings, error)
	UpdatePayments(actor *models.User, req dto.UpdatePaymentSettingsRequest) (*models.PaymentSettings, error)

	ListTeam() ([]dto.UserResponse, error)
	UpdateTeamMember(actor *models.User, id uint, req dto.UpdateTeamMemberRequest) (*dto.UserResponse, error)

	ListRoles() ([]models.Role, error)
	CreateRole(actor *models.User, req dto.CreateRoleRequest) (*models.Role, error)
	UpdateRole(actor *models.User, id uint, req dto.UpdateRoleRequest) (*models.Role, error)
	DeleteRole(actor *models.User, id uint) error
}

type SettingsServiceImpl struct {
	settingsRepo repositories.SettingsRepository
	userRepo     repositories.UserRepository
	audit        AuditService
}

func NewSettingsService(settingsRepo repositories.SettingsRepository, userRepo repositories.UserRepository, audit AuditService) SettingsService {
	return &SettingsServiceImpl{
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		audit:        audit,
	}
}

func (s *SettingsServiceImpl) GetGeneral() (*models.AdminSettings, error) {
	settings, err := s.settingsRepo.GetAdminSettings()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return settings, nil
}

func (s *SettingsServiceImpl) UpdateGeneral(actor *models.User, req dto.UpdateAdminSettingsRequest) (*models.AdminSettings, error) {
	updates := map[string]interface{}{}
	setString(updates, "site_name", req.SiteName)
	setString(updates, "site_description", req.SiteDescription)
	setString(updates, "logo_url", req.LogoURL)
	setString(updates, "favicon_url", req.FaviconURL)
	setString(updates, "contact_email", req.ContactEmail)
	setString(updates, "timezone", req.Timezone)
	setBool(updates, "maintenance_mode", req.MaintenanceMode)
	setString(updates, "facebook_url", req.FacebookURL)
	setString(updates, "twitter_url", req.TwitterURL)
	setString(updates, "instagram_url", req.InstagramURL)

	settings, err := s.settingsRepo.UpsertAdminSettings(updates)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	actorID := actor.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "settings.update_general",
		EntityType: "admin_settings",
		EntityID:   &settings.ID,
	})
	return settings, nil
}

func (s *SettingsServiceImpl) GetPayments() (*models.PaymentSettings, error) {
	settings, err := s.settingsRepo.GetPaymentSettings()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return settings, nil
}

func (s *SettingsServiceImpl) UpdatePayments(actor *models.User, req dto.UpdatePaymentSettingsRequest) (*models.PaymentSettings, error) {
	updates := map[string]interface{}{}
	setBool(updates, "stripe_enabled", req.StripeEnabled)
	setString(updates, "stripe_public_key", req.StripePublicKey)
	setString(updates, "stripe_secret_key", req.StripeSecretKey)
	setString(updates, "currency", req.Currency)
	if req.PlatformFeePercentage != nil {
		updates["platform_fee_percentage"] = *req.PlatformFeePercentage
	}
	if req.MinPayoutAmount != nil {
		updates["min_payout_amount"] = *req.MinPayoutAmount
	}
	setString(updates, "payout_schedule", req.PayoutSchedule)

	settings, err := s.settingsRepo.UpsertPaymentSettings(updates)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	actorID := actor.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "settings.update_payments",
		EntityType: "payment_settings",
		EntityID:   &settings.ID,
	})
	return settings, nil
}

func (s *SettingsServiceImpl) ListTeam() ([]dto.UserResponse, error) {
	admins, err := s.userRepo.FindAdmins()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]dto.UserResponse, 0, len(admins))
	for i := range admins {
		responses = append(responses, dto.ToUserResponse(&admins[i]))
	}
	return responses, nil
}

func (s *SettingsServiceImpl) UpdateTeamMember(actor *models.User, id uint, req dto.UpdateTeamMemberRequest) (*dto.UserResponse, error) {
	current, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	isActive := current.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	accountType := current.AccountType
	if req.AccountType != nil {
		accountType = models.AccountType(*req.AccountType)
		if !models.ValidAccountType(accountType) {
			return nil, apperrors.NewBadRequestError("Invalid account type")
		}
	}

	user, err := s.userRepo.UpdateTeamMember(id, isActive, accountType)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	actorID := actor.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "settings.update_team_member",
		EntityType: "user",
		EntityID:   &id,
		Metadata: map[string]interface{}{
			"isActive":    isActive,
			"accountType": string(accountType),
		},
	})

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *SettingsServiceImpl) ListRoles() ([]models.Role, error) {
	roles, err := s.settingsRepo.FindRoles()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return roles, nil
}

func (s *SettingsServiceImpl) CreateRole(actor *models.User, req dto.CreateRoleRequest) (*models.Role, error) {
	permissions, err := json.Marshal(req.Permissions)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if req.Permissions == nil {
		permissions = []byte("[]")
	}

	role := &models.Role{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Description: req.Description,
		Level:       req.Level,
		Permissions: permissions,
		IsActive:    true,
	}

	if err := s.settingsRepo.CreateRole(role); err != nil {
		if errors.Is(err, repositories.ErrRoleAlreadyExists) {
			return nil, apperrors.NewConflictError("Role with this name already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	actorID := actor.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "settings.create_role",
		EntityType: "role",
		EntityID:   &role.ID,
		Metadata:   map[string]interface{}{"name": role.Name},
	})
	return role, nil
}

func (s *SettingsServiceImpl) UpdateRole(actor *models.User, id uint, req dto.UpdateRoleRequest) (*models.Role, error) {
	existing, err := s.settingsRepo.FindRoleByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRoleNotFound) {
			return nil, apperrors.NotFound("Role")
		}
		return nil, apperrors.InternalError(err)
	}
	// System roles are fixtures; only their active flag may change.
	if existing.IsSystem && (req.DisplayName != nil || req.Level != nil || req.Permissions != nil) {
		return nil, apperrors.NewBadRequestError("System roles cannot be modified")
	}

	updates := map[string]interface{}{}
	setString(updates, "display_name", req.DisplayName)
	setString(updates, "description", req.Description)
	if req.Level != nil {
		updates["level"] = *req.Level
	}
	if req.Permissions != nil {
		permissions, err := json.Marshal(req.Permissions)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		updates["permissions"] = permissions
	}
	setBool(updates, "is_active", req.IsActive)

	role, err := s.settingsRepo.UpdateRole(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrRoleNotFound) {
			return nil, apperrors.NotFound("Role")
		}
		return nil, apperrors.InternalError(err)
	}

	actorID := actor.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "settings.update_role",
		EntityType: "role",
		EntityID:   &id,
	})
	return role, nil
}

func (s *SettingsServiceImpl) DeleteRole(actor *models.User, id uint) error {
	existing, err := s.settingsRepo.FindRoleByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRoleNotFound) {
			return apperrors.NotFound("Role")
		}
		return apperrors.InternalError(err)
	}
	if existing.IsSystem {
		return apperrors.NewBadRequestError("System roles cannot be deleted")
	}

	if err := s.settingsRepo.DeleteRole(id); err != nil {
		if errors.Is(err, repositories.ErrRoleNotFound) {
			return apperrors.NotFound("Role")
		}
		return apperrors.InternalError(err)
	}

	actorID := actor.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "settings.delete_role",
		EntityType: "role",
		EntityID:   &id,
		Metadata:   map[string]interface{}{"name": existing.Name},
	})
	return nil
}

func setString(updates map[string]interface{}, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}

func setBool(updates map[string]interface{}, column string, value *bool) {
	if value != nil {
		updates[column] = *value
	}
}
