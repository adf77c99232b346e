package repositories

import (
	"errors"

	"eventbridge_admin/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRoleNotFound      = errors.New("role not found")
	ErrRoleAlreadyExists = errors.New("role already exists")
)

type SettingsRepository interface {
	GetAdminSettings() (*models.AdminSettings, error)
	UpsertAdminSettings(updates map[string]interface{}) (*models.AdminSettings, error)
	GetPaymentSettings() (*models.PaymentSettings, error)
	UpsertPaymentSettings(updates map[string]interface{}) (*models.PaymentSettings, error)

	FindRoles() ([]models.Role, error)
	FindRoleByID(id uint) (*models.Role, error)
	CreateRole(role *models.Role) error
	UpdateRole(id uint, updates map[string]interface{}) (*models.Role, error)
	DeleteRole(id uint) error
}

type SettingsRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &SettingsRepositoryImpl{db: db}
}

// GetAdminSettings returns the singleton row, or column defaults without
// persisting anything when no row exists yet.
func (r *SettingsRepositoryImpl) GetAdminSettings() (*models.AdminSettings, error) {
	var settings models.AdminSettings
	err := r.db.Order("id ASC").First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.AdminSettings{
				SiteName: "Event Bridge",
				Timezone: "Africa/Kampala",
			}, nil
		}
		return nil, err
	}
	return &settings, nil
}

// UpsertAdminSettings updates the singleton row, creating it on first write.
// Calling twice with the same payload leaves one row with the same values.
func (r *SettingsRepositoryImpl) UpsertAdminSettings(updates map[string]interface{}) (*models.AdminSettings, error) {
	var settings models.AdminSettings
	err := r.db.Transaction(func(tx *gorm.DB) error {
		findErr := tx.Order("id ASC").First(&settings).Error
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			settings = models.AdminSettings{
				SiteName: "Event Bridge",
				Timezone: "Africa/Kampala",
			}
			if err := tx.Create(&settings).Error; err != nil {
				return err
			}
		} else if findErr != nil {
			return findErr
		}
		return tx.Model(&settings).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetAdminSettings()
}

func (r *SettingsRepositoryImpl) GetPaymentSettings() (*models.PaymentSettings, error) {
	var settings models.PaymentSettings
	err := r.db.Order("id ASC").First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.PaymentSettings{
				StripeEnabled:         true,
				Currency:              "UGX",
				PlatformFeePercentage: 10.00,
				MinPayoutAmount:       100000,
				PayoutSchedule:        "weekly",
			}, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepositoryImpl) UpsertPaymentSettings(updates map[string]interface{}) (*models.PaymentSettings, error) {
	var settings models.PaymentSettings
	err := r.db.Transaction(func(tx *gorm.DB) error {
		findErr := tx.Order("id ASC").First(&settings).Error
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			settings = models.PaymentSettings{
				StripeEnabled:         true,
				Currency:              "UGX",
				PlatformFeePercentage: 10.00,
				MinPayoutAmount:       100000,
				PayoutSchedule:        "weekly",
			}
			if err := tx.Create(&settings).Error; err != nil {
				return err
			}
		} else if findErr != nil {
			return findErr
		}
		return tx.Model(&settings).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetPaymentSettings()
}

func (r *SettingsRepositoryImpl) FindRoles() ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Order("level DESC").Find(&roles).Error
	return roles, err
}

func (r *SettingsRepositoryImpl) FindRoleByID(id uint) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *SettingsRepositoryImpl) CreateRole(role *models.Role) error {
	var existing models.Role
	if err := r.db.Where("name = ?", role.Name).First(&existing).Error; err == nil {
		return ErrRoleAlreadyExists
	}
	return r.db.Create(role).Error
}

// UpdateRole applies a partial update. An empty update map would make GORM
// skip the statement and report zero rows, so it returns the role as is.
func (r *SettingsRepositoryImpl) UpdateRole(id uint, updates map[string]interface{}) (*models.Role, error) {
	if len(updates) == 0 {
		return r.FindRoleByID(id)
	}

	result := r.db.Model(&models.Role{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRoleNotFound
	}
	return r.FindRoleByID(id)
}

func (r *SettingsRepositoryImpl) DeleteRole(id uint) error {
	result := r.db.Delete(&models.Role{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoleNotFound
	}
	return nil
}
