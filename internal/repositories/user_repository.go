package repositories

import (
	"errors"
	"strings"
	"time"

	"eventbridge_admin/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByIDWithProfile(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string) error
	UpdateLastActive(userID uint) error
	SetActive(userID uint, isActive bool) error
	UpdateTeamMember(userID uint, isActive bool, accountType models.AccountType) (*models.User, error)
	SoftDelete(userID uint, reason, details string) error

	FindWithFilter(criteria UserFilter) ([]models.User, int64, error)
	FindAdmins() ([]models.User, error)

	CountAll() (int64, error)
	CountByAccountType(t models.AccountType) (int64, error)
	CountCreatedSince(since time.Time) (int64, error)
	CountByAccountTypeCreatedSince(t models.AccountType, since time.Time) (int64, error)
	GrowthByMonth(months int) ([]UserGrowthRow, error)
}

// UserFilter is the list configuration for the users endpoint. The "all"
// sentinel on Role is treated as absent; Search matches email, first name and
// last name case-insensitively.
type UserFilter struct {
	Role   string
	Search string
	Page   int // zero-based
	Limit  int
}

// UserGrowthRow is one month bucket of the growth series.
type UserGrowthRow struct {
	Month      string    `json:"month"`
	MonthStart time.Time `json:"-"`
	Vendors    int64     `json:"vendors"`
	Users      int64     `json:"users"`
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByIDWithProfile loads the user together with the vendor profile, for
// the detail view. The hot auth path uses FindByID to skip the join.
func (r *UserRepositoryImpl) FindByIDWithProfile(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("VendorProfile").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	user.Email = strings.ToLower(user.Email)

	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) UpdatePassword(userID uint, passwordHash string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"password":   passwordHash,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateLastActive(userID uint) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("last_active_at", time.Now()).Error
}

func (r *UserRepositoryImpl) SetActive(userID uint, isActive bool) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"is_active":  isActive,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateTeamMember(userID uint, isActive bool, accountType models.AccountType) (*models.User, error) {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"is_active":    isActive,
		"account_type": accountType,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return r.FindByID(userID)
}

// SoftDelete appends a tombstone and deactivates the row. Users are never
// hard-deleted.
func (r *UserRepositoryImpl) SoftDelete(userID uint, reason, details string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		tombstone := &models.DeletedAccount{
			UserID:      user.ID,
			Email:       user.Email,
			AccountType: user.AccountType,
			Reason:      reason,
			Details:     details,
		}
		if err := tx.Create(tombstone).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
	})
}

func (r *UserRepositoryImpl) FindWithFilter(criteria UserFilter) ([]models.User, int64, error) {
	var users []models.User
	query := r.db.Model(&models.User{})

	if criteria.Role != "" && criteria.Role != "all" {
		query = query.Where("account_type = ?", strings.ToUpper(criteria.Role))
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			search, search, search)
	}

	// Total is counted on the filtered query before limit/offset so callers
	// can compute page counts regardless of the returned page.
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := criteria.Page * limit

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

func (r *UserRepositoryImpl) FindAdmins() ([]models.User, error) {
	var admins []models.User
	err := r.db.Where("account_type = ?", models.AccountTypeAdmin).
		Order("created_at DESC").Find(&admins).Error
	return admins, err
}

func (r *UserRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountByAccountType(t models.AccountType) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("account_type = ?", t).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountCreatedSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountByAccountTypeCreatedSince(t models.AccountType, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("account_type = ? AND created_at >= ?", t, since).
		Count(&count).Error
	return count, err
}

// GrowthByMonth buckets users by creation month into vendor and customer
// series, most recent `months` buckets in chronological order. Ties inside a
// month have no guaranteed secondary order.
func (r *UserRepositoryImpl) GrowthByMonth(months int) ([]UserGrowthRow, error) {
	var rows []UserGrowthRow
	err := r.db.Model(&models.User{}).
		Select(`TO_CHAR(DATE_TRUNC('month', created_at), 'MON YYYY') AS month,
			DATE_TRUNC('month', created_at) AS month_start,
			COUNT(*) FILTER (WHERE account_type = 'VENDOR') AS vendors,
			COUNT(*) FILTER (WHERE account_type = 'CUSTOMER') AS users`).
		Group("DATE_TRUNC('month', created_at)").
		Order("DATE_TRUNC('month', created_at) DESC").
		Limit(months).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// Reverse into chronological order.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}
