package repositories

import (
	"eventbridge_admin/internal/models"

	"gorm.io/gorm"
)

type AuditRepository interface {
	Create(entry *models.AuditLog) error
	FindWithFilter(criteria AuditFilter) ([]models.AuditLog, int64, error)
}

// AuditFilter narrows the log view. Action is an exact match, EntityType
// filters the entity index, UserID restricts to one actor.
type AuditFilter struct {
	Action     string
	EntityType string
	UserID     *uint
	Page       int
	Limit      int
}

type AuditRepositoryImpl struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &AuditRepositoryImpl{db: db}
}

func (r *AuditRepositoryImpl) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *AuditRepositoryImpl) FindWithFilter(criteria AuditFilter) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	query := r.db.Model(&models.AuditLog{})

	if criteria.Action != "" && criteria.Action != "all" {
		query = query.Where("action = ?", criteria.Action)
	}
	if criteria.EntityType != "" && criteria.EntityType != "all" {
		query = query.Where("entity_type = ?", criteria.EntityType)
	}
	if criteria.UserID != nil {
		query = query.Where("user_id = ?", *criteria.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := criteria.Page * limit

	err := query.Preload("User").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}
