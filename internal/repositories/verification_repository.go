package repositories

import (
	"errors"
	"time"

	"eventbridge_admin/internal/models"

	"gorm.io/gorm"
)

var ErrVerificationNotFound = errors.New("verification request not found")

type VerificationRepository interface {
	FindByID(id uint) (*models.VerificationDocument, error)
	FindWithFilter(criteria VerificationFilter) ([]models.VerificationDocument, int64, error)
	UpdateStatus(id uint, status models.VerificationStatus, notes *string) (*models.VerificationDocument, error)
	CountByStatus(status models.VerificationStatus) (int64, error)
	CountSubmittedSince(since time.Time) (int64, error)
}

// VerificationFilter narrows the review queue. The queue defaults to pending
// requests; "all" returns every request.
type VerificationFilter struct {
	Status string
	Page   int
	Limit  int
}

type VerificationRepositoryImpl struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &VerificationRepositoryImpl{db: db}
}

func (r *VerificationRepositoryImpl) FindByID(id uint) (*models.VerificationDocument, error) {
	var doc models.VerificationDocument
	err := r.db.Preload("VendorProfile.User").First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVerificationNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *VerificationRepositoryImpl) FindWithFilter(criteria VerificationFilter) ([]models.VerificationDocument, int64, error) {
	var docs []models.VerificationDocument
	query := r.db.Model(&models.VerificationDocument{})

	status := criteria.Status
	if status == "" {
		status = string(models.VerificationStatusPending)
	}
	if status != "all" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := criteria.Page * limit

	err := query.Preload("VendorProfile.User").
		Order("uploaded_at DESC").Limit(limit).Offset(offset).Find(&docs).Error
	return docs, total, err
}

// UpdateStatus moves a request through the review workflow. Only an approval
// cascades to the owning vendor profile, in the same transaction so the
// document and the profile never disagree; rejecting or re-pending touches
// the document alone.
func (r *VerificationRepositoryImpl) UpdateStatus(id uint, status models.VerificationStatus, notes *string) (*models.VerificationDocument, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var doc models.VerificationDocument
		if err := tx.First(&doc, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVerificationNotFound
			}
			return err
		}

		if err := tx.Model(&models.VerificationDocument{}).Where("id = ?", id).
			Update("status", status).Error; err != nil {
			return err
		}

		if status != models.VerificationStatusApproved {
			return nil
		}

		now := time.Now()
		profileUpdates := map[string]interface{}{
			"is_verified":              true,
			"verification_status":      status,
			"verification_reviewed_at": now,
			"updated_at":               now,
		}
		if notes != nil {
			profileUpdates["verification_notes"] = *notes
		}

		return tx.Model(&models.VendorProfile{}).Where("id = ?", doc.VendorID).
			Updates(profileUpdates).Error
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(id)
}

func (r *VerificationRepositoryImpl) CountByStatus(status models.VerificationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.VerificationDocument{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *VerificationRepositoryImpl) CountSubmittedSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.VerificationDocument{}).
		Where("uploaded_at >= ?", since).Count(&count).Error
	return count, err
}
