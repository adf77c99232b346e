package repositories

import (
	"errors"

	"eventbridge_admin/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTicketNotFound = errors.New("support ticket not found")
	ErrFlagNotFound   = errors.New("flag not found")
)

type SupportRepository interface {
	CreateTicket(ticket *models.SupportTicket) error
	FindTicketByID(id uint) (*models.SupportTicket, error)
	FindTicketsWithFilter(criteria TicketFilter) ([]models.SupportTicket, int64, error)
	UpdateTicketStatus(id uint, status models.TicketStatus) (*models.SupportTicket, error)
	CreateMessage(msg *models.SupportTicketMessage) error
	CountOpenTickets() (int64, error)

	CreateFlag(flag *models.Flag) error
	FindFlagByID(id uint) (*models.Flag, error)
	FindFlagsWithFilter(criteria FlagFilter) ([]models.Flag, int64, error)
	UpdateFlagStatus(id uint, status models.FlagStatus) (*models.Flag, error)
	DeleteFlag(id uint) error
	FindVendorProfileByID(id uint) (*models.VendorProfile, error)
	FindVendorProfileByUserID(userID uint) (*models.VendorProfile, error)
}

// TicketFilter narrows the ticket queue. "all" sentinels on Status and
// Priority mean no filtering; Search matches subject and reporter email.
type TicketFilter struct {
	Status   string
	Priority string
	Search   string
	Page     int
	Limit    int
}

// FlagFilter narrows the moderation queue. Search matches flag content and
// the stated reason.
type FlagFilter struct {
	Status string
	Reason string
	Search string
	Page   int
	Limit  int
}

type SupportRepositoryImpl struct {
	db *gorm.DB
}

func NewSupportRepository(db *gorm.DB) SupportRepository {
	return &SupportRepositoryImpl{db: db}
}

// CreateTicket inserts the ticket and its first thread message together, so
// a new ticket never exists without a message.
func (r *SupportRepositoryImpl) CreateTicket(ticket *models.SupportTicket) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ticket).Error; err != nil {
			return err
		}
		first := &models.SupportTicketMessage{
			TicketID: ticket.ID,
			SenderID: ticket.ReporterID,
			Message:  ticket.InitialMessage,
		}
		return tx.Create(first).Error
	})
}

func (r *SupportRepositoryImpl) FindTicketByID(id uint) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	err := r.db.Preload("Reporter").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Messages.Sender").
		First(&ticket, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *SupportRepositoryImpl) FindTicketsWithFilter(criteria TicketFilter) ([]models.SupportTicket, int64, error) {
	var tickets []models.SupportTicket
	query := r.db.Model(&models.SupportTicket{})

	if criteria.Status != "" && criteria.Status != "all" {
		query = query.Where("support_tickets.status = ?", criteria.Status)
	}
	if criteria.Priority != "" && criteria.Priority != "all" {
		query = query.Where("support_tickets.priority = ?", criteria.Priority)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Joins("LEFT JOIN users ON users.id = support_tickets.reporter_id").
			Where("support_tickets.subject ILIKE ? OR users.email ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := criteria.Page * limit

	err := query.Preload("Reporter").
		Order("support_tickets.created_at DESC").
		Limit(limit).Offset(offset).Find(&tickets).Error
	return tickets, total, err
}

func (r *SupportRepositoryImpl) UpdateTicketStatus(id uint, status models.TicketStatus) (*models.SupportTicket, error) {
	result := r.db.Model(&models.SupportTicket{}).Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTicketNotFound
	}
	return r.FindTicketByID(id)
}

func (r *SupportRepositoryImpl) CreateMessage(msg *models.SupportTicketMessage) error {
	var ticket models.SupportTicket
	if err := r.db.First(&ticket, "id = ?", msg.TicketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketNotFound
		}
		return err
	}
	return r.db.Create(msg).Error
}

// CountOpenTickets counts tickets still awaiting resolution, so OPEN and
// PENDING both qualify.
func (r *SupportRepositoryImpl) CountOpenTickets() (int64, error) {
	var count int64
	err := r.db.Model(&models.SupportTicket{}).
		Where("status IN ?", []models.TicketStatus{models.TicketStatusOpen, models.TicketStatusPending}).
		Count(&count).Error
	return count, err
}

func (r *SupportRepositoryImpl) CreateFlag(flag *models.Flag) error {
	return r.db.Create(flag).Error
}

func (r *SupportRepositoryImpl) FindFlagByID(id uint) (*models.Flag, error) {
	var flag models.Flag
	err := r.db.Preload("Flagger").First(&flag, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlagNotFound
		}
		return nil, err
	}
	return &flag, nil
}

func (r *SupportRepositoryImpl) FindFlagsWithFilter(criteria FlagFilter) ([]models.Flag, int64, error) {
	var flags []models.Flag
	query := r.db.Model(&models.Flag{})

	if criteria.Status != "" && criteria.Status != "all" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Reason != "" && criteria.Reason != "all" {
		query = query.Where("reason = ?", criteria.Reason)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("content ILIKE ? OR reason ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := criteria.Page * limit

	err := query.Preload("Flagger").
		Order("flagged_date DESC").Limit(limit).Offset(offset).Find(&flags).Error
	return flags, total, err
}

func (r *SupportRepositoryImpl) UpdateFlagStatus(id uint, status models.FlagStatus) (*models.Flag, error) {
	result := r.db.Model(&models.Flag{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrFlagNotFound
	}
	return r.FindFlagByID(id)
}

func (r *SupportRepositoryImpl) DeleteFlag(id uint) error {
	result := r.db.Delete(&models.Flag{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFlagNotFound
	}
	return nil
}

func (r *SupportRepositoryImpl) FindVendorProfileByID(id uint) (*models.VendorProfile, error) {
	var profile models.VendorProfile
	err := r.db.Preload("User").First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *SupportRepositoryImpl) FindVendorProfileByUserID(userID uint) (*models.VendorProfile, error) {
	var profile models.VendorProfile
	err := r.db.Preload("User").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
