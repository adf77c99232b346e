package services

import (
	"encoding/json"

	"eventbridge_admin/internal/logger"
	"eventbridge_admin/internal/models"
	"eventbridge_admin/internal/repositories"
	"eventbridge_admin/internal/services/dto"
)

// AuditEntry describes one admin mutation for the trail.
type AuditEntry struct {
	ActorID    *uint
	Action     string
	EntityType string
	EntityID   *uint
	Metadata   map[string]interface{}
	IPAddress  string
	UserAgent  string
}

type AuditService interface {
	// Record appends an entry. It never returns an error: audit writes are
	// best-effort and must not roll back the mutation they describe.
	Record(entry AuditEntry)
	List(query dto.AuditLogQuery) ([]models.AuditLog, int64, error)
}

type AuditServiceImpl struct {
	auditRepo repositories.AuditRepository
}

func NewAuditService(auditRepo repositories.AuditRepository) AuditService {
	return &AuditServiceImpl{auditRepo: auditRepo}
}

func (s *AuditServiceImpl) Record(entry AuditEntry) {
	row := &models.AuditLog{
		UserID: entry.ActorID,
		Action: entry.Action,
	}
	if entry.EntityType != "" {
		entityType := entry.EntityType
		row.EntityType = &entityType
	}
	row.EntityID = entry.EntityID
	if entry.IPAddress != "" {
		ip := entry.IPAddress
		row.IPAddress = &ip
	}
	if entry.UserAgent != "" {
		ua := entry.UserAgent
		row.UserAgent = &ua
	}
	if len(entry.Metadata) > 0 {
		data, err := json.Marshal(entry.Metadata)
		if err == nil {
			row.Metadata = data
		}
	}

	if err := s.auditRepo.Create(row); err != nil {
		logger.Error("audit log write failed",
			"action", entry.Action,
			"entity_type", entry.EntityType,
			"error", err,
		)
	}
}

func (s *AuditServiceImpl) List(query dto.AuditLogQuery) ([]models.AuditLog, int64, error) {
	return s.auditRepo.FindWithFilter(repositories.AuditFilter{
		Action:     query.Action,
		EntityType: query.EntityType,
		UserID:     query.UserID,
		Page:       query.Page,
		Limit:      query.Limit,
	})
}
