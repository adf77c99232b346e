package services

import (
	"errors"

	"eventbridge_admin/internal/models"
	"eventbridge_admin/internal/repositories"
	"eventbridge_admin/internal/services/dto"
	"eventbridge_admin/pkg/apperrors"
)

type VerificationService interface {
	List(query dto.VerificationListQuery) (*dto.VerificationListResponse, error)
	Get(id uint) (*dto.VerificationResponse, error)
	UpdateStatus(actor *models.User, id uint, req dto.UpdateVerificationStatusRequest) (*dto.VerificationResponse, error)
}

type VerificationServiceImpl struct {
	verificationRepo repositories.VerificationRepository
	audit            AuditService
}

func NewVerificationService(verificationRepo repositories.VerificationRepository, audit AuditService) VerificationService {
	return &VerificationServiceImpl{verificationRepo: verificationRepo, audit: audit}
}

func (s *VerificationServiceImpl) List(query dto.VerificationListQuery) (*dto.VerificationListResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}

	docs, total, err := s.verificationRepo.FindWithFilter(repositories.VerificationFilter{
		Status: query.Status,
		Page:   query.Page,
		Limit:  limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.VerificationResponse, 0, len(docs))
	for i := range docs {
		responses = append(responses, dto.ToVerificationResponse(&docs[i]))
	}

	return &dto.VerificationListResponse{
		Verifications: responses,
		Total:         total,
		Page:          query.Page,
		Limit:         limit,
	}, nil
}

func (s *VerificationServiceImpl) Get(id uint) (*dto.VerificationResponse, error) {
	doc, err := s.verificationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrVerificationNotFound) {
			return nil, apperrors.NotFound("Verification request")
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToVerificationResponse(doc)
	return &resp, nil
}

// UpdateStatus moves a request through the review workflow. Approval marks
// the vendor profile verified in the same transaction.
func (s *VerificationServiceImpl) UpdateStatus(actor *models.User, id uint, req dto.UpdateVerificationStatusRequest) (*dto.VerificationResponse, error) {
	status := models.VerificationStatus(req.Status)
	if !models.ValidVerificationStatus(status) {
		return nil, apperrors.NewBadRequestError("Invalid verification status")
	}

	doc, err := s.verificationRepo.UpdateStatus(id, status, req.Notes)
	if err != nil {
		if errors.Is(err, repositories.ErrVerificationNotFound) {
			return nil, apperrors.NotFound("Verification request")
		}
		return nil, apperrors.InternalError(err)
	}

	actorID := actor.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "verifications.update_status",
		EntityType: "verification",
		EntityID:   &id,
		Metadata:   map[string]interface{}{"status": req.Status},
	})

	resp := dto.ToVerificationResponse(doc)
	return &resp, nil
}
