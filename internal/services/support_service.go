package services

import (
	"errors"

	"eventbridge_admin/internal/models"
	"eventbridge_admin/internal/repositories"
	"eventbridge_admin/internal/services/dto"
	"eventbridge_admin/pkg/apperrors"

	"gorm.io/gorm"
)

type SupportService interface {
	CreateTicket(actor *models.User, req dto.CreateTicketRequest) (*models.SupportTicket, error)
	ListTickets(query dto.TicketListQuery) (*dto.TicketListResponse, error)
	GetTicket(id uint) (*models.SupportTicket, error)
	UpdateTicketStatus(actor *models.User, id uint, req dto.UpdateTicketStatusRequest) (*models.SupportTicket, error)
	AddTicketMessage(actor *models.User, id uint, req dto.CreateTicketMessageRequest) (*models.SupportTicket, error)

	CreateFlag(actor *models.User, req dto.CreateFlagRequest) (*models.Flag, error)
	ListFlags(query dto.FlagListQuery) (*dto.FlagListResponse, error)
	GetFlag(id uint) (*dto.FlagDetailResponse, error)
	UpdateFlagStatus(actor *models.User, id uint, req dto.UpdateFlagStatusRequest) (*models.Flag, error)
	DeleteFlag(actor *models.User, id uint) error
}

// flagTargetResolver turns a flag's target reference into displayable
// content. Adding a new flaggable type means adding one entry here.
type flagTargetResolver func(s *SupportServiceImpl, flag *models.Flag) (*dto.FlagTarget, error)

var flagTargetResolvers = map[string]flagTargetResolver{
	"vendor": resolveVendorTarget,
	"user":   resolveUserTarget,
}

type SupportServiceImpl struct {
	supportRepo repositories.SupportRepository
	audit       AuditService
}

func NewSupportService(supportRepo repositories.SupportRepository, audit AuditService) SupportService {
	return &SupportServiceImpl{supportRepo: supportRepo, audit: audit}
}

// CreateTicket opens a MEDIUM-priority OPEN ticket with its first message.
func (s *SupportServiceImpl) CreateTicket(actor *models.User, req dto.CreateTicketRequest) (*models.SupportTicket, error) {
	ticket := &models.SupportTicket{
		Subject:        req.Subject,
		ReporterID:     req.ReporterID,
		InitialMessage: req.InitialMessage,
		Status:         models.TicketStatusOpen,
		Priority:       models.TicketPriorityMedium,
	}
	if req.Priority != "" {
		ticket.Priority = models.TicketPriority(req.Priority)
	}

	if err := s.supportRepo.CreateTicket(ticket); err != nil {
		return nil, apperrors.InternalError(err)
	}

	actorID := actor.ID
	ticketID := ticket.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "support.create_ticket",
		EntityType: "support_ticket",
		EntityID:   &ticketID,
	})
	return s.GetTicket(ticket.ID)
}

func (s *SupportServiceImpl) ListTickets(query dto.TicketListQuery) (*dto.TicketListResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}

	tickets, total, err := s.supportRepo.FindTicketsWithFilter(repositories.TicketFilter{
		Status:   query.Status,
		Priority: query.Priority,
		Search:   query.Search,
		Page:     query.Page,
		Limit:    limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TicketListResponse{
		Tickets: tickets,
		Total:   total,
		Page:    query.Page,
		Limit:   limit,
	}, nil
}

func (s *SupportServiceImpl) GetTicket(id uint) (*models.SupportTicket, error) {
	ticket, err := s.supportRepo.FindTicketByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTicketNotFound) {
			return nil, apperrors.NotFound("Support ticket")
		}
		return nil, apperrors.InternalError(err)
	}
	return ticket, nil
}

func (s *SupportServiceImpl) UpdateTicketStatus(actor *models.User, id uint, req dto.UpdateTicketStatusRequest) (*models.SupportTicket, error) {
	status := models.TicketStatus(req.Status)
	if !models.ValidTicketStatus(status) {
		return nil, apperrors.NewBadRequestError("Invalid ticket status")
	}

	ticket, err := s.supportRepo.UpdateTicketStatus(id, status)
	if err != nil {
		if errors.Is(err, repositories.ErrTicketNotFound) {
			return nil, apperrors.NotFound("Support ticket")
		}
		return nil, apperrors.InternalError(err)
	}

	actorID := actor.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "support.update_ticket_status",
		EntityType: "support_ticket",
		EntityID:   &id,
		Metadata:   map[string]interface{}{"status": req.Status},
	})
	return ticket, nil
}

// AddTicketMessage appends an admin reply and returns the refreshed thread.
func (s *SupportServiceImpl) AddTicketMessage(actor *models.User, id uint, req dto.CreateTicketMessageRequest) (*models.SupportTicket, error) {
	msg := &models.SupportTicketMessage{
		TicketID:    id,
		SenderID:    actor.ID,
		Message:     req.Message,
		IsFromAdmin: actor.AccountType == models.AccountTypeAdmin,
	}
	if err := s.supportRepo.CreateMessage(msg); err != nil {
		if errors.Is(err, repositories.ErrTicketNotFound) {
			return nil, apperrors.NotFound("Support ticket")
		}
		return nil, apperrors.InternalError(err)
	}

	actorID := actor.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "support.add_message",
		EntityType: "support_ticket",
		EntityID:   &id,
	})
	return s.GetTicket(id)
}

func (s *SupportServiceImpl) CreateFlag(actor *models.User, req dto.CreateFlagRequest) (*models.Flag, error) {
	flaggerID := req.FlaggerID
	if flaggerID == 0 {
		flaggerID = actor.ID
	}

	flag := &models.Flag{
		Content:    req.Content,
		Reason:     req.Reason,
		Status:     models.FlagStatusPending,
		FlaggerID:  flaggerID,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
	}
	if err := s.supportRepo.CreateFlag(flag); err != nil {
		return nil, apperrors.InternalError(err)
	}

	actorID := actor.ID
	flagID := flag.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "support.create_flag",
		EntityType: "flag",
		EntityID:   &flagID,
	})
	return flag, nil
}

func (s *SupportServiceImpl) ListFlags(query dto.FlagListQuery) (*dto.FlagListResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}

	flags, total, err := s.supportRepo.FindFlagsWithFilter(repositories.FlagFilter{
		Status: query.Status,
		Reason: query.Reason,
		Search: query.Search,
		Page:   query.Page,
		Limit:  limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.FlagListResponse{
		Flags: flags,
		Total: total,
		Page:  query.Page,
		Limit: limit,
	}, nil
}

// GetFlag resolves the flagged content alongside the flag itself. An unknown
// target type or a vanished target row yields a null target, not an error:
// the flag is still reviewable.
func (s *SupportServiceImpl) GetFlag(id uint) (*dto.FlagDetailResponse, error) {
	flag, err := s.supportRepo.FindFlagByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrFlagNotFound) {
			return nil, apperrors.NotFound("Flag")
		}
		return nil, apperrors.InternalError(err)
	}

	var target *dto.FlagTarget
	if resolve, ok := flagTargetResolvers[flag.TargetType]; ok {
		target, err = resolve(s, flag)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return &dto.FlagDetailResponse{
		Flag:   *flag,
		Target: target,
	}, nil
}

func (s *SupportServiceImpl) UpdateFlagStatus(actor *models.User, id uint, req dto.UpdateFlagStatusRequest) (*models.Flag, error) {
	status := models.FlagStatus(req.Status)
	if !models.ValidFlagStatus(status) {
		return nil, apperrors.NewBadRequestError("Invalid flag status")
	}

	flag, err := s.supportRepo.UpdateFlagStatus(id, status)
	if err != nil {
		if errors.Is(err, repositories.ErrFlagNotFound) {
			return nil, apperrors.NotFound("Flag")
		}
		return nil, apperrors.InternalError(err)
	}

	actorID := actor.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "support.update_flag_status",
		EntityType: "flag",
		EntityID:   &id,
		Metadata:   map[string]interface{}{"status": req.Status},
	})
	return flag, nil
}

func (s *SupportServiceImpl) DeleteFlag(actor *models.User, id uint) error {
	if err := s.supportRepo.DeleteFlag(id); err != nil {
		if errors.Is(err, repositories.ErrFlagNotFound) {
			return apperrors.NotFound("Flag")
		}
		return apperrors.InternalError(err)
	}

	actorID := actor.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "support.delete_flag",
		EntityType: "flag",
		EntityID:   &id,
	})
	return nil
}

func resolveVendorTarget(s *SupportServiceImpl, flag *models.Flag) (*dto.FlagTarget, error) {
	profile, err := s.supportRepo.FindVendorProfileByID(flag.TargetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profileToTarget("vendor", profile), nil
}

// A flag against a user resolves through that user's vendor profile, the
// only flaggable surface a user account exposes.
func resolveUserTarget(s *SupportServiceImpl, flag *models.Flag) (*dto.FlagTarget, error) {
	profile, err := s.supportRepo.FindVendorProfileByUserID(flag.TargetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profileToTarget("user", profile), nil
}

func profileToTarget(targetType string, profile *models.VendorProfile) *dto.FlagTarget {
	target := &dto.FlagTarget{
		Type:         targetType,
		ID:           profile.ID,
		BusinessName: profile.BusinessName,
	}
	createdAt := profile.CreatedAt
	target.CreatedAt = &createdAt
	if profile.User != nil {
		target.OwnerName = profile.User.FirstName + " " + profile.User.LastName
		target.OwnerEmail = profile.User.Email
	}
	return target
}
