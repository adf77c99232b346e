package dto

import (
	"time"

	"eventbridge_admin/internal/models"
)

type TicketListQuery struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Search   string `form:"search"`
}

type TicketListResponse struct {
	Tickets []models.SupportTicket `json:"tickets"`
	Total   int64                  `json:"total"`
	Page    int                    `json:"page"`
	Limit   int                    `json:"limit"`
}

type CreateTicketRequest struct {
	Subject        string `json:"subject" validate:"required"`
	ReporterID     uint   `json:"reporterId" validate:"required"`
	InitialMessage string `json:"initialMessage" validate:"required"`
	Priority       string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=OPEN PENDING CLOSED"`
}

type CreateTicketMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type FlagListQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Status string `form:"status"`
	Reason string `form:"reason"`
	Search string `form:"search"`
}

type FlagListResponse struct {
	Flags []models.Flag `json:"flags"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// CreateFlagRequest files a report against a target. FlaggerID is optional;
// when absent the acting user is recorded as the flagger.
type CreateFlagRequest struct {
	Content    string `json:"content" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
	TargetType string `json:"targetType" validate:"required"`
	TargetID   uint   `json:"targetId" validate:"required"`
	FlaggerID  uint   `json:"flaggerId"`
}

type UpdateFlagStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING RESOLVED DISMISSED"`
}

// FlagTarget is the resolved content a flag points at. Nil when the target
// type is unknown or the row is gone.
type FlagTarget struct {
	Type         string     `json:"type"`
	ID           uint       `json:"id"`
	BusinessName *string    `json:"businessName,omitempty"`
	OwnerName    string     `json:"ownerName,omitempty"`
	OwnerEmail   string     `json:"ownerEmail,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

type FlagDetailResponse struct {
	Flag   models.Flag `json:"flag"`
	Target *FlagTarget `json:"target"`
}
