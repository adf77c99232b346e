package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog is append-only: rows are never updated or deleted.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID     *uint          `gorm:"index" json:"userId,omitempty"`
	Action     string         `gorm:"not null;index" json:"action"`
	EntityType *string        `gorm:"index:idx_audit_logs_entity" json:"entityType,omitempty"`
	EntityID   *uint          `gorm:"index:idx_audit_logs_entity" json:"entityId,omitempty"`
	Metadata   datatypes.JSON `gorm:"default:'{}'" json:"metadata,omitempty"`

	IPAddress *string `gorm:"size:45" json:"ipAddress,omitempty"`
	UserAgent *string `json:"userAgent,omitempty"`

	CreatedAt time.Time `gorm:"default:now();not null;index" json:"createdAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
