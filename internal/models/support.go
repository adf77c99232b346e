package models

import "time"

// SupportTicket has exactly one reporter and an ordered message thread.
// Status is the only mutable field after creation; subject and the initial
// message are immutable history.
type SupportTicket struct {
	BaseModel
	Subject  string         `gorm:"not null" json:"subject"`
	Status   TicketStatus   `gorm:"type:varchar(10);default:'OPEN';not null;index" json:"status"`
	Priority TicketPriority `gorm:"type:varchar(10);default:'MEDIUM';not null" json:"priority"`

	ReporterID     uint   `gorm:"not null;index" json:"reporterId"`
	InitialMessage string `gorm:"not null" json:"initialMessage"`

	Reporter *User                  `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
	Messages []SupportTicketMessage `gorm:"foreignKey:TicketID" json:"messages,omitempty"`
}

type SupportTicketMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TicketID    uint      `gorm:"not null;index" json:"ticketId"`
	SenderID    uint      `gorm:"not null;index" json:"senderId"`
	Message     string    `gorm:"not null" json:"message"`
	IsFromAdmin bool      `gorm:"default:false;not null" json:"isFromAdmin"`
	CreatedAt   time.Time `gorm:"default:now();not null" json:"createdAt"`

	Sender *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

// Flag is a moderation report against a polymorphic target identified by
// (TargetType, TargetID). The target has no foreign key: it may be any
// entity type, and unknown types resolve to no target.
type Flag struct {
	BaseModel
	Content string     `gorm:"not null" json:"content"`
	Reason  string     `gorm:"not null" json:"reason"`
	Status  FlagStatus `gorm:"type:varchar(10);default:'PENDING';not null;index" json:"status"`

	FlaggerID uint `gorm:"not null;index" json:"flaggerId"`

	TargetType string `gorm:"not null;index" json:"targetType"` // vendor, user, event, review
	TargetID   uint   `gorm:"not null" json:"targetId"`

	FlaggedDate time.Time `gorm:"default:now();not null" json:"flaggedDate"`

	Flagger *User `gorm:"foreignKey:FlaggerID" json:"flagger,omitempty"`
}
