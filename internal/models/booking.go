package models

import "time"

// Booking and Invoice are inert storage records in this back-office: they are
// written by the customer-facing platform and only aggregated here (dashboard
// stats, earnings ranking).
type Booking struct {
	BaseModel
	EventID  uint `gorm:"not null;index" json:"eventId"`
	VendorID uint `gorm:"not null;index" json:"vendorId"`
	ClientID uint `gorm:"not null;index" json:"clientId"`

	BookingDate time.Time `gorm:"not null;index" json:"bookingDate"`
	StartTime   time.Time `gorm:"not null" json:"startTime"`
	EndTime     time.Time `gorm:"not null" json:"endTime"`

	Status        string `gorm:"default:'pending';not null;index" json:"status"`
	PaymentStatus string `gorm:"default:'unpaid'" json:"paymentStatus"`

	TotalAmount *int    `json:"totalAmount,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

type Invoice struct {
	BaseModel
	VendorID  uint  `gorm:"not null;index" json:"vendorId"`
	BookingID *uint `gorm:"index" json:"bookingId,omitempty"`
	ClientID  uint  `gorm:"not null;index" json:"clientId"`

	InvoiceNumber string `gorm:"size:50;not null;uniqueIndex" json:"invoiceNumber"`

	Amount   float64       `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency string        `gorm:"size:3;default:'UGX'" json:"currency"`
	Status   InvoiceStatus `gorm:"size:20;default:'pending';index" json:"status"`

	DueDate *time.Time `json:"dueDate,omitempty"`
	PaidAt  *time.Time `json:"paidAt,omitempty"`
	Notes   *string    `json:"notes,omitempty"`
}
