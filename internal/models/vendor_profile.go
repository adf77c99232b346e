package models

import "time"

// VendorProfile is the 1:1 extension of a VENDOR user. At most one profile
// exists per user (unique foreign key).
type VendorProfile struct {
	BaseModel
	UserID uint `gorm:"not null;uniqueIndex" json:"userId"`

	BusinessName *string `json:"businessName,omitempty"`
	Description  *string `json:"description,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Website      *string `json:"website,omitempty"`

	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zipCode,omitempty"`

	// Verification fields are mutated only by the verification review
	// operation (cascade from document approval).
	VerificationStatus      VerificationStatus `gorm:"type:varchar(20);default:'pending';not null;index" json:"verificationStatus"`
	VerificationSubmittedAt *time.Time         `json:"verificationSubmittedAt,omitempty"`
	VerificationReviewedAt  *time.Time         `json:"verificationReviewedAt,omitempty"`
	VerificationNotes       *string            `json:"verificationNotes,omitempty"`
	IsVerified              bool               `gorm:"default:false;index" json:"isVerified"`

	// Denormalized review aggregates
	Rating      int `gorm:"default:0" json:"rating"`
	ReviewCount int `gorm:"default:0" json:"reviewCount"`

	// Two-phase trial state. Pure data, no enforcement engine: the
	// timestamps are set by explicit action and read by reporting.
	SubscriptionStatus SubscriptionStatus `gorm:"type:varchar(20);default:'free_trial';index" json:"subscriptionStatus"`
	TrialPhase         string             `gorm:"type:varchar(20);default:'phase1';not null" json:"trialPhase"`
	TrialEndsAt        *time.Time         `json:"trialEndsAt,omitempty"`
	Phase1EndsAt       *time.Time         `json:"phase1EndsAt,omitempty"`
	Phase2EndsAt       *time.Time         `json:"phase2EndsAt,omitempty"`
	WarningSentAt      *time.Time         `json:"warningSentAt,omitempty"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// VerificationDocument is evidence submitted by a vendor for review.
type VerificationDocument struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	VendorID uint `gorm:"not null;index" json:"vendorId"`

	DocumentType string `gorm:"not null" json:"documentType"`
	DocumentURL  string `gorm:"not null" json:"documentUrl"`
	DocumentName string `gorm:"not null" json:"documentName"`
	FileSize     *int   `json:"fileSize,omitempty"`

	Status VerificationStatus `gorm:"type:varchar(20);default:'pending';not null;index" json:"status"`

	UploadedAt time.Time `gorm:"default:now();not null" json:"uploadedAt"`

	VendorProfile *VendorProfile `gorm:"foreignKey:VendorID" json:"vendorProfile,omitempty"`
}
