package models

import "time"

type User struct {
	BaseModel
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	// Nullable: accounts created through a federated provider have no
	// local password and cannot use password login.
	PasswordHash *string `gorm:"column:password" json:"-"`

	FirstName string  `gorm:"not null" json:"firstName"`
	LastName  string  `gorm:"not null" json:"lastName"`
	Phone     *string `json:"phone,omitempty"`
	Location  *string `json:"location,omitempty"`
	Image     *string `json:"image,omitempty"`

	Provider    string      `gorm:"not null;default:local" json:"provider"`
	AccountType AccountType `gorm:"type:varchar(20);not null;index" json:"accountType"`

	IsActive      bool       `gorm:"default:true;index" json:"isActive"`
	EmailVerified bool       `gorm:"default:false" json:"emailVerified"`
	LastActiveAt  *time.Time `json:"lastActiveAt,omitempty"`

	// Relations
	VendorProfile *VendorProfile `gorm:"foreignKey:UserID" json:"vendorProfile,omitempty"`
}

// DeletedAccount is an append-only tombstone. Users are never hard-deleted;
// removing an account deactivates the row and records one of these.
type DeletedAccount struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      uint        `gorm:"not null" json:"userId"` // no FK on purpose
	Email       string      `gorm:"not null;index" json:"email"`
	AccountType AccountType `gorm:"not null" json:"accountType"`
	Reason      string      `json:"reason,omitempty"`
	Details     string      `json:"details,omitempty"`
	DeletedAt   time.Time   `gorm:"default:now();index" json:"deletedAt"`
}
