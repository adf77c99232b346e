package models

import "gorm.io/datatypes"

// AdminSettings is a singleton row: reads return the first (and only) row or
// an empty default, writes are an upsert. The repository enforces this; no
// generic CRUD is exposed for it.
type AdminSettings struct {
	BaseModel
	SiteName        string  `gorm:"default:'Event Bridge';not null" json:"siteName"`
	SiteDescription *string `json:"siteDescription,omitempty"`
	LogoURL         *string `json:"logoUrl,omitempty"`
	FaviconURL      *string `json:"faviconUrl,omitempty"`
	ContactEmail    *string `json:"contactEmail,omitempty"`
	Timezone        string  `gorm:"size:50;default:'Africa/Kampala'" json:"timezone"`
	MaintenanceMode bool    `gorm:"default:false" json:"maintenanceMode"`

	FacebookURL  *string `json:"facebookUrl,omitempty"`
	TwitterURL   *string `json:"twitterUrl,omitempty"`
	InstagramURL *string `json:"instagramUrl,omitempty"`
}

// PaymentSettings is the second singleton settings row.
type PaymentSettings struct {
	BaseModel
	StripeEnabled   bool    `gorm:"default:true" json:"stripeEnabled"`
	StripePublicKey *string `json:"stripePublicKey,omitempty"`
	StripeSecretKey *string `json:"stripeSecretKey,omitempty"`

	Currency              string  `gorm:"size:3;default:'UGX'" json:"currency"`
	PlatformFeePercentage float64 `gorm:"type:decimal(5,2);default:10.00" json:"platformFeePercentage"`
	MinPayoutAmount       int     `gorm:"default:100000" json:"minPayoutAmount"`

	PayoutSchedule string `gorm:"size:20;default:'weekly'" json:"payoutSchedule"` // daily, weekly, monthly

	PaymentMethods datatypes.JSON `gorm:"default:'[\"card\",\"mobile_money\"]'" json:"paymentMethods"`
}

// Role is a named permission bundle. Stored and managed from the settings
// page, but no route checks permission strings: authorization is the
// AccountType admin gate.
type Role struct {
	BaseModel
	Name        string  `gorm:"size:50;not null;uniqueIndex" json:"name"`
	DisplayName string  `gorm:"size:100;not null" json:"displayName"`
	Description *string `json:"description,omitempty"`
	// Higher level means more permissions.
	Level       int            `gorm:"not null;index" json:"level"`
	Permissions datatypes.JSON `gorm:"default:'[]'" json:"permissions"`

	IsSystem bool `gorm:"default:false" json:"isSystem"`
	IsActive bool `gorm:"default:true" json:"isActive"`
}
