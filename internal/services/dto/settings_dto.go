package dto

// UpdateAdminSettingsRequest carries only the fields the client wants to
// change. Nil fields are left untouched.
type UpdateAdminSettingsRequest struct {
	SiteName        *string `json:"siteName" validate:"omitempty,min=1"`
	SiteDescription *string `json:"siteDescription"`
	LogoURL         *string `json:"logoUrl" validate:"omitempty,url"`
	FaviconURL      *string `json:"faviconUrl" validate:"omitempty,url"`
	ContactEmail    *string `json:"contactEmail" validate:"omitempty,email"`
	Timezone        *string `json:"timezone"`
	MaintenanceMode *bool   `json:"maintenanceMode"`
	FacebookURL     *string `json:"facebookUrl" validate:"omitempty,url"`
	TwitterURL      *string `json:"twitterUrl" validate:"omitempty,url"`
	InstagramURL    *string `json:"instagramUrl" validate:"omitempty,url"`
}

type UpdatePaymentSettingsRequest struct {
	StripeEnabled         *bool    `json:"stripeEnabled"`
	StripePublicKey       *string  `json:"stripePublicKey"`
	StripeSecretKey       *string  `json:"stripeSecretKey"`
	Currency              *string  `json:"currency" validate:"omitempty,len=3"`
	PlatformFeePercentage *float64 `json:"platformFeePercentage" validate:"omitempty,min=0,max=100"`
	MinPayoutAmount       *int     `json:"minPayoutAmount" validate:"omitempty,min=0"`
	PayoutSchedule        *string  `json:"payoutSchedule" validate:"omitempty,oneof=daily weekly monthly"`
}

type UpdateTeamMemberRequest struct {
	IsActive    *bool   `json:"isActive"`
	AccountType *string `json:"accountType" validate:"omitempty,oneof=VENDOR CUSTOMER PLANNER ADMIN"`
}

type CreateRoleRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=50"`
	DisplayName string   `json:"displayName" validate:"required,min=2,max=100"`
	Description *string  `json:"description"`
	Level       int      `json:"level" validate:"required,min=1"`
	Permissions []string `json:"permissions"`
}

type UpdateRoleRequest struct {
	DisplayName *string  `json:"displayName" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description"`
	Level       *int     `json:"level" validate:"omitempty,min=1"`
	Permissions []string `json:"permissions"`
	IsActive    *bool    `json:"isActive"`
}

type AuditLogQuery struct {
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
	Action     string `form:"action"`
	EntityType string `form:"entityType"`
	UserID     *uint  `form:"userId"`
}
