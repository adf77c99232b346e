package dto

import (
	"time"

	"eventbridge_admin/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	FirstName   string  `json:"firstName" validate:"required"`
	LastName    string  `json:"lastName" validate:"required"`
	AccountType string  `json:"accountType" validate:"omitempty,oneof=VENDOR CUSTOMER PLANNER"`
	Phone       *string `json:"phone"`
	Location    *string `json:"location"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// UserResponse is the public shape of a user. The password hash never
// appears here.
type UserResponse struct {
	ID            uint               `json:"id"`
	Email         string             `json:"email"`
	FirstName     string             `json:"firstName"`
	LastName      string             `json:"lastName"`
	Phone         *string            `json:"phone,omitempty"`
	Location      *string            `json:"location,omitempty"`
	Image         *string            `json:"image,omitempty"`
	AccountType   models.AccountType `json:"accountType"`
	IsActive      bool               `json:"isActive"`
	EmailVerified bool               `json:"emailVerified"`
	LastActiveAt  *time.Time         `json:"lastActiveAt,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`

	VendorProfile *models.VendorProfile `json:"vendorProfile,omitempty"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Phone:         u.Phone,
		Location:      u.Location,
		Image:         u.Image,
		AccountType:   u.AccountType,
		IsActive:      u.IsActive,
		EmailVerified: u.EmailVerified,
		LastActiveAt:  u.LastActiveAt,
		CreatedAt:     u.CreatedAt,
		VendorProfile: u.VendorProfile,
	}
}
