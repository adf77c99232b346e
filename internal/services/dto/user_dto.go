package dto

type UserListQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Role   string `form:"role"`
	Search string `form:"search"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type DeleteUserRequest struct {
	Reason  string `json:"reason"`
	Details string `json:"details"`
}
