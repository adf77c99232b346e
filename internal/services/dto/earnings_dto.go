package dto

import "eventbridge_admin/internal/repositories"

// EarningsStats is the headline block on the earnings page.
type EarningsStats struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	PendingPayouts float64 `json:"pendingPayouts"`
	ActiveVendors  int64   `json:"activeVendors"`
}

type VendorEarningsQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Search string `form:"search"`
}

type VendorEarningsResponse struct {
	Vendors []repositories.VendorEarningsRow `json:"vendors"`
	Total   int64                            `json:"total"`
	Page    int                              `json:"page"`
	Limit   int                              `json:"limit"`
}
