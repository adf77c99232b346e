package dto

// DashboardStats is the headline card block on the admin home page. New-user
// and new-vendor counts use a rolling 30-day window.
type DashboardStats struct {
	TotalUsers           int64   `json:"totalUsers"`
	TotalVendors         int64   `json:"totalVendors"`
	TotalCustomers       int64   `json:"totalCustomers"`
	TotalBookings        int64   `json:"totalBookings"`
	NewUsers             int64   `json:"newUsers"`
	NewVendors           int64   `json:"newVendors"`
	PendingVerifications int64   `json:"pendingVerifications"`
	OpenTickets          int64   `json:"openTickets"`
	TotalRevenue         float64 `json:"totalRevenue"`
	MonthlyRevenue       float64 `json:"monthlyRevenue"`
}

// VerificationBreakdown is the per-status document count widget.
type VerificationBreakdown struct {
	Verified int64 `json:"verified"`
	Pending  int64 `json:"pending"`
	Rejected int64 `json:"rejected"`
}
