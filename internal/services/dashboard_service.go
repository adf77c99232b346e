package services

import (
	"time"

	"eventbridge_admin/internal/models"
	"eventbridge_admin/internal/repositories"
	"eventbridge_admin/internal/services/dto"
	"eventbridge_admin/pkg/apperrors"
)

type DashboardService interface {
	Stats() (*dto.DashboardStats, error)
	Growth(months int) ([]repositories.UserGrowthRow, error)
	VerificationBreakdown() (*dto.VerificationBreakdown, error)
}

type DashboardServiceImpl struct {
	userRepo         repositories.UserRepository
	verificationRepo repositories.VerificationRepository
	supportRepo      repositories.SupportRepository
	earningsRepo     repositories.EarningsRepository
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	verificationRepo repositories.VerificationRepository,
	supportRepo repositories.SupportRepository,
	earningsRepo repositories.EarningsRepository,
) DashboardService {
	return &DashboardServiceImpl{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		supportRepo:      supportRepo,
		earningsRepo:     earningsRepo,
	}
}

func startOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func (s *DashboardServiceImpl) Stats() (*dto.DashboardStats, error) {
	now := time.Now()
	monthStart := startOfMonth(now)
	thirtyDaysAgo := now.AddDate(0, 0, -30)

	totalUsers, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalVendors, err := s.userRepo.CountByAccountType(models.AccountTypeVendor)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalCustomers, err := s.userRepo.CountByAccountType(models.AccountTypeCustomer)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalBookings, err := s.earningsRepo.CountBookings()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	newUsers, err := s.userRepo.CountCreatedSince(thirtyDaysAgo)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	newVendors, err := s.userRepo.CountByAccountTypeCreatedSince(models.AccountTypeVendor, thirtyDaysAgo)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pendingVerifications, err := s.verificationRepo.CountByStatus(models.VerificationStatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	openTickets, err := s.supportRepo.CountOpenTickets()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalRevenue, err := s.earningsRepo.SumPaidInvoices()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	monthlyRevenue, err := s.earningsRepo.SumPaidInvoicesSince(monthStart)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardStats{
		TotalUsers:           totalUsers,
		TotalVendors:         totalVendors,
		TotalCustomers:       totalCustomers,
		TotalBookings:        totalBookings,
		NewUsers:             newUsers,
		NewVendors:           newVendors,
		PendingVerifications: pendingVerifications,
		OpenTickets:          openTickets,
		TotalRevenue:         totalRevenue,
		MonthlyRevenue:       monthlyRevenue,
	}, nil
}

func (s *DashboardServiceImpl) Growth(months int) ([]repositories.UserGrowthRow, error) {
	if months <= 0 || months > 24 {
		months = 12
	}
	rows, err := s.userRepo.GrowthByMonth(months)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rows, nil
}

// VerificationBreakdown counts documents per review status for the dashboard
// widget.
func (s *DashboardServiceImpl) VerificationBreakdown() (*dto.VerificationBreakdown, error) {
	verified, err := s.verificationRepo.CountByStatus(models.VerificationStatusApproved)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pending, err := s.verificationRepo.CountByStatus(models.VerificationStatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	rejected, err := s.verificationRepo.CountByStatus(models.VerificationStatusRejected)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.VerificationBreakdown{
		Verified: verified,
		Pending:  pending,
		Rejected: rejected,
	}, nil
}
