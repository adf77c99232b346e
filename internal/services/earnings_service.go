package services

import (
	"time"

	"eventbridge_admin/internal/repositories"
	"eventbridge_admin/internal/services/dto"
	"eventbridge_admin/pkg/apperrors"
)

type EarningsService interface {
	Stats() (*dto.EarningsStats, error)
	Chart(months int) ([]repositories.RevenueRow, error)
	Vendors(query dto.VendorEarningsQuery) (*dto.VendorEarningsResponse, error)
}

type EarningsServiceImpl struct {
	earningsRepo repositories.EarningsRepository
}

func NewEarningsService(earningsRepo repositories.EarningsRepository) EarningsService {
	return &EarningsServiceImpl{earningsRepo: earningsRepo}
}

func (s *EarningsServiceImpl) Stats() (*dto.EarningsStats, error) {
	totalRevenue, err := s.earningsRepo.SumPaidInvoices()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	monthlyRevenue, err := s.earningsRepo.SumPaidInvoicesSince(startOfMonth(time.Now()))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pendingPayouts, err := s.earningsRepo.SumPendingInvoices()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	activeVendors, err := s.earningsRepo.CountActiveVendors()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.EarningsStats{
		TotalRevenue:   totalRevenue,
		MonthlyRevenue: monthlyRevenue,
		PendingPayouts: pendingPayouts,
		ActiveVendors:  activeVendors,
	}, nil
}

func (s *EarningsServiceImpl) Chart(months int) ([]repositories.RevenueRow, error) {
	if months <= 0 || months > 24 {
		months = 12
	}
	rows, err := s.earningsRepo.RevenueByMonth(months)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rows, nil
}

func (s *EarningsServiceImpl) Vendors(query dto.VendorEarningsQuery) (*dto.VendorEarningsResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}

	rows, total, err := s.earningsRepo.FindVendorEarnings(repositories.VendorEarningsFilter{
		Search: query.Search,
		Page:   query.Page,
		Limit:  limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.VendorEarningsResponse{
		Vendors: rows,
		Total:   total,
		Page:    query.Page,
		Limit:   limit,
	}, nil
}
