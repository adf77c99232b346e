package repositories

import (
	"time"

	"eventbridge_admin/internal/models"

	"gorm.io/gorm"
)

type EarningsRepository interface {
	SumPaidInvoices() (float64, error)
	SumPaidInvoicesSince(since time.Time) (float64, error)
	SumPendingInvoices() (float64, error)
	CountActiveVendors() (int64, error)
	CountBookings() (int64, error)
	RevenueByMonth(months int) ([]RevenueRow, error)
	FindVendorEarnings(criteria VendorEarningsFilter) ([]VendorEarningsRow, int64, error)
}

// RevenueRow is one month bucket of the revenue chart.
type RevenueRow struct {
	Month      string    `json:"month"`
	MonthStart time.Time `json:"-"`
	Revenue    float64   `json:"revenue"`
}

// VendorEarningsFilter narrows the per-vendor earnings table. Search matches
// the business name and the owner's name.
type VendorEarningsFilter struct {
	Search string
	Page   int
	Limit  int
}

// VendorEarningsRow is one vendor with lifetime paid earnings. Vendors with
// no paid invoices appear with zero.
type VendorEarningsRow struct {
	ID            uint    `json:"id"`
	BusinessName  *string `json:"businessName"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	Tier          string  `json:"tier"`
	TotalEarnings float64 `json:"totalEarnings"`
}

type EarningsRepositoryImpl struct {
	db *gorm.DB
}

func NewEarningsRepository(db *gorm.DB) EarningsRepository {
	return &EarningsRepositoryImpl{db: db}
}

func (r *EarningsRepositoryImpl) SumPaidInvoices() (float64, error) {
	var total float64
	err := r.db.Model(&models.Invoice{}).
		Where("status = ?", models.InvoiceStatusPaid).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

func (r *EarningsRepositoryImpl) SumPaidInvoicesSince(since time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.Invoice{}).
		Where("status = ? AND paid_at >= ?", models.InvoiceStatusPaid, since).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

func (r *EarningsRepositoryImpl) SumPendingInvoices() (float64, error) {
	var total float64
	err := r.db.Model(&models.Invoice{}).
		Where("status = ?", models.InvoiceStatusPending).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

func (r *EarningsRepositoryImpl) CountActiveVendors() (int64, error) {
	var count int64
	err := r.db.Model(&models.VendorProfile{}).
		Joins("JOIN users ON users.id = vendor_profiles.user_id").
		Where("users.is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *EarningsRepositoryImpl) CountBookings() (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).Count(&count).Error
	return count, err
}

// RevenueByMonth buckets paid invoice amounts by payment month, most recent
// `months` buckets in chronological order.
func (r *EarningsRepositoryImpl) RevenueByMonth(months int) ([]RevenueRow, error) {
	var rows []RevenueRow
	err := r.db.Model(&models.Invoice{}).
		Select(`TO_CHAR(DATE_TRUNC('month', paid_at), 'MON YYYY') AS month,
			DATE_TRUNC('month', paid_at) AS month_start,
			COALESCE(SUM(amount), 0) AS revenue`).
		Where("status = ? AND paid_at IS NOT NULL", models.InvoiceStatusPaid).
		Group("DATE_TRUNC('month', paid_at)").
		Order("DATE_TRUNC('month', paid_at) DESC").
		Limit(months).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

// FindVendorEarnings ranks vendors by lifetime paid invoice amount. The
// LEFT JOINs keep zero-earning vendors in the result; ranking ties break on
// vendor id.
func (r *EarningsRepositoryImpl) FindVendorEarnings(criteria VendorEarningsFilter) ([]VendorEarningsRow, int64, error) {
	base := r.db.Model(&models.VendorProfile{}).
		Joins("JOIN users ON users.id = vendor_profiles.user_id")

	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		base = base.Where("vendor_profiles.business_name ILIKE ? OR users.first_name ILIKE ? OR users.last_name ILIKE ?",
			search, search, search)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := criteria.Page * limit

	var rows []VendorEarningsRow
	err := base.
		Select(`vendor_profiles.id,
			vendor_profiles.business_name,
			users.first_name,
			users.last_name,
			users.email,
			vendor_profiles.subscription_status AS tier,
			COALESCE(SUM(invoices.amount), 0) AS total_earnings`).
		Joins("LEFT JOIN bookings ON bookings.vendor_id = vendor_profiles.id").
		Joins("LEFT JOIN invoices ON invoices.booking_id = bookings.id AND invoices.status = ?", models.InvoiceStatusPaid).
		Group("vendor_profiles.id, vendor_profiles.business_name, users.first_name, users.last_name, users.email, vendor_profiles.subscription_status").
		Order("total_earnings DESC, vendor_profiles.id ASC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	return rows, total, err
}
