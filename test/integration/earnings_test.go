package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"eventbridge_admin/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vendorEarningsBody struct {
	Vendors []struct {
		ID            uint    `json:"id"`
		BusinessName  string  `json:"businessName"`
		TotalEarnings float64 `json:"totalEarnings"`
	} `json:"vendors"`
	Total int64 `json:"total"`
}

// Vendors with no paid invoices must still appear, with zero earnings, and
// the list must be ordered by earnings descending.
func TestVendorEarningsIncludesZeroEarners(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")

	customer := helpers.CreateUser(t, ts.DB, "client@example.com", "password123", "CUSTOMER")
	_, rich := helpers.CreateVendorWithProfile(t, ts.DB, "rich@example.com", "Rich Events")
	_, poor := helpers.CreateVendorWithProfile(t, ts.DB, "poor@example.com", "Poor Events")

	helpers.CreatePaidInvoice(t, ts.DB, rich.ID, customer.ID, "INV-001", 500000)
	helpers.CreatePaidInvoice(t, ts.DB, rich.ID, customer.ID, "INV-002", 250000)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/earnings/vendors", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list vendorEarningsBody
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Equal(t, int64(2), list.Total)
	require.Len(t, list.Vendors, 2)

	assert.Equal(t, "Rich Events", list.Vendors[0].BusinessName)
	assert.Equal(t, 750000.0, list.Vendors[0].TotalEarnings)
	assert.Equal(t, "Poor Events", list.Vendors[1].BusinessName)
	assert.Equal(t, 0.0, list.Vendors[1].TotalEarnings)
	_ = poor
}

func TestVendorEarningsSearch(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	helpers.CreateVendorWithProfile(t, ts.DB, "a@example.com", "Alpha Catering")
	helpers.CreateVendorWithProfile(t, ts.DB, "b@example.com", "Beta Sound")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/earnings/vendors?search=alpha", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list vendorEarningsBody
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Equal(t, int64(1), list.Total)
	assert.Equal(t, "Alpha Catering", list.Vendors[0].BusinessName)
}

func TestEarningsStats(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	customer := helpers.CreateUser(t, ts.DB, "client@example.com", "password123", "CUSTOMER")
	_, vendor := helpers.CreateVendorWithProfile(t, ts.DB, "vendor@example.com", "Stat Events")
	helpers.CreatePaidInvoice(t, ts.DB, vendor.ID, customer.ID, "INV-100", 300000)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/earnings/stats", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stats struct {
		TotalRevenue  float64 `json:"totalRevenue"`
		ActiveVendors int64   `json:"activeVendors"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	assert.Equal(t, 300000.0, stats.TotalRevenue)
	assert.Equal(t, int64(1), stats.ActiveVendors)
}
