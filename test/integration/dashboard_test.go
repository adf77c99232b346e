package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"eventbridge_admin/internal/models"
	"eventbridge_admin/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	helpers.CreateUser(t, ts.DB, "c1@example.com", "password123", models.AccountTypeCustomer)
	helpers.CreateUser(t, ts.DB, "c2@example.com", "password123", models.AccountTypeCustomer)
	_, profile := helpers.CreateVendorWithProfile(t, ts.DB, "v1@example.com", "Vendor One")
	helpers.CreateVerificationDocument(t, ts.DB, profile.ID)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stats struct {
		TotalUsers           int64 `json:"totalUsers"`
		TotalVendors         int64 `json:"totalVendors"`
		TotalCustomers       int64 `json:"totalCustomers"`
		PendingVerifications int64 `json:"pendingVerifications"`
		OpenTickets          int64 `json:"openTickets"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	assert.Equal(t, int64(4), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalVendors)
	assert.Equal(t, int64(2), stats.TotalCustomers)
	assert.Equal(t, int64(1), stats.PendingVerifications)
	assert.Equal(t, int64(0), stats.OpenTickets)
}

func TestDashboardGrowthSeries(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	helpers.CreateUser(t, ts.DB, "v@example.com", "password123", models.AccountTypeVendor)
	helpers.CreateUser(t, ts.DB, "c@example.com", "password123", models.AccountTypeCustomer)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/dashboard/growth", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var growth struct {
		Growth []struct {
			Month   string `json:"month"`
			Vendors int64  `json:"vendors"`
			Users   int64  `json:"users"`
		} `json:"growth"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &growth))
	// All fixtures were created just now, so there is exactly one bucket.
	require.Len(t, growth.Growth, 1)
	assert.Equal(t, int64(1), growth.Growth[0].Vendors)
	assert.Equal(t, int64(1), growth.Growth[0].Users)
}

func TestDashboardVerificationBreakdown(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	_, profile := helpers.CreateVendorWithProfile(t, ts.DB, "v1@example.com", "Widget Vendor")
	helpers.CreateVerificationDocument(t, ts.DB, profile.ID)
	approved := helpers.CreateVerificationDocument(t, ts.DB, profile.ID)
	require.NoError(t, ts.DB.Model(approved).Update("status", models.VerificationStatusApproved).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/dashboard/verifications", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var breakdown struct {
		Verified int64 `json:"verified"`
		Pending  int64 `json:"pending"`
		Rejected int64 `json:"rejected"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &breakdown))
	assert.Equal(t, int64(1), breakdown.Verified)
	assert.Equal(t, int64(1), breakdown.Pending)
	assert.Equal(t, int64(0), breakdown.Rejected)
}

func TestHealthEndpointIsPublic(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var health struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "ok", health.Status)
	assert.NotEmpty(t, health.Timestamp)
}
