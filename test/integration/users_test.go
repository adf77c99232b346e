package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"eventbridge_admin/internal/models"
	"eventbridge_admin/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userListBody struct {
	Users []struct {
		ID          uint   `json:"id"`
		Email       string `json:"email"`
		AccountType string `json:"accountType"`
		IsActive    bool   `json:"isActive"`
	} `json:"users"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func TestUserListPagination(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	for i := 0; i < 15; i++ {
		helpers.CreateUser(t, ts.DB, fmt.Sprintf("customer%02d@example.com", i), "password123", models.AccountTypeCustomer)
	}

	// Page zero, default limit of 10.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/users?role=CUSTOMER", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var page0 userListBody
	require.NoError(t, json.Unmarshal([]byte(body), &page0))
	assert.Len(t, page0.Users, 10)
	assert.Equal(t, int64(15), page0.Total)

	// Total must not change with the page requested.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/users?role=CUSTOMER&page=1", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var page1 userListBody
	require.NoError(t, json.Unmarshal([]byte(body), &page1))
	assert.Len(t, page1.Users, 5)
	assert.Equal(t, int64(15), page1.Total)
}

// The total must reflect the filtered set, not the whole table.
func TestUserListTotalRespectsFilters(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	helpers.CreateUser(t, ts.DB, "vendor1@example.com", "password123", models.AccountTypeVendor)
	helpers.CreateUser(t, ts.DB, "vendor2@example.com", "password123", models.AccountTypeVendor)
	helpers.CreateUser(t, ts.DB, "customer1@example.com", "password123", models.AccountTypeCustomer)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/users?role=VENDOR", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var vendors userListBody
	require.NoError(t, json.Unmarshal([]byte(body), &vendors))
	assert.Equal(t, int64(2), vendors.Total)

	// The "all" sentinel behaves like no filter.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/users?role=all", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var everyone userListBody
	require.NoError(t, json.Unmarshal([]byte(body), &everyone))
	assert.Equal(t, int64(4), everyone.Total)
}

func TestUserListSearch(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	helpers.CreateUser(t, ts.DB, "alice.smith@example.com", "password123", models.AccountTypeCustomer)
	helpers.CreateUser(t, ts.DB, "bob.jones@example.com", "password123", models.AccountTypeCustomer)

	// Search is case-insensitive substring over email and names.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/users?search=ALICE", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var found userListBody
	require.NoError(t, json.Unmarshal([]byte(body), &found))
	require.Equal(t, int64(1), found.Total)
	assert.Equal(t, "alice.smith@example.com", found.Users[0].Email)
}

func TestUserStatusPatch(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	target := helpers.CreateUser(t, ts.DB, "target@example.com", "password123", models.AccountTypeCustomer)

	res, body := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/users/%d/status", target.ID), token, map[string]interface{}{
		"isActive": false,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated models.User
	require.NoError(t, ts.DB.First(&updated, target.ID).Error)
	assert.False(t, updated.IsActive)
}

func TestUserStatusUnknownID(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")

	res, body := ts.SendRequest(t, http.MethodPatch, "/api/users/999999/status", token, map[string]interface{}{
		"isActive": false,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}

// Delete must tombstone and deactivate, never remove the row.
func TestUserDeleteIsSoft(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	target := helpers.CreateUser(t, ts.DB, "doomed@example.com", "password123", models.AccountTypeCustomer)

	res, body := ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", target.ID), token, map[string]interface{}{
		"reason": "spam",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var still models.User
	require.NoError(t, ts.DB.First(&still, target.ID).Error)
	assert.False(t, still.IsActive)

	var tombstone models.DeletedAccount
	require.NoError(t, ts.DB.Where("user_id = ?", target.ID).First(&tombstone).Error)
	assert.Equal(t, "doomed@example.com", tombstone.Email)
	assert.Equal(t, "spam", tombstone.Reason)
}

func TestUserGetWithProfile(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	vendor, _ := helpers.CreateVendorWithProfile(t, ts.DB, "shop@example.com", "Shop Ltd")

	res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/users/%d", vendor.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var detail struct {
		User struct {
			Email         string `json:"email"`
			VendorProfile *struct {
				BusinessName string `json:"businessName"`
			} `json:"vendorProfile"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &detail))
	require.NotNil(t, detail.User.VendorProfile)
	assert.Equal(t, "Shop Ltd", detail.User.VendorProfile.BusinessName)
}
