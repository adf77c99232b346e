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

// The settings row is a singleton: reads before any write return defaults,
// and repeating the same update leaves exactly one row with the same values.
func TestGeneralSettingsUpsertIdempotent(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/settings/general", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var initial struct {
		Settings struct {
			SiteName string `json:"siteName"`
		} `json:"settings"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &initial))
	assert.Equal(t, "Event Bridge", initial.Settings.SiteName)

	payload := map[string]interface{}{
		"siteName": "Event Bridge Admin",
		"timezone": "Africa/Nairobi",
	}
	for i := 0; i < 2; i++ {
		res, body = ts.SendRequest(t, http.MethodPut, "/api/settings/general", token, payload)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
	}

	var count int64
	require.NoError(t, ts.DB.Model(&models.AdminSettings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var row models.AdminSettings
	require.NoError(t, ts.DB.First(&row).Error)
	assert.Equal(t, "Event Bridge Admin", row.SiteName)
	assert.Equal(t, "Africa/Nairobi", row.Timezone)
}

func TestPaymentSettingsUpsert(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")

	res, body := ts.SendRequest(t, http.MethodPut, "/api/settings/payments", token, map[string]interface{}{
		"platformFeePercentage": 12.5,
		"payoutSchedule":        "monthly",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var row models.PaymentSettings
	require.NoError(t, ts.DB.First(&row).Error)
	assert.Equal(t, 12.5, row.PlatformFeePercentage)
	assert.Equal(t, "monthly", row.PayoutSchedule)
	// Untouched fields keep their defaults.
	assert.Equal(t, "UGX", row.Currency)
}

func TestTeamListAndUpdate(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	second := helpers.CreateUser(t, ts.DB, "second-admin@example.com", "password123", models.AccountTypeAdmin)
	helpers.CreateUser(t, ts.DB, "not-admin@example.com", "password123", models.AccountTypeCustomer)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/settings/team", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var team struct {
		Team []struct {
			Email string `json:"email"`
		} `json:"team"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &team))
	assert.Len(t, team.Team, 2)

	res, body = ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/settings/team/%d", second.ID), token, map[string]interface{}{
		"isActive": false,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated models.User
	require.NoError(t, ts.DB.First(&updated, second.ID).Error)
	assert.False(t, updated.IsActive)
}

func TestRoleLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/settings/roles", token, map[string]interface{}{
		"name":        "moderator",
		"displayName": "Moderator",
		"level":       3,
		"permissions": []string{"tickets.read", "tickets.write"},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		Role struct {
			ID uint `json:"id"`
		} `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	// Duplicate name conflicts.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/settings/roles", token, map[string]interface{}{
		"name":        "moderator",
		"displayName": "Moderator Again",
		"level":       2,
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/settings/roles/%d", created.Role.ID), token, map[string]interface{}{
		"displayName": "Senior Moderator",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// A body with no fields is a no-op, not a 404.
	res, body = ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/settings/roles/%d", created.Role.ID), token, map[string]interface{}{})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var noop struct {
		Role struct {
			DisplayName string `json:"displayName"`
		} `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &noop))
	assert.Equal(t, "Senior Moderator", noop.Role.DisplayName)

	res, body = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/settings/roles/%d", created.Role.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var count int64
	require.NoError(t, ts.DB.Model(&models.Role{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSystemRoleProtected(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	role := &models.Role{
		Name:        "super_admin",
		DisplayName: "Super Admin",
		Level:       100,
		IsSystem:    true,
		IsActive:    true,
	}
	require.NoError(t, ts.DB.Create(role).Error)

	res, body := ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/settings/roles/%d", role.ID), token, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/settings/roles/%d", role.ID), token, map[string]interface{}{
		"level": 1,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

// Every admin mutation leaves an audit entry, and the log endpoint filters
// by action.
func TestAuditTrailRecordsMutations(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	admin, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	target := helpers.CreateUser(t, ts.DB, "target@example.com", "password123", models.AccountTypeCustomer)

	res, body := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/users/%d/status", target.ID), token, map[string]interface{}{
		"isActive": false,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/settings/audit-logs?action=users.set_status", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var logs struct {
		Logs []struct {
			Action   string `json:"action"`
			UserID   *uint  `json:"userId"`
			EntityID *uint  `json:"entityId"`
		} `json:"logs"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &logs))
	require.Equal(t, int64(1), logs.Total)
	assert.Equal(t, "users.set_status", logs.Logs[0].Action)
	require.NotNil(t, logs.Logs[0].UserID)
	assert.Equal(t, admin.ID, *logs.Logs[0].UserID)
	require.NotNil(t, logs.Logs[0].EntityID)
	assert.Equal(t, target.ID, *logs.Logs[0].EntityID)
}
