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

func createTicket(t *testing.T, ts *helpers.TestServer, reporterID uint, subject string) *models.SupportTicket {
	t.Helper()
	ticket := &models.SupportTicket{
		Subject:        subject,
		ReporterID:     reporterID,
		InitialMessage: "Something is broken",
	}
	require.NoError(t, ts.DB.Create(ticket).Error)
	return ticket
}

func createFlag(t *testing.T, ts *helpers.TestServer, flaggerID uint, targetType string, targetID uint) *models.Flag {
	t.Helper()
	flag := &models.Flag{
		Content:    "offensive listing",
		Reason:     "inappropriate",
		FlaggerID:  flaggerID,
		TargetType: targetType,
		TargetID:   targetID,
	}
	require.NoError(t, ts.DB.Create(flag).Error)
	return flag
}

func TestTicketCreateSeedsThread(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	reporter := helpers.CreateUser(t, ts.DB, "reporter@example.com", "password123", models.AccountTypeCustomer)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/support/tickets", token, map[string]interface{}{
		"subject":        "Double charge",
		"reporterId":     reporter.ID,
		"initialMessage": "I was charged twice for one booking",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		Ticket struct {
			ID       uint   `json:"id"`
			Status   string `json:"status"`
			Priority string `json:"priority"`
			Messages []struct {
				SenderID uint   `json:"senderId"`
				Message  string `json:"message"`
			} `json:"messages"`
		} `json:"ticket"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "OPEN", created.Ticket.Status)
	assert.Equal(t, "MEDIUM", created.Ticket.Priority)
	require.Len(t, created.Ticket.Messages, 1)
	assert.Equal(t, reporter.ID, created.Ticket.Messages[0].SenderID)
	assert.Equal(t, "I was charged twice for one booking", created.Ticket.Messages[0].Message)
}

func TestTicketListFilters(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	reporter := helpers.CreateUser(t, ts.DB, "reporter@example.com", "password123", models.AccountTypeCustomer)

	open := createTicket(t, ts, reporter.ID, "Cannot log in")
	closed := createTicket(t, ts, reporter.ID, "Payment failed")
	require.NoError(t, ts.DB.Model(closed).Update("status", models.TicketStatusClosed).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/support/tickets?status=OPEN", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list struct {
		Tickets []struct {
			ID      uint   `json:"id"`
			Subject string `json:"subject"`
		} `json:"tickets"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Equal(t, int64(1), list.Total)
	assert.Equal(t, open.ID, list.Tickets[0].ID)

	// Search matches the subject.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/support/tickets?status=all&search=payment", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Equal(t, int64(1), list.Total)
	assert.Equal(t, "Payment failed", list.Tickets[0].Subject)
}

func TestTicketStatusAndReply(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	reporter := helpers.CreateUser(t, ts.DB, "reporter@example.com", "password123", models.AccountTypeCustomer)
	ticket := createTicket(t, ts, reporter.ID, "Refund request")

	res, body := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/support/tickets/%d/messages", ticket.ID), token, map[string]interface{}{
		"message": "We are looking into it",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var replied struct {
		Ticket struct {
			Messages []struct {
				Message     string `json:"message"`
				IsFromAdmin bool   `json:"isFromAdmin"`
			} `json:"messages"`
		} `json:"ticket"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &replied))
	require.Len(t, replied.Ticket.Messages, 1)
	assert.True(t, replied.Ticket.Messages[0].IsFromAdmin)

	res, body = ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/support/tickets/%d/status", ticket.ID), token, map[string]interface{}{
		"status": "CLOSED",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated models.SupportTicket
	require.NoError(t, ts.DB.First(&updated, ticket.ID).Error)
	assert.Equal(t, models.TicketStatusClosed, updated.Status)
}

func TestFlagDetailResolvesVendorTarget(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	flagger := helpers.CreateUser(t, ts.DB, "flagger@example.com", "password123", models.AccountTypeCustomer)
	_, profile := helpers.CreateVendorWithProfile(t, ts.DB, "flagged@example.com", "Flagged Ltd")
	flag := createFlag(t, ts, flagger.ID, "vendor", profile.ID)

	res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/support/flags/%d", flag.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var detail struct {
		Target *struct {
			Type         string `json:"type"`
			BusinessName string `json:"businessName"`
			OwnerEmail   string `json:"ownerEmail"`
		} `json:"target"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &detail))
	require.NotNil(t, detail.Target)
	assert.Equal(t, "vendor", detail.Target.Type)
	assert.Equal(t, "Flagged Ltd", detail.Target.BusinessName)
	assert.Equal(t, "flagged@example.com", detail.Target.OwnerEmail)
}

// An unknown target type is not an error: the flag comes back with a null
// target so moderators can still resolve it.
func TestFlagDetailUnknownTargetType(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	flagger := helpers.CreateUser(t, ts.DB, "flagger@example.com", "password123", models.AccountTypeCustomer)
	flag := createFlag(t, ts, flagger.ID, "event", 12345)

	res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/support/flags/%d", flag.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var detail struct {
		Flag struct {
			ID uint `json:"id"`
		} `json:"flag"`
		Target *struct{} `json:"target"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &detail))
	assert.Equal(t, flag.ID, detail.Flag.ID)
	assert.Nil(t, detail.Target)
}

func TestFlagCreateAndDelete(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	_, profile := helpers.CreateVendorWithProfile(t, ts.DB, "flagged@example.com", "Flagged Ltd")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/support/flags", token, map[string]interface{}{
		"content":    "misleading listing photos",
		"reason":     "misrepresentation",
		"targetType": "vendor",
		"targetId":   profile.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		Flag struct {
			ID     uint   `json:"id"`
			Status string `json:"status"`
		} `json:"flag"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "PENDING", created.Flag.Status)

	res, body = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/support/flags/%d", created.Flag.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var count int64
	require.NoError(t, ts.DB.Model(&models.Flag{}).Where("id = ?", created.Flag.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	res, body = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/support/flags/%d", created.Flag.ID), token, nil)
	require.Equal(t, http.StatusNotFound, res.StatusCode, body)
}

func TestFlagStatusUpdate(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, token := helpers.CreateAdmin(t, ts, "admin@example.com", "adminpass123")
	flagger := helpers.CreateUser(t, ts.DB, "flagger@example.com", "password123", models.AccountTypeCustomer)
	flag := createFlag(t, ts, flagger.ID, "vendor", 1)

	res, body := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/support/flags/%d/status", flag.ID), token, map[string]interface{}{
		"status": "RESOLVED",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated models.Flag
	require.NoError(t, ts.DB.First(&updated, flag.ID).Error)
	assert.Equal(t, models.FlagStatusResolved, updated.Status)
}
