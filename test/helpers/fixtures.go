package helpers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"eventbridge_admin/internal/auth"
	"eventbridge_admin/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateUser inserts a user with the given plaintext password hashed.
func CreateUser(t *testing.T, db *gorm.DB, email, password string, accountType models.AccountType) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		PasswordHash: &hash,
		FirstName:    "Test",
		LastName:     "User",
		AccountType:  accountType,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// LoginUser logs in through the API and returns the token.
func LoginUser(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+body)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)
	return loginResponse.Token
}

// CreateAdmin inserts an admin account and returns it with a live token.
func CreateAdmin(t *testing.T, ts *TestServer, email, password string) (*models.User, string) {
	t.Helper()
	admin := CreateUser(t, ts.DB, email, password, models.AccountTypeAdmin)
	token := LoginUser(t, ts, email, password)
	return admin, token
}

// CreateVendorWithProfile inserts a VENDOR user and its profile.
func CreateVendorWithProfile(t *testing.T, db *gorm.DB, email, businessName string) (*models.User, *models.VendorProfile) {
	t.Helper()

	user := CreateUser(t, db, email, "vendorpass123", models.AccountTypeVendor)
	profile := &models.VendorProfile{
		UserID:       user.ID,
		BusinessName: &businessName,
	}
	require.NoError(t, db.Create(profile).Error)
	return user, profile
}

// CreatePaidInvoice inserts a booking and a paid invoice for the vendor.
func CreatePaidInvoice(t *testing.T, db *gorm.DB, vendorID, clientID uint, number string, amount float64) {
	t.Helper()

	now := time.Now()
	booking := &models.Booking{
		EventID:     1,
		VendorID:    vendorID,
		ClientID:    clientID,
		BookingDate: now,
		StartTime:   now,
		EndTime:     now.Add(2 * time.Hour),
		Status:      "confirmed",
	}
	require.NoError(t, db.Create(booking).Error)

	invoice := &models.Invoice{
		VendorID:      vendorID,
		BookingID:     &booking.ID,
		ClientID:      clientID,
		InvoiceNumber: number,
		Amount:        amount,
		Currency:      "UGX",
		Status:        models.InvoiceStatusPaid,
		PaidAt:        &now,
	}
	require.NoError(t, db.Create(invoice).Error)
}

// CreateVerificationDocument inserts a pending review queue entry.
func CreateVerificationDocument(t *testing.T, db *gorm.DB, vendorID uint) *models.VerificationDocument {
	t.Helper()

	doc := &models.VerificationDocument{
		VendorID:     vendorID,
		DocumentType: "business_license",
		DocumentURL:  "https://files.example.com/license.pdf",
		DocumentName: "license.pdf",
		Status:       models.VerificationStatusPending,
	}
	require.NoError(t, db.Create(doc).Error)
	return doc
}
