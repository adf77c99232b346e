package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"eventbridge_admin/internal/app"
	"eventbridge_admin/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testJWTSecret = "integration-test-secret-0123456789"

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer connects to the database named by TEST_DATABASE_URL, runs
// migrations and starts an httptest server. Tests are skipped entirely when
// the variable is unset so the suite stays runnable without infrastructure.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", dsn, err)
	}

	if err := app.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.DSN = dsn
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.TTLHours = 7 * 24

	router := app.SetupRouter(db, cfg)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables resets every table between tests.
func (ts *TestServer) ClearTables(t *testing.T) {
	t.Helper()
	err := ts.DB.Exec(`TRUNCATE TABLE
		users, deleted_accounts, vendor_profiles, verification_documents,
		bookings, invoices, support_tickets, support_ticket_messages, flags,
		admin_settings, payment_settings, roles, audit_logs
		RESTART IDENTITY CASCADE`).Error
	if err != nil {
		t.Fatalf("failed to clear tables: %v", err)
	}
}

// SendRequest performs a JSON request against the test server and returns
// the response plus its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(data)
}
