package integration_test

import (
	"sync"
	"testing"

	"eventbridge_admin/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, creating it on first use.
// Each test is expected to call ClearTables before seeding its own data.
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		globalTestServer = helpers.NewTestServer(t)
	})
	if globalTestServer == nil {
		t.Skip("TEST_DATABASE_URL not set, skipping integration tests")
	}
	return globalTestServer
}
