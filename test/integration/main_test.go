package integration_test

import (
	"os"
	"sync"
	"testing"

	"localink_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, creating it on first use.
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		globalTestServer = helpers.NewTestServer(t)
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}

	os.Exit(code)
}
