package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"localink_backend/database"
	"localink_backend/internal/app"
	"localink_backend/internal/config"
	"localink_backend/internal/logger"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbCounter int64

// TestServer wires the full router against an in-memory database and a fake
// payment gateway.
type TestServer struct {
	Server  *httptest.Server
	DB      *gorm.DB
	Gateway *FakeGateway
}

func NewTestServer(t *testing.T) *TestServer {
	os.Setenv("DATABASE_URL", "file::memory:")
	os.Setenv("SERVER_ENV", "test")
	os.Setenv("JWT_SECRET", "test_secret_key_1234567890")
	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	// Each server gets its own named in-memory database. cache=shared keeps
	// every pooled connection on the same database.
	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	gateway := NewFakeGateway()
	router := app.SetupRouter(cfg, db, gateway)
	server := httptest.NewServer(router)

	return &TestServer{
		Server:  server,
		DB:      db,
		Gateway: gateway,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables wipes every table between tests.
func (ts *TestServer) ClearTables() {
	tables := []string{
		"chat_messages", "payments", "notifications", "event_join_requests",
		"events", "favorites", "ratings", "posts", "businesses", "admins", "explorers",
	}
	for _, table := range tables {
		if err := ts.DB.Exec("DELETE FROM " + table).Error; err != nil {
			panic(fmt.Sprintf("Failed to clear table %s: %v", table, err))
		}
	}
}

// SendRequest issues an HTTP request against the test server and returns the
// response together with its body.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Failed to build HTTP request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Failed to send HTTP request: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
