package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"localink_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var uniqCounter int64

// UniqueEmail returns an address no other fixture in the run has used.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d_%d@test.com", prefix, time.Now().UnixNano(), atomic.AddInt64(&uniqCounter, 1))
}

type signupResult struct {
	AccessToken string          `json:"access_token"`
	Role        string          `json:"role"`
	User        json.RawMessage `json:"user"`
}

// CreateAndLoginExplorer signs up a fresh explorer through the API and
// returns the token plus the persisted row.
func CreateAndLoginExplorer(t *testing.T, ts *TestServer) (string, *models.Explorer) {
	email := UniqueEmail("explorer")
	body := map[string]interface{}{
		"role":      "explorer",
		"username":  fmt.Sprintf("explorer_%d", atomic.AddInt64(&uniqCounter, 1)),
		"email":     email,
		"password":  "password123",
		"firstname": "Test",
		"lastname":  "Explorer",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/signup", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Explorer signup should succeed. Response: "+bodyStr)

	var signup signupResult
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &signup))
	require.NotEmpty(t, signup.AccessToken)

	var explorer models.Explorer
	require.NoError(t, ts.DB.Where("email = ?", email).First(&explorer).Error)

	return signup.AccessToken, &explorer
}

// CreateAndLoginBusiness signs up a business through the API. The account
// starts unapproved; flip Approved directly when a test needs an active one.
func CreateAndLoginBusiness(t *testing.T, ts *TestServer) (string, *models.Business) {
	email := UniqueEmail("business")
	body := map[string]interface{}{
		"role":         "business_owner",
		"username":     fmt.Sprintf("business_%d", atomic.AddInt64(&uniqCounter, 1)),
		"email":        email,
		"password":     "password123",
		"businessName": "Test Cafe",
		"BOid":         "BO-1234",
		"category":     "Coffee Shop",
		"credImg":      "https://example.com/cred.jpg",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/signup", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Business signup should succeed. Response: "+bodyStr)

	var signup signupResult
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &signup))
	require.NotEmpty(t, signup.AccessToken)

	var business models.Business
	require.NoError(t, ts.DB.Where("email = ?", email).First(&business).Error)

	return signup.AccessToken, &business
}

// ApproveBusiness flips the approval flag directly in the database.
func ApproveBusiness(t *testing.T, db *gorm.DB, businessID string) {
	err := db.Model(&models.Business{}).Where("id = ?", businessID).Update("approved", true).Error
	require.NoError(t, err)
}

// CreateAndLoginAdmin seeds an admin row and logs it in through the API.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer) string {
	email := UniqueEmail("admin")
	password := "admin_password_123"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	admin := &models.Admin{Email: email, PasswordHash: string(hash)}
	require.NoError(t, ts.DB.Create(admin).Error)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
		"role":     "admin",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Admin login should succeed. Response: "+bodyStr)

	var login signupResult
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &login))
	require.NotEmpty(t, login.AccessToken)

	return login.AccessToken
}

// CreatePost inserts a post row owned by a business or an explorer.
func CreatePost(t *testing.T, db *gorm.DB, businessID, explorerID *string, title string) *models.Post {
	post := &models.Post{
		BusinessID:  businessID,
		ExplorerID:  explorerID,
		Title:       title,
		Category:    "Coffee Shop",
		Location:    "Downtown",
		Image1:      "https://example.com/1.jpg",
		Description: "A test post",
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

// CreateEvent inserts an event row organized by an explorer.
func CreateEvent(t *testing.T, db *gorm.DB, organizerExplorerID string, name string) *models.Event {
	event := &models.Event{
		ExplorerID:  &organizerExplorerID,
		Name:        name,
		Description: "A test event",
		Location:    "City Park",
		StartDate:   time.Now().Add(48 * time.Hour),
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

// AssertErrorMessage checks the wire error shape: a flat string under "error".
func AssertErrorMessage(t *testing.T, bodyStr string) string {
	var payload struct {
		Error string `json:"error"`
	}
	err := json.Unmarshal([]byte(bodyStr), &payload)
	assert.NoError(t, err, "Error body should be valid JSON: "+bodyStr)
	assert.NotEmpty(t, payload.Error, "Error body should carry a message: "+bodyStr)
	return payload.Error
}
