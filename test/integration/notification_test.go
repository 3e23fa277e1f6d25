package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"localink_backend/internal/models"
	"localink_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNotification(t *testing.T, ts *helpers.TestServer, recipientID string, recipientType models.RecipientType, createdAt time.Time, read bool) *models.Notification {
	n := &models.Notification{
		RecipientID:   recipientID,
		RecipientType: recipientType,
		Type:          models.NotificationTypeFavorite,
		Message:       fmt.Sprintf("seeded at %s", createdAt.Format(time.RFC3339)),
		IsRead:        read,
	}
	require.NoError(t, ts.DB.Create(n).Error)
	// BaseModel stamps CreatedAt on insert; pin it for ordering checks.
	require.NoError(t, ts.DB.Model(n).Update("created_at", createdAt).Error)
	n.CreatedAt = createdAt
	return n
}

func TestNotificationsNewestFirst(t *testing.T) {
	ts := GetTestServer(t)

	_, explorer := helpers.CreateAndLoginExplorer(t, ts)

	base := time.Now().Add(-time.Hour)
	oldest := seedNotification(t, ts, explorer.ID, models.RecipientExplorer, base, false)
	middle := seedNotification(t, ts, explorer.ID, models.RecipientExplorer, base.Add(10*time.Minute), false)
	newest := seedNotification(t, ts, explorer.ID, models.RecipientExplorer, base.Add(20*time.Minute), false)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/notifications/user/"+explorer.ID+"?userType=explorer", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var list []struct {
		ID string `json:"idnotif"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	require.Len(t, list, 3)
	assert.Equal(t, newest.ID, list[0].ID)
	assert.Equal(t, middle.ID, list[1].ID)
	assert.Equal(t, oldest.ID, list[2].ID)
}

func TestNotificationsFilteredByRecipientType(t *testing.T) {
	ts := GetTestServer(t)

	_, explorer := helpers.CreateAndLoginExplorer(t, ts)

	// Same recipient id, different audience type. Only the explorer-typed
	// record may come back.
	now := time.Now()
	mine := seedNotification(t, ts, explorer.ID, models.RecipientExplorer, now, false)
	seedNotification(t, ts, explorer.ID, models.RecipientBusiness, now, false)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/notifications/user/"+explorer.ID+"?userType=explorer", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var list []struct {
		ID string `json:"idnotif"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)
}

func TestNotificationsRequireValidUserType(t *testing.T) {
	ts := GetTestServer(t)

	_, explorer := helpers.CreateAndLoginExplorer(t, ts)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/notifications/user/"+explorer.ID, "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/notifications/user/"+explorer.ID+"?userType=alien", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

func TestMarkAsReadIsIdempotent(t *testing.T) {
	ts := GetTestServer(t)

	_, explorer := helpers.CreateAndLoginExplorer(t, ts)
	n := seedNotification(t, ts, explorer.ID, models.RecipientExplorer, time.Now(), false)

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/notifications/"+n.ID+"/read", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var stored models.Notification
	require.NoError(t, ts.DB.First(&stored, "id = ?", n.ID).Error)
	assert.True(t, stored.IsRead)

	// Second call succeeds and nothing flips back.
	res, bodyStr = ts.SendRequest(t, http.MethodPut, "/notifications/"+n.ID+"/read", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	require.NoError(t, ts.DB.First(&stored, "id = ?", n.ID).Error)
	assert.True(t, stored.IsRead)
}

func TestMarkAsReadUnknownID(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/notifications/does-not-exist/read", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)
	helpers.AssertErrorMessage(t, bodyStr)
}

func TestUnreadCount(t *testing.T) {
	ts := GetTestServer(t)

	_, explorer := helpers.CreateAndLoginExplorer(t, ts)

	now := time.Now()
	seedNotification(t, ts, explorer.ID, models.RecipientExplorer, now, false)
	seedNotification(t, ts, explorer.ID, models.RecipientExplorer, now, false)
	read := seedNotification(t, ts, explorer.ID, models.RecipientExplorer, now, true)
	_ = read

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/notifications/user/"+explorer.ID+"/unread-count?userType=explorer", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var count struct {
		UnreadCount int64 `json:"unread_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &count))
	assert.EqualValues(t, 2, count.UnreadCount)
}
