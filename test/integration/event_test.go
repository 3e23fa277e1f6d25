package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"localink_backend/internal/models"
	"localink_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEvent(t *testing.T) {
	ts := GetTestServer(t)

	token, explorer := helpers.CreateAndLoginExplorer(t, ts)

	body := map[string]interface{}{
		"eventName":     "Sunrise hike",
		"description":   "Meet at the north trailhead",
		"eventLocation": "Eagle Peak",
		"startDate":     time.Now().Add(72 * time.Hour).Format(time.RFC3339),
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/events/create", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var event struct {
		ID         string  `json:"idevents"`
		ExplorerID *string `json:"explorer_idexplorer"`
		Name       string  `json:"eventName"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &event))
	assert.NotEmpty(t, event.ID)
	require.NotNil(t, event.ExplorerID)
	assert.Equal(t, explorer.ID, *event.ExplorerID)
	assert.Equal(t, "Sunrise hike", event.Name)
}

func TestGetAllEvents(t *testing.T) {
	ts := GetTestServer(t)

	_, organizer := helpers.CreateAndLoginExplorer(t, ts)
	event := helpers.CreateEvent(t, ts.DB, organizer.ID, "Listed event")

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/events/getAll", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var events []struct {
		ID string `json:"idevents"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &events))

	found := false
	for _, e := range events {
		if e.ID == event.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGetUserEvents(t *testing.T) {
	ts := GetTestServer(t)

	_, organizer := helpers.CreateAndLoginExplorer(t, ts)
	_, other := helpers.CreateAndLoginExplorer(t, ts)
	mine := helpers.CreateEvent(t, ts.DB, organizer.ID, "My event")
	helpers.CreateEvent(t, ts.DB, other.ID, "Someone else's event")

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/events/user/"+organizer.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var events []struct {
		ID string `json:"idevents"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &events))
	require.Len(t, events, 1)
	assert.Equal(t, mine.ID, events[0].ID)
}

func TestJoinEvent(t *testing.T) {
	ts := GetTestServer(t)

	_, organizer := helpers.CreateAndLoginExplorer(t, ts)
	event := helpers.CreateEvent(t, ts.DB, organizer.ID, "Joinable event")
	_, joiner := helpers.CreateAndLoginExplorer(t, ts)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/events/join", "", map[string]interface{}{
		"idevents":            event.ID,
		"explorer_idexplorer": joiner.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var request models.EventJoinRequest
	err := ts.DB.Where("event_id = ? AND explorer_id = ?", event.ID, joiner.ID).First(&request).Error
	require.NoError(t, err)
	assert.Equal(t, models.JoinRequestPending, request.Status)

	// The organizer gets notified.
	var notification models.Notification
	err = ts.DB.Where("recipient_id = ? AND type = ?", organizer.ID, models.NotificationTypeEventJoin).
		First(&notification).Error
	require.NoError(t, err)
	assert.Equal(t, models.RecipientExplorer, notification.RecipientType)
}

func TestJoinEventTwiceConflicts(t *testing.T) {
	ts := GetTestServer(t)

	_, organizer := helpers.CreateAndLoginExplorer(t, ts)
	event := helpers.CreateEvent(t, ts.DB, organizer.ID, "Popular event")
	_, joiner := helpers.CreateAndLoginExplorer(t, ts)

	body := map[string]interface{}{
		"idevents":            event.ID,
		"explorer_idexplorer": joiner.ID,
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/events/join", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/events/join", "", body)
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)
	helpers.AssertErrorMessage(t, bodyStr)
}

func TestJoinUnknownEventOrExplorer(t *testing.T) {
	ts := GetTestServer(t)

	_, explorer := helpers.CreateAndLoginExplorer(t, ts)
	_, organizer := helpers.CreateAndLoginExplorer(t, ts)
	event := helpers.CreateEvent(t, ts.DB, organizer.ID, "Checked event")

	res, _ := ts.SendRequest(t, http.MethodPost, "/events/join", "", map[string]interface{}{
		"idevents":            "missing-event",
		"explorer_idexplorer": explorer.ID,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/events/join", "", map[string]interface{}{
		"idevents":            event.ID,
		"explorer_idexplorer": "missing-explorer",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUpdateEventOrganizerOnly(t *testing.T) {
	ts := GetTestServer(t)

	token, organizer := helpers.CreateAndLoginExplorer(t, ts)
	otherToken, _ := helpers.CreateAndLoginExplorer(t, ts)
	event := helpers.CreateEvent(t, ts.DB, organizer.ID, "Editable event")

	body := map[string]interface{}{
		"eventName":     "Renamed event",
		"eventLocation": "New spot",
		"startDate":     time.Now().Add(96 * time.Hour).Format(time.RFC3339),
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/events/"+event.ID+"/edit", otherToken, body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodPut, "/events/"+event.ID+"/edit", token, body)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var stored models.Event
	require.NoError(t, ts.DB.First(&stored, "id = ?", event.ID).Error)
	assert.Equal(t, "Renamed event", stored.Name)
	assert.Equal(t, "New spot", stored.Location)
}

func TestRespondToJoinRequest(t *testing.T) {
	ts := GetTestServer(t)

	token, organizer := helpers.CreateAndLoginExplorer(t, ts)
	event := helpers.CreateEvent(t, ts.DB, organizer.ID, "Curated event")
	_, joiner := helpers.CreateAndLoginExplorer(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/events/join", "", map[string]interface{}{
		"idevents":            event.ID,
		"explorer_idexplorer": joiner.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/events/"+event.ID+"/respond", token, map[string]interface{}{
		"explorer_idexplorer": joiner.ID,
		"status":              "accepted",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var request models.EventJoinRequest
	err := ts.DB.Where("event_id = ? AND explorer_id = ?", event.ID, joiner.ID).First(&request).Error
	require.NoError(t, err)
	assert.Equal(t, models.JoinRequestAccepted, request.Status)

	res, bodyStr = ts.SendRequest(t, http.MethodPut, "/events/"+event.ID+"/respond", token, map[string]interface{}{
		"explorer_idexplorer": joiner.ID,
		"status":              "declined",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	require.NoError(t, ts.DB.Where("event_id = ? AND explorer_id = ?", event.ID, joiner.ID).First(&request).Error)
	assert.Equal(t, models.JoinRequestDeclined, request.Status)
}

func TestRespondToJoinRequestOrganizerOnly(t *testing.T) {
	ts := GetTestServer(t)

	_, organizer := helpers.CreateAndLoginExplorer(t, ts)
	otherToken, _ := helpers.CreateAndLoginExplorer(t, ts)
	event := helpers.CreateEvent(t, ts.DB, organizer.ID, "Guarded event")
	_, joiner := helpers.CreateAndLoginExplorer(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/events/join", "", map[string]interface{}{
		"idevents":            event.ID,
		"explorer_idexplorer": joiner.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/events/"+event.ID+"/respond", otherToken, map[string]interface{}{
		"explorer_idexplorer": joiner.ID,
		"status":              "accepted",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)
	helpers.AssertErrorMessage(t, bodyStr)

	var request models.EventJoinRequest
	require.NoError(t, ts.DB.Where("event_id = ? AND explorer_id = ?", event.ID, joiner.ID).First(&request).Error)
	assert.Equal(t, models.JoinRequestPending, request.Status)
}

func TestRespondToJoinRequestValidation(t *testing.T) {
	ts := GetTestServer(t)

	token, organizer := helpers.CreateAndLoginExplorer(t, ts)
	event := helpers.CreateEvent(t, ts.DB, organizer.ID, "Strict event")
	_, joiner := helpers.CreateAndLoginExplorer(t, ts)

	// Unknown event.
	res, _ := ts.SendRequest(t, http.MethodPut, "/events/missing-event/respond", token, map[string]interface{}{
		"explorer_idexplorer": joiner.ID,
		"status":              "accepted",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// No join request from this explorer.
	res, _ = ts.SendRequest(t, http.MethodPut, "/events/"+event.ID+"/respond", token, map[string]interface{}{
		"explorer_idexplorer": joiner.ID,
		"status":              "accepted",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Status outside accepted/declined.
	res, _ = ts.SendRequest(t, http.MethodPut, "/events/"+event.ID+"/respond", token, map[string]interface{}{
		"explorer_idexplorer": joiner.ID,
		"status":              "maybe",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestDeleteEventRemovesJoinRequests(t *testing.T) {
	ts := GetTestServer(t)

	token, organizer := helpers.CreateAndLoginExplorer(t, ts)
	event := helpers.CreateEvent(t, ts.DB, organizer.ID, "Doomed event")
	_, joiner := helpers.CreateAndLoginExplorer(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/events/join", "", map[string]interface{}{
		"idevents":            event.ID,
		"explorer_idexplorer": joiner.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodDelete, "/events/"+event.ID+"/del", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var eventCount, requestCount int64
	ts.DB.Model(&models.Event{}).Where("id = ?", event.ID).Count(&eventCount)
	ts.DB.Model(&models.EventJoinRequest{}).Where("event_id = ?", event.ID).Count(&requestCount)
	assert.Zero(t, eventCount)
	assert.Zero(t, requestCount)
}
