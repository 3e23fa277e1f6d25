package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"localink_backend/internal/models"
	"localink_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageAndReadConversation(t *testing.T) {
	ts := GetTestServer(t)

	explorerToken, explorer := helpers.CreateAndLoginExplorer(t, ts)
	businessToken, business := helpers.CreateAndLoginBusiness(t, ts)
	helpers.ApproveBusiness(t, ts.DB, business.ID)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/chat/send", explorerToken, map[string]interface{}{
		"explorer_idexplorer": explorer.ID,
		"business_idbusiness": business.ID,
		"content":             "Are you open on Sundays?",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/chat/send", businessToken, map[string]interface{}{
		"explorer_idexplorer": explorer.ID,
		"business_idbusiness": business.ID,
		"content":             "Yes, from 9 to 5.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	path := "/chat/conversation/" + explorer.ID + "/" + business.ID
	res, bodyStr = ts.SendRequest(t, http.MethodGet, path, explorerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var messages []struct {
		Sender  string `json:"sender"`
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &messages))
	require.Len(t, messages, 2)
	// Oldest first.
	assert.Equal(t, "explorer", messages[0].Sender)
	assert.Equal(t, "Are you open on Sundays?", messages[0].Content)
	assert.Equal(t, "business", messages[1].Sender)
}

func TestSendMessageForAnotherUserForbidden(t *testing.T) {
	ts := GetTestServer(t)

	explorerToken, _ := helpers.CreateAndLoginExplorer(t, ts)
	_, otherExplorer := helpers.CreateAndLoginExplorer(t, ts)
	_, business := helpers.CreateAndLoginBusiness(t, ts)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/chat/send", explorerToken, map[string]interface{}{
		"explorer_idexplorer": otherExplorer.ID,
		"business_idbusiness": business.ID,
		"content":             "Impersonation attempt",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)
}

func TestConversationParticipantsOnly(t *testing.T) {
	ts := GetTestServer(t)

	explorerToken, explorer := helpers.CreateAndLoginExplorer(t, ts)
	outsiderToken, _ := helpers.CreateAndLoginExplorer(t, ts)
	_, business := helpers.CreateAndLoginBusiness(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/chat/send", explorerToken, map[string]interface{}{
		"explorer_idexplorer": explorer.ID,
		"business_idbusiness": business.ID,
		"content":             "Private note",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	path := "/chat/conversation/" + explorer.ID + "/" + business.ID
	res, bodyStr := ts.SendRequest(t, http.MethodGet, path, outsiderToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)
}

func TestConversationMarksMessagesSeen(t *testing.T) {
	ts := GetTestServer(t)

	explorerToken, explorer := helpers.CreateAndLoginExplorer(t, ts)
	businessToken, business := helpers.CreateAndLoginBusiness(t, ts)
	helpers.ApproveBusiness(t, ts.DB, business.ID)

	res, _ := ts.SendRequest(t, http.MethodPost, "/chat/send", explorerToken, map[string]interface{}{
		"explorer_idexplorer": explorer.ID,
		"business_idbusiness": business.ID,
		"content":             "Hello there",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	// The business opening the conversation stamps the explorer's message.
	path := "/chat/conversation/" + explorer.ID + "/" + business.ID
	res, _ = ts.SendRequest(t, http.MethodGet, path, businessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var message models.ChatMessage
	require.NoError(t, ts.DB.Where("explorer_id = ? AND business_id = ?", explorer.ID, business.ID).First(&message).Error)
	assert.NotNil(t, message.SeenAt)
}
