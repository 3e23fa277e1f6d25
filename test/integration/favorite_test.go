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

func TestAddFavoriteAndList(t *testing.T) {
	ts := GetTestServer(t)

	_, business := helpers.CreateAndLoginBusiness(t, ts)
	post := helpers.CreatePost(t, ts.DB, &business.ID, nil, "Favorite target")
	_, explorer := helpers.CreateAndLoginExplorer(t, ts)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/favorites/"+explorer.ID+"/"+post.ID, "", nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/favorites/"+explorer.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var posts []struct {
		ID string `json:"idposts"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)
}

func TestAddFavoriteTwiceConflicts(t *testing.T) {
	ts := GetTestServer(t)

	_, business := helpers.CreateAndLoginBusiness(t, ts)
	post := helpers.CreatePost(t, ts.DB, &business.ID, nil, "Twice favorited")
	_, explorer := helpers.CreateAndLoginExplorer(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/favorites/"+explorer.ID+"/"+post.ID, "", nil)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/favorites/"+explorer.ID+"/"+post.ID, "", nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)
}

func TestAddFavoriteNotifiesOwner(t *testing.T) {
	ts := GetTestServer(t)

	_, business := helpers.CreateAndLoginBusiness(t, ts)
	post := helpers.CreatePost(t, ts.DB, &business.ID, nil, "Noticed post")
	_, explorer := helpers.CreateAndLoginExplorer(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/favorites/"+explorer.ID+"/"+post.ID, "", nil)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var notification models.Notification
	err := ts.DB.Where("recipient_id = ? AND type = ?", business.ID, models.NotificationTypeFavorite).
		First(&notification).Error
	require.NoError(t, err)
	assert.Equal(t, models.RecipientBusiness, notification.RecipientType)
	require.NotNil(t, notification.SenderID)
	assert.Equal(t, explorer.ID, *notification.SenderID)
}

func TestRemoveFavorite(t *testing.T) {
	ts := GetTestServer(t)

	_, business := helpers.CreateAndLoginBusiness(t, ts)
	post := helpers.CreatePost(t, ts.DB, &business.ID, nil, "Unfavorited post")
	_, explorer := helpers.CreateAndLoginExplorer(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/favorites/"+explorer.ID+"/"+post.ID, "", nil)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodDelete, "/favorites/"+explorer.ID+"/"+post.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var count int64
	ts.DB.Model(&models.Favorite{}).
		Where("explorer_id = ? AND post_id = ?", explorer.ID, post.ID).
		Count(&count)
	assert.Zero(t, count)

	// Removing again misses.
	res, bodyStr = ts.SendRequest(t, http.MethodDelete, "/favorites/"+explorer.ID+"/"+post.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)
}
