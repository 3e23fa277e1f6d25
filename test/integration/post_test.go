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

func TestCreatePostAsBusiness(t *testing.T) {
	ts := GetTestServer(t)

	token, business := helpers.CreateAndLoginBusiness(t, ts)
	helpers.ApproveBusiness(t, ts.DB, business.ID)

	body := map[string]interface{}{
		"title":       "Morning roast",
		"category":    "Coffee Shop",
		"location":    "Old Town",
		"image1":      "https://example.com/roast.jpg",
		"description": "Single origin, open from 7am",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/posts/create", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var post struct {
		ID         string  `json:"idposts"`
		BusinessID *string `json:"business_idbusiness"`
		Title      string  `json:"title"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &post))
	assert.NotEmpty(t, post.ID)
	require.NotNil(t, post.BusinessID)
	assert.Equal(t, business.ID, *post.BusinessID)
	assert.Equal(t, "Morning roast", post.Title)
}

func TestCreatePostRequiresToken(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/posts/create", "", map[string]interface{}{
		"title":    "Drive-by",
		"category": "Nature",
		"location": "Nowhere",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestListAllPosts(t *testing.T) {
	ts := GetTestServer(t)

	_, business := helpers.CreateAndLoginBusiness(t, ts)
	post := helpers.CreatePost(t, ts.DB, &business.ID, nil, "Listed post")

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/posts/allposts", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var posts []struct {
		ID string `json:"idposts"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &posts))

	found := false
	for _, p := range posts {
		if p.ID == post.ID {
			found = true
		}
	}
	assert.True(t, found, "created post should appear in /posts/allposts")
}

func TestListPostsByOwner(t *testing.T) {
	ts := GetTestServer(t)

	_, business := helpers.CreateAndLoginBusiness(t, ts)
	_, other := helpers.CreateAndLoginBusiness(t, ts)
	mine := helpers.CreatePost(t, ts.DB, &business.ID, nil, "My post")
	helpers.CreatePost(t, ts.DB, &other.ID, nil, "Someone else's post")

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/posts/user/"+business.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var posts []struct {
		ID         string  `json:"idposts"`
		BusinessID *string `json:"business_idbusiness"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, mine.ID, posts[0].ID)

	// An owner with no posts gets an empty list, not an error.
	_, empty := helpers.CreateAndLoginExplorer(t, ts)
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/posts/user/"+empty.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &posts))
	assert.Empty(t, posts)
}

func TestGetPostNotFound(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/posts/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)
	helpers.AssertErrorMessage(t, bodyStr)
}

func TestRateAveragesAllRatings(t *testing.T) {
	ts := GetTestServer(t)

	_, business := helpers.CreateAndLoginBusiness(t, ts)
	post := helpers.CreatePost(t, ts.DB, &business.ID, nil, "Rated post")

	_, first := helpers.CreateAndLoginExplorer(t, ts)
	_, second := helpers.CreateAndLoginExplorer(t, ts)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/ratings/rate", "", map[string]interface{}{
		"idposts":             post.ID,
		"explorer_idexplorer": first.ID,
		"rating":              4,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var result struct {
		AverageRating float64 `json:"averageRating"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &result))
	assert.InDelta(t, 4.0, result.AverageRating, 0.001)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/ratings/rate", "", map[string]interface{}{
		"idposts":             post.ID,
		"explorer_idexplorer": second.ID,
		"rating":              5,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &result))
	assert.InDelta(t, 4.5, result.AverageRating, 0.001)
}

func TestRateReplacesPreviousRating(t *testing.T) {
	ts := GetTestServer(t)

	_, business := helpers.CreateAndLoginBusiness(t, ts)
	post := helpers.CreatePost(t, ts.DB, &business.ID, nil, "Re-rated post")
	_, explorer := helpers.CreateAndLoginExplorer(t, ts)

	rate := func(value int) float64 {
		res, bodyStr := ts.SendRequest(t, http.MethodPost, "/ratings/rate", "", map[string]interface{}{
			"idposts":             post.ID,
			"explorer_idexplorer": explorer.ID,
			"rating":              value,
		})
		require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
		var result struct {
			AverageRating float64 `json:"averageRating"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &result))
		return result.AverageRating
	}

	assert.InDelta(t, 2.0, rate(2), 0.001)
	assert.InDelta(t, 5.0, rate(5), 0.001)

	var count int64
	ts.DB.Model(&models.Rating{}).Where("post_id = ?", post.ID).Count(&count)
	assert.EqualValues(t, 1, count, "re-rating must not add a second row")
}

func TestRateValidation(t *testing.T) {
	ts := GetTestServer(t)

	_, business := helpers.CreateAndLoginBusiness(t, ts)
	post := helpers.CreatePost(t, ts.DB, &business.ID, nil, "Validated post")
	_, explorer := helpers.CreateAndLoginExplorer(t, ts)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/ratings/rate", "", map[string]interface{}{
		"idposts":             post.ID,
		"explorer_idexplorer": explorer.ID,
		"rating":              6,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/ratings/rate", "", map[string]interface{}{
		"idposts":             "missing-post",
		"explorer_idexplorer": explorer.ID,
		"rating":              3,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)
}

func TestRateCreatesNotificationForBusinessOwner(t *testing.T) {
	ts := GetTestServer(t)

	_, business := helpers.CreateAndLoginBusiness(t, ts)
	post := helpers.CreatePost(t, ts.DB, &business.ID, nil, "Notifying post")
	_, explorer := helpers.CreateAndLoginExplorer(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/ratings/rate", "", map[string]interface{}{
		"idposts":             post.ID,
		"explorer_idexplorer": explorer.ID,
		"rating":              5,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var notification models.Notification
	err := ts.DB.Where("recipient_id = ? AND type = ?", business.ID, models.NotificationTypeRating).
		First(&notification).Error
	require.NoError(t, err)
	assert.Equal(t, models.RecipientBusiness, notification.RecipientType)
	assert.False(t, notification.IsRead)
}
