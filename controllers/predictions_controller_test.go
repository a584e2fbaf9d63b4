package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Predictor/middlewares"
	"Predictor/models"

	"github.com/stretchr/testify/assert"
)

func submitPrediction(t *testing.T, r http.Handler, token, matchKey, score string) *httptest.ResponseRecorder {
	t.Helper()
	requestBody, _ := json.Marshal(map[string]string{"score": score})
	req, err := http.NewRequest(http.MethodPost, "/api/v1/matches/"+matchKey+"/predictions", bytes.NewBuffer(requestBody))
	if err != nil {
		t.Fatalf("Error creating HTTP request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitPredictionLocksIn(t *testing.T) {
	server, r := newTestServer(t)
	_, token := createTestUser(t, server.DB, "testuser", "testuser@example.com", false)
	createTestMatch(t, server.DB, "7")

	r.POST("/api/v1/matches/:key/predictions", middlewares.TokenAuthMiddleware(server.DB), server.SubmitPrediction)

	w := submitPrediction(t, r, token, "7", "3-1")
	assert.Equal(t, http.StatusCreated, w.Code)

	var responseBody map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &responseBody); err != nil {
		t.Fatalf("Error unmarshalling response body: %v", err)
	}
	assert.Equal(t, "locked_submitted", responseBody["state"])

	prediction := responseBody["response"].(map[string]interface{})
	assert.Equal(t, "7", prediction["match_key"])
	assert.Equal(t, "3-1", prediction["score"])
}

func TestSubmitPredictionNormalizesKey(t *testing.T) {
	server, r := newTestServer(t)
	_, token := createTestUser(t, server.DB, "testuser", "testuser@example.com", false)
	createTestMatch(t, server.DB, "7")

	r.POST("/api/v1/matches/:key/predictions", middlewares.TokenAuthMiddleware(server.DB), server.SubmitPrediction)

	// A spreadsheet-mangled "7.0" must land on match "7".
	w := submitPrediction(t, r, token, "7.0", "3-2")
	assert.Equal(t, http.StatusCreated, w.Code)

	var responseBody map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &responseBody); err != nil {
		t.Fatalf("Error unmarshalling response body: %v", err)
	}
	prediction := responseBody["response"].(map[string]interface{})
	assert.Equal(t, "7", prediction["match_key"])
}

func TestSubmitPredictionTwiceIsLocked(t *testing.T) {
	server, r := newTestServer(t)
	_, token := createTestUser(t, server.DB, "testuser", "testuser@example.com", false)
	createTestMatch(t, server.DB, "7")

	r.POST("/api/v1/matches/:key/predictions", middlewares.TokenAuthMiddleware(server.DB), server.SubmitPrediction)

	w := submitPrediction(t, r, token, "7", "3-1")
	assert.Equal(t, http.StatusCreated, w.Code)

	// The second attempt finds the gate already locked.
	w = submitPrediction(t, r, token, "7", "3-0")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var responseBody map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &responseBody); err != nil {
		t.Fatalf("Error unmarshalling response body: %v", err)
	}
	assert.Equal(t, "locked_submitted", responseBody["state"])

	// The first pick is untouched.
	var stored models.Prediction
	err := server.DB.Where("match_key = ?", "7").First(&stored).Error
	assert.NoError(t, err)
	assert.Equal(t, "3-1", stored.Score)
}

func TestSubmitPredictionAfterStartIsExpired(t *testing.T) {
	server, r := newTestServer(t)
	_, token := createTestUser(t, server.DB, "testuser", "testuser@example.com", false)

	started := time.Now().Add(-time.Hour)
	match := models.Match{
		MatchKey:  "9",
		Player1:   "Gerwyn Price",
		Player2:   "Josh Rock",
		StartTime: &started,
	}
	if err := server.DB.Create(&match).Error; err != nil {
		t.Fatalf("Failed to create test match: %v", err)
	}

	r.POST("/api/v1/matches/:key/predictions", middlewares.TokenAuthMiddleware(server.DB), server.SubmitPrediction)

	w := submitPrediction(t, r, token, "9", "3-1")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var responseBody map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &responseBody); err != nil {
		t.Fatalf("Error unmarshalling response body: %v", err)
	}
	assert.Equal(t, "locked_expired", responseBody["state"])
}

func TestSubmitPredictionAfterResultIsClosed(t *testing.T) {
	server, r := newTestServer(t)
	_, token := createTestUser(t, server.DB, "testuser", "testuser@example.com", false)
	createTestMatch(t, server.DB, "7")

	result := models.Result{MatchKey: "7", Score: "3-0"}
	if _, err := result.PublishResult(server.DB); err != nil {
		t.Fatalf("Failed to publish result: %v", err)
	}

	r.POST("/api/v1/matches/:key/predictions", middlewares.TokenAuthMiddleware(server.DB), server.SubmitPrediction)

	// A published result dominates even though the start time is ahead.
	w := submitPrediction(t, r, token, "7", "3-1")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var responseBody map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &responseBody); err != nil {
		t.Fatalf("Error unmarshalling response body: %v", err)
	}
	assert.Equal(t, "closed_resulted", responseBody["state"])
}

func TestSubmitPredictionRejectsMalformedScore(t *testing.T) {
	server, r := newTestServer(t)
	_, token := createTestUser(t, server.DB, "testuser", "testuser@example.com", false)
	createTestMatch(t, server.DB, "7")

	r.POST("/api/v1/matches/:key/predictions", middlewares.TokenAuthMiddleware(server.DB), server.SubmitPrediction)

	for _, score := range []string{"", "abc", "3:1", "11-0", "-1-2"} {
		w := submitPrediction(t, r, token, "7", score)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "score %q should be rejected", score)
	}
}

func TestGetUserPredictionsIsPrivate(t *testing.T) {
	server, r := newTestServer(t)
	alice, aliceToken := createTestUser(t, server.DB, "alice", "alice@example.com", false)
	_, bobToken := createTestUser(t, server.DB, "bob", "bob@example.com", false)
	_, adminToken := createTestUser(t, server.DB, "admin", "admin@example.com", true)
	createTestMatch(t, server.DB, "7")

	prediction := models.Prediction{UserID: alice.ID, MatchKey: "7", Score: "3-1"}
	if _, err := prediction.SavePrediction(server.DB); err != nil {
		t.Fatalf("Failed to save prediction: %v", err)
	}

	r.GET("/api/v1/users/:id/predictions", middlewares.TokenAuthMiddleware(server.DB), server.GetUserPredictions)
	path := fmt.Sprintf("/api/v1/users/%d/predictions", alice.ID)

	get := func(token string) *httptest.ResponseRecorder {
		req, err := http.NewRequest(http.MethodGet, path, nil)
		if err != nil {
			t.Fatalf("Error creating HTTP request: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// The match is still open, so nobody else may see alice's pick.
	assert.Equal(t, http.StatusForbidden, get(bobToken).Code)

	// Alice and the admin may.
	assert.Equal(t, http.StatusOK, get(aliceToken).Code)
	assert.Equal(t, http.StatusOK, get(adminToken).Code)
}

func TestDuplicatePredictionInsertFails(t *testing.T) {
	server, _ := newTestServer(t)
	user, _ := createTestUser(t, server.DB, "testuser", "testuser@example.com", false)
	createTestMatch(t, server.DB, "7")

	// The unique index, not the gate read, is what makes the append atomic.
	first := models.Prediction{UserID: user.ID, MatchKey: "7", Score: "3-1"}
	_, err := first.SavePrediction(server.DB)
	assert.NoError(t, err)

	second := models.Prediction{UserID: user.ID, MatchKey: "7", Score: "3-0"}
	_, err = second.SavePrediction(server.DB)
	assert.Error(t, err)
}
