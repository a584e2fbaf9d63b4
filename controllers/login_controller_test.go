package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginReturnsToken(t *testing.T) {
	server, r := newTestServer(t)
	createTestUser(t, server.DB, "testuser", "testuser@example.com", false)

	r.POST("/api/v1/login", server.Login)

	// Email lookup is case-insensitive.
	credentials := map[string]string{
		"email":    "TestUser@Example.com",
		"password": "password123",
	}
	requestBody, err := json.Marshal(credentials)
	if err != nil {
		t.Fatalf("Error creating request body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewBuffer(requestBody))
	if err != nil {
		t.Fatalf("Error creating HTTP request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var responseBody map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &responseBody)
	if err != nil {
		t.Fatalf("Error unmarshalling response body: %v", err)
	}

	userData := responseBody["response"].(map[string]interface{})
	assert.NotEmpty(t, userData["token"])
	assert.Equal(t, "testuser", userData["username"])
	assert.Equal(t, false, userData["is_admin"])
}

func TestLoginWrongPassword(t *testing.T) {
	server, r := newTestServer(t)
	createTestUser(t, server.DB, "testuser", "testuser@example.com", false)

	r.POST("/api/v1/login", server.Login)

	credentials := map[string]string{
		"email":    "testuser@example.com",
		"password": "not-the-password",
	}
	requestBody, _ := json.Marshal(credentials)

	req, err := http.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewBuffer(requestBody))
	if err != nil {
		t.Fatalf("Error creating HTTP request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
