package dummyjson

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "emilys", req["username"])
		assert.EqualValues(t, 60, req["expiresInMins"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":        1,
			"username":  "emilys",
			"email":     "emily@x.com",
			"firstName": "Emily",
			"lastName":  "Johnson",
			"token":     "opaque-token-123",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Login(context.Background(), "emilys", "emilyspass", 60)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, "Emily", resp.FirstName)
	assert.Equal(t, "opaque-token-123", resp.BearerToken())
}

// Неверные учетные данные и сетевые сбои одинаково дают ErrLoginFailed
func TestClient_LoginFailureIsUniform(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), "emilys", "wrong", 60)
	assert.ErrorIs(t, err, ErrLoginFailed)

	// Провайдер недоступен
	server.Close()
	_, err = client.Login(context.Background(), "emilys", "emilyspass", 60)
	assert.ErrorIs(t, err, ErrLoginFailed)
}

func TestClient_BearerTokenPrefersLegacyField(t *testing.T) {
	resp := &LoginResponse{Token: "legacy", AccessToken: "modern"}
	assert.Equal(t, "legacy", resp.BearerToken())

	resp = &LoginResponse{AccessToken: "modern"}
	assert.Equal(t, "modern", resp.BearerToken())
}

func TestClient_FetchUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("skip"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"users": [
				{"id": 1, "firstName": "Emily", "lastName": "Johnson", "email": "emily@x.com",
				 "phone": "+81 965-431-3024", "image": "https://dummyjson.com/icon/emilys/128",
				 "company": {"department": "Engineering", "name": "Dooley, Kozey and Cronin", "title": "Sales Manager"}},
				{"id": 2, "firstName": "Michael", "lastName": "Williams", "email": "michael@x.com",
				 "phone": "+49 258-627-6644", "image": "https://dummyjson.com/icon/michaelw/128",
				 "company": {"department": "Support", "name": "Spinka - Dickinson", "title": "Support Specialist"}}
			],
			"total": 208, "skip": 0, "limit": 2
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.FetchUsers(context.Background(), 2, 0)
	require.NoError(t, err)

	assert.Equal(t, 208, resp.Total)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, "Engineering", resp.Users[0].Company.Department)
}
