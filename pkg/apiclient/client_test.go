package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
		"success": status < 400,
		"data":    data,
	})
}

func TestClient_RefreshAndRetryOn401(t *testing.T) {
	var mentorCalls, refreshCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/mentors":
			atomic.AddInt32(&mentorCalls, 1)
			if r.Header.Get("Authorization") != "Bearer new-access" {
				writeEnvelope(w, http.StatusUnauthorized, nil)
				return
			}
			writeEnvelope(w, http.StatusOK, []*models.Mentor{{ID: "mentor-1"}})
		case "/api/auth/refresh":
			atomic.AddInt32(&refreshCalls, 1)
			var req models.RefreshRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "refresh-1", req.RefreshToken)
			writeEnvelope(w, http.StatusOK, models.TokenPair{
				AccessToken:  "new-access",
				RefreshToken: "refresh-2",
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("stale-access", "refresh-1"))
	client := NewClient(server.URL, store)

	mentors, err := client.Mentors(context.Background())

	require.NoError(t, err)
	require.Len(t, mentors, 1)
	assert.Equal(t, "mentor-1", mentors[0].ID)
	assert.EqualValues(t, 2, atomic.LoadInt32(&mentorCalls), "original request replayed exactly once")
	assert.EqualValues(t, 1, atomic.LoadInt32(&refreshCalls))

	access, refresh, err := store.Tokens()
	require.NoError(t, err)
	assert.Equal(t, "new-access", access)
	assert.Equal(t, "refresh-2", refresh)
}

func TestClient_RefreshKeepsOldTokenWithoutRotation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/mentors":
			if r.Header.Get("Authorization") != "Bearer new-access" {
				writeEnvelope(w, http.StatusUnauthorized, nil)
				return
			}
			writeEnvelope(w, http.StatusOK, []*models.Mentor{})
		case "/api/auth/refresh":
			// Server issues a new access token but no refresh token
			writeEnvelope(w, http.StatusOK, map[string]string{"accessToken": "new-access"})
		}
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("stale-access", "refresh-1"))
	client := NewClient(server.URL, store)

	_, err := client.Mentors(context.Background())
	require.NoError(t, err)

	_, refresh, err := store.Tokens()
	require.NoError(t, err)
	assert.Equal(t, "refresh-1", refresh)
}

func TestClient_SessionExpiredWhenRefreshRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/mentors":
			writeEnvelope(w, http.StatusUnauthorized, nil)
		case "/api/auth/refresh":
			writeEnvelope(w, http.StatusUnauthorized, nil)
		}
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("stale-access", "stale-refresh"))
	client := NewClient(server.URL, store)

	_, err := client.Mentors(context.Background())

	require.ErrorIs(t, err, ErrSessionExpired)
	access, refresh, storeErr := store.Tokens()
	require.NoError(t, storeErr)
	assert.Empty(t, access)
	assert.Empty(t, refresh)
}

func TestClient_SessionExpiredWithoutRefreshToken(t *testing.T) {
	var refreshCalled bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/refresh" {
			refreshCalled = true
		}
		writeEnvelope(w, http.StatusUnauthorized, nil)
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("stale-access", ""))
	client := NewClient(server.URL, store)

	_, err := client.Mentors(context.Background())

	require.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, refreshCalled, "no refresh attempt without a refresh token")
}

func TestClient_APIErrorCarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
			"success": false,
			"message": "slot already booked",
		})
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("access", "refresh"))
	client := NewClient(server.URL, store)

	_, err := client.BookSlot(context.Background(), "slot-1", &models.BookSlotRequest{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "slot already booked", apiErr.Message)
}

func TestClient_LoginStoresTokenPair(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		writeEnvelope(w, http.StatusOK, models.AuthResponse{
			User:         &models.User{ID: "user-1", Email: "an@example.com"},
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
		})
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	client := NewClient(server.URL, store)

	user, err := client.Login(context.Background(), "an@example.com", "secret-pass")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	access, refresh, err := store.Tokens()
	require.NoError(t, err)
	assert.Equal(t, "access-1", access)
	assert.Equal(t, "refresh-1", refresh)
}

func TestClient_LogoutClearsTokensEvenOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusInternalServerError, nil)
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("access-1", "refresh-1"))
	client := NewClient(server.URL, store)

	err := client.Logout(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	access, refresh, storeErr := store.Tokens()
	require.NoError(t, storeErr)
	assert.Empty(t, access)
	assert.Empty(t, refresh)
}

func TestClient_SlotsQueryParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeEnvelope(w, http.StatusOK, []*models.Slot{})
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("access", "refresh"))
	client := NewClient(server.URL, store)

	_, err := client.Slots(context.Background(), "mentor-1", true)

	require.NoError(t, err)
	assert.Equal(t, "mentorId=mentor-1&open=true", gotQuery)
}
