package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arnav1824/stagepass_admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestsCarryCredentialHeaders(t *testing.T) {
	tokens := NewMemoryTokenStore()
	tokens.Set("remote-token")

	var gotAPIKey, gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("x-api-key")
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]models.Artist{})
	}))
	defer server.Close()

	client := NewClient(server.URL, "service-key", tokens)
	_, err := client.ListArtists(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "service-key", gotAPIKey)
	assert.Equal(t, "Bearer remote-token", gotAuth)
	assert.Equal(t, "/api/admin/artists", gotPath)
}

func TestRemoteErrorCarriesUpstreamMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Artist not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", NewMemoryTokenStore())
	_, err := client.GetArtist(context.Background(), "A1")
	require.Error(t, err)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusNotFound, remote.StatusCode)
	assert.Equal(t, "Artist not found", remote.Message)
}

func TestRemoteErrorFallsBackToStaticMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream exploded</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", NewMemoryTokenStore())
	err := client.VerifyArtist(context.Background(), "A1")
	require.Error(t, err)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "Failed to verify artist", remote.Message)
}

func TestVerifyArtistIssuesPut(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", NewMemoryTokenStore())
	require.NoError(t, client.VerifyArtist(context.Background(), "A1"))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/admin/artists/A1/verify", gotPath)
}

func TestUpdateWithdrawalStatusBody(t *testing.T) {
	var bodies []map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		bodies = append(bodies, body)
		json.NewEncoder(w).Encode(models.WithdrawRequest{ID: "W1"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", NewMemoryTokenStore())

	_, err := client.UpdateWithdrawalStatus(context.Background(), "W1", models.WithdrawalProcessed, "ignored")
	require.NoError(t, err)
	_, err = client.UpdateWithdrawalStatus(context.Background(), "W1", models.WithdrawalRejected, "Invalid account details")
	require.NoError(t, err)

	require.Len(t, bodies, 2)
	assert.Equal(t, "processed", bodies[0]["status"])
	assert.NotContains(t, bodies[0], "adminNotes", "notes ride along only for rejections")
	assert.Equal(t, "rejected", bodies[1]["status"])
	assert.Equal(t, "Invalid account details", bodies[1]["adminNotes"])
}

func TestAdminLoginParsesToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/admin-login", r.URL.Path)
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "admin@stagepass.in", body["email"])
		json.NewEncoder(w).Encode(models.AdminLoginResponse{
			Message:     "Login successful",
			Email:       "admin@stagepass.in",
			AccessToken: "upstream-token",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", NewMemoryTokenStore())
	res, err := client.AdminLogin(context.Background(), "admin@stagepass.in", "secret")
	require.NoError(t, err)
	assert.Equal(t, "upstream-token", res.AccessToken)
}
