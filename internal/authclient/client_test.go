package authclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
)

func authStub(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second)
}

func writeEnvelope(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"statusCode": status,
		"message":    http.StatusText(status),
		"data":       data,
	})
}

func TestClient_Validate_Success(t *testing.T) {
	client := authStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/validate", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, domain.Identity{
			Fullname: "Alice Smith",
			Email:    "alice@example.com",
			Username: "alice",
		})
	})

	identity, err := client.Validate(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, "alice@example.com", identity.Email)
}

func TestClient_Validate_Rejected(t *testing.T) {
	client := authStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Validate(context.Background(), "expired")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClient_Validate_EmptyIdentity(t *testing.T) {
	client := authStub(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, domain.Identity{})
	})

	_, err := client.Validate(context.Background(), "tok-123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClient_Validate_ServerError(t *testing.T) {
	client := authStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Validate(context.Background(), "tok-123")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClient_Login_Success(t *testing.T) {
	client := authStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "alice", payload["username"])

		writeEnvelope(w, http.StatusOK, domain.AuthSession{
			Token:    "jwt-token",
			Identity: domain.Identity{Username: "alice", Email: "alice@example.com"},
		})
	})

	session, err := client.Login(context.Background(), domain.Credentials{
		Username: "alice",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", session.Token)
	assert.Equal(t, "alice", session.Identity.Username)
}

func TestClient_Login_BadCredentials(t *testing.T) {
	client := authStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Login(context.Background(), domain.Credentials{Username: "alice", Password: "nope"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClient_Register_EmailTaken(t *testing.T) {
	client := authStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	_, err := client.Register(context.Background(), domain.Registration{
		Fullname: "Alice Smith",
		Email:    "alice@example.com",
		Username: "alice",
		Password: "s3cretpass",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestClient_Register_ValidationRejected(t *testing.T) {
	client := authStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := client.Register(context.Background(), domain.Registration{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
