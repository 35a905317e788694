package gateway_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshmart-client/app/domain"
	"freshmart-client/app/gateway"
	"freshmart-client/app/utils/logger"
)

// bearerToken builds an unsigned JWT with the given expiry, enough for the
// offline expiry decode.
func bearerToken(t *testing.T, exp time.Time) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(map[string]int64{"exp": exp.Unix()})
	require.NoError(t, err)

	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

func TestAuthGateway_Login(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	access := bearerToken(t, exp)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts/login/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"tokens":  map[string]string{"access": access, "refresh": "refresh-1"},
		})
	}))
	defer srv.Close()

	log, err := logger.NewWithWriter("error", io.Discard)
	require.NoError(t, err)
	gw := gateway.NewAuthGateway(newRestClient(t, srv), log)

	result, err := gw.Login(context.Background(), domain.LoginRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, access, result.Credentials.AccessToken)
	assert.Equal(t, "refresh-1", result.Credentials.RefreshToken)
	assert.True(t, result.Credentials.AccessExpiresAt.Equal(exp), "expiry decoded from the token")
	assert.Nil(t, result.Profile, "login does not carry a profile")
}

func TestAuthGateway_LoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success": false, "error": "Invalid credentials"}`))
	}))
	defer srv.Close()

	log, err := logger.NewWithWriter("error", io.Discard)
	require.NoError(t, err)
	gw := gateway.NewAuthGateway(newRestClient(t, srv), log)

	_, err = gw.Login(context.Background(), domain.LoginRequest{Username: "alice", Password: "wrong"})
	require.Error(t, err)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, domain.KindUnauthorized, apiErr.Kind)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestAuthGateway_Register(t *testing.T) {
	access := bearerToken(t, time.Now().Add(time.Hour))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/register/", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "bob", body["username"])
		assert.Equal(t, "bob@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"tokens":  map[string]string{"access": access, "refresh": "refresh-2"},
			"user": map[string]interface{}{
				"id": 5, "username": "bob", "email": "bob@example.com", "first_name": "Bob",
			},
		})
	}))
	defer srv.Close()

	log, err := logger.NewWithWriter("error", io.Discard)
	require.NoError(t, err)
	gw := gateway.NewAuthGateway(newRestClient(t, srv), log)

	result, err := gw.Register(context.Background(), domain.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "Str0ngPass!",
	})
	require.NoError(t, err)

	require.NotNil(t, result.Profile, "registration carries the created profile")
	assert.Equal(t, int64(5), result.Profile.ID)
	assert.Equal(t, "Bob", result.Profile.FirstName)
	assert.Equal(t, "refresh-2", result.Credentials.RefreshToken)
}

func TestAuthGateway_FetchProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/accounts/profile/", r.URL.Path)
		w.Write([]byte(`{"id": 5, "username": "bob", "email": "bob@example.com", "loyalty_card": "LC-5"}`))
	}))
	defer srv.Close()

	log, err := logger.NewWithWriter("error", io.Discard)
	require.NoError(t, err)
	gw := gateway.NewAuthGateway(newRestClient(t, srv), log)

	profile, err := gw.FetchProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "bob", profile.Username)
	assert.Equal(t, "LC-5", profile.LoyaltyCard)
}

func TestAuthGateway_UpdateProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/accounts/profile/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Robert", body["first_name"])
		// Untouched fields are omitted entirely
		_, hasEmail := body["email"]
		assert.False(t, hasEmail)

		w.Write([]byte(`{"success": true, "user": {"id": 5, "username": "bob", "first_name": "Robert"}}`))
	}))
	defer srv.Close()

	log, err := logger.NewWithWriter("error", io.Discard)
	require.NoError(t, err)
	gw := gateway.NewAuthGateway(newRestClient(t, srv), log)

	profile, err := gw.UpdateProfile(context.Background(), domain.ProfileUpdate{FirstName: "Robert"})
	require.NoError(t, err)
	assert.Equal(t, "Robert", profile.FirstName)
}

func TestAuthGateway_Logout(t *testing.T) {
	var gotRefresh string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/logout/", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotRefresh = body["refresh"]
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	log, err := logger.NewWithWriter("error", io.Discard)
	require.NoError(t, err)
	gw := gateway.NewAuthGateway(newRestClient(t, srv), log)

	require.NoError(t, gw.Logout(context.Background(), "refresh-1"))
	assert.Equal(t, "refresh-1", gotRefresh)
}
