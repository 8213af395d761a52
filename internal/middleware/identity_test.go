package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudesk/tms-api/pkg/config"
)

func newIdentityRouter(cfg config.IdentityConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity(cfg))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"actor": ActorID(c)})
	})
	return r
}

func signSessionToken(t *testing.T, secret string, claims SessionClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestIdentityDisabledPassesThrough(t *testing.T) {
	r := newIdentityRouter(config.IdentityConfig{Enabled: false})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"actor":"system"`)
}

func TestIdentityMissingTokenCarriesSignInURL(t *testing.T) {
	r := newIdentityRouter(config.IdentityConfig{
		Enabled:   true,
		Secret:    "test-secret",
		SignInURL: "http://localhost:3000/sign-in",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var body struct {
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
	assert.Equal(t, "http://localhost:3000/sign-in", body.Meta["sign_in_url"])
}

func TestIdentityValidTokenSetsClaims(t *testing.T) {
	cfg := config.IdentityConfig{
		Enabled: true,
		Secret:  "test-secret",
		Issuer:  "edudesk-identity",
	}
	r := newIdentityRouter(cfg)

	token := signSessionToken(t, cfg.Secret, SessionClaims{
		Name: "Principal",
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   "user-42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"actor":"Principal"`)
}

func TestIdentityRejectsWrongIssuer(t *testing.T) {
	cfg := config.IdentityConfig{
		Enabled: true,
		Secret:  "test-secret",
		Issuer:  "edudesk-identity",
	}
	r := newIdentityRouter(cfg)

	token := signSessionToken(t, cfg.Secret, SessionClaims{
		Name: "Intruder",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdentityRejectsWrongSignature(t *testing.T) {
	cfg := config.IdentityConfig{Enabled: true, Secret: "test-secret"}
	r := newIdentityRouter(cfg)

	token := signSessionToken(t, "other-secret", SessionClaims{
		Name: "Forger",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdentityRejectsMalformedHeader(t *testing.T) {
	r := newIdentityRouter(config.IdentityConfig{Enabled: true, Secret: "test-secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
