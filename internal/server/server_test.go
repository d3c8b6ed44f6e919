package server

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafly24/lapor-in-services/api/internal/config"
	commonhttp "github.com/rafly24/lapor-in-services/api/internal/interfaces/http/common"
)

var testSecret = []byte("test-secret")

func testServer(audience string) *Server {
	return &Server{
		logger:      log.New(io.Discard, "", 0),
		jwtConfigs:  []config.JWTConfig{{Issuer: "lapor-in-auth", Secret: testSecret}},
		jwtAudience: audience,
	}
}

func signToken(t *testing.T, secret []byte, claims authClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func validClaims() authClaims {
	return authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "lapor-in-auth",
			Subject:   "uid-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Name:    "Budi Santoso",
		Email:   "budi@example.com",
		Picture: "https://example.com/budi.png",
	}
}

func TestParseAuthToken(t *testing.T) {
	srv := testServer("")
	tokenString := signToken(t, testSecret, validClaims())

	claims, err := srv.parseAuthToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.Subject)
	assert.Equal(t, "budi@example.com", claims.Email)
	assert.Equal(t, "Budi Santoso", claims.Name)
}

func TestParseAuthTokenRejectsWrongSecret(t *testing.T) {
	srv := testServer("")
	tokenString := signToken(t, []byte("secret-lain"), validClaims())

	_, err := srv.parseAuthToken(tokenString)
	assert.Error(t, err)
}

func TestParseAuthTokenRejectsWrongIssuer(t *testing.T) {
	srv := testServer("")
	claims := validClaims()
	claims.Issuer = "penerbit-lain"

	_, err := srv.parseAuthToken(signToken(t, testSecret, claims))
	assert.Error(t, err)
}

func TestParseAuthTokenRequiresEmail(t *testing.T) {
	srv := testServer("")
	claims := validClaims()
	claims.Email = ""

	_, err := srv.parseAuthToken(signToken(t, testSecret, claims))
	assert.Error(t, err)
}

func TestParseAuthTokenRequiresSubject(t *testing.T) {
	srv := testServer("")
	claims := validClaims()
	claims.Subject = ""

	_, err := srv.parseAuthToken(signToken(t, testSecret, claims))
	assert.Error(t, err)
}

func TestParseAuthTokenAudience(t *testing.T) {
	srv := testServer("lapor-in-landing")

	claims := validClaims()
	claims.Audience = jwt.ClaimStrings{"lapor-in-landing"}
	_, err := srv.parseAuthToken(signToken(t, testSecret, claims))
	assert.NoError(t, err)

	claims.Audience = jwt.ClaimStrings{"aplikasi-lain"}
	_, err = srv.parseAuthToken(signToken(t, testSecret, claims))
	assert.Error(t, err)
}

func TestParseAuthTokenRejectsExpired(t *testing.T) {
	srv := testServer("")
	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	_, err := srv.parseAuthToken(signToken(t, testSecret, claims))
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	srv := testServer("")
	tokenString := signToken(t, testSecret, validClaims())

	var captured commonhttp.AuthenticatedUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := commonhttp.UserFromContext(r.Context())
		require.True(t, ok)
		captured = user
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rec := httptest.NewRecorder()
	srv.authMiddleware(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-1", captured.ID)
	assert.Equal(t, "budi@example.com", captured.Email)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	srv := testServer("")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})

	rec := httptest.NewRecorder()
	srv.authMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/verify", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsNonBearer(t *testing.T) {
	srv := testServer("")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	srv.authMiddleware(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithCORSAllowsListedOrigin(t *testing.T) {
	handler := withCORS([]string{"https://lapor-in.id"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	req.Header.Set("Origin", "https://lapor-in.id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://lapor-in.id", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestWithCORSSkipsUnlistedOrigin(t *testing.T) {
	handler := withCORS([]string{"https://lapor-in.id"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWithCORSPreflight(t *testing.T) {
	handler := withCORS([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/reviews", nil)
	req.Header.Set("Origin", "https://lapor-in.id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://lapor-in.id", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestOriginAllowed(t *testing.T) {
	allowed := map[string]struct{}{"https://lapor-in.id": {}}

	assert.True(t, originAllowed("https://lapor-in.id", allowed))
	assert.False(t, originAllowed("https://other.example.com", allowed))
	assert.True(t, originAllowed("https://anything.example.com", map[string]struct{}{}))
}
