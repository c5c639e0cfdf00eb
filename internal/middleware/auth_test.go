package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"taskmanager/internal/constants"
	"taskmanager/internal/session"
)

func setupGateRouter(t *testing.T) (*gin.Engine, *session.Codec) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	codec, err := session.NewCodec("test-secret")
	require.NoError(t, err)
	manager := session.NewManager(codec, false)

	r := gin.New()
	r.Use(RequireSession(manager))

	ok := func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	}
	r.GET("/health", ok)
	r.GET("/login", ok)
	r.GET("/dashboard", ok)
	r.GET("/dashboard/projects", ok)
	r.GET("/api/tasks", ok)
	r.GET("/api/projects", ok)
	r.GET("/api/users", ok)
	r.POST("/api/users", ok)

	return r, codec
}

func sessionCookie(t *testing.T, codec *session.Codec, userID string) *http.Cookie {
	t.Helper()

	token, err := codec.Encode(session.Payload{
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)

	return &http.Cookie{Name: constants.SessionCookieName, Value: token}
}

func TestRequireSession_BypassesUnguardedPaths(t *testing.T) {
	r, _ := setupGateRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireSession_PublicPaths(t *testing.T) {
	r, _ := setupGateRouter(t)

	for _, path := range []string{"/login", "/api/users"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, "public path %s must pass without a session", path)
	}

	// Public regardless of method.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/users", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireSession_PageRedirect(t *testing.T) {
	r, _ := setupGateRouter(t)

	for _, path := range []string{"/dashboard", "/dashboard/projects"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, "/login", w.Header().Get("Location"))
	}
}

func TestRequireSession_APIUnauthorized(t *testing.T) {
	r, _ := setupGateRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "UNAUTHORIZED")
	require.Empty(t, w.Header().Get("Location"))
}

func TestRequireSession_InvalidToken(t *testing.T) {
	r, _ := setupGateRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "not-a-token"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSession_ValidToken(t *testing.T) {
	r, codec := setupGateRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.AddCookie(sessionCookie(t, codec, "u1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"userId":"u1"`)
}

func TestRequireSession_ExpiredPayload(t *testing.T) {
	r, codec := setupGateRouter(t)

	token, err := codec.Encode(session.Payload{
		UserID:    "u1",
		ExpiresAt: time.Now().Add(-time.Minute).Format(time.RFC3339),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: token})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
