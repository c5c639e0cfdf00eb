package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/constants"
)

// CookieSource locates a cookie value regardless of where in the request
// lifecycle the caller sits. Middleware reads the raw request header;
// handlers use the ambient gin context. Both go through this one interface.
type CookieSource interface {
	Cookie(name string) (string, bool)
}

type requestSource struct {
	req *http.Request
}

func (s requestSource) Cookie(name string) (string, bool) {
	cookie, err := s.req.Cookie(name)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

// FromRequest adapts a raw *http.Request into a CookieSource.
func FromRequest(req *http.Request) CookieSource {
	return requestSource{req: req}
}

type contextSource struct {
	c *gin.Context
}

func (s contextSource) Cookie(name string) (string, bool) {
	value, err := s.c.Cookie(name)
	if err != nil {
		return "", false
	}
	return value, true
}

// FromContext adapts a *gin.Context into a CookieSource.
func FromContext(c *gin.Context) CookieSource {
	return contextSource{c: c}
}

// Manager bridges the token codec to the cookie layer. It is immutable after
// construction and safe for concurrent use.
type Manager struct {
	codec  *Codec
	secure bool
}

// NewManager creates a Manager. secure controls the cookie's Secure
// attribute and should be true in production.
func NewManager(codec *Codec, secure bool) *Manager {
	return &Manager{codec: codec, secure: secure}
}

// Create issues a session token for the user and attaches it to the
// response as the session cookie. Nothing is persisted server-side.
func (m *Manager) Create(c *gin.Context, userID, username string) error {
	expiresAt := time.Now().Add(constants.SessionTTL)

	token, err := m.codec.Encode(Payload{
		UserID:    userID,
		Username:  username,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.SessionCookieName, token, constants.SessionMaxAge, "/", "", m.secure, true)
	return nil
}

// Destroy overwrites the session cookie with an empty value and Max-Age=0,
// expiring it on the client immediately. A negative max age is required for
// net/http to serialize the Max-Age=0 attribute.
func (m *Manager) Destroy(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.SessionCookieName, "", -1, "/", "", m.secure, true)
}

// Get returns the session payload carried by the request, or nil when the
// cookie is missing, fails verification, or is expired. The payload's own
// expiresAt field is checked in addition to the codec's exp claim.
func (m *Manager) Get(src CookieSource) *Payload {
	token, ok := src.Cookie(constants.SessionCookieName)
	if !ok || token == "" {
		return nil
	}

	payload := m.codec.Decode(token)
	if payload == nil {
		return nil
	}

	expiresAt, err := time.Parse(time.RFC3339, payload.ExpiresAt)
	if err != nil || !expiresAt.After(time.Now()) {
		return nil
	}

	return payload
}
