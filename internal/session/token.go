// Package session implements the stateless session credential: a signed
// JWT carried in an http-only cookie. Nothing is stored server-side, so any
// instance holding the shared secret can verify a token on its own.
package session

import (
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskmanager/internal/constants"
)

// Payload is the claim set carried inside the signed session token.
// ExpiresAt duplicates the registered exp claim as an RFC3339 string; the
// manager re-checks it on read in addition to the codec's own exp check.
type Payload struct {
	UserID    string `json:"userId"`
	Username  string `json:"username,omitempty"`
	ExpiresAt string `json:"expiresAt"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a symmetric secret (HS256).
type Codec struct {
	secret []byte
}

// NewCodec creates a Codec. An empty secret is a configuration error and
// must abort startup.
func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("session secret must be provided")
	}
	return &Codec{secret: []byte(secret)}, nil
}

// Encode signs the payload as an HS256 JWT with issued-at and a 7-day
// expiration claim.
func (c *Codec) Encode(payload Payload) (string, error) {
	now := time.Now()
	payload.IssuedAt = jwt.NewNumericDate(now)
	payload.RegisteredClaims.ExpiresAt = jwt.NewNumericDate(now.Add(constants.SessionTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return token.SignedString(c.secret)
}

// Decode verifies the token and returns its payload, or nil when the token
// is malformed, signed with the wrong key or algorithm, or expired. Failures
// are logged but never reported to the caller in detail.
func (c *Codec) Decode(tokenString string) *Payload {
	payload := &Payload{}
	token, err := jwt.ParseWithClaims(tokenString, payload, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		log.Printf("Failed to verify session: %v", err)
		return nil
	}
	return payload
}
