package constants

import "time"

// Session cookie settings
const (
	SessionCookieName = "session"
	SessionTTL        = 7 * 24 * time.Hour
	SessionMaxAge     = 604800 // seconds, matches SessionTTL
)

// Context keys for values set by the auth middleware
const (
	ContextKeyUserID   = "userID"
	ContextKeyUsername = "username"
)

// Password rules
const (
	MinPasswordLength = 8
	BcryptCost        = 10
)

// Pagination bounds
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
