// Package common contains shared constants and sentinel errors used across
// CodeShack client components.
package common

// Header names attached to every outbound API request.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	ContentTypeHeaderName   = "Content-Type"
)

// BearerPrefix precedes the raw token in the Authorization header.
const BearerPrefix = "Bearer "

// Session storage keys. The token is stored as a raw string and the user
// summary as JSON.
const (
	TokenStorageKey = "authToken"
	UserStorageKey  = "user"
)
