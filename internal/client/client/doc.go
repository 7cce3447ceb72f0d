// Package client is the HTTP client for the CodeShack REST API.
//
// # Overview
//
// A Client talks to a single configured origin. Every request carries
// Content-Type: application/json and an X-Request-ID header; when the
// TokenProvider yields a non-empty token it is sent verbatim as
// "Authorization: Bearer <token>", otherwise the header is omitted.
//
// Responses use a common envelope:
//
//	{"success": true, "data": ..., "message": "...", "pagination": {...}, "token": "..."}
//
// Each endpoint method decodes the data field into its own result type and
// returns the zero value of that type on any failure.
//
// # Error Handling
//
//   - *RequestError: the server answered with a non-2xx status or with
//     success:false. Message holds the server message or FallbackMessage.
//     401 and 403 match ErrUnauthorized.
//   - *NetworkError: no response was received. Matches ErrUnavailable.
//
// There is no retry. Optional client-side rate limiting (Options.RateLimit)
// and de-duplication of identical in-flight GET requests (Options.Dedup) are
// off by default.
package client
