// Package session persists the authenticated identity of the local user.
//
// A Session is the bearer token issued by the backend plus the UserSummary
// returned with it. Both are stored under fixed keys (common.TokenStorageKey
// and common.UserStorageKey) and are always written and cleared together.
// The store never enforces expiry: an expired token is only discovered when
// the backend rejects a request.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
)

type Session struct {
	Token string
	User  models.UserSummary
}

// Store is the injected session persistence contract.
//
// Load returns (nil, nil) when no complete session is stored, including when
// the user record cannot be decoded. Clear is unconditional and idempotent.
type Store interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

// TokenSource adapts a Store to the API client's token lookup.
type TokenSource struct {
	Store Store
}

// Token returns the stored token or "" when there is no session.
func (ts TokenSource) Token(ctx context.Context) (string, error) {
	s, err := ts.Store.Load(ctx)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", nil
	}
	return s.Token, nil
}

func encodeUser(u models.UserSummary) ([]byte, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}
	return b, nil
}

// decodeUser returns false for anything that is not a JSON object with an id.
func decodeUser(b []byte) (models.UserSummary, bool) {
	var u models.UserSummary
	if err := json.Unmarshal(b, &u); err != nil {
		return models.UserSummary{}, false
	}
	if u.ID == "" {
		return models.UserSummary{}, false
	}
	return u, true
}
