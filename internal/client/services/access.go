package services

import (
	"context"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
)

// Decision is the outcome of a capability check.
type Decision int

const (
	Allowed Decision = iota
	RedirectLogin
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	}
	return "unknown"
}

// Err maps a decision to the error services return for it.
func (d Decision) Err() error {
	switch d {
	case Allowed:
		return nil
	case RedirectLogin:
		return ErrNotAuthenticated
	default:
		return ErrForbidden
	}
}

// Authorize decides whether user may open a page restricted to required
// roles. An empty role set only requires a session.
func Authorize(user *models.UserSummary, required ...models.Role) Decision {
	if user == nil {
		return RedirectLogin
	}
	if len(required) == 0 {
		return Allowed
	}
	for _, r := range required {
		if user.Role == r {
			return Allowed
		}
	}
	return RedirectHome
}

// Identity resolves the current user without touching the network.
type Identity interface {
	CurrentUser(ctx context.Context) (*models.UserSummary, error)
}

// requireUser loads the current user and checks it against roles. Every
// service operation calls it before issuing a request.
func requireUser(ctx context.Context, id Identity, roles ...models.Role) (*models.UserSummary, error) {
	u, err := id.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := Authorize(u, roles...).Err(); err != nil {
		return nil, err
	}
	return u, nil
}
