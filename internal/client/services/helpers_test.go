package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/codeshack/internal/client/client"
	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/client/session"
	"github.com/dmitrijs2005/codeshack/internal/testutil/fakeapi"
	"github.com/stretchr/testify/require"
)

// env wires the real client and auth facade to a fake backend.
type env struct {
	api    *fakeapi.Server
	store  *session.MemoryStore
	client *client.Client
	auth   AuthService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	api := fakeapi.New(t)
	store := session.NewMemoryStore()
	c := client.New(client.Options{BaseURL: api.URL, Tokens: session.TokenSource{Store: store}})
	return &env{api: api, store: store, client: c, auth: NewAuthService(c, store, nil)}
}

// signIn stores a session for u without going through the login endpoint.
func (e *env) signIn(t *testing.T, u models.User) {
	t.Helper()
	require.NoError(t, e.store.Save(context.Background(), session.Session{
		Token: e.api.TokenFor(u.ID),
		User: models.UserSummary{
			ID:               u.ID,
			Name:             u.Name,
			Email:            u.Email,
			Role:             u.Role,
			IsMentorApproved: u.IsMentorApproved,
		},
	}))
}

// staticIdentity is an Identity fixed to one user (nil for anonymous).
type staticIdentity struct {
	user *models.UserSummary
}

func (s staticIdentity) CurrentUser(context.Context) (*models.UserSummary, error) {
	return s.user, nil
}

func identity(role models.Role) staticIdentity {
	return staticIdentity{user: &models.UserSummary{ID: "u-" + string(role), Name: "Test", Role: role}}
}

var anonymous = staticIdentity{}
