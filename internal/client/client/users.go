package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
)

// AuthResult is what the login and register endpoints return: the bearer
// token from the envelope and the identity built from its data object.
type AuthResult struct {
	Token string
	User  models.UserSummary
}

type credentials struct {
	Name      string      `json:"name,omitempty"`
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	Role      models.Role `json:"role,omitempty"`
	Bio       string      `json:"bio,omitempty"`
	SecretKey string      `json:"secretKey,omitempty"`
}

func (c *Client) authenticate(ctx context.Context, path string, body credentials) (AuthResult, error) {
	env, err := c.Do(ctx, http.MethodPost, path, body)
	if err != nil {
		return AuthResult{}, err
	}
	payload, err := decodeData[models.AuthPayload](env)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: env.Token, User: payload.Summary()}, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	return c.authenticate(ctx, "/users/login", credentials{Email: email, Password: password})
}

// Register creates a junior (or any role the backend accepts on the open
// endpoint) account.
func (c *Client) Register(ctx context.Context, name, email, password string, role models.Role) (AuthResult, error) {
	return c.authenticate(ctx, "/users/register", credentials{Name: name, Email: email, Password: password, Role: role})
}

func (c *Client) RegisterAdmin(ctx context.Context, name, email, password, secretKey string) (AuthResult, error) {
	return c.authenticate(ctx, "/admin/register", credentials{Name: name, Email: email, Password: password, SecretKey: secretKey})
}

func (c *Client) RegisterMentor(ctx context.Context, name, email, password, bio, secretKey string) (AuthResult, error) {
	return c.authenticate(ctx, "/mentor-profiles/register", credentials{Name: name, Email: email, Password: password, Bio: bio, SecretKey: secretKey})
}

func (c *Client) GetUserProfile(ctx context.Context, userID string) (models.User, error) {
	return call[models.User](ctx, c, http.MethodGet, "/users/"+seg(userID), nil)
}

func (c *Client) UpdateUserProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (models.User, error) {
	return call[models.User](ctx, c, http.MethodPatch, "/users/"+seg(userID), upd)
}

func (c *Client) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	body := map[string]string{"currentPassword": currentPassword, "newPassword": newPassword}
	return send(ctx, c, http.MethodPost, "/users/"+seg(userID)+"/change-password", body)
}

func (c *Client) GetApprovedMentors(ctx context.Context, page, limit int) (models.Page[models.User], error) {
	return list[models.User](ctx, c, "/users/mentors/approved", page, limit, nil)
}

func (c *Client) GetUserStats(ctx context.Context, userID string) (models.UserStats, error) {
	return call[models.UserStats](ctx, c, http.MethodGet, "/users/"+seg(userID)+"/stats", nil)
}

func (c *Client) GetUsersByRole(ctx context.Context, role models.Role, page, limit int) (models.Page[models.User], error) {
	return list[models.User](ctx, c, "/users/role/"+seg(string(role)), page, limit, nil)
}
