// Package services contains application services for the CodeShack client.
// This file defines the authentication facade: login, signup, logout and
// role predicates over the locally stored session.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/codeshack/internal/client/client"
	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/client/session"
	"github.com/dmitrijs2005/codeshack/internal/logging"
)

var errNoToken = errors.New("server response carried no token")

// AuthAPI is the subset of the API client the auth facade calls.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (client.AuthResult, error)
	Register(ctx context.Context, name, email, password string, role models.Role) (client.AuthResult, error)
	RegisterMentor(ctx context.Context, name, email, password, bio, secretKey string) (client.AuthResult, error)
	RegisterAdmin(ctx context.Context, name, email, password, secretKey string) (client.AuthResult, error)
}

var _ AuthAPI = (*client.Client)(nil)

// SignupRequest carries the signup form. SecretKey is required for the
// mentor and admin roles; Bio is only sent for mentors.
type SignupRequest struct {
	Name      string
	Email     string
	Password  string
	Role      models.Role
	SecretKey string
	Bio       string
}

// AuthService is the only component other code depends on for identity.
//
// Contract:
//   - Login/Signup: on success persist the session and return the user; on
//     failure leave the stored session untouched.
//   - Logout: clear the session unconditionally. The server is not called.
//   - CurrentUser: read the stored session, never the network. Returns nil
//     when anonymous.
//   - Role predicates: pure functions of the cached user.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.UserSummary, error)
	Signup(ctx context.Context, req SignupRequest) (*models.UserSummary, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.UserSummary, error)

	IsAuthenticated(ctx context.Context) bool
	IsJunior(ctx context.Context) bool
	IsMentor(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
	IsMentorApproved(ctx context.Context) bool
}

type authService struct {
	api   AuthAPI
	store session.Store
	log   logging.Logger
}

func NewAuthService(api AuthAPI, store session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Discard()
	}
	return &authService{api: api, store: store, log: log}
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.UserSummary, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, invalid("email", "Please enter your email")
	}
	if password == "" {
		return nil, invalid("password", "Please enter your password")
	}

	res, err := a.api.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return a.establish(ctx, res)
}

func (a *authService) Signup(ctx context.Context, req SignupRequest) (*models.UserSummary, error) {
	role := req.Role
	if role == "" {
		role = models.RoleJunior
	}
	if !role.Valid() {
		return nil, invalid("role", fmt.Sprintf("Unknown role %q", role))
	}
	name, email := strings.TrimSpace(req.Name), strings.TrimSpace(req.Email)
	switch {
	case name == "":
		return nil, invalid("name", "Please enter your name")
	case email == "":
		return nil, invalid("email", "Please enter your email")
	}
	if err := ValidatePassword("password", req.Password); err != nil {
		return nil, err
	}

	var (
		res client.AuthResult
		err error
	)
	switch role {
	case models.RoleMentor:
		if req.SecretKey == "" {
			return nil, invalid("secretKey", "Mentor secret key is required")
		}
		res, err = a.api.RegisterMentor(ctx, name, email, req.Password, strings.TrimSpace(req.Bio), req.SecretKey)
	case models.RoleAdmin:
		if req.SecretKey == "" {
			return nil, invalid("secretKey", "Admin secret key is required")
		}
		res, err = a.api.RegisterAdmin(ctx, name, email, req.Password, req.SecretKey)
	default:
		res, err = a.api.Register(ctx, name, email, req.Password, role)
	}
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	return a.establish(ctx, res)
}

// establish persists a freshly issued session.
func (a *authService) establish(ctx context.Context, res client.AuthResult) (*models.UserSummary, error) {
	if res.Token == "" {
		return nil, errNoToken
	}
	if err := a.store.Save(ctx, session.Session{Token: res.Token, User: res.User}); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	a.log.Info(ctx, "signed in", "user_id", res.User.ID, "role", res.User.Role)
	u := res.User
	return &u, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (a *authService) CurrentUser(ctx context.Context) (*models.UserSummary, error) {
	s, err := a.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if s == nil {
		return nil, nil
	}
	u := s.User
	return &u, nil
}

// user is CurrentUser with storage errors treated as anonymous.
func (a *authService) user(ctx context.Context) *models.UserSummary {
	u, err := a.CurrentUser(ctx)
	if err != nil {
		a.log.Warn(ctx, "session unreadable", "error", err)
		return nil
	}
	return u
}

func (a *authService) IsAuthenticated(ctx context.Context) bool { return a.user(ctx) != nil }
func (a *authService) IsJunior(ctx context.Context) bool        { return a.user(ctx).IsJunior() }
func (a *authService) IsMentor(ctx context.Context) bool        { return a.user(ctx).IsMentor() }
func (a *authService) IsAdmin(ctx context.Context) bool         { return a.user(ctx).IsAdmin() }

func (a *authService) IsMentorApproved(ctx context.Context) bool {
	return a.user(ctx).IsApprovedMentor()
}
