package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/client/services"
	"github.com/dmitrijs2005/codeshack/internal/client/session"
	"github.com/dmitrijs2005/codeshack/internal/client/views"
	"github.com/dmitrijs2005/codeshack/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// secret reads a hidden value and returns it as a string, wiping the
// buffer.
func (a *App) secret(prompt string) (string, error) {
	b, err := getPassword(prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(b)
	return string(b), nil
}

// Register walks through the signup form. Mentor and admin accounts need
// the secret key handed out by the platform.
func (a *App) Register(ctx context.Context, args []string) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.secret("Enter password")
	if err != nil {
		return err
	}

	req := services.SignupRequest{Name: name, Email: email, Password: password, Role: models.RoleJunior}
	roleText, err := getSimpleText(a.reader, "Role (junior, mentor, admin) [junior]", a.out)
	if err != nil {
		return err
	}
	if roleText != "" {
		role, err := models.ParseRole(roleText)
		if err != nil {
			return a.report(ctx, &services.ValidationError{Field: "role", Message: "Please choose junior, mentor or admin"})
		}
		req.Role = role
	}

	switch req.Role {
	case models.RoleMentor:
		if req.Bio, err = getSimpleText(a.reader, "Short bio (optional)", a.out); err != nil {
			return err
		}
		if req.SecretKey, err = a.secret("Mentor secret key"); err != nil {
			return err
		}
	case models.RoleAdmin:
		if req.SecretKey, err = a.secret("Admin secret key"); err != nil {
			return err
		}
	}

	u, err := a.auth.Signup(ctx, req)
	if err != nil {
		return a.report(ctx, err)
	}
	views.Success(a.out, fmt.Sprintf("Welcome to CodeShack, %s!", u.Name))
	if u.IsMentor() && !u.IsMentorApproved {
		fmt.Fprintln(a.out, "Your mentor account is pending approval by an admin.")
	}
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context, args []string) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.secret("Enter password")
	if err != nil {
		return err
	}

	u, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return a.report(ctx, err)
	}
	views.Success(a.out, fmt.Sprintf("Logged in as %s (%s)", u.Name, views.RoleBadge(u.Role, u.IsMentorApproved)))
	return nil
}

// Logout drops the local session.
func (a *App) Logout(ctx context.Context, args []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return a.report(ctx, err)
	}
	views.Success(a.out, "Logged out")
	return nil
}

// Whoami prints the cached identity and, when the token carries one, its
// expiry.
func (a *App) Whoami(ctx context.Context, args []string) error {
	s, err := a.store.Load(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	if s == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	u := s.User
	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	fmt.Fprintf(a.out, "Role: %s\n", views.RoleBadge(u.Role, u.IsMentorApproved))
	fmt.Fprintf(a.out, "ID: %s\n", u.ID)

	exp, ok, err := session.TokenExpiry(s.Token)
	switch {
	case err != nil:
		a.log.Debug(ctx, "token expiry unreadable", "error", err)
	case ok && exp.Before(time.Now()):
		fmt.Fprintf(a.out, "Session expired at %s; log in again.\n", exp.Format(time.RFC1123))
	case ok:
		fmt.Fprintf(a.out, "Session valid until %s\n", exp.Format(time.RFC1123))
	}
	return nil
}
