package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/codeshack/internal/client/client"
	"github.com/dmitrijs2005/codeshack/internal/client/services"
	"github.com/dmitrijs2005/codeshack/internal/client/views"
)

const (
	retryMessage       = "Could not reach the server. Please check your connection and try again."
	sessionExpiredHint = "Your session may have expired; run 'login' to sign in again."
)

var errUsage = errors.New("usage")

// report shows err to the user and returns it unchanged.
//
//   - validation errors print inline, as the form would show them;
//   - access errors tell the user to log in or that the page is not theirs;
//   - server rejections print in an error banner with the server message;
//   - anything else is logged and answered with a generic retry prompt.
func (a *App) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var (
		ve *services.ValidationError
		re *client.RequestError
	)
	switch {
	case errors.Is(err, errUsage):
	case errors.As(err, &ve):
		fmt.Fprintf(a.out, "  ! %s\n", ve.Message)
	case errors.Is(err, services.ErrNotAuthenticated):
		views.ErrorBanner(a.out, "Please log in to continue (use 'login' or 'register').")
	case errors.Is(err, services.ErrForbidden):
		views.ErrorBanner(a.out, "You do not have access to this page.")
	case errors.As(err, &re):
		a.log.Debug(ctx, "request rejected", "status", re.Status, "message", re.Message)
		views.ErrorBanner(a.out, client.Message(err))
		if a.sessionRejected(ctx, err, re) {
			fmt.Fprintln(a.out, sessionExpiredHint)
		}
	case errors.Is(err, context.Canceled):
	default:
		a.log.Error(ctx, "command failed", "error", err)
		views.ErrorBanner(a.out, retryMessage)
	}
	return err
}

// sessionRejected reports whether the server refused the stored token. The
// client never checks expiry itself, so a 401 on a signed-in call is how an
// expired session shows up. 403 means the account lacks the right, not that
// the token is stale.
func (a *App) sessionRejected(ctx context.Context, err error, re *client.RequestError) bool {
	return client.IsUnauthorized(err) && re.Status == http.StatusUnauthorized && a.isLoggedIn(ctx)
}

// usage prints the expected arguments of a command.
func (a *App) usage(text string) error {
	fmt.Fprintf(a.out, "Usage: %s\n", text)
	return errUsage
}

// pageArg parses an optional 1-based page number at args[i].
func pageArg(args []string, i int) (int, bool) {
	if len(args) <= i {
		return 1, true
	}
	n, err := strconv.Atoi(args[i])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
