package cli

import (
	"context"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/client/views"
)

// Profile shows the caller's profile, another user's profile by id, or
// with "edit" walks through the editable fields.
func (a *App) Profile(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return a.usage("profile [userId|edit]")
	}
	if len(args) == 1 && args[0] == "edit" {
		return a.editProfile(ctx)
	}

	var id string
	if len(args) == 1 {
		id = args[0]
	}
	p, err := a.profiles.Profile(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	views.Profile(a.out, p)
	return nil
}

// editProfile sends only the fields the user typed something into.
func (a *App) editProfile(ctx context.Context) error {
	if _, err := a.gate(ctx); err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	bio, err := getSimpleText(a.reader, "New bio (empty to keep)", a.out)
	if err != nil {
		return err
	}

	var upd models.ProfileUpdate
	if name != "" {
		upd.Name = &name
	}
	if bio != "" {
		upd.Bio = &bio
	}
	if _, err := a.profiles.Update(ctx, upd); err != nil {
		return a.report(ctx, err)
	}
	views.Success(a.out, "Profile updated")
	return nil
}

func (a *App) Mentors(ctx context.Context, args []string) error {
	page, ok := pageArg(args, 0)
	if !ok {
		return a.usage("mentors [page]")
	}
	p, err := a.profiles.Mentors(ctx, page)
	if err != nil {
		return a.report(ctx, err)
	}
	views.MentorList(a.out, p)
	return nil
}

func (a *App) Passwd(ctx context.Context, args []string) error {
	if _, err := a.gate(ctx); err != nil {
		return err
	}
	current, err := a.secret("Current password")
	if err != nil {
		return err
	}
	next, err := a.secret("New password")
	if err != nil {
		return err
	}
	if err := a.profiles.ChangePassword(ctx, current, next); err != nil {
		return a.report(ctx, err)
	}
	views.Success(a.out, "Password changed")
	return nil
}
