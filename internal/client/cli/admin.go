package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/client/services"
	"github.com/dmitrijs2005/codeshack/internal/client/views"
)

func (a *App) Admin(ctx context.Context, args []string) error {
	d, err := a.admin.Dashboard(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	views.AdminDashboard(a.out, d)
	return nil
}

// PendingMentors loads the approval queue and remembers it for approve and
// reject.
func (a *App) PendingMentors(ctx context.Context, args []string) error {
	users, err := a.admin.PendingMentors(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	a.pending = users
	views.PendingMentors(a.out, users)
	return nil
}

func (a *App) Approve(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("approve <mentorId>")
	}
	pending, err := a.admin.ApproveMentor(ctx, a.pending, args[0])
	if err != nil {
		return a.report(ctx, err)
	}
	a.pending = pending
	views.Success(a.out, "Mentor approved")
	return nil
}

func (a *App) Reject(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("reject <mentorId>")
	}
	pending, err := a.admin.RejectMentor(ctx, a.pending, args[0])
	if err != nil {
		return a.report(ctx, err)
	}
	a.pending = pending
	views.Success(a.out, "Mentor rejected")
	return nil
}

func (a *App) Users(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return a.usage("users [all|junior|mentor]")
	}
	var arg string
	if len(args) == 1 {
		arg = args[0]
	}
	filter, err := services.ParseUserFilter(arg)
	if err != nil {
		return a.report(ctx, err)
	}
	users, err := a.admin.Users(ctx, filter)
	if err != nil {
		return a.report(ctx, err)
	}
	a.userFilter = filter
	views.UserTable(a.out, users)
	return nil
}

// Ban and Unban re-list users with the filter of the last users command.

func (a *App) Ban(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("ban <userId>")
	}
	users, err := a.admin.Ban(ctx, args[0], a.userFilter)
	if err != nil {
		return a.report(ctx, err)
	}
	views.Success(a.out, "User banned")
	views.UserTable(a.out, users)
	return nil
}

func (a *App) Unban(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("unban <userId>")
	}
	users, err := a.admin.Unban(ctx, args[0], a.userFilter)
	if err != nil {
		return a.report(ctx, err)
	}
	views.Success(a.out, "User unbanned")
	views.UserTable(a.out, users)
	return nil
}

func (a *App) Activity(ctx context.Context, args []string) error {
	if len(args) > 2 {
		return a.usage("activity [page] [type]")
	}
	page, ok := pageArg(args, 0)
	if !ok {
		return a.usage("activity [page] [type]")
	}
	var actionType models.ActionType
	if len(args) == 2 {
		actionType = models.ActionType(args[1])
	}
	p, err := a.admin.Activity(ctx, page, actionType)
	if err != nil {
		return a.report(ctx, err)
	}
	views.ActionLog(a.out, p)
	return nil
}

// Remove deletes any doubt, answer, comment or junior space post.
func (a *App) Remove(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return a.usage("rm <doubt|answer|comment|post> <id>")
	}
	kind := services.ContentKind(args[0])
	if err := a.admin.Delete(ctx, kind, args[1]); err != nil {
		return a.report(ctx, err)
	}
	views.Success(a.out, fmt.Sprintf("Deleted %s %s", kind, args[1]))
	return nil
}
