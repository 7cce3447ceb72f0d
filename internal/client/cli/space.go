package cli

import (
	"context"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/client/views"
)

func (a *App) Space(ctx context.Context, args []string) error {
	page, ok := pageArg(args, 0)
	if !ok {
		return a.usage("space [page]")
	}
	p, err := a.space.Posts(ctx, page)
	if err != nil {
		return a.report(ctx, err)
	}
	views.SpaceFeed(a.out, p)
	return nil
}

// Post shares a message in the junior space.
func (a *App) Post(ctx context.Context, args []string) error {
	if _, err := a.gate(ctx, models.RoleJunior); err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Share something with other juniors (finish with an empty line)", a.out)
	if err != nil {
		return err
	}
	if _, err := a.space.Post(ctx, content); err != nil {
		return a.report(ctx, err)
	}
	views.Success(a.out, "Posted to the junior space")
	return nil
}
