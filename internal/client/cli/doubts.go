package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/client/services"
	"github.com/dmitrijs2005/codeshack/internal/client/views"
)

var getList = GetList

// Feed shows the role dashboard followed by the trending tags.
func (a *App) Feed(ctx context.Context, args []string) error {
	d, err := a.qa.Dashboard(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	views.Dashboard(a.out, d)

	tags, err := a.qa.TrendingTags(ctx)
	if err != nil {
		// The dashboard is already on screen.
		a.log.Warn(ctx, "trending tags unavailable", "error", err)
		return nil
	}
	fmt.Fprintln(a.out)
	views.TrendingTags(a.out, tags)
	return nil
}

func (a *App) Doubts(ctx context.Context, args []string) error {
	page, ok := pageArg(args, 0)
	if !ok {
		return a.usage("doubts [page]")
	}
	p, err := a.qa.ListDoubts(ctx, page)
	if err != nil {
		return a.report(ctx, err)
	}
	views.DoubtList(a.out, p)
	return nil
}

func (a *App) Doubt(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("doubt <id>")
	}
	d, err := a.qa.Detail(ctx, args[0])
	if err != nil {
		return a.report(ctx, err)
	}
	views.DoubtDetail(a.out, d)
	return nil
}

// Ask collects a new doubt. Tags are entered as a comma separated list.
func (a *App) Ask(ctx context.Context, args []string) error {
	if _, err := a.gate(ctx); err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	desc, err := getMultiline(a.reader, "Describe your doubt (finish with an empty line)", a.out)
	if err != nil {
		return err
	}
	tags, err := getList(a.reader, "Tags, comma separated (e.g. "+strings.Join(services.KnownTags[:3], ", ")+")", a.out)
	if err != nil {
		return err
	}

	d, err := a.qa.AskDoubt(ctx, models.NewDoubt{Title: title, Description: desc, Tags: tags})
	if err != nil {
		return a.report(ctx, err)
	}
	views.Success(a.out, fmt.Sprintf("Doubt posted (id %s)", d.ID))
	return nil
}

func (a *App) Answer(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("answer <doubtId>")
	}
	u, err := a.gate(ctx)
	if err != nil {
		return err
	}
	if !u.IsMentor() {
		return a.report(ctx, &services.ValidationError{Field: "content", Message: "Only mentors can post answers"})
	}
	content, err := getMultiline(a.reader, "Your answer (finish with an empty line)", a.out)
	if err != nil {
		return err
	}
	ans, err := a.qa.PostAnswer(ctx, args[0], content)
	if err != nil {
		return a.report(ctx, err)
	}
	views.Success(a.out, fmt.Sprintf("Answer posted (id %s)", ans.ID))
	return nil
}

func (a *App) EditAnswer(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("edit-answer <answerId>")
	}
	if _, err := a.gate(ctx, models.RoleMentor); err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "New answer text (finish with an empty line)", a.out)
	if err != nil {
		return err
	}
	if _, err := a.qa.EditAnswer(ctx, args[0], content); err != nil {
		return a.report(ctx, err)
	}
	views.Success(a.out, "Answer updated")
	return nil
}

func (a *App) DeleteAnswer(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("delete-answer <answerId>")
	}
	if err := a.qa.DeleteAnswer(ctx, args[0]); err != nil {
		return a.report(ctx, err)
	}
	views.Success(a.out, "Answer deleted")
	return nil
}

// Comment posts on a doubt, or replies to one of its answers when an answer
// id follows.
func (a *App) Comment(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return a.usage("comment <doubtId> [answerId]")
	}
	if _, err := a.gate(ctx); err != nil {
		return err
	}
	content, err := getSimpleText(a.reader, "Comment", a.out)
	if err != nil {
		return err
	}
	if len(args) == 2 {
		_, err = a.qa.Reply(ctx, args[0], args[1], content)
	} else {
		_, err = a.qa.PostComment(ctx, args[0], content)
	}
	if err != nil {
		return a.report(ctx, err)
	}
	views.Success(a.out, "Comment added")
	return nil
}

func (a *App) Upvote(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("upvote <answerId>")
	}
	st, err := a.qa.ToggleUpvote(ctx, args[0])
	if err != nil {
		return a.report(ctx, err)
	}
	if st.IsUpvoted {
		views.Success(a.out, fmt.Sprintf("Upvoted (%d)", st.UpvoteCount))
	} else {
		views.Success(a.out, fmt.Sprintf("Upvote removed (%d)", st.UpvoteCount))
	}
	return nil
}
