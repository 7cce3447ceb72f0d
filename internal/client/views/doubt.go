package views

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/client/services"
)

func tags(ts []string) string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, "#"+t)
	}
	return strings.Join(out, " ")
}

// DoubtCard writes the summary of one doubt as shown in feeds.
func DoubtCard(w io.Writer, d models.Doubt) {
	fmt.Fprintf(w, "[%s] %s\n", d.Status, d.Title)
	fmt.Fprintf(w, "  by %s · %s · %s\n",
		d.Author.DisplayName("Anonymous"), date(d.CreatedAt), plural(d.AnswerCount, "answer", "answers"))
	if d.Description != "" {
		fmt.Fprintf(w, "  %s\n", truncate(d.Description, PreviewLength))
	}
	if len(d.Tags) > 0 {
		fmt.Fprintf(w, "  %s\n", tags(d.Tags))
	}
	fmt.Fprintf(w, "  id: %s\n", d.ID)
}

// DoubtList writes a page of doubt cards followed by the pagination footer.
func DoubtList(w io.Writer, page models.Page[models.Doubt]) {
	if len(page.Items) == 0 {
		fmt.Fprintln(w, "No doubts yet.")
		return
	}
	for i, d := range page.Items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		DoubtCard(w, d)
	}
	fmt.Fprintln(w)
	Pagination(w, page.Pagination)
}

// Dashboard writes the home screen.
func Dashboard(w io.Writer, d *services.Dashboard) {
	heading(w, fmt.Sprintf("Welcome, %s (%s)", d.User.Name, RoleBadge(d.User.Role, d.User.IsMentorApproved)))
	if d.User.IsJunior() {
		fmt.Fprintln(w, "Your doubts:")
	} else {
		fmt.Fprintln(w, "Doubts waiting for help:")
	}
	if len(d.Doubts) == 0 {
		fmt.Fprintln(w, "  nothing here yet")
		return
	}
	for _, doubt := range d.Doubts {
		fmt.Fprintln(w)
		DoubtCard(w, doubt)
	}
}

// DoubtDetail writes a doubt with its answers, their replies and the
// top-level comments.
func DoubtDetail(w io.Writer, d *services.DoubtDetail) {
	doubt := d.Doubt
	heading(w, doubt.Title)
	fmt.Fprintf(w, "%s · asked by %s on %s\n", doubt.Status, doubt.Author.DisplayName("Anonymous"), date(doubt.CreatedAt))
	if len(doubt.Tags) > 0 {
		fmt.Fprintln(w, tags(doubt.Tags))
	}
	fmt.Fprintln(w)
	indent(w, "", doubt.Description)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n", plural(len(d.Answers), "Answer", "Answers"))
	for _, a := range d.Answers {
		fmt.Fprintln(w)
		AnswerCard(w, a)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n", plural(len(d.Comments), "Comment", "Comments"))
	for _, c := range d.Comments {
		comment(w, "  ", c)
	}
}

// AnswerCard writes one answer with its upvote state and threaded replies.
func AnswerCard(w io.Writer, a services.AnswerView) {
	mark := "△"
	if a.Upvoted {
		mark = "▲"
	}
	author := a.Mentor.DisplayName("Mentor")
	fmt.Fprintf(w, "  %s %d  %s · %s\n", mark, a.UpvoteCount, author, date(a.CreatedAt))
	indent(w, "    ", a.Content)
	fmt.Fprintf(w, "    id: %s\n", a.ID)
	for _, r := range a.Replies {
		comment(w, "      ↳ ", r)
	}
}

func comment(w io.Writer, prefix string, c models.Comment) {
	fmt.Fprintf(w, "%s%s: %s (%s)\n", prefix, c.Author.DisplayName("User"), c.Content, date(c.CreatedAt))
}

// TrendingTags writes the top tags with their category.
func TrendingTags(w io.Writer, ts []services.TrendingTag) {
	if len(ts) == 0 {
		return
	}
	fmt.Fprintln(w, "Trending tags:")
	for _, t := range ts {
		fmt.Fprintf(w, "  #%s (%s) %s\n", t.Tag, t.Category, plural(t.Count, "doubt", "doubts"))
	}
}
