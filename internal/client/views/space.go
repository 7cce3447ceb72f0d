package views

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
)

// SpaceFeed writes a page of junior space posts, newest first as served.
func SpaceFeed(w io.Writer, page models.Page[models.JuniorSpacePost]) {
	heading(w, "Junior Space")
	if len(page.Items) == 0 {
		fmt.Fprintln(w, "No posts yet. Be the first to share something!")
		return
	}
	for _, p := range page.Items {
		fmt.Fprintf(w, "%s · %s\n", p.Author.DisplayName("Junior"), date(p.CreatedAt))
		indent(w, "  ", p.Content)
		fmt.Fprintln(w)
	}
	Pagination(w, page.Pagination)
}
