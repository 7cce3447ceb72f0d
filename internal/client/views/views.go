// Package views renders CodeShack view models as plain text.
//
// Renderers are stateless: they take a view model and write to an io.Writer.
// Write errors are ignored, the same way fmt.Println callers ignore them.
package views

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
)

const dateLayout = "Jan 2, 2006"

// PreviewLength is how many characters of a description a card shows.
const PreviewLength = 120

func date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n])) + "..."
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func indent(w io.Writer, prefix, text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		fmt.Fprintf(w, "%s%s\n", prefix, line)
	}
}

// Pagination writes the footer under a listing.
func Pagination(w io.Writer, p models.Pagination) {
	pages := p.Pages
	if pages < 1 {
		pages = 1
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	fmt.Fprintf(w, "Page %d of %d (%d total)", page, pages, p.Total)
	if page < pages {
		fmt.Fprintf(w, ", next: %d", page+1)
	}
	fmt.Fprintln(w)
}

// ErrorBanner writes a server or validation message.
func ErrorBanner(w io.Writer, msg string) {
	fmt.Fprintf(w, "✖ %s\n", msg)
}

// Success writes a confirmation line.
func Success(w io.Writer, msg string) {
	fmt.Fprintf(w, "✔ %s\n", msg)
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", utf8.RuneCountInString(title)))
}
