package views

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/client/services"
)

// Profile writes a profile page. Activity counters are omitted when the
// stats could not be loaded.
func Profile(w io.Writer, p *services.Profile) {
	u := p.User
	heading(w, u.Name)
	fmt.Fprintln(w, ProfileBadge(u.Role, p.Badge))
	if p.IsSelf {
		fmt.Fprintf(w, "Email: %s\n", u.Email)
	}
	if u.Bio != "" {
		fmt.Fprintf(w, "Bio: %s\n", u.Bio)
	}
	if !u.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Member since %s\n", date(u.CreatedAt))
	}
	if p.Stats == nil {
		return
	}

	st := p.Stats
	fmt.Fprintln(w)
	switch u.Role {
	case models.RoleMentor:
		StatCards(w,
			Stat{"Answers given", st.AnswersGiven},
			Stat{"Upvotes received", st.UpvotesReceived},
			Stat{"Comments", st.CommentsPosted},
		)
	default:
		StatCards(w,
			Stat{"Doubts asked", st.DoubtsAsked},
			Stat{"Doubts solved", st.DoubtsSolved},
			Stat{"Comments", st.CommentsPosted},
		)
	}
}

// MentorList writes the approved mentors directory.
func MentorList(w io.Writer, page models.Page[models.User]) {
	heading(w, "Mentors")
	if len(page.Items) == 0 {
		fmt.Fprintln(w, "No approved mentors yet.")
		return
	}
	for _, m := range page.Items {
		fmt.Fprintf(w, "%s %s\n", VerifiedMentorBadge, m.Name)
		if m.Bio != "" {
			fmt.Fprintf(w, "  %s\n", truncate(m.Bio, PreviewLength))
		}
		fmt.Fprintf(w, "  id: %s\n", m.ID)
	}
	Pagination(w, page.Pagination)
}
