package views

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/client/services"
)

// Stat is one labelled counter.
type Stat struct {
	Label string
	Value int
}

// StatCards writes counters as a single aligned block.
func StatCards(w io.Writer, stats ...Stat) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range stats {
		fmt.Fprintf(tw, "  %s\t%d\n", s.Label, s.Value)
	}
	tw.Flush()
}

// AdminDashboard writes the admin overview. The moderation breakdown is
// skipped when it failed to load.
func AdminDashboard(w io.Writer, d *services.AdminDashboard) {
	heading(w, "Admin Dashboard")
	StatCards(w,
		Stat{"Total doubts", d.Platform.TotalDoubts},
		Stat{"Juniors", d.Platform.TotalJuniors},
		Stat{"Mentors", d.Platform.TotalMentors},
		Stat{"Pending mentors", d.Platform.PendingMentors},
	)
	if d.Actions == nil {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Moderation actions: %d\n", d.Actions.TotalActions)
	breakdown := make([]Stat, 0, len(d.Actions.ActionBreakdown))
	for _, a := range d.Actions.ActionBreakdown {
		breakdown = append(breakdown, Stat{ActionLabel(a.ActionType), a.Count})
	}
	StatCards(w, breakdown...)
}

// UserTable writes accounts as an aligned table.
func UserTable(w io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tSTATUS\tJOINED")
	for _, u := range users {
		status := "active"
		if u.IsBanned {
			status = "banned"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Name, u.Email, RoleBadge(u.Role, u.IsMentorApproved), status, date(u.CreatedAt))
	}
	tw.Flush()
}

// PendingMentors writes the mentor approval queue.
func PendingMentors(w io.Writer, users []models.User) {
	heading(w, "Pending mentors")
	if len(users) == 0 {
		fmt.Fprintln(w, "No mentors are waiting for approval.")
		return
	}
	for _, u := range users {
		fmt.Fprintf(w, "%s <%s> %s\n", u.Name, u.Email, PendingApprovalBadge)
		if u.Bio != "" {
			fmt.Fprintf(w, "  %s\n", truncate(u.Bio, PreviewLength))
		}
		fmt.Fprintf(w, "  id: %s · registered %s\n", u.ID, date(u.CreatedAt))
	}
}

// ActionLabel turns an action type into words, e.g. "ban_user" to "Ban user".
func ActionLabel(t models.ActionType) string {
	s := strings.ReplaceAll(string(t), "_", " ")
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ActionLog writes one page of the moderation log.
func ActionLog(w io.Writer, page models.Page[models.AdminAction]) {
	heading(w, "Admin activity")
	if len(page.Items) == 0 {
		fmt.Fprintln(w, "No admin actions recorded.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tADMIN\tACTION\tTARGET")
	for _, a := range page.Items {
		target := a.TargetID
		if a.TargetType != "" {
			target = a.TargetType + " " + a.TargetID
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", date(a.CreatedAt), a.Admin.DisplayName(a.Admin.ID), ActionLabel(a.ActionType), target)
	}
	tw.Flush()
	Pagination(w, page.Pagination)
}
