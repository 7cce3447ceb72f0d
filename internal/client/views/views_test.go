package views

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/client/services"
	"github.com/stretchr/testify/assert"
)

var day = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

func TestRoleBadge(t *testing.T) {
	assert.Equal(t, "✔ Verified Mentor", RoleBadge(models.RoleMentor, true))
	assert.Equal(t, "⏳ Pending Approval", RoleBadge(models.RoleMentor, false))
	assert.Equal(t, "Admin", RoleBadge(models.RoleAdmin, false))
	assert.Equal(t, "Junior", RoleBadge(models.RoleJunior, false))
}

func TestProfileBadge(t *testing.T) {
	assert.Equal(t, PendingApprovalBadge, ProfileBadge(models.RoleMentor, services.BadgePendingApproval))
	assert.Equal(t, VerifiedMentorBadge, ProfileBadge(models.RoleMentor, services.BadgeVerified))
	assert.Equal(t, AdminBadge, ProfileBadge(models.RoleAdmin, services.BadgeNone))
}

func TestPagination(t *testing.T) {
	var buf bytes.Buffer
	Pagination(&buf, models.Pagination{Total: 25, Pages: 3, Page: 1})
	assert.Equal(t, "Page 1 of 3 (25 total), next: 2\n", buf.String())

	buf.Reset()
	Pagination(&buf, models.Pagination{})
	assert.Equal(t, "Page 1 of 1 (0 total)\n", buf.String())
}

func TestErrorBanner(t *testing.T) {
	var buf bytes.Buffer
	ErrorBanner(&buf, "Doubt not found")
	assert.Equal(t, "✖ Doubt not found\n", buf.String())
}

func TestDoubtCard(t *testing.T) {
	var buf bytes.Buffer
	DoubtCard(&buf, models.Doubt{
		ID:          "d1",
		Title:       "Why does my goroutine leak",
		Description: strings.Repeat("word ", 40),
		Tags:        []string{"go", "concurrency"},
		Author:      models.Ref{ID: "u1", Name: "Jun"},
		Status:      models.DoubtStatusOpen,
		AnswerCount: 1,
		CreatedAt:   day,
	})
	out := buf.String()
	assert.Contains(t, out, "[open] Why does my goroutine leak")
	assert.Contains(t, out, "by Jun · Mar 5, 2024 · 1 answer\n")
	assert.Contains(t, out, "#go #concurrency")
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "id: d1")
}

func TestDoubtList_Empty(t *testing.T) {
	var buf bytes.Buffer
	DoubtList(&buf, models.Page[models.Doubt]{})
	assert.Equal(t, "No doubts yet.\n", buf.String())
}

func TestDoubtDetail_ThreadsReplies(t *testing.T) {
	var buf bytes.Buffer
	DoubtDetail(&buf, &services.DoubtDetail{
		Doubt: models.Doubt{ID: "d1", Title: "Title here", Description: "line one\nline two", Status: models.DoubtStatusAnswered, Author: models.Ref{ID: "u1"}},
		Answers: []services.AnswerView{{
			Answer:  models.Answer{ID: "a1", Content: "Close the channel.", Mentor: models.Ref{ID: "m1", Name: "Mia"}, UpvoteCount: 2},
			Upvoted: true,
			Replies: []models.Comment{{ID: "c2", Content: "Thanks!", Author: models.Ref{ID: "u1", Name: "Jun"}, AnswerID: models.Ref{ID: "a1"}}},
		}},
		Comments: []models.Comment{{ID: "c1", Content: "Same here", Author: models.Ref{ID: "u2", Name: "Ola"}}},
	})
	out := buf.String()
	assert.Contains(t, out, "asked by Anonymous")
	assert.Contains(t, out, "1 Answer\n")
	assert.Contains(t, out, "▲ 2  Mia")
	assert.Contains(t, out, "    Close the channel.\n")
	assert.Contains(t, out, "      ↳ Jun: Thanks!")
	assert.Contains(t, out, "1 Comment\n")
	assert.Contains(t, out, "  Ola: Same here")
	assert.Less(t, strings.Index(out, "Thanks!"), strings.Index(out, "Same here"))
}

func TestProfile(t *testing.T) {
	var buf bytes.Buffer
	Profile(&buf, &services.Profile{
		User:   models.User{ID: "m1", Name: "Max", Email: "max@x.io", Role: models.RoleMentor},
		Stats:  &models.UserStats{AnswersGiven: 4, UpvotesReceived: 9},
		Badge:  services.BadgePendingApproval,
		IsSelf: true,
	})
	out := buf.String()
	assert.Contains(t, out, "⏳ Pending Approval")
	assert.NotContains(t, out, "Verified")
	assert.Contains(t, out, "Email: max@x.io")
	assert.Contains(t, out, "Answers given")
	assert.Contains(t, out, "9")

	buf.Reset()
	Profile(&buf, &services.Profile{User: models.User{Name: "Jun", Email: "jun@x.io", Role: models.RoleJunior}})
	assert.NotContains(t, buf.String(), "jun@x.io")
	assert.NotContains(t, buf.String(), "Doubts asked")
}

func TestUserTable(t *testing.T) {
	var buf bytes.Buffer
	UserTable(&buf, []models.User{
		{ID: "u1", Name: "Jun", Email: "jun@x.io", Role: models.RoleJunior, IsBanned: true},
		{ID: "u2", Name: "Mia", Email: "mia@x.io", Role: models.RoleMentor, IsMentorApproved: true},
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "banned")
	assert.Contains(t, lines[2], "✔ Verified Mentor")
	assert.Contains(t, lines[2], "active")
}

func TestActionLog(t *testing.T) {
	assert.Equal(t, "Delete junior post", ActionLabel(models.ActionDeleteJuniorPost))

	var buf bytes.Buffer
	ActionLog(&buf, models.Page[models.AdminAction]{
		Items: []models.AdminAction{{ActionType: models.ActionBanUser, Admin: models.Ref{ID: "a1", Name: "Ada"}, TargetID: "u1", TargetType: "user", CreatedAt: day}},
		Pagination: models.Pagination{Total: 1, Pages: 1, Page: 1},
	})
	out := buf.String()
	assert.Contains(t, out, "Ban user")
	assert.Contains(t, out, "user u1")
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "Page 1 of 1 (1 total)")
}

func TestAdminDashboard(t *testing.T) {
	var buf bytes.Buffer
	AdminDashboard(&buf, &services.AdminDashboard{
		Platform: services.PlatformStats{TotalDoubts: 12, TotalJuniors: 5, TotalMentors: 3, PendingMentors: 1},
	})
	out := buf.String()
	assert.Contains(t, out, "Total doubts")
	assert.Contains(t, out, "12")
	assert.NotContains(t, out, "Moderation actions")
}

func TestSpaceFeed(t *testing.T) {
	var buf bytes.Buffer
	SpaceFeed(&buf, models.Page[models.JuniorSpacePost]{
		Items:      []models.JuniorSpacePost{{ID: "p1", Content: "hello juniors", Author: models.Ref{ID: "u1", Name: "Jun"}, CreatedAt: day}},
		Pagination: models.Pagination{Total: 1, Pages: 1, Page: 1},
	})
	assert.Contains(t, buf.String(), "Jun · Mar 5, 2024\n  hello juniors\n")
}
