package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
)

// Default page sizes of the admin listings.
const (
	DefaultUnverifiedMentorsLimit = 50
	DefaultAdminActionsLimit      = 20
)

func (c *Client) ApproveMentor(ctx context.Context, mentorID string) error {
	return send(ctx, c, http.MethodPost, "/admin/approve-mentor/"+seg(mentorID), nil)
}

func (c *Client) RejectMentor(ctx context.Context, mentorID string) error {
	return send(ctx, c, http.MethodPost, "/admin/reject-mentor/"+seg(mentorID), nil)
}

func (c *Client) GetPendingMentors(ctx context.Context, page, limit int) (models.Page[models.User], error) {
	return list[models.User](ctx, c, "/mentor-profiles/pending", page, limit, nil)
}

func (c *Client) GetUnverifiedMentors(ctx context.Context, page, limit int) (models.Page[models.User], error) {
	if limit <= 0 {
		limit = DefaultUnverifiedMentorsLimit
	}
	return list[models.User](ctx, c, "/admin/unverified-mentors", page, limit, nil)
}

func (c *Client) AdminDeleteDoubt(ctx context.Context, id string) error {
	return send(ctx, c, http.MethodDelete, "/admin/doubt/"+seg(id), nil)
}

func (c *Client) AdminDeleteAnswer(ctx context.Context, id string) error {
	return send(ctx, c, http.MethodDelete, "/admin/answer/"+seg(id), nil)
}

func (c *Client) AdminDeleteComment(ctx context.Context, id string) error {
	return send(ctx, c, http.MethodDelete, "/admin/comment/"+seg(id), nil)
}

func (c *Client) AdminDeleteJuniorPost(ctx context.Context, id string) error {
	return send(ctx, c, http.MethodDelete, "/admin/junior-post/"+seg(id), nil)
}

func (c *Client) BanUser(ctx context.Context, userID string) error {
	return send(ctx, c, http.MethodPost, "/admin/ban-user/"+seg(userID), nil)
}

func (c *Client) UnbanUser(ctx context.Context, userID string) error {
	return send(ctx, c, http.MethodPost, "/admin/unban-user/"+seg(userID), nil)
}

// GetAdminActions lists the moderation log. An empty actionType returns
// every kind of action.
func (c *Client) GetAdminActions(ctx context.Context, page, limit int, actionType models.ActionType) (models.Page[models.AdminAction], error) {
	if limit <= 0 {
		limit = DefaultAdminActionsLimit
	}
	var extra url.Values
	if actionType != "" {
		extra = url.Values{"actionType": {string(actionType)}}
	}
	return list[models.AdminAction](ctx, c, "/admin/actions", page, limit, extra)
}

func (c *Client) GetAdminStats(ctx context.Context) (models.AdminStats, error) {
	return call[models.AdminStats](ctx, c, http.MethodGet, "/admin/stats", nil)
}
