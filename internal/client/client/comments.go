package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
)

func (c *Client) GetCommentsByDoubt(ctx context.Context, doubtID string) ([]models.Comment, error) {
	return call[[]models.Comment](ctx, c, http.MethodGet, "/comments/doubt/"+seg(doubtID), nil)
}

func (c *Client) GetCommentsByAnswer(ctx context.Context, answerID string) ([]models.Comment, error) {
	return call[[]models.Comment](ctx, c, http.MethodGet, "/comments/answer/"+seg(answerID), nil)
}

// CreateComment posts a comment on a doubt. A non-empty answerID makes it a
// threaded reply to that answer.
func (c *Client) CreateComment(ctx context.Context, doubtID, content, answerID string) (models.Comment, error) {
	return call[models.Comment](ctx, c, http.MethodPost, "/comments/"+seg(doubtID), contentBody{Content: content, AnswerID: answerID})
}

func (c *Client) UpdateComment(ctx context.Context, commentID, content string) (models.Comment, error) {
	return call[models.Comment](ctx, c, http.MethodPatch, "/comments/"+seg(commentID), contentBody{Content: content})
}

func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	return send(ctx, c, http.MethodDelete, "/comments/"+seg(commentID), nil)
}
