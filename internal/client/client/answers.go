package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
)

type contentBody struct {
	Content  string `json:"content"`
	AnswerID string `json:"answerId,omitempty"`
}

func (c *Client) GetAnswersByDoubt(ctx context.Context, doubtID string) ([]models.Answer, error) {
	return call[[]models.Answer](ctx, c, http.MethodGet, "/answers/doubt/"+seg(doubtID), nil)
}

func (c *Client) CreateAnswer(ctx context.Context, doubtID, content string) (models.Answer, error) {
	return call[models.Answer](ctx, c, http.MethodPost, "/answers/"+seg(doubtID), contentBody{Content: content})
}

func (c *Client) UpdateAnswer(ctx context.Context, answerID, content string) (models.Answer, error) {
	return call[models.Answer](ctx, c, http.MethodPatch, "/answers/"+seg(answerID), contentBody{Content: content})
}

func (c *Client) DeleteAnswer(ctx context.Context, answerID string) error {
	return send(ctx, c, http.MethodDelete, "/answers/"+seg(answerID), nil)
}
