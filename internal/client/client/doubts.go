package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
)

func (c *Client) GetDoubts(ctx context.Context, page, limit int) (models.Page[models.Doubt], error) {
	return list[models.Doubt](ctx, c, "/doubts", page, limit, nil)
}

// GetDoubt returns a doubt with its answers embedded.
func (c *Client) GetDoubt(ctx context.Context, id string) (models.Doubt, error) {
	return call[models.Doubt](ctx, c, http.MethodGet, "/doubts/"+seg(id), nil)
}

func (c *Client) CreateDoubt(ctx context.Context, d models.NewDoubt) (models.Doubt, error) {
	return call[models.Doubt](ctx, c, http.MethodPost, "/doubts", d)
}

func (c *Client) UpdateDoubt(ctx context.Context, id string, upd models.DoubtUpdate) (models.Doubt, error) {
	return call[models.Doubt](ctx, c, http.MethodPatch, "/doubts/"+seg(id), upd)
}

func (c *Client) DeleteDoubt(ctx context.Context, id string) error {
	return send(ctx, c, http.MethodDelete, "/doubts/"+seg(id), nil)
}

func (c *Client) GetDoubtStats(ctx context.Context) (models.DoubtStats, error) {
	return call[models.DoubtStats](ctx, c, http.MethodGet, "/doubts/stats/overview", nil)
}
