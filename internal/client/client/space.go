package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
)

func (c *Client) GetJuniorSpacePosts(ctx context.Context, page, limit int) (models.Page[models.JuniorSpacePost], error) {
	return list[models.JuniorSpacePost](ctx, c, "/junior-space-posts", page, limit, nil)
}

func (c *Client) CreateJuniorSpacePost(ctx context.Context, content string) (models.JuniorSpacePost, error) {
	return call[models.JuniorSpacePost](ctx, c, http.MethodPost, "/junior-space-posts", contentBody{Content: content})
}
