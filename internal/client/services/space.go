package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/codeshack/internal/client/client"
	"github.com/dmitrijs2005/codeshack/internal/client/models"
)

const SpacePageSize = 20

type SpaceAPI interface {
	GetJuniorSpacePosts(ctx context.Context, page, limit int) (models.Page[models.JuniorSpacePost], error)
	CreateJuniorSpacePost(ctx context.Context, content string) (models.JuniorSpacePost, error)
}

var _ SpaceAPI = (*client.Client)(nil)

// SpaceService backs the juniors-only community board.
type SpaceService interface {
	Posts(ctx context.Context, page int) (models.Page[models.JuniorSpacePost], error)
	Post(ctx context.Context, content string) (models.JuniorSpacePost, error)
}

type spaceService struct {
	api SpaceAPI
	id  Identity
}

func NewSpaceService(api SpaceAPI, id Identity) SpaceService {
	return &spaceService{api: api, id: id}
}

func (s *spaceService) Posts(ctx context.Context, page int) (models.Page[models.JuniorSpacePost], error) {
	if _, err := requireUser(ctx, s.id, models.RoleJunior); err != nil {
		return models.Page[models.JuniorSpacePost]{}, err
	}
	if page < 1 {
		page = 1
	}
	return s.api.GetJuniorSpacePosts(ctx, page, SpacePageSize)
}

func (s *spaceService) Post(ctx context.Context, content string) (models.JuniorSpacePost, error) {
	if _, err := requireUser(ctx, s.id, models.RoleJunior); err != nil {
		return models.JuniorSpacePost{}, err
	}
	c, err := ValidateSpacePost(content)
	if err != nil {
		return models.JuniorSpacePost{}, err
	}
	p, err := s.api.CreateJuniorSpacePost(ctx, c)
	if err != nil {
		return models.JuniorSpacePost{}, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}
