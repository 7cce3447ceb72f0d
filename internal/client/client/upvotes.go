package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
)

// UpvoteAnswer adds the caller's upvote. The returned status carries the new
// count.
func (c *Client) UpvoteAnswer(ctx context.Context, answerID string) (models.UpvoteStatus, error) {
	st, err := call[models.UpvoteStatus](ctx, c, http.MethodPost, "/upvotes/"+seg(answerID), nil)
	if err != nil {
		return models.UpvoteStatus{}, err
	}
	st.IsUpvoted = true
	return st, nil
}

func (c *Client) RemoveUpvote(ctx context.Context, answerID string) (models.UpvoteStatus, error) {
	st, err := call[models.UpvoteStatus](ctx, c, http.MethodDelete, "/upvotes/"+seg(answerID), nil)
	if err != nil {
		return models.UpvoteStatus{}, err
	}
	st.IsUpvoted = false
	return st, nil
}

func (c *Client) CheckIfUpvoted(ctx context.Context, answerID, userID string) (bool, error) {
	st, err := call[models.UpvoteStatus](ctx, c, http.MethodGet, "/upvotes/"+seg(answerID)+"/check/"+seg(userID), nil)
	if err != nil {
		return false, err
	}
	return st.IsUpvoted, nil
}
