package models

import "time"

// JuniorSpacePost is a short post on the juniors' community board.
type JuniorSpacePost struct {
	ID        string    `json:"_id"`
	Content   string    `json:"content"`
	Author    Ref       `json:"juniorId"`
	CreatedAt time.Time `json:"createdAt"`
}
