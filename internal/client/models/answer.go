package models

import "time"

type Answer struct {
	ID          string    `json:"_id"`
	DoubtID     Ref       `json:"doubtId"`
	Content     string    `json:"content"`
	Mentor      Ref       `json:"mentorId"`
	UpvoteCount int       `json:"upvoteCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UpvoteStatus is returned by the upvote toggle and check endpoints.
type UpvoteStatus struct {
	IsUpvoted   bool `json:"isUpvoted"`
	UpvoteCount int  `json:"upvoteCount"`
}
