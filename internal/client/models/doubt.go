package models

import "time"

type DoubtStatus string

const (
	DoubtStatusOpen     DoubtStatus = "open"
	DoubtStatusAnswered DoubtStatus = "answered"
	DoubtStatusClosed   DoubtStatus = "closed"
)

// Doubt is a question posted by a junior. Answers are only embedded by the
// get-by-id endpoint.
type Doubt struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Tags        []string    `json:"tags"`
	Author      Ref         `json:"juniorId"`
	Status      DoubtStatus `json:"status"`
	AnswerCount int         `json:"answerCount"`
	Answers     []Answer    `json:"answers,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// NewDoubt is the create payload.
type NewDoubt struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// DoubtUpdate carries editable doubt fields; nil fields are left unchanged.
type DoubtUpdate struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Status      DoubtStatus `json:"status,omitempty"`
}

type TagCount struct {
	Tag   string `json:"_id"`
	Count int    `json:"count"`
}

type DoubtStats struct {
	TotalDoubts    int        `json:"totalDoubts"`
	OpenDoubts     int        `json:"openDoubts"`
	AnsweredDoubts int        `json:"answeredDoubts"`
	TopTags        []TagCount `json:"topTags"`
}
