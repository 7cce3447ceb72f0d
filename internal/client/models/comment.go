package models

import "time"

// Comment belongs to a doubt. When AnswerID is set it is a threaded reply
// to that answer.
type Comment struct {
	ID        string    `json:"_id"`
	DoubtID   Ref       `json:"doubtId"`
	AnswerID  Ref       `json:"answerId"`
	Content   string    `json:"content"`
	Author    Ref       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c Comment) IsReply() bool { return c.AnswerID.ID != "" }
