package models

import "time"

type ActionType string

const (
	ActionApproveMentor    ActionType = "approve_mentor"
	ActionRejectMentor     ActionType = "reject_mentor"
	ActionBanUser          ActionType = "ban_user"
	ActionUnbanUser        ActionType = "unban_user"
	ActionDeleteDoubt      ActionType = "delete_doubt"
	ActionDeleteAnswer     ActionType = "delete_answer"
	ActionDeleteComment    ActionType = "delete_comment"
	ActionDeleteJuniorPost ActionType = "delete_junior_post"
)

// AdminAction is one entry of the moderation log.
type AdminAction struct {
	ID         string     `json:"_id"`
	ActionType ActionType `json:"actionType"`
	Admin      Ref        `json:"adminId"`
	TargetID   string     `json:"targetId"`
	TargetType string     `json:"targetType,omitempty"`
	Reason     string     `json:"reason,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type ActionCount struct {
	ActionType ActionType `json:"_id"`
	Count      int        `json:"count"`
}

type AdminStats struct {
	TotalActions    int           `json:"totalActions"`
	ActionBreakdown []ActionCount `json:"actionBreakdown"`
}
