package models

import (
	"fmt"
	"strings"
	"time"
)

// Role is the platform role of an account.
type Role string

const (
	RoleJunior Role = "junior"
	RoleMentor Role = "mentor"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleJunior, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// UserSummary is the identity cached in the session. It is built once at
// login or signup and not refreshed until the next authentication.
type UserSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             Role   `json:"role"`
	IsMentorApproved bool   `json:"isMentorApproved"`
}

// The role predicates accept a nil receiver, which stands for an anonymous user.

func (u *UserSummary) IsJunior() bool { return u != nil && u.Role == RoleJunior }
func (u *UserSummary) IsMentor() bool { return u != nil && u.Role == RoleMentor }
func (u *UserSummary) IsAdmin() bool  { return u != nil && u.Role == RoleAdmin }

// IsApprovedMentor reports whether u is a mentor an admin has approved.
func (u *UserSummary) IsApprovedMentor() bool {
	return u.IsMentor() && u.IsMentorApproved
}

// AuthPayload is the data object returned by the login and register endpoints.
type AuthPayload struct {
	UserID           string `json:"userId"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             Role   `json:"role"`
	IsMentorApproved bool   `json:"isMentorApproved"`
}

func (p AuthPayload) Summary() UserSummary {
	return UserSummary{
		ID:               p.UserID,
		Name:             p.Name,
		Email:            p.Email,
		Role:             p.Role,
		IsMentorApproved: p.IsMentorApproved,
	}
}

// User is a full account record as listed by profile and admin endpoints.
type User struct {
	ID               string    `json:"_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Role             Role      `json:"role"`
	Bio              string    `json:"bio,omitempty"`
	IsMentorApproved bool      `json:"isMentorApproved"`
	IsBanned         bool      `json:"isBanned"`
	CreatedAt        time.Time `json:"createdAt"`
}

// UserStats are the activity counters shown on a profile.
type UserStats struct {
	DoubtsAsked     int  `json:"doubtsAsked"`
	DoubtsSolved    int  `json:"doubtsSolved"`
	AnswersGiven    int  `json:"answersGiven"`
	UpvotesReceived int  `json:"upvotesReceived"`
	CommentsPosted  int  `json:"commentsPosted"`
	IsVerified      bool `json:"isVerified"`
}

// ProfileUpdate carries the editable profile fields. Nil fields are left
// unchanged on the server.
type ProfileUpdate struct {
	Name *string `json:"name,omitempty"`
	Bio  *string `json:"bio,omitempty"`
}
