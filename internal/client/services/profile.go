package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/codeshack/internal/client/client"
	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/logging"
)

const MentorsPageSize = 10

// Badge is the mentor verification indicator on a profile.
type Badge int

const (
	BadgeNone Badge = iota
	BadgeVerified
	BadgePendingApproval
)

func (b Badge) String() string {
	switch b {
	case BadgeVerified:
		return "Verified"
	case BadgePendingApproval:
		return "Pending Approval"
	}
	return ""
}

// MentorBadge decides the badge from the cached approval flag and the
// server-side verification flag in the stats. Either one verifies.
func MentorBadge(role models.Role, approved bool, stats *models.UserStats) Badge {
	if role != models.RoleMentor {
		return BadgeNone
	}
	if approved || (stats != nil && stats.IsVerified) {
		return BadgeVerified
	}
	return BadgePendingApproval
}

// Profile is the view model of the profile page. Stats is nil when they
// could not be loaded.
type Profile struct {
	User   models.User
	Stats  *models.UserStats
	Badge  Badge
	IsSelf bool
}

type ProfileAPI interface {
	GetUserProfile(ctx context.Context, userID string) (models.User, error)
	GetUserStats(ctx context.Context, userID string) (models.UserStats, error)
	UpdateUserProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (models.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	GetApprovedMentors(ctx context.Context, page, limit int) (models.Page[models.User], error)
}

var _ ProfileAPI = (*client.Client)(nil)

type ProfileService interface {
	// Profile loads userID's profile, or the caller's own when userID is empty.
	Profile(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, upd models.ProfileUpdate) (models.User, error)
	ChangePassword(ctx context.Context, current, next string) error
	Mentors(ctx context.Context, page int) (models.Page[models.User], error)
}

type profileService struct {
	api ProfileAPI
	id  Identity
	log logging.Logger
}

func NewProfileService(api ProfileAPI, id Identity, log logging.Logger) ProfileService {
	if log == nil {
		log = logging.Discard()
	}
	return &profileService{api: api, id: id, log: log}
}

func (s *profileService) Profile(ctx context.Context, userID string) (*Profile, error) {
	u, err := requireUser(ctx, s.id)
	if err != nil {
		return nil, err
	}

	p := &Profile{IsSelf: userID == "" || userID == u.ID}
	if p.IsSelf {
		// The own profile renders from the session; the approval flag stays as
		// it was at login.
		p.User = models.User{
			ID:               u.ID,
			Name:             u.Name,
			Email:            u.Email,
			Role:             u.Role,
			IsMentorApproved: u.IsMentorApproved,
		}
	} else {
		other, err := s.api.GetUserProfile(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		p.User = other
	}

	if st, err := s.api.GetUserStats(ctx, p.User.ID); err != nil {
		s.log.Warn(ctx, "load user stats failed", "user_id", p.User.ID, "error", err)
	} else {
		p.Stats = &st
	}
	p.Badge = MentorBadge(p.User.Role, p.User.IsMentorApproved, p.Stats)
	return p, nil
}

func (s *profileService) Update(ctx context.Context, upd models.ProfileUpdate) (models.User, error) {
	u, err := requireUser(ctx, s.id)
	if err != nil {
		return models.User{}, err
	}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return models.User{}, invalid("name", "Name cannot be empty")
		}
		upd.Name = &name
	}
	if upd.Name == nil && upd.Bio == nil {
		return models.User{}, invalid("profile", "Nothing to update")
	}
	return s.api.UpdateUserProfile(ctx, u.ID, upd)
}

func (s *profileService) ChangePassword(ctx context.Context, current, next string) error {
	u, err := requireUser(ctx, s.id)
	if err != nil {
		return err
	}
	if current == "" {
		return invalid("currentPassword", "Please enter your current password")
	}
	if err := ValidatePassword("newPassword", next); err != nil {
		return err
	}
	return s.api.ChangePassword(ctx, u.ID, current, next)
}

func (s *profileService) Mentors(ctx context.Context, page int) (models.Page[models.User], error) {
	if _, err := requireUser(ctx, s.id); err != nil {
		return models.Page[models.User]{}, err
	}
	if page < 1 {
		page = 1
	}
	return s.api.GetApprovedMentors(ctx, page, MentorsPageSize)
}
