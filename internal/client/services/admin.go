package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/codeshack/internal/client/client"
	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/logging"
)

const (
	AdminUsersLimit     = 100
	AdminActivityLimit  = 50
	PendingMentorsLimit = 50
)

// UserFilter selects the admin users list. FilterAll is juniors followed by
// mentors; admins are never listed.
type UserFilter string

const (
	FilterAll     UserFilter = "all"
	FilterJuniors UserFilter = "junior"
	FilterMentors UserFilter = "mentor"
)

func ParseUserFilter(s string) (UserFilter, error) {
	switch UserFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterJuniors, FilterMentors:
		return UserFilter(s), nil
	}
	return "", invalid("filter", fmt.Sprintf("Unknown filter %q (use all, junior or mentor)", s))
}

// ContentKind names what an admin delete targets.
type ContentKind string

const (
	ContentDoubt   ContentKind = "doubt"
	ContentAnswer  ContentKind = "answer"
	ContentComment ContentKind = "comment"
	ContentPost    ContentKind = "post"
)

// PlatformStats are the dashboard counters. Each comes from the pagination
// total of a one-item listing; a failed listing leaves its counter at zero.
type PlatformStats struct {
	TotalDoubts    int
	TotalJuniors   int
	TotalMentors   int
	PendingMentors int
}

type AdminDashboard struct {
	Actions  *models.AdminStats
	Platform PlatformStats
}

type AdminAPI interface {
	GetAdminStats(ctx context.Context) (models.AdminStats, error)
	GetDoubts(ctx context.Context, page, limit int) (models.Page[models.Doubt], error)
	GetUsersByRole(ctx context.Context, role models.Role, page, limit int) (models.Page[models.User], error)
	GetUnverifiedMentors(ctx context.Context, page, limit int) (models.Page[models.User], error)
	ApproveMentor(ctx context.Context, mentorID string) error
	RejectMentor(ctx context.Context, mentorID string) error
	BanUser(ctx context.Context, userID string) error
	UnbanUser(ctx context.Context, userID string) error
	GetAdminActions(ctx context.Context, page, limit int, actionType models.ActionType) (models.Page[models.AdminAction], error)
	AdminDeleteDoubt(ctx context.Context, id string) error
	AdminDeleteAnswer(ctx context.Context, id string) error
	AdminDeleteComment(ctx context.Context, id string) error
	AdminDeleteJuniorPost(ctx context.Context, id string) error
}

var _ AdminAPI = (*client.Client)(nil)

// AdminService backs the admin screens. Every method requires the admin role.
type AdminService interface {
	Dashboard(ctx context.Context) (*AdminDashboard, error)
	PendingMentors(ctx context.Context) ([]models.User, error)
	// ApproveMentor and RejectMentor return pending with the handled mentor
	// removed.
	ApproveMentor(ctx context.Context, pending []models.User, mentorID string) ([]models.User, error)
	RejectMentor(ctx context.Context, pending []models.User, mentorID string) ([]models.User, error)
	Users(ctx context.Context, filter UserFilter) ([]models.User, error)
	// Ban and Unban re-fetch the list for filter after the change.
	Ban(ctx context.Context, userID string, filter UserFilter) ([]models.User, error)
	Unban(ctx context.Context, userID string, filter UserFilter) ([]models.User, error)
	Activity(ctx context.Context, page int, actionType models.ActionType) (models.Page[models.AdminAction], error)
	Delete(ctx context.Context, kind ContentKind, id string) error
}

type adminService struct {
	api AdminAPI
	id  Identity
	log logging.Logger
}

func NewAdminService(api AdminAPI, id Identity, log logging.Logger) AdminService {
	if log == nil {
		log = logging.Discard()
	}
	return &adminService{api: api, id: id, log: log}
}

func (s *adminService) authorize(ctx context.Context) error {
	_, err := requireUser(ctx, s.id, models.RoleAdmin)
	return err
}

func (s *adminService) Dashboard(ctx context.Context) (*AdminDashboard, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	d := &AdminDashboard{}
	if st, err := s.api.GetAdminStats(ctx); err != nil {
		s.log.Warn(ctx, "load admin stats failed", "error", err)
	} else {
		d.Actions = &st
	}

	total := func(name string, p models.Pagination, err error) int {
		if err != nil {
			s.log.Warn(ctx, "load platform counter failed", "counter", name, "error", err)
			return 0
		}
		return p.Total
	}
	doubts, err := s.api.GetDoubts(ctx, 1, 1)
	d.Platform.TotalDoubts = total("doubts", doubts.Pagination, err)
	juniors, err := s.api.GetUsersByRole(ctx, models.RoleJunior, 1, 1)
	d.Platform.TotalJuniors = total("juniors", juniors.Pagination, err)
	mentors, err := s.api.GetUsersByRole(ctx, models.RoleMentor, 1, 1)
	d.Platform.TotalMentors = total("mentors", mentors.Pagination, err)
	pending, err := s.api.GetUnverifiedMentors(ctx, 1, 1)
	d.Platform.PendingMentors = total("pending mentors", pending.Pagination, err)
	return d, nil
}

func (s *adminService) PendingMentors(ctx context.Context) ([]models.User, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	page, err := s.api.GetUnverifiedMentors(ctx, 1, PendingMentorsLimit)
	if err != nil {
		return nil, fmt.Errorf("load unverified mentors: %w", err)
	}
	if page.Items == nil {
		return []models.User{}, nil
	}
	return page.Items, nil
}

func without(users []models.User, id string) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}

func (s *adminService) ApproveMentor(ctx context.Context, pending []models.User, mentorID string) ([]models.User, error) {
	if err := s.authorize(ctx); err != nil {
		return pending, err
	}
	if err := s.api.ApproveMentor(ctx, mentorID); err != nil {
		return pending, fmt.Errorf("approve mentor: %w", err)
	}
	return without(pending, mentorID), nil
}

func (s *adminService) RejectMentor(ctx context.Context, pending []models.User, mentorID string) ([]models.User, error) {
	if err := s.authorize(ctx); err != nil {
		return pending, err
	}
	if err := s.api.RejectMentor(ctx, mentorID); err != nil {
		return pending, fmt.Errorf("reject mentor: %w", err)
	}
	return without(pending, mentorID), nil
}

func (s *adminService) Users(ctx context.Context, filter UserFilter) ([]models.User, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	return s.users(ctx, filter)
}

func (s *adminService) users(ctx context.Context, filter UserFilter) ([]models.User, error) {
	roles := []models.Role{models.RoleJunior, models.RoleMentor}
	if filter != FilterAll && filter != "" {
		roles = []models.Role{models.Role(filter)}
	}
	out := []models.User{}
	for _, r := range roles {
		page, err := s.api.GetUsersByRole(ctx, r, 1, AdminUsersLimit)
		if err != nil {
			return nil, fmt.Errorf("load %s users: %w", r, err)
		}
		out = append(out, page.Items...)
	}
	return out, nil
}

func (s *adminService) Ban(ctx context.Context, userID string, filter UserFilter) ([]models.User, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	if err := s.api.BanUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("ban user: %w", err)
	}
	return s.users(ctx, filter)
}

func (s *adminService) Unban(ctx context.Context, userID string, filter UserFilter) ([]models.User, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	if err := s.api.UnbanUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("unban user: %w", err)
	}
	return s.users(ctx, filter)
}

func (s *adminService) Activity(ctx context.Context, page int, actionType models.ActionType) (models.Page[models.AdminAction], error) {
	if err := s.authorize(ctx); err != nil {
		return models.Page[models.AdminAction]{}, err
	}
	if page < 1 {
		page = 1
	}
	return s.api.GetAdminActions(ctx, page, AdminActivityLimit, actionType)
}

func (s *adminService) Delete(ctx context.Context, kind ContentKind, id string) error {
	if err := s.authorize(ctx); err != nil {
		return err
	}
	var del func(context.Context, string) error
	switch kind {
	case ContentDoubt:
		del = s.api.AdminDeleteDoubt
	case ContentAnswer:
		del = s.api.AdminDeleteAnswer
	case ContentComment:
		del = s.api.AdminDeleteComment
	case ContentPost:
		del = s.api.AdminDeleteJuniorPost
	default:
		return invalid("kind", fmt.Sprintf("Cannot delete %q (use doubt, answer, comment or post)", kind))
	}
	if err := del(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	return nil
}
