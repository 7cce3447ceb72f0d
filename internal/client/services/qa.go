package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/codeshack/internal/client/client"
	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/logging"
)

// Page sizes used by the doubt screens.
const (
	FeedPageSize      = 10
	DashboardPageSize = 20
	TrendingTagCount  = 5
)

// QAAPI is the subset of the API client used by the question and answer
// screens.
type QAAPI interface {
	GetDoubts(ctx context.Context, page, limit int) (models.Page[models.Doubt], error)
	GetDoubt(ctx context.Context, id string) (models.Doubt, error)
	CreateDoubt(ctx context.Context, d models.NewDoubt) (models.Doubt, error)
	DeleteDoubt(ctx context.Context, id string) error
	GetDoubtStats(ctx context.Context) (models.DoubtStats, error)
	CreateAnswer(ctx context.Context, doubtID, content string) (models.Answer, error)
	UpdateAnswer(ctx context.Context, answerID, content string) (models.Answer, error)
	DeleteAnswer(ctx context.Context, answerID string) error
	GetCommentsByDoubt(ctx context.Context, doubtID string) ([]models.Comment, error)
	GetCommentsByAnswer(ctx context.Context, answerID string) ([]models.Comment, error)
	CreateComment(ctx context.Context, doubtID, content, answerID string) (models.Comment, error)
	UpvoteAnswer(ctx context.Context, answerID string) (models.UpvoteStatus, error)
	RemoveUpvote(ctx context.Context, answerID string) (models.UpvoteStatus, error)
	CheckIfUpvoted(ctx context.Context, answerID, userID string) (bool, error)
}

var _ QAAPI = (*client.Client)(nil)

// AnswerView is an answer as shown on the doubt page.
type AnswerView struct {
	models.Answer
	Upvoted bool
	Replies []models.Comment
}

// DoubtDetail is the view model of the doubt page. Comments holds only
// top-level comments; replies hang off their answer.
type DoubtDetail struct {
	Doubt    models.Doubt
	Answers  []AnswerView
	Comments []models.Comment
}

// Dashboard lists the caller's own doubts for juniors and the doubts
// awaiting attention for everybody else.
type Dashboard struct {
	User   models.UserSummary
	Doubts []models.Doubt
}

type TrendingTag struct {
	Tag      string
	Count    int
	Category string
}

type QAService interface {
	ListDoubts(ctx context.Context, page int) (models.Page[models.Doubt], error)
	Dashboard(ctx context.Context) (*Dashboard, error)
	Detail(ctx context.Context, doubtID string) (*DoubtDetail, error)
	AskDoubt(ctx context.Context, d models.NewDoubt) (models.Doubt, error)
	DeleteDoubt(ctx context.Context, doubtID string) error
	PostAnswer(ctx context.Context, doubtID, content string) (models.Answer, error)
	EditAnswer(ctx context.Context, answerID, content string) (models.Answer, error)
	DeleteAnswer(ctx context.Context, answerID string) error
	PostComment(ctx context.Context, doubtID, content string) (models.Comment, error)
	Reply(ctx context.Context, doubtID, answerID, content string) (models.Comment, error)
	ToggleUpvote(ctx context.Context, answerID string) (models.UpvoteStatus, error)
	TrendingTags(ctx context.Context) ([]TrendingTag, error)
}

type qaService struct {
	api QAAPI
	id  Identity
	log logging.Logger
}

func NewQAService(api QAAPI, id Identity, log logging.Logger) QAService {
	if log == nil {
		log = logging.Discard()
	}
	return &qaService{api: api, id: id, log: log}
}

func (s *qaService) ListDoubts(ctx context.Context, page int) (models.Page[models.Doubt], error) {
	if _, err := requireUser(ctx, s.id); err != nil {
		return models.Page[models.Doubt]{}, err
	}
	if page < 1 {
		page = 1
	}
	return s.api.GetDoubts(ctx, page, FeedPageSize)
}

func (s *qaService) Dashboard(ctx context.Context) (*Dashboard, error) {
	u, err := requireUser(ctx, s.id)
	if err != nil {
		return nil, err
	}
	page, err := s.api.GetDoubts(ctx, 1, DashboardPageSize)
	if err != nil {
		return nil, fmt.Errorf("load doubts: %w", err)
	}
	d := &Dashboard{User: *u, Doubts: []models.Doubt{}}
	for _, doubt := range page.Items {
		if keepOnDashboard(u, doubt) {
			d.Doubts = append(d.Doubts, doubt)
		}
	}
	return d, nil
}

func keepOnDashboard(u *models.UserSummary, d models.Doubt) bool {
	if u.IsJunior() {
		return d.Author.ID == u.ID || (d.Author.Email != "" && strings.EqualFold(d.Author.Email, u.Email))
	}
	return d.Status == models.DoubtStatusOpen || d.Status == models.DoubtStatusAnswered
}

func (s *qaService) Detail(ctx context.Context, doubtID string) (*DoubtDetail, error) {
	u, err := requireUser(ctx, s.id)
	if err != nil {
		return nil, err
	}
	doubt, err := s.api.GetDoubt(ctx, doubtID)
	if err != nil {
		return nil, fmt.Errorf("load doubt: %w", err)
	}

	detail := &DoubtDetail{Doubt: doubt, Answers: make([]AnswerView, 0, len(doubt.Answers)), Comments: []models.Comment{}}
	for _, a := range doubt.Answers {
		view := AnswerView{Answer: a, Replies: []models.Comment{}}
		if up, err := s.api.CheckIfUpvoted(ctx, a.ID, u.ID); err != nil {
			s.log.Warn(ctx, "check upvote failed", "answer_id", a.ID, "error", err)
		} else {
			view.Upvoted = up
		}
		if replies, err := s.api.GetCommentsByAnswer(ctx, a.ID); err != nil {
			s.log.Warn(ctx, "load replies failed", "answer_id", a.ID, "error", err)
		} else {
			view.Replies = replies
		}
		detail.Answers = append(detail.Answers, view)
	}

	comments, err := s.api.GetCommentsByDoubt(ctx, doubtID)
	if err != nil {
		s.log.Warn(ctx, "load comments failed", "doubt_id", doubtID, "error", err)
		return detail, nil
	}
	for _, c := range comments {
		if !c.IsReply() {
			detail.Comments = append(detail.Comments, c)
		}
	}
	return detail, nil
}

func (s *qaService) AskDoubt(ctx context.Context, d models.NewDoubt) (models.Doubt, error) {
	if _, err := requireUser(ctx, s.id); err != nil {
		return models.Doubt{}, err
	}
	clean, err := ValidateDoubt(d)
	if err != nil {
		return models.Doubt{}, err
	}
	created, err := s.api.CreateDoubt(ctx, clean)
	if err != nil {
		return models.Doubt{}, fmt.Errorf("post doubt: %w", err)
	}
	return created, nil
}

func (s *qaService) DeleteDoubt(ctx context.Context, doubtID string) error {
	if _, err := requireUser(ctx, s.id, models.RoleJunior); err != nil {
		return err
	}
	return s.api.DeleteDoubt(ctx, doubtID)
}

func (s *qaService) PostAnswer(ctx context.Context, doubtID, content string) (models.Answer, error) {
	u, err := requireUser(ctx, s.id)
	if err != nil {
		return models.Answer{}, err
	}
	c, err := ValidateAnswer(content)
	if err != nil {
		return models.Answer{}, err
	}
	if !u.IsMentor() {
		return models.Answer{}, invalid("content", "Only mentors can post answers")
	}
	a, err := s.api.CreateAnswer(ctx, doubtID, c)
	if err != nil {
		return models.Answer{}, fmt.Errorf("post answer: %w", err)
	}
	return a, nil
}

func (s *qaService) EditAnswer(ctx context.Context, answerID, content string) (models.Answer, error) {
	if _, err := requireUser(ctx, s.id, models.RoleMentor); err != nil {
		return models.Answer{}, err
	}
	c, err := ValidateAnswer(content)
	if err != nil {
		return models.Answer{}, err
	}
	return s.api.UpdateAnswer(ctx, answerID, c)
}

func (s *qaService) DeleteAnswer(ctx context.Context, answerID string) error {
	if _, err := requireUser(ctx, s.id, models.RoleMentor); err != nil {
		return err
	}
	return s.api.DeleteAnswer(ctx, answerID)
}

func (s *qaService) PostComment(ctx context.Context, doubtID, content string) (models.Comment, error) {
	if _, err := requireUser(ctx, s.id); err != nil {
		return models.Comment{}, err
	}
	c, err := ValidateComment(content)
	if err != nil {
		return models.Comment{}, err
	}
	return s.api.CreateComment(ctx, doubtID, c, "")
}

func (s *qaService) Reply(ctx context.Context, doubtID, answerID, content string) (models.Comment, error) {
	if _, err := requireUser(ctx, s.id); err != nil {
		return models.Comment{}, err
	}
	c, err := ValidateReply(content)
	if err != nil {
		return models.Comment{}, err
	}
	return s.api.CreateComment(ctx, doubtID, c, answerID)
}

// ToggleUpvote asks the server whether the caller already upvoted the
// answer and flips it.
func (s *qaService) ToggleUpvote(ctx context.Context, answerID string) (models.UpvoteStatus, error) {
	u, err := requireUser(ctx, s.id)
	if err != nil {
		return models.UpvoteStatus{}, err
	}
	upvoted, err := s.api.CheckIfUpvoted(ctx, answerID, u.ID)
	if err != nil {
		return models.UpvoteStatus{}, fmt.Errorf("check upvote: %w", err)
	}
	if upvoted {
		return s.api.RemoveUpvote(ctx, answerID)
	}
	return s.api.UpvoteAnswer(ctx, answerID)
}

func (s *qaService) TrendingTags(ctx context.Context) ([]TrendingTag, error) {
	if _, err := requireUser(ctx, s.id); err != nil {
		return nil, err
	}
	st, err := s.api.GetDoubtStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load doubt stats: %w", err)
	}
	top := st.TopTags
	if len(top) > TrendingTagCount {
		top = top[:TrendingTagCount]
	}
	out := make([]TrendingTag, 0, len(top))
	for _, t := range top {
		out = append(out, TrendingTag{Tag: t.Tag, Count: t.Count, Category: TagCategory(t.Tag)})
	}
	return out, nil
}
