package fakeapi

import (
	"net/http"
	"slices"
	"sort"
	"strings"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) addDoubt(juniorID, title, description string, tags []string) *models.Doubt {
	d := &models.Doubt{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Tags:        append([]string{}, tags...),
		Author:      s.ref(juniorID),
		Status:      models.DoubtStatusOpen,
		CreatedAt:   s.nextTime(),
	}
	s.doubts = append(s.doubts, d)
	return d
}

func (s *Server) addAnswer(doubtID, mentorID, content string) *models.Answer {
	a := &models.Answer{
		ID:        uuid.NewString(),
		DoubtID:   models.Ref{ID: doubtID},
		Content:   content,
		Mentor:    s.ref(mentorID),
		CreatedAt: s.nextTime(),
	}
	s.answers = append(s.answers, a)
	if d := s.findDoubt(doubtID); d != nil {
		d.AnswerCount++
		if d.Status == models.DoubtStatusOpen {
			d.Status = models.DoubtStatusAnswered
		}
	}
	return a
}

func (s *Server) findDoubt(id string) *models.Doubt {
	for _, d := range s.doubts {
		if d.ID == id {
			return d
		}
	}
	return nil
}

func (s *Server) findAnswer(id string) *models.Answer {
	for _, a := range s.answers {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (s *Server) findComment(id string) *models.Comment {
	for _, c := range s.comments {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// newestFirst copies values out of a pointer slice in reverse insertion order.
func newestFirst[T any](in []*T) []T {
	out := make([]T, 0, len(in))
	for i := len(in) - 1; i >= 0; i-- {
		out = append(out, *in[i])
	}
	return out
}

func (s *Server) removeDoubt(id string) bool {
	before := len(s.doubts)
	s.doubts = slices.DeleteFunc(s.doubts, func(d *models.Doubt) bool { return d.ID == id })
	if len(s.doubts) == before {
		return false
	}
	s.answers = slices.DeleteFunc(s.answers, func(a *models.Answer) bool { return a.DoubtID.ID == id })
	s.comments = slices.DeleteFunc(s.comments, func(c *models.Comment) bool { return c.DoubtID.ID == id })
	return true
}

func (s *Server) removeAnswer(id string) bool {
	a := s.findAnswer(id)
	if a == nil {
		return false
	}
	s.answers = slices.DeleteFunc(s.answers, func(x *models.Answer) bool { return x.ID == id })
	s.comments = slices.DeleteFunc(s.comments, func(c *models.Comment) bool { return c.AnswerID.ID == id })
	delete(s.upvotes, id)
	if d := s.findDoubt(a.DoubtID.ID); d != nil && d.AnswerCount > 0 {
		d.AnswerCount--
	}
	return true
}

func (s *Server) removeComment(id string) bool {
	before := len(s.comments)
	s.comments = slices.DeleteFunc(s.comments, func(c *models.Comment) bool { return c.ID == id })
	return len(s.comments) != before
}

func (s *Server) handleListDoubts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := newestFirst(s.doubts)
	s.mu.Unlock()
	paged(w, r, list)
}

func (s *Server) handleGetDoubt(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.findDoubt(chi.URLParam(r, "id"))
	if d == nil {
		fail(w, http.StatusNotFound, "Doubt not found")
		return
	}
	out := *d
	out.Answers = []models.Answer{}
	for _, a := range s.answers {
		if a.DoubtID.ID == d.ID {
			out.Answers = append(out.Answers, *a)
		}
	}
	ok(w, out)
}

func (s *Server) handleCreateDoubt(w http.ResponseWriter, r *http.Request) {
	var req models.NewDoubt
	if err := decodeBody(r, &req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(callerID(r))
	if u.Role != models.RoleJunior {
		fail(w, http.StatusForbidden, "Only juniors can post doubts")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		fail(w, http.StatusBadRequest, "Title and description are required")
		return
	}
	created(w, *s.addDoubt(u.ID, req.Title, req.Description, req.Tags))
}

func (s *Server) handleUpdateDoubt(w http.ResponseWriter, r *http.Request) {
	var upd models.DoubtUpdate
	if err := decodeBody(r, &upd); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.findDoubt(chi.URLParam(r, "id"))
	if d == nil {
		fail(w, http.StatusNotFound, "Doubt not found")
		return
	}
	if d.Author.ID != callerID(r) {
		fail(w, http.StatusForbidden, "Not authorized to update this doubt")
		return
	}
	if upd.Title != nil {
		d.Title = *upd.Title
	}
	if upd.Description != nil {
		d.Description = *upd.Description
	}
	if upd.Tags != nil {
		d.Tags = append([]string{}, upd.Tags...)
	}
	if upd.Status != "" {
		d.Status = upd.Status
	}
	ok(w, *d)
}

func (s *Server) handleDeleteDoubt(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.findDoubt(chi.URLParam(r, "id"))
	if d == nil {
		fail(w, http.StatusNotFound, "Doubt not found")
		return
	}
	if d.Author.ID != callerID(r) {
		fail(w, http.StatusForbidden, "Not authorized to delete this doubt")
		return
	}
	s.removeDoubt(d.ID)
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Doubt deleted"})
}

func (s *Server) handleDoubtStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := models.DoubtStats{TotalDoubts: len(s.doubts), TopTags: []models.TagCount{}}
	counts := map[string]int{}
	for _, d := range s.doubts {
		switch d.Status {
		case models.DoubtStatusOpen:
			st.OpenDoubts++
		case models.DoubtStatusAnswered:
			st.AnsweredDoubts++
		}
		for _, t := range d.Tags {
			counts[t]++
		}
	}
	for t, n := range counts {
		st.TopTags = append(st.TopTags, models.TagCount{Tag: t, Count: n})
	}
	sort.Slice(st.TopTags, func(i, j int) bool {
		if st.TopTags[i].Count != st.TopTags[j].Count {
			return st.TopTags[i].Count > st.TopTags[j].Count
		}
		return st.TopTags[i].Tag < st.TopTags[j].Tag
	})
	if len(st.TopTags) > 10 {
		st.TopTags = st.TopTags[:10]
	}
	ok(w, st)
}

func (s *Server) handleAnswersByDoubt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "doubtId")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Answer{}
	for _, a := range s.answers {
		if a.DoubtID.ID == id {
			out = append(out, *a)
		}
	}
	ok(w, out)
}

type contentRequest struct {
	Content  string `json:"content"`
	AnswerID string `json:"answerId"`
}

func (s *Server) handleCreateAnswer(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(callerID(r))
	if u.Role != models.RoleMentor {
		fail(w, http.StatusForbidden, "Only mentors can post answers")
		return
	}
	if !u.IsMentorApproved {
		fail(w, http.StatusForbidden, "Your mentor account is pending approval")
		return
	}
	d := s.findDoubt(chi.URLParam(r, "doubtId"))
	if d == nil {
		fail(w, http.StatusNotFound, "Doubt not found")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		fail(w, http.StatusBadRequest, "Content is required")
		return
	}
	created(w, *s.addAnswer(d.ID, u.ID, req.Content))
}

func (s *Server) handleUpdateAnswer(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.findAnswer(chi.URLParam(r, "id"))
	if a == nil {
		fail(w, http.StatusNotFound, "Answer not found")
		return
	}
	if a.Mentor.ID != callerID(r) {
		fail(w, http.StatusForbidden, "Not authorized to update this answer")
		return
	}
	a.Content = req.Content
	ok(w, *a)
}

func (s *Server) handleDeleteAnswer(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.findAnswer(chi.URLParam(r, "id"))
	if a == nil {
		fail(w, http.StatusNotFound, "Answer not found")
		return
	}
	if a.Mentor.ID != callerID(r) {
		fail(w, http.StatusForbidden, "Not authorized to delete this answer")
		return
	}
	s.removeAnswer(a.ID)
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Answer deleted"})
}

func (s *Server) handleCommentsByDoubt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "doubtId")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Comment{}
	for _, c := range s.comments {
		if c.DoubtID.ID == id {
			out = append(out, *c)
		}
	}
	ok(w, out)
}

func (s *Server) handleCommentsByAnswer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "answerId")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Comment{}
	for _, c := range s.comments {
		if c.AnswerID.ID == id {
			out = append(out, *c)
		}
	}
	ok(w, out)
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.findDoubt(chi.URLParam(r, "doubtId"))
	if d == nil {
		fail(w, http.StatusNotFound, "Doubt not found")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		fail(w, http.StatusBadRequest, "Content is required")
		return
	}
	c := &models.Comment{
		ID:        uuid.NewString(),
		DoubtID:   models.Ref{ID: d.ID},
		Content:   req.Content,
		Author:    s.ref(callerID(r)),
		CreatedAt: s.nextTime(),
	}
	if req.AnswerID != "" {
		if s.findAnswer(req.AnswerID) == nil {
			fail(w, http.StatusNotFound, "Answer not found")
			return
		}
		c.AnswerID = models.Ref{ID: req.AnswerID}
	}
	s.comments = append(s.comments, c)
	created(w, *c)
}

func (s *Server) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.findComment(chi.URLParam(r, "id"))
	if c == nil {
		fail(w, http.StatusNotFound, "Comment not found")
		return
	}
	if c.Author.ID != callerID(r) {
		fail(w, http.StatusForbidden, "Not authorized to update this comment")
		return
	}
	c.Content = req.Content
	ok(w, *c)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.findComment(chi.URLParam(r, "id"))
	if c == nil {
		fail(w, http.StatusNotFound, "Comment not found")
		return
	}
	if c.Author.ID != callerID(r) {
		fail(w, http.StatusForbidden, "Not authorized to delete this comment")
		return
	}
	s.removeComment(c.ID)
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Comment deleted"})
}

func (s *Server) handleUpvote(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.findAnswer(chi.URLParam(r, "answerId"))
	if a == nil {
		fail(w, http.StatusNotFound, "Answer not found")
		return
	}
	voters := s.upvotes[a.ID]
	if voters == nil {
		voters = map[string]bool{}
		s.upvotes[a.ID] = voters
	}
	uid := callerID(r)
	if voters[uid] {
		fail(w, http.StatusBadRequest, "You have already upvoted this answer")
		return
	}
	voters[uid] = true
	a.UpvoteCount++
	ok(w, models.UpvoteStatus{IsUpvoted: true, UpvoteCount: a.UpvoteCount})
}

func (s *Server) handleRemoveUpvote(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.findAnswer(chi.URLParam(r, "answerId"))
	if a == nil {
		fail(w, http.StatusNotFound, "Answer not found")
		return
	}
	uid := callerID(r)
	if !s.upvotes[a.ID][uid] {
		fail(w, http.StatusBadRequest, "You have not upvoted this answer")
		return
	}
	delete(s.upvotes[a.ID], uid)
	a.UpvoteCount--
	ok(w, models.UpvoteStatus{IsUpvoted: false, UpvoteCount: a.UpvoteCount})
}

func (s *Server) handleCheckUpvote(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.findAnswer(chi.URLParam(r, "answerId"))
	if a == nil {
		fail(w, http.StatusNotFound, "Answer not found")
		return
	}
	voted := s.upvotes[a.ID][chi.URLParam(r, "userId")]
	ok(w, models.UpvoteStatus{IsUpvoted: voted, UpvoteCount: a.UpvoteCount})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := newestFirst(s.posts)
	s.mu.Unlock()
	paged(w, r, list)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(callerID(r))
	if u.Role != models.RoleJunior {
		fail(w, http.StatusForbidden, "Only juniors can post in the junior space")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		fail(w, http.StatusBadRequest, "Content is required")
		return
	}
	p := &models.JuniorSpacePost{
		ID:        uuid.NewString(),
		Content:   req.Content,
		Author:    s.ref(u.ID),
		CreatedAt: s.nextTime(),
	}
	s.posts = append(s.posts, p)
	created(w, *p)
}
