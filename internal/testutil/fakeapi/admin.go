package fakeapi

import (
	"net/http"
	"slices"
	"sort"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleApproveMentor(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(chi.URLParam(r, "id"))
	if u == nil || u.Role != models.RoleMentor {
		fail(w, http.StatusNotFound, "Mentor not found")
		return
	}
	u.IsMentorApproved = true
	s.logAction(callerID(r), models.ActionApproveMentor, u.ID, "user")
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Mentor approved", Data: u.User})
}

// handleRejectMentor removes the mentor account.
func (s *Server) handleRejectMentor(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := chi.URLParam(r, "id")
	u := s.findUser(id)
	if u == nil || u.Role != models.RoleMentor {
		fail(w, http.StatusNotFound, "Mentor not found")
		return
	}
	s.logAction(callerID(r), models.ActionRejectMentor, id, "user")
	s.users = slices.DeleteFunc(s.users, func(x *user) bool { return x.ID == id })
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Mentor rejected"})
}

func (s *Server) handleUnverifiedMentors(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := s.usersWhere(func(u *user) bool { return u.Role == models.RoleMentor && !u.IsMentorApproved })
	s.mu.Unlock()
	paged(w, r, list)
}

func (s *Server) adminDelete(w http.ResponseWriter, r *http.Request, remove func(string) bool, action models.ActionType, target, notFound string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := chi.URLParam(r, "id")
	if !remove(id) {
		fail(w, http.StatusNotFound, notFound)
		return
	}
	s.logAction(callerID(r), action, id, target)
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Deleted"})
}

func (s *Server) handleAdminDeleteDoubt(w http.ResponseWriter, r *http.Request) {
	s.adminDelete(w, r, s.removeDoubt, models.ActionDeleteDoubt, "doubt", "Doubt not found")
}

func (s *Server) handleAdminDeleteAnswer(w http.ResponseWriter, r *http.Request) {
	s.adminDelete(w, r, s.removeAnswer, models.ActionDeleteAnswer, "answer", "Answer not found")
}

func (s *Server) handleAdminDeleteComment(w http.ResponseWriter, r *http.Request) {
	s.adminDelete(w, r, s.removeComment, models.ActionDeleteComment, "comment", "Comment not found")
}

func (s *Server) handleAdminDeletePost(w http.ResponseWriter, r *http.Request) {
	remove := func(id string) bool {
		before := len(s.posts)
		s.posts = slices.DeleteFunc(s.posts, func(p *models.JuniorSpacePost) bool { return p.ID == id })
		return len(s.posts) != before
	}
	s.adminDelete(w, r, remove, models.ActionDeleteJuniorPost, "junior_post", "Post not found")
}

func (s *Server) setBanned(w http.ResponseWriter, r *http.Request, banned bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(chi.URLParam(r, "id"))
	if u == nil {
		fail(w, http.StatusNotFound, "User not found")
		return
	}
	if u.Role == models.RoleAdmin {
		fail(w, http.StatusBadRequest, "Cannot ban an admin")
		return
	}
	u.IsBanned = banned
	action := models.ActionBanUser
	if !banned {
		action = models.ActionUnbanUser
	}
	s.logAction(callerID(r), action, u.ID, "user")
	ok(w, u.User)
}

func (s *Server) handleBan(w http.ResponseWriter, r *http.Request)   { s.setBanned(w, r, true) }
func (s *Server) handleUnban(w http.ResponseWriter, r *http.Request) { s.setBanned(w, r, false) }

func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	filter := models.ActionType(r.URL.Query().Get("actionType"))
	s.mu.Lock()
	all := newestFirst(s.actions)
	s.mu.Unlock()
	list := make([]models.AdminAction, 0, len(all))
	for _, a := range all {
		if filter == "" || a.ActionType == filter {
			list = append(list, a)
		}
	}
	paged(w, r, list)
}

func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[models.ActionType]int{}
	for _, a := range s.actions {
		counts[a.ActionType]++
	}
	st := models.AdminStats{TotalActions: len(s.actions), ActionBreakdown: []models.ActionCount{}}
	for t, n := range counts {
		st.ActionBreakdown = append(st.ActionBreakdown, models.ActionCount{ActionType: t, Count: n})
	}
	sort.Slice(st.ActionBreakdown, func(i, j int) bool {
		return st.ActionBreakdown[i].ActionType < st.ActionBreakdown[j].ActionType
	})
	ok(w, st)
}
