package fakeapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	Role      models.Role `json:"role"`
	Bio       string      `json:"bio"`
	SecretKey string      `json:"secretKey"`
}

func authPayload(u *user) models.AuthPayload {
	return models.AuthPayload{
		UserID:           u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             u.Role,
		IsMentorApproved: u.IsMentorApproved,
	}
}

func (s *Server) respondWithToken(w http.ResponseWriter, status int, u *user) {
	tok, err := generateToken(u.ID, string(u.Role), s.secret, time.Hour)
	if err != nil {
		fail(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	writeJSON(w, status, envelope{Success: true, Token: tok, Data: authPayload(u)})
}

func (s *Server) register(w http.ResponseWriter, req registerRequest, role models.Role) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		fail(w, http.StatusBadRequest, "Please provide name, email and password")
		return
	}
	if len(req.Password) < 6 {
		fail(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	s.mu.Lock()
	if s.findUserByEmail(req.Email) != nil {
		s.mu.Unlock()
		fail(w, http.StatusBadRequest, "User already exists")
		return
	}
	u, err := s.addUser(req.Name, req.Email, req.Password, role, false, req.Bio)
	s.mu.Unlock()
	if err != nil {
		fail(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	s.respondWithToken(w, http.StatusCreated, u)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	role := req.Role
	if role == "" {
		role = models.RoleJunior
	}
	if role == models.RoleAdmin {
		fail(w, http.StatusForbidden, "Admins must register through the admin endpoint")
		return
	}
	if !role.Valid() {
		fail(w, http.StatusBadRequest, "Invalid role")
		return
	}
	s.register(w, req, role)
}

func (s *Server) handleRegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SecretKey != s.AdminSecret {
		fail(w, http.StatusForbidden, "Invalid admin secret key")
		return
	}
	s.register(w, req, models.RoleAdmin)
}

func (s *Server) handleRegisterMentor(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SecretKey != s.MentorSecret {
		fail(w, http.StatusForbidden, "Invalid mentor secret key")
		return
	}
	s.register(w, req, models.RoleMentor)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	u := s.findUserByEmail(req.Email)
	var (
		hash   []byte
		banned bool
	)
	if u != nil {
		hash, banned = u.hash, u.IsBanned
	}
	s.mu.Unlock()
	if u == nil || bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) != nil {
		fail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if banned {
		fail(w, http.StatusForbidden, "Your account has been banned")
		return
	}
	s.mu.Lock()
	snapshot := *u
	s.mu.Unlock()
	s.respondWithToken(w, http.StatusOK, &snapshot)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(chi.URLParam(r, "id"))
	if u == nil {
		fail(w, http.StatusNotFound, "User not found")
		return
	}
	ok(w, u.User)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id != callerID(r) {
		fail(w, http.StatusForbidden, "Not authorized to update this profile")
		return
	}
	var upd models.ProfileUpdate
	if err := decodeBody(r, &upd); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(id)
	if u == nil {
		fail(w, http.StatusNotFound, "User not found")
		return
	}
	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			fail(w, http.StatusBadRequest, "Name cannot be empty")
			return
		}
		u.Name = *upd.Name
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	ok(w, u.User)
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id != callerID(r) {
		fail(w, http.StatusForbidden, "Not authorized to change this password")
		return
	}
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := decodeBody(r, &req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(id)
	if u == nil {
		fail(w, http.StatusNotFound, "User not found")
		return
	}
	if bcrypt.CompareHashAndPassword(u.hash, []byte(req.CurrentPassword)) != nil {
		fail(w, http.StatusBadRequest, "Current password is incorrect")
		return
	}
	if len(req.NewPassword) < 6 {
		fail(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.MinCost)
	if err != nil {
		fail(w, http.StatusInternalServerError, "Failed to update password")
		return
	}
	u.hash = hash
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Password updated successfully"})
}

func (s *Server) usersWhere(keep func(*user) bool) []models.User {
	out := []models.User{}
	for _, u := range s.users {
		if keep(u) {
			out = append(out, u.User)
		}
	}
	return out
}

func (s *Server) handleApprovedMentors(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := s.usersWhere(func(u *user) bool { return u.Role == models.RoleMentor && u.IsMentorApproved })
	s.mu.Unlock()
	paged(w, r, list)
}

func (s *Server) handleUsersByRole(w http.ResponseWriter, r *http.Request) {
	role := models.Role(chi.URLParam(r, "role"))
	if !role.Valid() {
		fail(w, http.StatusBadRequest, "Invalid role")
		return
	}
	s.mu.Lock()
	list := s.usersWhere(func(u *user) bool { return u.Role == role })
	s.mu.Unlock()
	paged(w, r, list)
}

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(id)
	if u == nil {
		fail(w, http.StatusNotFound, "User not found")
		return
	}
	var st models.UserStats
	for _, d := range s.doubts {
		if d.Author.ID == id {
			st.DoubtsAsked++
			if d.Status == models.DoubtStatusAnswered {
				st.DoubtsSolved++
			}
		}
	}
	for _, a := range s.answers {
		if a.Mentor.ID == id {
			st.AnswersGiven++
			st.UpvotesReceived += a.UpvoteCount
		}
	}
	for _, c := range s.comments {
		if c.Author.ID == id {
			st.CommentsPosted++
		}
	}
	st.IsVerified = u.Role == models.RoleMentor && u.IsMentorApproved
	ok(w, st)
}
