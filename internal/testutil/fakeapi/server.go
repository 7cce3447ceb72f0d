// Package fakeapi is an in-memory CodeShack backend for tests. It speaks the
// same JSON envelope as the real service, issues HS256 tokens and records
// every request it receives.
package fakeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultMentorSecret = "mentor-secret"
	DefaultAdminSecret  = "admin-secret"
)

// Request is a recorded inbound request.
type Request struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	RequestID     string
	ContentType   string
}

type user struct {
	models.User
	hash []byte
}

type Server struct {
	URL string

	MentorSecret string
	AdminSecret  string

	srv    *httptest.Server
	secret []byte

	mu       sync.Mutex
	seq      int
	base     time.Time
	users    []*user
	doubts   []*models.Doubt
	answers  []*models.Answer
	comments []*models.Comment
	posts    []*models.JuniorSpacePost
	actions  []*models.AdminAction
	upvotes  map[string]map[string]bool
	requests []Request
	failures []failure
}

type failure struct {
	status  int
	message string
}

// New starts a fake backend and stops it when the test ends. URL points at
// the API root, e.g. http://127.0.0.1:1234/api.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		MentorSecret: DefaultMentorSecret,
		AdminSecret:  DefaultAdminSecret,
		secret:       []byte(uuid.NewString()),
		base:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		upvotes:      map[string]map[string]bool{},
	}
	s.srv = httptest.NewServer(s.routes())
	s.URL = s.srv.URL + "/api"
	t.Cleanup(s.srv.Close)
	return s
}

// Close stops the server early, e.g. to simulate an unreachable backend.
func (s *Server) Close() {
	s.srv.Close()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record)
	r.Use(s.injectFailure)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users/register", s.handleRegister)
		r.Post("/users/login", s.handleLogin)
		r.Post("/admin/register", s.handleRegisterAdmin)
		r.Post("/mentor-profiles/register", s.handleRegisterMentor)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)

			r.Get("/users/mentors/approved", s.handleApprovedMentors)
			r.Get("/users/role/{role}", s.handleUsersByRole)
			r.Get("/users/{id}", s.handleGetUser)
			r.Patch("/users/{id}", s.handleUpdateUser)
			r.Post("/users/{id}/change-password", s.handleChangePassword)
			r.Get("/users/{id}/stats", s.handleUserStats)

			r.Get("/doubts", s.handleListDoubts)
			r.Post("/doubts", s.handleCreateDoubt)
			r.Get("/doubts/stats/overview", s.handleDoubtStats)
			r.Get("/doubts/{id}", s.handleGetDoubt)
			r.Patch("/doubts/{id}", s.handleUpdateDoubt)
			r.Delete("/doubts/{id}", s.handleDeleteDoubt)

			r.Get("/answers/doubt/{doubtId}", s.handleAnswersByDoubt)
			r.Post("/answers/{doubtId}", s.handleCreateAnswer)
			r.Patch("/answers/{id}", s.handleUpdateAnswer)
			r.Delete("/answers/{id}", s.handleDeleteAnswer)

			r.Get("/comments/doubt/{doubtId}", s.handleCommentsByDoubt)
			r.Get("/comments/answer/{answerId}", s.handleCommentsByAnswer)
			r.Post("/comments/{doubtId}", s.handleCreateComment)
			r.Patch("/comments/{id}", s.handleUpdateComment)
			r.Delete("/comments/{id}", s.handleDeleteComment)

			r.Post("/upvotes/{answerId}", s.handleUpvote)
			r.Delete("/upvotes/{answerId}", s.handleRemoveUpvote)
			r.Get("/upvotes/{answerId}/check/{userId}", s.handleCheckUpvote)

			r.Get("/junior-space-posts", s.handleListPosts)
			r.Post("/junior-space-posts", s.handleCreatePost)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Post("/admin/approve-mentor/{id}", s.handleApproveMentor)
				r.Post("/admin/reject-mentor/{id}", s.handleRejectMentor)
				r.Get("/mentor-profiles/pending", s.handleUnverifiedMentors)
				r.Get("/admin/unverified-mentors", s.handleUnverifiedMentors)
				r.Delete("/admin/doubt/{id}", s.handleAdminDeleteDoubt)
				r.Delete("/admin/answer/{id}", s.handleAdminDeleteAnswer)
				r.Delete("/admin/comment/{id}", s.handleAdminDeleteComment)
				r.Delete("/admin/junior-post/{id}", s.handleAdminDeletePost)
				r.Post("/admin/ban-user/{id}", s.handleBan)
				r.Post("/admin/unban-user/{id}", s.handleUnban)
				r.Get("/admin/actions", s.handleActions)
				r.Get("/admin/stats", s.handleAdminStats)
			})
		})
	})
	return r
}

type envelope struct {
	Success    bool               `json:"success"`
	Data       any                `json:"data,omitempty"`
	Message    string             `json:"message,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
	Token      string             `json:"token,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func ok(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: data})
}

func fail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Message: msg})
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// pagination reads page and limit from the query, defaulting to 1 and 10.
func pagination(r *http.Request, total int) (start, end int, p models.Pagination) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	pages := (total + limit - 1) / limit
	start = min((page-1)*limit, total)
	end = min(start+limit, total)
	return start, end, models.Pagination{Total: total, Pages: pages, Page: page, Limit: limit}
}

func paged[T any](w http.ResponseWriter, r *http.Request, items []T) {
	start, end, p := pagination(r, len(items))
	out := make([]T, 0, end-start)
	out = append(out, items[start:end]...)
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: out, Pagination: &p})
}

type ctxKey string

const userIDKey ctxKey = "userID"

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          strings.TrimPrefix(r.URL.Path, "/api"),
			Query:         r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
			ContentType:   r.Header.Get("Content-Type"),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		var f *failure
		if len(s.failures) > 0 {
			f = &s.failures[0]
			s.failures = s.failures[1:]
		}
		s.mu.Unlock()
		if f != nil {
			if f.status == 0 {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte("<html>bad gateway</html>"))
				return
			}
			fail(w, f.status, f.message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			fail(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}
		id, err := userIDFromToken(token, s.secret)
		if err != nil {
			fail(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}
		s.mu.Lock()
		u := s.findUser(id)
		banned := u != nil && u.IsBanned
		s.mu.Unlock()
		if u == nil {
			fail(w, http.StatusUnauthorized, "Not authorized, user not found")
			return
		}
		if banned {
			fail(w, http.StatusForbidden, "Your account has been banned")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, id)))
	})
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		u := s.findUser(callerID(r))
		s.mu.Unlock()
		if u == nil || u.Role != models.RoleAdmin {
			fail(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func callerID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

// nextTime returns strictly increasing timestamps so that listings have a
// stable newest-first order. Callers hold s.mu.
func (s *Server) nextTime() time.Time {
	s.seq++
	return s.base.Add(time.Duration(s.seq) * time.Minute)
}

func (s *Server) findUser(id string) *user {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *Server) findUserByEmail(email string) *user {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

func (s *Server) ref(id string) models.Ref {
	u := s.findUser(id)
	if u == nil {
		return models.Ref{ID: id}
	}
	return models.Ref{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func (s *Server) addUser(name, email, password string, role models.Role, approved bool, bio string) (*user, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	u := &user{
		User: models.User{
			ID:               uuid.NewString(),
			Name:             name,
			Email:            email,
			Role:             role,
			Bio:              bio,
			IsMentorApproved: approved,
			CreatedAt:        s.nextTime(),
		},
		hash: hash,
	}
	s.users = append(s.users, u)
	return u, nil
}

func (s *Server) logAction(adminID string, t models.ActionType, targetID, targetType string) {
	s.actions = append(s.actions, &models.AdminAction{
		ID:         uuid.NewString(),
		ActionType: t,
		Admin:      s.ref(adminID),
		TargetID:   targetID,
		TargetType: targetType,
		CreatedAt:  s.nextTime(),
	})
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// ResetRequests forgets recorded requests.
func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// FailNext makes the next request fail with status and a success:false
// envelope carrying message. Status 0 answers 502 with a non-JSON body.
func (s *Server) FailNext(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{status: status, message: message})
}

// SeedUser creates an account directly and returns it.
func (s *Server) SeedUser(name, email, password string, role models.Role, approved bool) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.addUser(name, email, password, role, approved, "")
	if err != nil {
		panic(err)
	}
	return u.User
}

// TokenFor issues a valid token for an existing user.
func (s *Server) TokenFor(userID string) string {
	s.mu.Lock()
	u := s.findUser(userID)
	s.mu.Unlock()
	role := ""
	if u != nil {
		role = string(u.Role)
	}
	tok, err := generateToken(userID, role, s.secret, time.Hour)
	if err != nil {
		panic(err)
	}
	return tok
}

// SeedDoubt creates a doubt authored by juniorID and returns its id.
func (s *Server) SeedDoubt(juniorID, title, description string, tags ...string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addDoubt(juniorID, title, description, tags).ID
}

// SeedAnswer creates an answer by mentorID and returns its id.
func (s *Server) SeedAnswer(doubtID, mentorID, content string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addAnswer(doubtID, mentorID, content).ID
}

// User returns the current state of an account.
func (s *Server) User(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(id)
	if u == nil {
		return models.User{}, false
	}
	return u.User, true
}

// DoubtCount returns the number of stored doubts.
func (s *Server) DoubtCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.doubts)
}
