package services

import (
	"testing"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	junior := &models.UserSummary{ID: "j", Role: models.RoleJunior}
	mentor := &models.UserSummary{ID: "m", Role: models.RoleMentor}
	admin := &models.UserSummary{ID: "a", Role: models.RoleAdmin}

	tests := []struct {
		name     string
		user     *models.UserSummary
		required []models.Role
		want     Decision
	}{
		{"anonymous, open page", nil, nil, RedirectLogin},
		{"anonymous, admin page", nil, []models.Role{models.RoleAdmin}, RedirectLogin},
		{"junior, any session", junior, nil, Allowed},
		{"junior, admin page", junior, []models.Role{models.RoleAdmin}, RedirectHome},
		{"admin, admin page", admin, []models.Role{models.RoleAdmin}, Allowed},
		{"mentor, junior or mentor", mentor, []models.Role{models.RoleJunior, models.RoleMentor}, Allowed},
		{"admin, junior space", admin, []models.Role{models.RoleJunior}, RedirectHome},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.user, tt.required...))
		})
	}
}

func TestDecision_Err(t *testing.T) {
	assert.NoError(t, Allowed.Err())
	assert.ErrorIs(t, RedirectLogin.Err(), ErrNotAuthenticated)
	assert.ErrorIs(t, RedirectHome.Err(), ErrForbidden)
	assert.Equal(t, "redirect-login", RedirectLogin.String())
}
