package views

import (
	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/client/services"
)

const (
	VerifiedMentorBadge  = "✔ Verified Mentor"
	PendingApprovalBadge = "⏳ Pending Approval"
	AdminBadge           = "Admin"
)

// RoleBadge labels an account in lists and headers.
func RoleBadge(role models.Role, approved bool) string {
	switch role {
	case models.RoleAdmin:
		return AdminBadge
	case models.RoleMentor:
		if approved {
			return VerifiedMentorBadge
		}
		return PendingApprovalBadge
	case models.RoleJunior:
		return "Junior"
	}
	return string(role)
}

// ProfileBadge labels a profile from its computed mentor badge.
func ProfileBadge(role models.Role, b services.Badge) string {
	switch b {
	case services.BadgeVerified:
		return VerifiedMentorBadge
	case services.BadgePendingApproval:
		return PendingApprovalBadge
	}
	return RoleBadge(role, false)
}
