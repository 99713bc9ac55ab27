package user

import "time"

type Role string

const (
	RoleUser       Role = "user"        // Regular member clocking in
	RoleAdmin      Role = "admin"       // Can view reports and manage members
	RoleSuperAdmin Role = "super_admin" // Can manage admins too
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	WorkField    *string
	PhotoPath    *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user holds admin or super admin rights.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// IsSuperAdmin checks if the user holds super admin rights.
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// CanManage reports whether the user may modify another user's account.
// Admins manage regular users; only super admins manage admins.
func (u *User) CanManage(other *User) bool {
	if u.IsSuperAdmin() {
		return other.Role != RoleSuperAdmin || u.ID == other.ID
	}
	if u.Role == RoleAdmin {
		return other.Role == RoleUser
	}
	return false
}

func ValidRole(s string) bool {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}
