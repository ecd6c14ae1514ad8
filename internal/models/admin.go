package models

import "time"

type AdminRole string

const (
	RoleAdmin   AdminRole = "ADMIN"
	RoleManager AdminRole = "MANAGER"
	RoleStaff   AdminRole = "STAFF"
)

// ValidRole vérifie qu'un rôle fait partie du jeu canonique
func ValidRole(r AdminRole) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

type Admin struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	Email     string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name      string     `gorm:"size:200" json:"name"`
	Password  string     `gorm:"size:128;not null" json:"-"`
	Role      AdminRole  `gorm:"size:16;default:'STAFF'" json:"role"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
