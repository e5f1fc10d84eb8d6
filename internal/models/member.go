package models

import (
	"github.com/google/uuid"
)

type MemberRole string

const (
	RoleViewer MemberRole = "viewer"
	RoleEditor MemberRole = "editor"
	RoleAdmin  MemberRole = "admin"
)

type BoardMember struct {
	BoardID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"board_id"`
	UserID  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role    MemberRole `gorm:"not null" json:"role"`

	Board Board `gorm:"foreignKey:BoardID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}
