package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuestRoleID is the well-known id of the seeded Guest role.
var GuestRoleID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

const GuestRoleName = "Guest"

// Role represents a named grouping of permissions
type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	IsSystem    bool      `gorm:"default:false" json:"is_system"` // Prevent deletion of built-in roles
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *Role) BeforeCreate(*gorm.DB) error {
	assignID(&r.ID)
	return nil
}

// Permission represents a single capability that can be granted to roles
type Permission struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"` // e.g. "faqs.write"
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Permission) BeforeCreate(*gorm.DB) error {
	assignID(&p.ID)
	return nil
}

// RolePermission grants one Permission to one Role. The (role_id, permission_id)
// pair is unique.
type RolePermission struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RoleID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_role_permission_pair" json:"role_id"`
	PermissionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_role_permission_pair;index" json:"permission_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

func (rp *RolePermission) BeforeCreate(*gorm.DB) error {
	assignID(&rp.ID)
	return nil
}
