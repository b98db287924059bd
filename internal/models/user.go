package models

import "time"

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	UserName     string    `gorm:"type:varchar(255);not null" json:"userName"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'MEMBER'" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Relations
	CreatedTasks  []Task       `gorm:"foreignKey:CreatorID" json:"-"`
	AssignedTasks []Task       `gorm:"foreignKey:AssigneeID" json:"-"`
	Completions   []Completion `gorm:"foreignKey:UserID" json:"-"`
}
