package models

import (
	"fmt"
	"groomingshop-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the fixed set of account roles. Adding a role means adding a
// constant here and a case to every switch over Role.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// ParseRole maps a stored or claimed role name to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStaff:
		return RoleStaff, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type Account struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username string    `gorm:"uniqueIndex;not null" json:"username"`
	Password string    `gorm:"not null" json:"-"`
	Role     Role      `gorm:"type:varchar(10);not null" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the id and replaces the plaintext password with its hash.
func (a *Account) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(a.Password)
	if err != nil {
		return err
	}
	a.Password = hashed
	return
}
