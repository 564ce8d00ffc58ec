package services

import (
	"fmt"

	"groomingshop-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Caller is the authenticated identity an operation runs on behalf of.
type Caller struct {
	AccountID uuid.UUID
	Role      models.Role
}

func CallerFromAccount(a *models.Account) Caller {
	return Caller{AccountID: a.ID, Role: a.Role}
}

func (c Caller) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

func requireRole(caller Caller, role models.Role) error {
	if caller.Role != role {
		return fmt.Errorf("%w: requires role %s", ErrForbidden, role)
	}
	return nil
}

// bookingScope restricts a booking query to what caller may see.
func bookingScope(caller Caller) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch caller.Role {
		case models.RoleAdmin:
			return db
		case models.RoleStaff:
			return db.Where("created_by_account_id = ?", caller.AccountID)
		}
		return db.Where("1 = 0")
	}
}
