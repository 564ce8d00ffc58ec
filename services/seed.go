package services

import (
	"context"
	"errors"
	"fmt"

	"groomingshop-backend/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DefaultServices is the catalog a fresh install starts with.
var DefaultServices = []models.Service{
	{Name: "Basic Grooming", Price: 100000, Description: "Perawatan dasar meliputi mandi, pengeringan, pembersihan telinga, dan potong kuku.", Duration: "1 jam"},
	{Name: "Full Grooming", Price: 200000, Description: "Perawatan lengkap termasuk mandi, grooming menyeluruh, dan perapihan bulu.", Duration: "2 jam"},
	{Name: "Nail Trim", Price: 30000, Description: "Pemotongan kuku hewan agar tetap rapi, aman, dan nyaman.", Duration: "15 menit"},
}

var DefaultPets = []models.Pet{
	{Name: "Mimi", Species: "Kucing"},
	{Name: "Bobby", Species: "Anjing"},
}

type Seeder struct {
	db            *gorm.DB
	adminPassword string
	staffPassword string
}

func NewSeeder(db *gorm.DB, adminPassword, staffPassword string) *Seeder {
	return &Seeder{db: db, adminPassword: adminPassword, staffPassword: staffPassword}
}

// Seed populates the fixed accounts, catalog and sample pets. Each group is
// only inserted when absent, so running it again changes nothing.
func (s *Seeder) Seed(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accounts := []models.Account{
			{Username: "admin", Password: s.adminPassword, Role: models.RoleAdmin},
			{Username: "staff", Password: s.staffPassword, Role: models.RoleStaff},
		}
		for i := range accounts {
			if err := seedAccount(tx, &accounts[i]); err != nil {
				return err
			}
		}

		var count int64
		if err := tx.Model(&models.Service{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count services: %w", err)
		}
		if count == 0 {
			services := make([]models.Service, len(DefaultServices))
			copy(services, DefaultServices)
			if err := tx.Create(&services).Error; err != nil {
				return fmt.Errorf("failed to seed services: %w", err)
			}
			logrus.WithField("count", len(services)).Info("Seeded default services")
		}

		if err := tx.Model(&models.Pet{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count pets: %w", err)
		}
		if count == 0 {
			pets := make([]models.Pet, len(DefaultPets))
			copy(pets, DefaultPets)
			if err := tx.Create(&pets).Error; err != nil {
				return fmt.Errorf("failed to seed pets: %w", err)
			}
			logrus.WithField("count", len(pets)).Info("Seeded sample pets")
		}
		return nil
	})
}

func seedAccount(tx *gorm.DB, account *models.Account) error {
	var existing models.Account
	err := tx.Where("username = ?", account.Username).First(&existing).Error
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("failed to query account %s: %w", account.Username, err)
	}

	if err := tx.Create(account).Error; err != nil {
		return fmt.Errorf("failed to seed account %s: %w", account.Username, err)
	}
	logrus.WithFields(logrus.Fields{
		"username": account.Username,
		"role":     account.Role,
	}).Info("Seeded default account")
	return nil
}
