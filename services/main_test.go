package services

import (
	"context"
	"testing"

	"groomingshop-backend/config"
	"groomingshop-backend/models"
	"groomingshop-backend/utils"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.BcryptCost = bcrypt.MinCost

	db, err := config.ConnectDB(config.DatabaseConfig{Driver: "sqlite", URL: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, config.MigrateDB(db, models.Tables...))
	t.Cleanup(func() { config.CloseDB(db) })
	return db
}

type fixture struct {
	db       *gorm.DB
	auth     *AuthService
	catalog  *CatalogService
	bookings *BookingService

	admin      Caller
	staff      Caller
	otherStaff Caller
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWith(t, false)
}

func newFixtureWith(t *testing.T, strictServiceRef bool) *fixture {
	t.Helper()
	db := newTestDB(t)
	require.NoError(t, NewSeeder(db, "admin123", "staff123").Seed(context.Background()))

	f := &fixture{
		db:       db,
		auth:     NewAuthService(db),
		catalog:  NewCatalogService(db, true),
		bookings: NewBookingService(db, strictServiceRef),
	}
	f.admin = f.login(t, "admin", "admin123")
	f.staff = f.login(t, "staff", "staff123")

	other := models.Account{Username: "staff2", Password: "staff456", Role: models.RoleStaff}
	require.NoError(t, db.Create(&other).Error)
	f.otherStaff = CallerFromAccount(&other)
	return f
}

func (f *fixture) login(t *testing.T, username, password string) Caller {
	t.Helper()
	account, err := f.auth.Authenticate(context.Background(), username, password)
	require.NoError(t, err)
	return CallerFromAccount(account)
}

func (f *fixture) service(t *testing.T, name string) models.Service {
	t.Helper()
	var s models.Service
	require.NoError(t, f.db.Where("name = ?", name).First(&s).Error)
	return s
}

func (f *fixture) book(t *testing.T, caller Caller, serviceName, date string) *models.Booking {
	t.Helper()
	b, err := f.bookings.CreateBooking(context.Background(), caller, CreateBookingInput{
		Pet:       NewPet{Name: "Mimi", Species: "Kucing"},
		ServiceID: f.service(t, serviceName).ID,
		Date:      date,
	})
	require.NoError(t, err)
	return b
}

func (f *fixture) reload(t *testing.T, id interface{}) models.Booking {
	t.Helper()
	var b models.Booking
	require.NoError(t, f.db.First(&b, "id = ?", id).Error)
	return b
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
