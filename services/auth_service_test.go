package services

import (
	"context"
	"testing"

	"groomingshop-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	account, err := f.auth.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, account.Role)
	assert.NotEqual(t, "admin123", account.Password)

	account, err = f.auth.Authenticate(ctx, "staff", "staff123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, account.Role)

	_, err = f.auth.Authenticate(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrAuthFailure)

	_, err = f.auth.Authenticate(ctx, "nobody", "admin123")
	assert.ErrorIs(t, err, ErrAuthFailure)
}

func TestResolveCaller(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	caller, err := f.auth.ResolveCaller(ctx, f.staff.AccountID)
	require.NoError(t, err)
	assert.Equal(t, f.staff, caller)
	assert.False(t, caller.IsAdmin())

	_, err = f.auth.ResolveCaller(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrAuthFailure)

	_, err = f.auth.GetAccount(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingScope_UnknownRoleSeesNothing(t *testing.T) {
	f := newFixture(t)
	f.book(t, f.staff, "Nail Trim", "2024-06-01")

	bookings, err := f.bookings.ListBookings(context.Background(), Caller{AccountID: f.staff.AccountID, Role: "guest"})
	require.NoError(t, err)
	assert.Empty(t, bookings)

	assert.ErrorIs(t, requireRole(Caller{Role: "guest"}, models.RoleStaff), ErrForbidden)
}
