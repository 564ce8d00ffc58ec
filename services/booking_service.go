package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"groomingshop-backend/models"
	"groomingshop-backend/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PetSelection is either ExistingPet or NewPet.
type PetSelection interface {
	isPetSelection()
}

// ExistingPet books a pet that is already registered.
type ExistingPet struct {
	ID uuid.UUID
}

// NewPet books a walk-in pet. It is registered as a side effect when both
// fields are set.
type NewPet struct {
	Name    string
	Species string
}

func (ExistingPet) isPetSelection() {}
func (NewPet) isPetSelection()      {}

type CreateBookingInput struct {
	Pet       PetSelection
	ServiceID uuid.UUID
	Date      string
	Time      string
	OwnerName string
}

// EditBookingInput replaces every editable field of a booking. A nil
// ServiceID keeps the current service.
type EditBookingInput struct {
	PetName    string
	PetSpecies string
	OwnerName  string
	Date       string
	Time       string
	ServiceID  uuid.UUID
}

// ServiceRevenue is completed-booking revenue for one service.
type ServiceRevenue struct {
	ServiceID   uuid.UUID `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	Bookings    int64     `gorm:"column:booking_count" json:"bookings"`
	Revenue     float64   `json:"revenue"`
}

type BookingService struct {
	db               *gorm.DB
	strictServiceRef bool
}

// NewBookingService returns the booking lifecycle service. With
// strictServiceRef a booking for an unknown service is rejected; otherwise
// it is priced at 0.
func NewBookingService(db *gorm.DB, strictServiceRef bool) *BookingService {
	return &BookingService{db: db, strictServiceRef: strictServiceRef}
}

// CreateBooking records a pending booking for caller. Staff only.
func (s *BookingService) CreateBooking(ctx context.Context, caller Caller, in CreateBookingInput) (*models.Booking, error) {
	if err := requireRole(caller, models.RoleStaff); err != nil {
		return nil, err
	}

	date, err := utils.NormalizeDate(in.Date)
	if err != nil {
		return nil, validationError("%v", err)
	}
	clock, err := utils.NormalizeClock(in.Time)
	if err != nil {
		return nil, validationError("%v", err)
	}
	if in.Pet == nil {
		return nil, validationError("pet is required")
	}
	if in.ServiceID == uuid.Nil {
		return nil, validationError("service is required")
	}

	booking := models.Booking{
		OwnerName:          strings.TrimSpace(in.OwnerName),
		Date:               date,
		Time:               clock,
		CreatedByAccountID: caller.AccountID,
		ServiceID:          in.ServiceID,
		Status:             models.BookingStatusPending,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch pet := in.Pet.(type) {
		case ExistingPet:
			var p models.Pet
			if err := tx.First(&p, "id = ?", pet.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: pet %s", ErrNotFound, pet.ID)
				}
				return err
			}
			booking.PetName, booking.PetSpecies = p.Name, p.Species
		case NewPet:
			name, species := strings.TrimSpace(pet.Name), strings.TrimSpace(pet.Species)
			if name != "" && species != "" {
				if err := tx.Create(&models.Pet{Name: name, Species: species}).Error; err != nil {
					return err
				}
			}
			booking.PetName, booking.PetSpecies = name, species
		default:
			return validationError("unsupported pet selection %T", in.Pet)
		}

		service, ok, err := findService(tx, in.ServiceID)
		if err != nil {
			return err
		}
		switch {
		case ok:
			booking.Price = service.Price
		case s.strictServiceRef:
			return fmt.Errorf("%w: %s", ErrInvalidReference, in.ServiceID)
		default:
			logrus.WithField("service_id", in.ServiceID).Warn("Booking for unknown service, pricing at 0")
			booking.Price = 0
		}

		return tx.Create(&booking).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"service_id": booking.ServiceID,
		"price":      booking.Price,
		"account_id": caller.AccountID,
	}).Info("Booking created")
	return &booking, nil
}

// ListBookings returns the bookings caller may see, earliest first.
func (s *BookingService) ListBookings(ctx context.Context, caller Caller) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Scopes(bookingScope(caller)).
		Order("booking_date ASC, booking_time ASC, created_at ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// GetBooking returns one booking. Bookings outside caller's scope are
// reported as not found.
func (s *BookingService) GetBooking(ctx context.Context, caller Caller, id uuid.UUID) (*models.Booking, error) {
	return getBooking(s.db.WithContext(ctx), caller, id)
}

func getBooking(db *gorm.DB, caller Caller, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := db.Scopes(bookingScope(caller)).First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return &booking, nil
}

// TotalRevenue sums the price snapshot of done bookings. It is defined for
// admins only: ok is false for anyone else, which is not the same as zero.
func (s *BookingService) TotalRevenue(ctx context.Context, caller Caller) (total float64, ok bool, err error) {
	if !caller.IsAdmin() {
		return 0, false, nil
	}

	err = s.db.WithContext(ctx).Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusDone).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, false, fmt.Errorf("failed to compute revenue: %w", err)
	}
	return total, true, nil
}

// RevenueByService breaks done-booking revenue down by service. Admin only.
func (s *BookingService) RevenueByService(ctx context.Context, caller Caller) ([]ServiceRevenue, error) {
	if err := requireRole(caller, models.RoleAdmin); err != nil {
		return nil, err
	}

	var rows []ServiceRevenue
	err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Select("bookings.service_id AS service_id, COALESCE(services.name, '') AS service_name, " +
			"COUNT(*) AS booking_count, COALESCE(SUM(bookings.price), 0) AS revenue").
		Joins("LEFT JOIN services ON services.id = bookings.service_id").
		Where("bookings.status = ?", models.BookingStatusDone).
		Group("bookings.service_id, services.name").
		Order("revenue DESC, service_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute revenue by service: %w", err)
	}
	return rows, nil
}

// TransitionStatus moves a booking to status. Staff only; any status may
// follow any other.
func (s *BookingService) TransitionStatus(ctx context.Context, caller Caller, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	if err := requireRole(caller, models.RoleStaff); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var booking *models.Booking
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if booking, err = getBooking(tx, caller, id); err != nil {
			return err
		}
		if err := tx.Model(booking).Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		booking.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"status":     status,
		"account_id": caller.AccountID,
	}).Info("Booking status changed")
	return booking, nil
}

// EditBooking overwrites a booking's details. Changing the service takes a
// fresh price snapshot; an unknown service keeps the old one. Admin only.
func (s *BookingService) EditBooking(ctx context.Context, caller Caller, id uuid.UUID, in EditBookingInput) (*models.Booking, error) {
	if err := requireRole(caller, models.RoleAdmin); err != nil {
		return nil, err
	}

	date, err := utils.NormalizeDate(in.Date)
	if err != nil {
		return nil, validationError("%v", err)
	}
	clock, err := utils.NormalizeClock(in.Time)
	if err != nil {
		return nil, validationError("%v", err)
	}

	var booking *models.Booking
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if booking, err = getBooking(tx, caller, id); err != nil {
			return err
		}

		booking.PetName = strings.TrimSpace(in.PetName)
		booking.PetSpecies = strings.TrimSpace(in.PetSpecies)
		booking.OwnerName = strings.TrimSpace(in.OwnerName)
		booking.Date = date
		booking.Time = clock

		if in.ServiceID != uuid.Nil && in.ServiceID != booking.ServiceID {
			service, ok, err := findService(tx, in.ServiceID)
			if err != nil {
				return err
			}
			booking.ServiceID = in.ServiceID
			if ok {
				booking.Price = service.Price
			} else {
				logrus.WithField("service_id", in.ServiceID).Warn("Booking moved to unknown service, keeping price")
			}
		}

		if err := tx.Save(booking).Error; err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"service_id": booking.ServiceID,
		"price":      booking.Price,
		"account_id": caller.AccountID,
	}).Info("Booking updated")
	return booking, nil
}

// DeleteBooking removes a booking permanently. Admin only.
func (s *BookingService) DeleteBooking(ctx context.Context, caller Caller, id uuid.UUID) error {
	if err := requireRole(caller, models.RoleAdmin); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: booking %s", ErrNotFound, id)
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": id,
		"account_id": caller.AccountID,
	}).Warn("Booking deleted")
	return nil
}
