package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusDone       BookingStatus = "done"
	BookingStatusCanceled   BookingStatus = "canceled"
)

// BookingStatuses lists every status in lifecycle order.
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusInProgress,
	BookingStatusDone,
	BookingStatusCanceled,
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusInProgress, BookingStatusDone, BookingStatusCanceled:
		return true
	}
	return false
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return status, nil
}

// Booking is an appointment for one pet and one catalog service. Price is a
// snapshot of the service price taken whenever ServiceID is written.
type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PetName    string    `gorm:"type:varchar(100);not null" json:"petName"`
	PetSpecies string    `gorm:"type:varchar(100);not null" json:"petSpecies"`
	OwnerName  string    `gorm:"type:varchar(100)" json:"ownerName"`
	Date       string    `gorm:"column:booking_date;type:varchar(10);index;not null" json:"date"` // YYYY-MM-DD
	Time       string    `gorm:"column:booking_time;type:varchar(5)" json:"time"`                 // HH:MM, optional

	CreatedByAccountID uuid.UUID     `gorm:"type:uuid;index;not null" json:"createdByAccountId"`
	ServiceID          uuid.UUID     `gorm:"type:uuid;index;not null" json:"serviceId"`
	Price              float64       `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	Status             BookingStatus `gorm:"type:varchar(20);index;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	return
}

// Tables is the migration set, in dependency order.
var Tables = []interface{}{
	&Account{},
	&Pet{},
	&Service{},
	&Booking{},
}
