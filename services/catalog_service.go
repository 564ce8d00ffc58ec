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

// ServiceInput carries the editable fields of a catalog service. Price is
// the raw submitted value and is parsed by the service.
type ServiceInput struct {
	Name        string
	Price       string
	Description string
	Duration    string
}

type CatalogService struct {
	db           *gorm.DB
	lenientPrice bool
}

func NewCatalogService(db *gorm.DB, lenientPrice bool) *CatalogService {
	return &CatalogService{db: db, lenientPrice: lenientPrice}
}

func (s *CatalogService) parseInput(in ServiceInput) (models.Service, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Service{}, validationError("service name is required")
	}
	price, err := utils.ParsePrice(in.Price, s.lenientPrice)
	if err != nil {
		return models.Service{}, validationError("%v", err)
	}
	return models.Service{
		Name:        name,
		Price:       price,
		Description: strings.TrimSpace(in.Description),
		Duration:    strings.TrimSpace(in.Duration),
	}, nil
}

// AddService creates a catalog entry. Admin only.
func (s *CatalogService) AddService(ctx context.Context, caller Caller, in ServiceInput) (*models.Service, error) {
	if err := requireRole(caller, models.RoleAdmin); err != nil {
		return nil, err
	}
	service, err := s.parseInput(in)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(&service).Error; err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"service_id": service.ID,
		"price":      service.Price,
		"account_id": caller.AccountID,
	}).Info("Service added")
	return &service, nil
}

// EditService overwrites every editable field of a service. Bookings keep
// the price they were snapshotted with. Admin only.
func (s *CatalogService) EditService(ctx context.Context, caller Caller, id uuid.UUID, in ServiceInput) (*models.Service, error) {
	if err := requireRole(caller, models.RoleAdmin); err != nil {
		return nil, err
	}
	fields, err := s.parseInput(in)
	if err != nil {
		return nil, err
	}

	var service models.Service
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&service, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: service %s", ErrNotFound, id)
			}
			return err
		}
		service.Name = fields.Name
		service.Price = fields.Price
		service.Description = fields.Description
		service.Duration = fields.Duration
		return tx.Save(&service).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"service_id": service.ID,
		"price":      service.Price,
		"account_id": caller.AccountID,
	}).Info("Service updated")
	return &service, nil
}

// ListServices returns the catalog, cheapest first.
func (s *CatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := s.db.WithContext(ctx).Order("price ASC, name ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// FindService looks a service up by id. A missing service is reported
// through ok, not as an error; the caller picks the fallback.
func (s *CatalogService) FindService(ctx context.Context, id uuid.UUID) (service models.Service, ok bool, err error) {
	return findService(s.db.WithContext(ctx), id)
}

func findService(db *gorm.DB, id uuid.UUID) (models.Service, bool, error) {
	var service models.Service
	err := db.First(&service, "id = ?", id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.Service{}, false, nil
	case err != nil:
		return models.Service{}, false, fmt.Errorf("failed to load service: %w", err)
	}
	return service, true, nil
}

// ListPets returns every registered pet by name.
func (s *CatalogService) ListPets(ctx context.Context) ([]models.Pet, error) {
	var pets []models.Pet
	if err := s.db.WithContext(ctx).Order("name ASC, created_at ASC").Find(&pets).Error; err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	return pets, nil
}

// RegisterPet pre-registers a pet so later bookings can select it.
func (s *CatalogService) RegisterPet(ctx context.Context, caller Caller, name, species string) (*models.Pet, error) {
	pet := models.Pet{
		Name:    strings.TrimSpace(name),
		Species: strings.TrimSpace(species),
	}
	if pet.Name == "" || pet.Species == "" {
		return nil, validationError("pet name and species are required")
	}

	if err := s.db.WithContext(ctx).Create(&pet).Error; err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"pet_id":     pet.ID,
		"account_id": caller.AccountID,
	}).Info("Pet registered")
	return &pet, nil
}
