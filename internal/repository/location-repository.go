package repository

import (
	"github.com/petalperfect/shop_service/internal/domain"
	"gorm.io/gorm"
)

type LocationRepository interface {
	CreateLocation(location *domain.UserLocation) (*domain.UserLocation, error)
	FindLocationById(id string) (*domain.UserLocation, error)
	ListLocations() ([]domain.UserLocation, error)
	SaveLocation(location *domain.UserLocation) error
	DeleteLocation(id string) error
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) CreateLocation(location *domain.UserLocation) (*domain.UserLocation, error) {
	if err := r.db.Create(location).Error; err != nil {
		return nil, err
	}
	return location, nil
}

func (r *locationRepository) FindLocationById(id string) (*domain.UserLocation, error) {
	location := &domain.UserLocation{}
	if err := r.db.First(location, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return location, nil
}

func (r *locationRepository) ListLocations() ([]domain.UserLocation, error) {
	var locations []domain.UserLocation
	if err := r.db.Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) SaveLocation(location *domain.UserLocation) error {
	return r.db.Save(location).Error
}

func (r *locationRepository) DeleteLocation(id string) error {
	return r.db.Delete(&domain.UserLocation{}, "id = ?", id).Error
}
