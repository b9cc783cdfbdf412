package repository

import (
	"github.com/petalperfect/shop_service/internal/domain"
	"gorm.io/gorm"
)

type CartRepository interface {
	CreateCartItem(item *domain.CartItem) (*domain.CartItem, error)
	FindCartItemById(id string) (*domain.CartItem, error)
	ListCartItemsByEmail(email string) ([]domain.CartItem, error)
	SaveCartItem(item *domain.CartItem) error
	DeleteCartItem(id string) error
	DeleteCartItemsByEmail(email string) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) CreateCartItem(item *domain.CartItem) (*domain.CartItem, error) {
	if err := r.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *cartRepository) FindCartItemById(id string) (*domain.CartItem, error) {
	item := &domain.CartItem{}
	if err := r.db.First(item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *cartRepository) ListCartItemsByEmail(email string) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := r.db.Where("email = ?", email).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) SaveCartItem(item *domain.CartItem) error {
	return r.db.Save(item).Error
}

func (r *cartRepository) DeleteCartItem(id string) error {
	return r.db.Delete(&domain.CartItem{}, "id = ?", id).Error
}

func (r *cartRepository) DeleteCartItemsByEmail(email string) error {
	return r.db.Delete(&domain.CartItem{}, "email = ?", email).Error
}
