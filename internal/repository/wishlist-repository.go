package repository

import (
	"github.com/petalperfect/shop_service/internal/domain"
	"gorm.io/gorm"
)

type WishlistRepository interface {
	CreateWishlistItem(item *domain.WishlistItem) (*domain.WishlistItem, error)
	FindWishlistItemById(id string) (*domain.WishlistItem, error)
	FindWishlistItemByEmailAndTitle(email, title string) (*domain.WishlistItem, error)
	ListWishlistItemsByEmail(email string) ([]domain.WishlistItem, error)
	DeleteWishlistItem(id string) error
	DeleteWishlistItemsByEmail(email string) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) CreateWishlistItem(item *domain.WishlistItem) (*domain.WishlistItem, error) {
	if err := r.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *wishlistRepository) FindWishlistItemById(id string) (*domain.WishlistItem, error) {
	item := &domain.WishlistItem{}
	if err := r.db.First(item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *wishlistRepository) FindWishlistItemByEmailAndTitle(email, title string) (*domain.WishlistItem, error) {
	item := &domain.WishlistItem{}
	if err := r.db.First(item, "email = ? AND title = ?", email, title).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// ListWishlistItemsByEmail returns newest entries first.
func (r *wishlistRepository) ListWishlistItemsByEmail(email string) ([]domain.WishlistItem, error) {
	var items []domain.WishlistItem
	if err := r.db.Where("email = ?", email).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *wishlistRepository) DeleteWishlistItem(id string) error {
	return r.db.Delete(&domain.WishlistItem{}, "id = ?", id).Error
}

func (r *wishlistRepository) DeleteWishlistItemsByEmail(email string) error {
	return r.db.Delete(&domain.WishlistItem{}, "email = ?", email).Error
}
