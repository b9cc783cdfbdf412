package repository

import (
	"github.com/petalperfect/shop_service/internal/domain"
	"gorm.io/gorm"
)

type OrderRepository interface {
	CreateOrder(order *domain.Order) (*domain.Order, error)
	FindOrderById(id string) (*domain.Order, error)
	ListOrdersByEmail(email string) ([]domain.Order, error)
	SaveOrder(order *domain.Order) error
	DeleteOrder(id string) error
	DeleteOrdersByEmail(email string) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(order *domain.Order) (*domain.Order, error) {
	if err := r.db.Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) FindOrderById(id string) (*domain.Order, error) {
	order := &domain.Order{}
	if err := r.db.First(order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrdersByEmail returns the most recent orders first.
func (r *orderRepository) ListOrdersByEmail(email string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := r.db.Where("email = ?", email).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) SaveOrder(order *domain.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) DeleteOrder(id string) error {
	return r.db.Delete(&domain.Order{}, "id = ?", id).Error
}

func (r *orderRepository) DeleteOrdersByEmail(email string) error {
	return r.db.Delete(&domain.Order{}, "email = ?", email).Error
}
