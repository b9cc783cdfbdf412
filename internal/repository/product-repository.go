package repository

import (
	"github.com/petalperfect/shop_service/internal/domain"
	"gorm.io/gorm"
)

type ProductRepository interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	FindProductById(id string) (*domain.Product, error)
	ListProducts() ([]domain.Product, error)
	SaveProduct(product *domain.Product) error
	DeleteProduct(id string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if err := r.db.Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepository) FindProductById(id string) (*domain.Product, error) {
	product := &domain.Product{}
	if err := r.db.First(product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepository) ListProducts() ([]domain.Product, error) {
	var products []domain.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) SaveProduct(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) DeleteProduct(id string) error {
	return r.db.Delete(&domain.Product{}, "id = ?", id).Error
}
