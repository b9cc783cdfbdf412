package repository

import (
	"github.com/petalperfect/shop_service/internal/domain"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	CreatePayment(payment *domain.Payment) (*domain.Payment, error)
	FindPaymentById(id string) (*domain.Payment, error)
	ListPayments() ([]domain.Payment, error)
	SavePayment(payment *domain.Payment) error
	DeletePayment(id string) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreatePayment(payment *domain.Payment) (*domain.Payment, error) {
	if err := r.db.Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *paymentRepository) FindPaymentById(id string) (*domain.Payment, error) {
	payment := &domain.Payment{}
	if err := r.db.First(payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *paymentRepository) ListPayments() ([]domain.Payment, error) {
	var payments []domain.Payment
	if err := r.db.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) SavePayment(payment *domain.Payment) error {
	return r.db.Save(payment).Error
}

func (r *paymentRepository) DeletePayment(id string) error {
	return r.db.Delete(&domain.Payment{}, "id = ?", id).Error
}
