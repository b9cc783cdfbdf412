package repository

import (
	"errors"

	"github.com/petalperfect/shop_service/internal/domain"
	"gorm.io/gorm"
)

type AccountRepository interface {
	CreateAccount(account *domain.Account) (*domain.Account, error)
	FindAccountByEmail(email string) (*domain.Account, error)
	FindAccountById(id string) (*domain.Account, error)
	SaveAccount(account *domain.Account) error
	DeleteAccount(id string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) CreateAccount(account *domain.Account) (*domain.Account, error) {
	if account == nil {
		return nil, errors.New("nil account")
	}
	if err := r.db.Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func (r *accountRepository) FindAccountByEmail(email string) (*domain.Account, error) {
	account := &domain.Account{}
	if err := r.db.First(account, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func (r *accountRepository) FindAccountById(id string) (*domain.Account, error) {
	account := &domain.Account{}
	if err := r.db.First(account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func (r *accountRepository) SaveAccount(account *domain.Account) error {
	if account == nil {
		return errors.New("nil account")
	}
	return r.db.Save(account).Error
}

func (r *accountRepository) DeleteAccount(id string) error {
	return r.db.Delete(&domain.Account{}, "id = ?", id).Error
}
