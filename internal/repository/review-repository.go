package repository

import (
	"github.com/petalperfect/shop_service/internal/domain"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	CreateReview(review *domain.Review) (*domain.Review, error)
	FindReviewById(id string) (*domain.Review, error)
	ListReviews() ([]domain.Review, error)
	SaveReview(review *domain.Review) error
	DeleteReview(id string) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) CreateReview(review *domain.Review) (*domain.Review, error) {
	if err := r.db.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (r *reviewRepository) FindReviewById(id string) (*domain.Review, error) {
	review := &domain.Review{}
	if err := r.db.First(review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (r *reviewRepository) ListReviews() ([]domain.Review, error) {
	var reviews []domain.Review
	if err := r.db.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) SaveReview(review *domain.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) DeleteReview(id string) error {
	return r.db.Delete(&domain.Review{}, "id = ?", id).Error
}
