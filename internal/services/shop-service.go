package services

import (
	"errors"
	"log"
	"math/rand"

	"github.com/petalperfect/shop_service/internal/domain"
	"github.com/petalperfect/shop_service/internal/dto"
	"github.com/petalperfect/shop_service/internal/helper"
	"github.com/petalperfect/shop_service/internal/repository"
	"gorm.io/gorm"
)

type ShopService interface {
	// Carts
	AddCartItem(input dto.CartItemRequest) (*domain.CartItem, error)
	GetCartItem(id string) (*domain.CartItem, error)
	ListCart(email string) ([]domain.CartItem, error)
	UpdateCartItem(id string, input dto.CartItemPatch) error
	DeleteCartItem(id string) error
	ClearCart(email string) error

	// Orders
	PlaceOrder(input dto.OrderRequest) (*domain.Order, error)
	GetOrder(id string) (*domain.Order, error)
	ListOrders(email string) ([]domain.Order, error)
	UpdateOrder(id string, input dto.OrderPatch) error
	DeleteOrder(id string) error

	// Wishlist
	AddWishlistItem(input dto.WishlistItemRequest) (*domain.WishlistItem, error)
	ListWishlist(email string) ([]domain.WishlistItem, error)
	DeleteWishlistItem(id string) error

	// Payments
	AddPayment(input dto.PaymentRequest) (*domain.Payment, error)
	GetPayment(id string) (*domain.Payment, error)
	ListPayments() ([]domain.Payment, error)
	UpdatePayment(id string, input dto.PaymentPatch) error
	DeletePayment(id string) error

	// Products
	AddProduct(input dto.ProductRequest) (*domain.Product, error)
	GetProduct(id string) (*domain.Product, error)
	ListProducts() ([]domain.Product, error)
	UpdateProduct(id string, input dto.ProductPatch) error
	DeleteProduct(id string) error

	// Reviews
	AddReview(input dto.ReviewRequest) (*domain.Review, error)
	GetReview(id string) (*domain.Review, error)
	ListReviews() ([]domain.Review, error)
	UpdateReview(id string, input dto.ReviewPatch) error
	DeleteReview(id string) error

	// User locations
	AddLocation(input dto.UserLocationRequest) (*domain.UserLocation, error)
	GetLocation(id string) (*domain.UserLocation, error)
	ListLocations() ([]domain.UserLocation, error)
	UpdateLocation(id string, input dto.UserLocationPatch) error
	DeleteLocation(id string) error
}

type shopService struct {
	cartRepo     repository.CartRepository
	orderRepo    repository.OrderRepository
	wishlistRepo repository.WishlistRepository
	paymentRepo  repository.PaymentRepository
	productRepo  repository.ProductRepository
	reviewRepo   repository.ReviewRepository
	locationRepo repository.LocationRepository
}

func NewShopService(
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	wishlistRepo repository.WishlistRepository,
	paymentRepo repository.PaymentRepository,
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
	locationRepo repository.LocationRepository,
) ShopService {
	return &shopService{
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		wishlistRepo: wishlistRepo,
		paymentRepo:  paymentRepo,
		productRepo:  productRepo,
		reviewRepo:   reviewRepo,
		locationRepo: locationRepo,
	}
}

func checkID(id string) error {
	if !helper.IsValidID(id) {
		return errInvalid("Invalid ID")
	}
	return nil
}

func mapNotFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errNotFound(msg)
	}
	return err
}

// ---------- Carts ----------

func (s *shopService) AddCartItem(input dto.CartItemRequest) (*domain.CartItem, error) {
	item := &domain.CartItem{
		Email:    input.Email,
		Title:    input.Title,
		Category: input.Category,
		Price:    input.Price,
		Quantity: input.Quantity,
		Image:    input.Image,
	}
	return s.cartRepo.CreateCartItem(item)
}

func (s *shopService) GetCartItem(id string) (*domain.CartItem, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	item, err := s.cartRepo.FindCartItemById(id)
	if err != nil {
		return nil, mapNotFound(err, "Cart item not found")
	}
	return item, nil
}

func (s *shopService) ListCart(email string) ([]domain.CartItem, error) {
	if email == "" {
		return nil, errInvalid("Email required")
	}
	return s.cartRepo.ListCartItemsByEmail(email)
}

func (s *shopService) UpdateCartItem(id string, input dto.CartItemPatch) error {
	item, err := s.GetCartItem(id)
	if err != nil {
		return err
	}
	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Image != nil {
		item.Image = *input.Image
	}
	return s.cartRepo.SaveCartItem(item)
}

func (s *shopService) DeleteCartItem(id string) error {
	if _, err := s.GetCartItem(id); err != nil {
		return err
	}
	return s.cartRepo.DeleteCartItem(id)
}

func (s *shopService) ClearCart(email string) error {
	if email == "" {
		return errInvalid("Email required")
	}
	return s.cartRepo.DeleteCartItemsByEmail(email)
}

// ---------- Orders ----------

func (s *shopService) PlaceOrder(input dto.OrderRequest) (*domain.Order, error) {
	status := input.Status
	if status == "" {
		status = "Placed"
	}
	order := &domain.Order{
		Email:  input.Email,
		Status: status,
		Total:  input.Total,
		Items:  input.Items,
	}
	created, err := s.orderRepo.CreateOrder(order)
	if err != nil {
		return nil, err
	}

	// Checkout empties the placer's cart. Not transactional with the
	// insert; a failure here leaves the order in place.
	if created.Email != "" {
		if err := s.cartRepo.DeleteCartItemsByEmail(created.Email); err != nil {
			log.Printf("clear cart after order error: %v", err)
		}
	}
	return created, nil
}

func (s *shopService) GetOrder(id string) (*domain.Order, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	order, err := s.orderRepo.FindOrderById(id)
	if err != nil {
		return nil, mapNotFound(err, "Order not found")
	}
	return order, nil
}

func (s *shopService) ListOrders(email string) ([]domain.Order, error) {
	if email == "" {
		return nil, errInvalid("Email required")
	}
	return s.orderRepo.ListOrdersByEmail(email)
}

func (s *shopService) UpdateOrder(id string, input dto.OrderPatch) error {
	order, err := s.GetOrder(id)
	if err != nil {
		return err
	}
	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.Total != nil {
		order.Total = *input.Total
	}
	if input.Items != nil {
		order.Items = *input.Items
	}
	return s.orderRepo.SaveOrder(order)
}

func (s *shopService) DeleteOrder(id string) error {
	if _, err := s.GetOrder(id); err != nil {
		return err
	}
	return s.orderRepo.DeleteOrder(id)
}

// ---------- Wishlist ----------

func (s *shopService) AddWishlistItem(input dto.WishlistItemRequest) (*domain.WishlistItem, error) {
	if input.Email == "" {
		return nil, errInvalid("Email required")
	}

	existing, err := s.wishlistRepo.FindWishlistItemByEmailAndTitle(input.Email, input.Title)
	if err == nil && existing != nil {
		return nil, errInvalid("Item already in wishlist")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := &domain.WishlistItem{
		Email:    input.Email,
		Title:    input.Title,
		Category: input.Category,
		Price:    input.Price,
		Image:    input.Image,
	}
	return s.wishlistRepo.CreateWishlistItem(item)
}

func (s *shopService) ListWishlist(email string) ([]domain.WishlistItem, error) {
	if email == "" {
		return nil, errInvalid("Email required")
	}
	return s.wishlistRepo.ListWishlistItemsByEmail(email)
}

func (s *shopService) DeleteWishlistItem(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if _, err := s.wishlistRepo.FindWishlistItemById(id); err != nil {
		return mapNotFound(err, "Wishlist item not found")
	}
	return s.wishlistRepo.DeleteWishlistItem(id)
}

// ---------- Payments ----------

func (s *shopService) AddPayment(input dto.PaymentRequest) (*domain.Payment, error) {
	payment := &domain.Payment{
		Email:   input.Email,
		OrderID: input.OrderID,
		Amount:  input.Amount,
		Method:  input.Method,
		Status:  input.Status,
	}
	return s.paymentRepo.CreatePayment(payment)
}

func (s *shopService) GetPayment(id string) (*domain.Payment, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	payment, err := s.paymentRepo.FindPaymentById(id)
	if err != nil {
		return nil, mapNotFound(err, "Payment not found")
	}
	return payment, nil
}

func (s *shopService) ListPayments() ([]domain.Payment, error) {
	return s.paymentRepo.ListPayments()
}

func (s *shopService) UpdatePayment(id string, input dto.PaymentPatch) error {
	payment, err := s.GetPayment(id)
	if err != nil {
		return err
	}
	if input.Amount != nil {
		payment.Amount = *input.Amount
	}
	if input.Method != nil {
		payment.Method = *input.Method
	}
	if input.Status != nil {
		payment.Status = *input.Status
	}
	return s.paymentRepo.SavePayment(payment)
}

func (s *shopService) DeletePayment(id string) error {
	if _, err := s.GetPayment(id); err != nil {
		return err
	}
	return s.paymentRepo.DeletePayment(id)
}

// ---------- Products ----------

func (s *shopService) AddProduct(input dto.ProductRequest) (*domain.Product, error) {
	product := &domain.Product{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Image:       input.Image,
		Rating:      input.Rating,
		ReviewCount: input.ReviewCount,
		Stock:       input.Stock,
	}
	// storefront demo defaults when the seller leaves these off
	if product.Rating == 0 {
		product.Rating = 4.0 + rand.Float64()
	}
	if product.ReviewCount == 0 {
		product.ReviewCount = rand.Intn(50) + 5
	}
	if product.Stock == 0 {
		product.Stock = rand.Intn(20) + 1
	}
	return s.productRepo.CreateProduct(product)
}

func (s *shopService) GetProduct(id string) (*domain.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindProductById(id)
	if err != nil {
		return nil, mapNotFound(err, "Product not found")
	}
	return product, nil
}

func (s *shopService) ListProducts() ([]domain.Product, error) {
	return s.productRepo.ListProducts()
}

func (s *shopService) UpdateProduct(id string, input dto.ProductPatch) error {
	product, err := s.GetProduct(id)
	if err != nil {
		return err
	}
	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.ReviewCount != nil {
		product.ReviewCount = *input.ReviewCount
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	return s.productRepo.SaveProduct(product)
}

func (s *shopService) DeleteProduct(id string) error {
	if _, err := s.GetProduct(id); err != nil {
		return err
	}
	return s.productRepo.DeleteProduct(id)
}

// ---------- Reviews ----------

func (s *shopService) AddReview(input dto.ReviewRequest) (*domain.Review, error) {
	review := &domain.Review{
		Email:     input.Email,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	return s.reviewRepo.CreateReview(review)
}

func (s *shopService) GetReview(id string) (*domain.Review, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	review, err := s.reviewRepo.FindReviewById(id)
	if err != nil {
		return nil, mapNotFound(err, "Review not found")
	}
	return review, nil
}

func (s *shopService) ListReviews() ([]domain.Review, error) {
	return s.reviewRepo.ListReviews()
}

func (s *shopService) UpdateReview(id string, input dto.ReviewPatch) error {
	review, err := s.GetReview(id)
	if err != nil {
		return err
	}
	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}
	return s.reviewRepo.SaveReview(review)
}

func (s *shopService) DeleteReview(id string) error {
	if _, err := s.GetReview(id); err != nil {
		return err
	}
	return s.reviewRepo.DeleteReview(id)
}

// ---------- User locations ----------

func (s *shopService) AddLocation(input dto.UserLocationRequest) (*domain.UserLocation, error) {
	if input.Email == "" || input.LocationID == "" {
		return nil, errInvalid("Email and locationId required")
	}
	location := &domain.UserLocation{
		Email:      input.Email,
		LocationID: input.LocationID,
	}
	return s.locationRepo.CreateLocation(location)
}

func (s *shopService) GetLocation(id string) (*domain.UserLocation, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	location, err := s.locationRepo.FindLocationById(id)
	if err != nil {
		return nil, mapNotFound(err, "Location not found")
	}
	return location, nil
}

func (s *shopService) ListLocations() ([]domain.UserLocation, error) {
	return s.locationRepo.ListLocations()
}

func (s *shopService) UpdateLocation(id string, input dto.UserLocationPatch) error {
	location, err := s.GetLocation(id)
	if err != nil {
		return err
	}
	if input.LocationID != nil {
		location.LocationID = *input.LocationID
	}
	return s.locationRepo.SaveLocation(location)
}

func (s *shopService) DeleteLocation(id string) error {
	if _, err := s.GetLocation(id); err != nil {
		return err
	}
	return s.locationRepo.DeleteLocation(id)
}
