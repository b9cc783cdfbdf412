package dto

import "github.com/petalperfect/shop_service/internal/domain"

type CartItemRequest struct {
	Email    string  `json:"email"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

type CartItemPatch struct {
	Title    *string  `json:"title,omitempty"`
	Category *string  `json:"category,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
	Image    *string  `json:"image,omitempty"`
}

type OrderRequest struct {
	Email  string            `json:"email"`
	Status string            `json:"status"`
	Total  float64           `json:"total"`
	Items  domain.OrderItems `json:"cart"`
}

type OrderPatch struct {
	Status *string            `json:"status,omitempty"`
	Total  *float64           `json:"total,omitempty"`
	Items  *domain.OrderItems `json:"cart,omitempty"`
}

type WishlistItemRequest struct {
	Email    string  `json:"email"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
}

type PaymentRequest struct {
	Email   string  `json:"email"`
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
	Status  string  `json:"status"`
}

type PaymentPatch struct {
	Amount *float64 `json:"amount,omitempty"`
	Method *string  `json:"method,omitempty"`
	Status *string  `json:"status,omitempty"`
}

type ProductRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	Stock       int     `json:"stock"`
}

type ProductPatch struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"reviewCount,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
}

type ReviewRequest struct {
	Email     string `json:"email"`
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type ReviewPatch struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

type UserLocationRequest struct {
	Email      string `json:"email"`
	LocationID string `json:"locationId"`
}

type UserLocationPatch struct {
	LocationID *string `json:"locationId,omitempty"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
