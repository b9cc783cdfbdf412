package dto

import (
	"time"

	"github.com/petalperfect/shop_service/internal/domain"
)

// UpdateProfileRequest is a pointer-field patch: only supplied fields change.
type UpdateProfileRequest struct {
	UserName *string                 `json:"userName,omitempty"`
	Phone    *string                 `json:"phone,omitempty"`
	Address  *string                 `json:"address,omitempty"`
	Avatar   *string                 `json:"avatar,omitempty"`
	Password *string                 `json:"password,omitempty"`
	Settings *domain.AccountSettings `json:"settings,omitempty"`
}

type ProfileExport struct {
	UserName  string                 `json:"userName"`
	Email     string                 `json:"email"`
	Phone     string                 `json:"phone"`
	Address   string                 `json:"address"`
	Avatar    string                 `json:"avatar"`
	CreatedAt time.Time              `json:"createdAt"`
	Settings  domain.AccountSettings `json:"settings"`
}

type ExportResponse struct {
	Profile     ProfileExport         `json:"profile"`
	Orders      []domain.Order        `json:"orders"`
	Cart        []domain.CartItem     `json:"cart"`
	Wishlist    []domain.WishlistItem `json:"wishlist"`
	ExportDate  time.Time             `json:"exportDate"`
	TotalOrders int                   `json:"totalOrders"`
	TotalSpent  float64               `json:"totalSpent"`
}

type StatsResponse struct {
	TotalOrders      int       `json:"totalOrders"`
	TotalSpent       float64   `json:"totalSpent"`
	WishlistCount    int       `json:"wishlistCount"`
	CartCount        int       `json:"cartCount"`
	FavoriteCategory string    `json:"favoriteCategory"`
	MemberSince      time.Time `json:"memberSince"`
	LastLogin        time.Time `json:"lastLogin"`
}

type AvatarResponse struct {
	Message string `json:"message"`
	Avatar  string `json:"avatar"`
}
