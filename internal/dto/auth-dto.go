package dto

import "github.com/petalperfect/shop_service/internal/domain"

type SignupRequest struct {
	UserName        string `json:"userName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
}

type SignupResponse struct {
	Message  string                 `json:"message"`
	UserID   string                 `json:"userId"`
	UserName string                 `json:"userName"`
	Email    string                 `json:"email"`
	Avatar   string                 `json:"avatar"`
	Settings domain.AccountSettings `json:"settings"`
}

type CheckPasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CheckPasswordResponse struct {
	Message  string                 `json:"message"`
	Valid    bool                   `json:"valid"`
	UserID   string                 `json:"userId"`
	UserName string                 `json:"userName"`
	Email    string                 `json:"email"`
	Avatar   string                 `json:"avatar"`
	Phone    string                 `json:"phone"`
	Address  string                 `json:"address"`
	Settings domain.AccountSettings `json:"settings"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type DeleteAccountRequest struct {
	Email string `json:"email"`
}

// AuthClaims is what the token gate resolves a Bearer credential to.
type AuthClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
