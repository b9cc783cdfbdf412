package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/petalperfect/shop_service/internal/domain"
	"github.com/petalperfect/shop_service/internal/dto"
	"github.com/petalperfect/shop_service/internal/helper"
	"github.com/petalperfect/shop_service/internal/interfaces"
	"github.com/petalperfect/shop_service/internal/repository"
	"gorm.io/gorm"
)

// The two password minimums intentionally differ: signup has always required
// 8 characters while password change accepts 6. Flagged to product, kept
// until they confirm unifying.
const (
	minSignupPasswordLen = 8
	minChangePasswordLen = 6
)

// avatarChoices is the fixed palette a new account's picture is drawn from.
var avatarChoices = []string{
	"https://4kwallpapers.com/images/walls/thumbs/23992.jpg",
	"https://4kwallpapers.com/images/walls/thumbs/23893.jpg",
	"https://4kwallpapers.com/images/walls/thumbs/23902.jpg",
	"https://4kwallpapers.com/images/walls/thumbs/23991.jpg",
	"https://4kwallpapers.com/images/walls/thumbs/5658.jpg",
	"https://4kwallpapers.com/images/walls/thumbs/1679.jpg",
	"https://4kwallpapers.com/images/walls/thumbs/14938.jpg",
	"https://4kwallpapers.com/images/walls/thumbs/4289.jpg",
	"https://4kwallpapers.com/images/walls/thumbs_3t/4049.jpg",
	"https://4kwallpapers.com/images/walls/thumbs/2044.jpg",
}

type AccountService interface {
	// Auth
	Signup(input dto.SignupRequest) (*dto.SignupResponse, error)
	CheckPassword(input dto.CheckPasswordRequest) (*dto.CheckPasswordResponse, error)
	Login(email, password string) (string, error)
	Authenticate(email, password string) (*domain.Account, error)

	// Profile
	GetAccount(id string) (*domain.Account, error)
	GetAccountByEmail(email string) (*domain.Account, error)
	UpdateProfile(id string, input dto.UpdateProfileRequest) (*domain.Account, error)
	UpdateAvatar(ctx context.Context, id string, filename string, image []byte) (string, error)
	ChangePassword(id string, input dto.ChangePasswordRequest) error

	// Lifecycle
	Export(id string) (*dto.ExportResponse, error)
	DeleteAccount(id string, confirmEmail string) error
	Stats(id string) (*dto.StatsResponse, error)
}

type accountService struct {
	repo         repository.AccountRepository
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	wishlistRepo repository.WishlistRepository
	auth         helper.Auth
	producer     interfaces.ProducerHandler
	uploader     interfaces.Uploader
	normalize    func([]byte) ([]byte, error)
}

func NewAccountService(
	repo repository.AccountRepository,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	wishlistRepo repository.WishlistRepository,
	auth helper.Auth,
	producer interfaces.ProducerHandler,
	uploader interfaces.Uploader,
	normalize func([]byte) ([]byte, error),
) AccountService {
	return &accountService{
		repo:         repo,
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		wishlistRepo: wishlistRepo,
		auth:         auth,
		producer:     producer,
		uploader:     uploader,
		normalize:    normalize,
	}
}

func (s *accountService) Signup(input dto.SignupRequest) (*dto.SignupResponse, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	if len(input.Password) < minSignupPasswordLen {
		return nil, errInvalid("Password must be at least 8 characters")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, errInvalid("Invalid email format")
	}
	if input.Password != input.ConfirmPassword {
		return nil, errInvalid("Passwords do not match")
	}

	existing, err := s.repo.FindAccountByEmail(email)
	if err == nil && existing != nil {
		return nil, errInvalid("Email already in use")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Email:        email,
		PasswordHash: hashed,
		UserName:     strings.TrimSpace(input.UserName),
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		Avatar:       avatarChoices[rand.Intn(len(avatarChoices))],
		Settings:     domain.DefaultAccountSettings(),
	}

	created, err := s.repo.CreateAccount(account)
	if err != nil {
		// the unique index backstops a racing signup that passed the
		// existence check above
		if helper.IsDuplicateKey(err) {
			return nil, errInvalid("Email already in use")
		}
		return nil, err
	}

	if s.producer != nil {
		payload := fmt.Sprintf(`{"user_id":"%s","email":"%s"}`, created.ID, created.Email)
		_ = s.producer.PublishMessage([]byte("account.created"), []byte(payload))
	}

	return &dto.SignupResponse{
		Message:  "User created",
		UserID:   created.ID,
		UserName: created.UserName,
		Email:    created.Email,
		Avatar:   created.Avatar,
		Settings: created.Settings,
	}, nil
}

func (s *accountService) CheckPassword(input dto.CheckPasswordRequest) (*dto.CheckPasswordResponse, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" {
		return nil, errInvalid("Email and password are required")
	}

	account, err := s.repo.FindAccountByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("User not found")
		}
		return nil, err
	}

	if err := s.auth.VerifyPassword(input.Password, account.PasswordHash); err != nil {
		return nil, errUnauthorized("Invalid password")
	}

	return &dto.CheckPasswordResponse{
		Message:  "Password is correct",
		Valid:    true,
		UserID:   account.ID,
		UserName: account.UserName,
		Email:    account.Email,
		Avatar:   account.Avatar,
		Phone:    account.Phone,
		Address:  account.Address,
		Settings: account.Settings,
	}, nil
}

// Authenticate resolves a Basic credential pair to its account. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *accountService) Authenticate(email, password string) (*domain.Account, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, errUnauthorized("Invalid credentials")
	}
	account, err := s.repo.FindAccountByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUnauthorized("Invalid credentials")
		}
		return nil, err
	}
	if err := s.auth.VerifyPassword(password, account.PasswordHash); err != nil {
		return nil, errUnauthorized("Invalid credentials")
	}
	return account, nil
}

func (s *accountService) Login(email, password string) (string, error) {
	account, err := s.Authenticate(email, password)
	if err != nil {
		return "", err
	}

	now := time.Now()
	account.LastLogin = &now
	if err := s.repo.SaveAccount(account); err != nil {
		log.Printf("stamp last login error: %v", err)
	}

	token, err := s.auth.GenerateToken(account.ID, account.Email)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *accountService) findByID(id string) (*domain.Account, error) {
	if !helper.IsValidID(id) {
		return nil, errInvalid("Invalid user ID")
	}
	account, err := s.repo.FindAccountById(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("User not found")
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccount(id string) (*domain.Account, error) {
	return s.findByID(id)
}

func (s *accountService) GetAccountByEmail(email string) (*domain.Account, error) {
	if email == "" {
		return nil, errInvalid("Email required")
	}
	account, err := s.repo.FindAccountByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("User not found")
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) UpdateProfile(id string, input dto.UpdateProfileRequest) (*domain.Account, error) {
	account, err := s.findByID(id)
	if err != nil {
		return nil, err
	}

	if input.UserName != nil {
		account.UserName = strings.TrimSpace(*input.UserName)
	}
	if input.Phone != nil {
		account.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		account.Address = strings.TrimSpace(*input.Address)
	}
	if input.Avatar != nil {
		account.Avatar = strings.TrimSpace(*input.Avatar)
	}
	if input.Settings != nil {
		account.Settings = *input.Settings
	}
	if input.Password != nil {
		hashed, err := helper.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hashed
	}

	if err := s.repo.SaveAccount(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) UpdateAvatar(ctx context.Context, id string, filename string, image []byte) (string, error) {
	if s.uploader == nil {
		return "", errors.New("avatar upload not configured")
	}

	account, err := s.findByID(id)
	if err != nil {
		return "", err
	}

	if s.normalize != nil {
		normalized, err := s.normalize(image)
		if err != nil {
			return "", errInvalid("Unsupported image")
		}
		image = normalized
	}

	url, err := s.uploader.UploadBytes(ctx, "petalperfect/avatars", account.ID, image)
	if err != nil {
		return "", err
	}

	account.Avatar = url
	if err := s.repo.SaveAccount(account); err != nil {
		return "", err
	}
	return url, nil
}

func (s *accountService) ChangePassword(id string, input dto.ChangePasswordRequest) error {
	if !helper.IsValidID(id) {
		return errInvalid("Invalid user ID")
	}
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return errInvalid("Current and new passwords are required")
	}
	if len(input.NewPassword) < minChangePasswordLen {
		return errInvalid("New password must be at least 6 characters")
	}

	account, err := s.repo.FindAccountById(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("User not found")
		}
		return err
	}

	if err := s.auth.VerifyPassword(input.CurrentPassword, account.PasswordHash); err != nil {
		return errUnauthorized("Current password is incorrect")
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	now := time.Now()
	account.PasswordHash = hashed
	account.LastPasswordChange = &now

	if err := s.repo.SaveAccount(account); err != nil {
		return err
	}

	if s.producer != nil {
		payload := fmt.Sprintf(`{"user_id":"%s","email":"%s"}`, account.ID, account.Email)
		_ = s.producer.PublishMessage([]byte("account.password_changed"), []byte(payload))
	}
	return nil
}

func (s *accountService) Export(id string) (*dto.ExportResponse, error) {
	account, err := s.findByID(id)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListOrdersByEmail(account.Email)
	if err != nil {
		return nil, err
	}
	cart, err := s.cartRepo.ListCartItemsByEmail(account.Email)
	if err != nil {
		return nil, err
	}
	wishlist, err := s.wishlistRepo.ListWishlistItemsByEmail(account.Email)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, o := range orders {
		total += o.Total
	}

	return &dto.ExportResponse{
		Profile: dto.ProfileExport{
			UserName:  account.UserName,
			Email:     account.Email,
			Phone:     account.Phone,
			Address:   account.Address,
			Avatar:    account.Avatar,
			CreatedAt: account.CreatedAt,
			Settings:  account.Settings,
		},
		Orders:      orders,
		Cart:        cart,
		Wishlist:    wishlist,
		ExportDate:  time.Now(),
		TotalOrders: len(orders),
		TotalSpent:  total,
	}, nil
}

func (s *accountService) DeleteAccount(id string, confirmEmail string) error {
	if !helper.IsValidID(id) {
		return errInvalid("Invalid user ID")
	}
	if confirmEmail == "" {
		return errInvalid("Email confirmation required")
	}

	account, err := s.repo.FindAccountById(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("User not found")
		}
		return err
	}
	if account.Email != confirmEmail {
		return errForbidden("Email doesn't match user account")
	}

	// Dependent rows go first so a crash mid-way cannot leave orders or
	// cart entries behind a missing account.
	if err := s.orderRepo.DeleteOrdersByEmail(account.Email); err != nil {
		return err
	}
	if err := s.cartRepo.DeleteCartItemsByEmail(account.Email); err != nil {
		return err
	}
	if err := s.wishlistRepo.DeleteWishlistItemsByEmail(account.Email); err != nil {
		return err
	}
	if err := s.repo.DeleteAccount(account.ID); err != nil {
		return err
	}

	if s.producer != nil {
		payload := fmt.Sprintf(`{"user_id":"%s","email":"%s"}`, account.ID, account.Email)
		_ = s.producer.PublishMessage([]byte("account.deleted"), []byte(payload))
	}
	return nil
}

func (s *accountService) Stats(id string) (*dto.StatsResponse, error) {
	account, err := s.findByID(id)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListOrdersByEmail(account.Email)
	if err != nil {
		return nil, err
	}
	wishlist, err := s.wishlistRepo.ListWishlistItemsByEmail(account.Email)
	if err != nil {
		return nil, err
	}
	cart, err := s.cartRepo.ListCartItemsByEmail(account.Email)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, o := range orders {
		total += o.Total
	}

	lastLogin := account.CreatedAt
	if account.LastLogin != nil {
		lastLogin = *account.LastLogin
	}

	return &dto.StatsResponse{
		TotalOrders:      len(orders),
		TotalSpent:       total,
		WishlistCount:    len(wishlist),
		CartCount:        len(cart),
		FavoriteCategory: favoriteCategory(orders),
		MemberSince:      account.CreatedAt,
		LastLogin:        lastLogin,
	}, nil
}

// favoriteCategory is the line-item category with the highest occurrence
// count across all orders. Ties go to the lexicographically smallest
// category so the result is stable.
func favoriteCategory(orders []domain.Order) string {
	counts := map[string]int{}
	for _, o := range orders {
		for _, item := range o.Items {
			counts[item.Category]++
		}
	}

	best := "None"
	bestCount := 0
	for category, n := range counts {
		if n > bestCount || (n == bestCount && bestCount > 0 && category < best) {
			best = category
			bestCount = n
		}
	}
	return best
}
