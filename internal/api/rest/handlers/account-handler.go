package handlers

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/petalperfect/shop_service/internal/dto"
	"github.com/petalperfect/shop_service/internal/helper/utils"
	"github.com/petalperfect/shop_service/internal/services"
	pkgutils "github.com/petalperfect/shop_service/pkg/utils"
)

const maxAvatarSize = 5 * 1024 * 1024

type AccountHandler struct {
	svc services.AccountService
}

func NewAccountHandler(svc services.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// SetupRoutes registers the account routes. guard is the auth gate for
// protected routes; signup, checkpassword and login stay open.
func (h *AccountHandler) SetupRoutes(app *fiber.App, guard fiber.Handler) {
	app.Post("/signup", h.Signup)
	app.Post("/checkpassword", h.CheckPassword)
	app.Post("/login", h.Login)

	users := app.Group("/users", guard)
	users.Get("/", h.GetUserByEmail)
	users.Get("/:id", h.GetUser)
	users.Put("/:id", h.UpdateUser)
	users.Delete("/:id", h.DeleteUser)
	users.Put("/:id/password", h.ChangePassword)
	users.Put("/:id/avatar", h.UpdateAvatar)
	users.Get("/:id/export", h.Export)
	users.Get("/:id/stats", h.Stats)
}

func (h *AccountHandler) Signup(ctx *fiber.Ctx) error {
	var requestBody dto.SignupRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	created, err := h.svc.Signup(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, created)
}

func (h *AccountHandler) CheckPassword(ctx *fiber.Ctx) error {
	var requestBody dto.CheckPasswordRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Email and password are required")
	}

	result, err := h.svc.CheckPassword(requestBody)
	if err != nil {
		var se *services.Error
		if errors.As(err, &se) && se.Kind == services.KindUnauthorized {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": se.Message,
				"valid":   false,
			})
		}
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, result)
}

func (h *AccountHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Email and password are required")
	}

	token, err := h.svc.Login(requestBody.Email, requestBody.Password)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.LoginResponse{Token: token})
}

func (h *AccountHandler) GetUser(ctx *fiber.Ctx) error {
	account, err := h.svc.GetAccount(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, account)
}

func (h *AccountHandler) GetUserByEmail(ctx *fiber.Ctx) error {
	account, err := h.svc.GetAccountByEmail(ctx.Query("email"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, account)
}

func (h *AccountHandler) UpdateUser(ctx *fiber.Ctx) error {
	var requestBody dto.UpdateProfileRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	account, err := h.svc.UpdateProfile(ctx.Params("id"), requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, account)
}

func (h *AccountHandler) ChangePassword(ctx *fiber.Ctx) error {
	var requestBody dto.ChangePasswordRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Current and new passwords are required")
	}

	if err := h.svc.ChangePassword(ctx.Params("id"), requestBody); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MessageResponse{
		Message: "Password updated successfully",
	})
}

func (h *AccountHandler) UpdateAvatar(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file is required")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}
	if !allowed[ext] {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "only jpg/jpeg/png/webp allowed")
	}
	if file.Size > maxAvatarSize {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file too large (max 5MB)")
	}

	f, err := file.Open()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "cannot open uploaded file")
	}
	defer f.Close()

	b, err := pkgutils.ReadAllLimit(f, maxAvatarSize)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file too large (max 5MB)")
	}

	uploadCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	url, err := h.svc.UpdateAvatar(uploadCtx, ctx.Params("id"), file.Filename, b)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.AvatarResponse{
		Message: "Avatar updated",
		Avatar:  url,
	})
}

func (h *AccountHandler) Export(ctx *fiber.Ctx) error {
	export, err := h.svc.Export(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, export)
}

func (h *AccountHandler) DeleteUser(ctx *fiber.Ctx) error {
	var requestBody dto.DeleteAccountRequest
	// a missing body reads as a missing confirmation
	_ = ctx.BodyParser(&requestBody)

	if err := h.svc.DeleteAccount(ctx.Params("id"), requestBody.Email); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MessageResponse{
		Message: "User account and all associated data deleted successfully",
	})
}

func (h *AccountHandler) Stats(ctx *fiber.Ctx) error {
	stats, err := h.svc.Stats(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, stats)
}
