package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/petalperfect/shop_service/internal/helper/utils"
	"github.com/petalperfect/shop_service/internal/services"
)

// respondError maps a service failure to its status code. Anything outside
// the taxonomy is logged and surfaces as a fixed message.
func respondError(ctx *fiber.Ctx, err error) error {
	var se *services.Error
	if errors.As(err, &se) {
		switch se.Kind {
		case services.KindInvalid:
			return utils.ResponseError(ctx, fiber.StatusBadRequest, se.Message)
		case services.KindUnauthorized:
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, se.Message)
		case services.KindForbidden:
			return utils.ResponseError(ctx, fiber.StatusForbidden, se.Message)
		case services.KindNotFound:
			return utils.ResponseError(ctx, fiber.StatusNotFound, se.Message)
		}
	}
	log.Printf("internal error: %v", err)
	return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Internal Server Error")
}
