package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/petalperfect/shop_service/internal/dto"
	"github.com/petalperfect/shop_service/internal/helper/utils"
	"github.com/petalperfect/shop_service/internal/services"
)

type ShopHandler struct {
	svc services.ShopService
}

func NewShopHandler(svc services.ShopService) *ShopHandler {
	return &ShopHandler{svc: svc}
}

func (h *ShopHandler) SetupRoutes(app *fiber.App, guard fiber.Handler) {
	carts := app.Group("/carts", guard)
	carts.Post("/", h.AddCartItem)
	carts.Get("/", h.ListCart)
	carts.Get("/:id", h.GetCartItem)
	carts.Put("/:id", h.UpdateCartItem)
	carts.Delete("/:id", h.DeleteCartItem)
	app.Delete("/cart/clear", guard, h.ClearCart)

	orders := app.Group("/orders", guard)
	orders.Post("/", h.PlaceOrder)
	orders.Get("/", h.ListOrders)
	orders.Get("/:id", h.GetOrder)
	orders.Put("/:id", h.UpdateOrder)
	orders.Delete("/:id", h.DeleteOrder)

	wishlist := app.Group("/wishlist", guard)
	wishlist.Post("/", h.AddWishlistItem)
	wishlist.Get("/", h.ListWishlist)
	wishlist.Delete("/:id", h.DeleteWishlistItem)

	payments := app.Group("/payments", guard)
	payments.Post("/", h.AddPayment)
	payments.Get("/", h.ListPayments)
	payments.Get("/:id", h.GetPayment)
	payments.Put("/:id", h.UpdatePayment)
	payments.Delete("/:id", h.DeletePayment)

	products := app.Group("/products", guard)
	products.Post("/", h.AddProduct)
	products.Get("/", h.ListProducts)
	products.Get("/:id", h.GetProduct)
	products.Put("/:id", h.UpdateProduct)
	products.Delete("/:id", h.DeleteProduct)

	reviews := app.Group("/reviews", guard)
	reviews.Post("/", h.AddReview)
	reviews.Get("/", h.ListReviews)
	reviews.Get("/:id", h.GetReview)
	reviews.Put("/:id", h.UpdateReview)
	reviews.Delete("/:id", h.DeleteReview)

	locations := app.Group("/userlocation", guard)
	locations.Post("/", h.AddLocation)
	locations.Get("/", h.ListLocations)
	locations.Get("/:id", h.GetLocation)
	locations.Put("/:id", h.UpdateLocation)
	locations.Delete("/:id", h.DeleteLocation)
}

// ---------- Carts ----------

func (h *ShopHandler) AddCartItem(ctx *fiber.Ctx) error {
	var requestBody dto.CartItemRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	item, err := h.svc.AddCartItem(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, dto.CreatedResponse{
		Message: "Cart item added",
		ID:      item.ID,
	})
}

func (h *ShopHandler) ListCart(ctx *fiber.Ctx) error {
	items, err := h.svc.ListCart(ctx.Query("email"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, items)
}

func (h *ShopHandler) GetCartItem(ctx *fiber.Ctx) error {
	item, err := h.svc.GetCartItem(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, item)
}

func (h *ShopHandler) UpdateCartItem(ctx *fiber.Ctx) error {
	var requestBody dto.CartItemPatch
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := h.svc.UpdateCartItem(ctx.Params("id"), requestBody); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MessageResponse{Message: "Cart item updated"})
}

func (h *ShopHandler) DeleteCartItem(ctx *fiber.Ctx) error {
	if err := h.svc.DeleteCartItem(ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MessageResponse{Message: "Cart item deleted"})
}

func (h *ShopHandler) ClearCart(ctx *fiber.Ctx) error {
	var requestBody struct {
		Email string `json:"email"`
	}
	_ = ctx.BodyParser(&requestBody)

	if err := h.svc.ClearCart(requestBody.Email); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MessageResponse{Message: "Cart cleared"})
}

// ---------- Orders ----------

func (h *ShopHandler) PlaceOrder(ctx *fiber.Ctx) error {
	var requestBody dto.OrderRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	order, err := h.svc.PlaceOrder(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, dto.CreatedResponse{
		Message: "Order placed successfully",
		ID:      order.ID,
	})
}

func (h *ShopHandler) ListOrders(ctx *fiber.Ctx) error {
	orders, err := h.svc.ListOrders(ctx.Query("email"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, orders)
}

func (h *ShopHandler) GetOrder(ctx *fiber.Ctx) error {
	order, err := h.svc.GetOrder(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, order)
}

func (h *ShopHandler) UpdateOrder(ctx *fiber.Ctx) error {
	var requestBody dto.OrderPatch
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := h.svc.UpdateOrder(ctx.Params("id"), requestBody); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MessageResponse{Message: "Order updated"})
}

func (h *ShopHandler) DeleteOrder(ctx *fiber.Ctx) error {
	if err := h.svc.DeleteOrder(ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MessageResponse{Message: "Order deleted"})
}

// ---------- Wishlist ----------

func (h *ShopHandler) AddWishlistItem(ctx *fiber.Ctx) error {
	var requestBody dto.WishlistItemRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	item, err := h.svc.AddWishlistItem(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, dto.CreatedResponse{
		Message: "Wishlist item added",
		ID:      item.ID,
	})
}

func (h *ShopHandler) ListWishlist(ctx *fiber.Ctx) error {
	items, err := h.svc.ListWishlist(ctx.Query("email"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, items)
}

func (h *ShopHandler) DeleteWishlistItem(ctx *fiber.Ctx) error {
	if err := h.svc.DeleteWishlistItem(ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MessageResponse{Message: "Wishlist item deleted"})
}

// ---------- Payments ----------

func (h *ShopHandler) AddPayment(ctx *fiber.Ctx) error {
	var requestBody dto.PaymentRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	payment, err := h.svc.AddPayment(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, dto.CreatedResponse{
		Message: "Payment added",
		ID:      payment.ID,
	})
}

func (h *ShopHandler) ListPayments(ctx *fiber.Ctx) error {
	payments, err := h.svc.ListPayments()
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, payments)
}

func (h *ShopHandler) GetPayment(ctx *fiber.Ctx) error {
	payment, err := h.svc.GetPayment(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, payment)
}

func (h *ShopHandler) UpdatePayment(ctx *fiber.Ctx) error {
	var requestBody dto.PaymentPatch
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := h.svc.UpdatePayment(ctx.Params("id"), requestBody); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MessageResponse{Message: "Payment updated"})
}

func (h *ShopHandler) DeletePayment(ctx *fiber.Ctx) error {
	if err := h.svc.DeletePayment(ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MessageResponse{Message: "Payment deleted"})
}

// ---------- Products ----------

func (h *ShopHandler) AddProduct(ctx *fiber.Ctx) error {
	var requestBody dto.ProductRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	product, err := h.svc.AddProduct(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, dto.CreatedResponse{
		Message: "Product added",
		ID:      product.ID,
	})
}

func (h *ShopHandler) ListProducts(ctx *fiber.Ctx) error {
	products, err := h.svc.ListProducts()
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, products)
}

func (h *ShopHandler) GetProduct(ctx *fiber.Ctx) error {
	product, err := h.svc.GetProduct(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, product)
}

func (h *ShopHandler) UpdateProduct(ctx *fiber.Ctx) error {
	var requestBody dto.ProductPatch
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := h.svc.UpdateProduct(ctx.Params("id"), requestBody); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MessageResponse{Message: "Product updated"})
}

func (h *ShopHandler) DeleteProduct(ctx *fiber.Ctx) error {
	if err := h.svc.DeleteProduct(ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MessageResponse{Message: "Product deleted"})
}

// ---------- Reviews ----------

func (h *ShopHandler) AddReview(ctx *fiber.Ctx) error {
	var requestBody dto.ReviewRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	review, err := h.svc.AddReview(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, dto.CreatedResponse{
		Message: "Review added",
		ID:      review.ID,
	})
}

func (h *ShopHandler) ListReviews(ctx *fiber.Ctx) error {
	reviews, err := h.svc.ListReviews()
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, reviews)
}

func (h *ShopHandler) GetReview(ctx *fiber.Ctx) error {
	review, err := h.svc.GetReview(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, review)
}

func (h *ShopHandler) UpdateReview(ctx *fiber.Ctx) error {
	var requestBody dto.ReviewPatch
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := h.svc.UpdateReview(ctx.Params("id"), requestBody); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MessageResponse{Message: "Review updated"})
}

func (h *ShopHandler) DeleteReview(ctx *fiber.Ctx) error {
	if err := h.svc.DeleteReview(ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MessageResponse{Message: "Review deleted"})
}

// ---------- User locations ----------

func (h *ShopHandler) AddLocation(ctx *fiber.Ctx) error {
	var requestBody dto.UserLocationRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	location, err := h.svc.AddLocation(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, dto.CreatedResponse{
		Message: "Location added",
		ID:      location.ID,
	})
}

func (h *ShopHandler) ListLocations(ctx *fiber.Ctx) error {
	locations, err := h.svc.ListLocations()
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, locations)
}

func (h *ShopHandler) GetLocation(ctx *fiber.Ctx) error {
	location, err := h.svc.GetLocation(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, location)
}

func (h *ShopHandler) UpdateLocation(ctx *fiber.Ctx) error {
	var requestBody dto.UserLocationPatch
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := h.svc.UpdateLocation(ctx.Params("id"), requestBody); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MessageResponse{Message: "Location updated"})
}

func (h *ShopHandler) DeleteLocation(ctx *fiber.Ctx) error {
	if err := h.svc.DeleteLocation(ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.MessageResponse{Message: "Location deleted"})
}
