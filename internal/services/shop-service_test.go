package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/petalperfect/shop_service/internal/domain"
	"github.com/petalperfect/shop_service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shopTestEnv struct {
	svc       ShopService
	carts     *fakeCartRepo
	orders    *fakeOrderRepo
	wishlist  *fakeWishlistRepo
	payments  *fakePaymentRepo
	products  *fakeProductRepo
	reviews   *fakeReviewRepo
	locations *fakeLocationRepo
}

func newShopTestEnv() *shopTestEnv {
	env := &shopTestEnv{
		carts:     &fakeCartRepo{},
		orders:    &fakeOrderRepo{},
		wishlist:  &fakeWishlistRepo{},
		payments:  &fakePaymentRepo{},
		products:  &fakeProductRepo{},
		reviews:   &fakeReviewRepo{},
		locations: &fakeLocationRepo{},
	}
	env.svc = NewShopService(
		env.carts, env.orders, env.wishlist,
		env.payments, env.products, env.reviews, env.locations,
	)
	return env
}

func TestCartLifecycle(t *testing.T) {
	t.Parallel()
	env := newShopTestEnv()

	item, err := env.svc.AddCartItem(dto.CartItemRequest{
		Email:    "rosa@example.com",
		Title:    "Red bouquet",
		Category: "roses",
		Price:    24.99,
		Quantity: 2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)

	listed, err := env.svc.ListCart("rosa@example.com")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Red bouquet", listed[0].Title)

	qty := 3
	require.NoError(t, env.svc.UpdateCartItem(item.ID, dto.CartItemPatch{Quantity: &qty}))
	got, err := env.svc.GetCartItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)
	// untouched fields survive the patch
	assert.Equal(t, 24.99, got.Price)

	require.NoError(t, env.svc.DeleteCartItem(item.ID))
	_, err = env.svc.GetCartItem(item.ID)
	assert.Equal(t, KindNotFound, kindOf(t, err))
}

func TestListCartRequiresEmail(t *testing.T) {
	t.Parallel()
	env := newShopTestEnv()

	_, err := env.svc.ListCart("")
	assert.Equal(t, KindInvalid, kindOf(t, err))
	assert.EqualError(t, err, "Email required")

	err = env.svc.ClearCart("")
	assert.Equal(t, KindInvalid, kindOf(t, err))
}

func TestGetCartItemBadID(t *testing.T) {
	t.Parallel()
	env := newShopTestEnv()

	_, err := env.svc.GetCartItem("abc")
	assert.Equal(t, KindInvalid, kindOf(t, err))
	assert.EqualError(t, err, "Invalid ID")

	_, err = env.svc.GetCartItem(uuid.NewString())
	assert.Equal(t, KindNotFound, kindOf(t, err))
	assert.EqualError(t, err, "Cart item not found")
}

func TestPlaceOrder(t *testing.T) {
	t.Parallel()
	env := newShopTestEnv()

	_, err := env.carts.CreateCartItem(&domain.CartItem{Email: "rosa@example.com", Title: "Red bouquet"})
	require.NoError(t, err)
	_, err = env.carts.CreateCartItem(&domain.CartItem{Email: "lily@example.com", Title: "Spring mix"})
	require.NoError(t, err)

	order, err := env.svc.PlaceOrder(dto.OrderRequest{
		Email: "rosa@example.com",
		Total: 24.99,
		Items: domain.OrderItems{{Title: "Red bouquet", Category: "roses", Price: 24.99, Quantity: 1}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	assert.Equal(t, "Placed", order.Status)

	// checkout empties the placer's cart and nobody else's
	mine, err := env.svc.ListCart("rosa@example.com")
	require.NoError(t, err)
	assert.Empty(t, mine)
	theirs, err := env.svc.ListCart("lily@example.com")
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}

func TestPlaceOrderKeepsExplicitStatus(t *testing.T) {
	t.Parallel()
	env := newShopTestEnv()

	order, err := env.svc.PlaceOrder(dto.OrderRequest{Email: "rosa@example.com", Status: "Pending"})
	require.NoError(t, err)
	assert.Equal(t, "Pending", order.Status)
}

func TestUpdateOrder(t *testing.T) {
	t.Parallel()
	env := newShopTestEnv()

	order, err := env.svc.PlaceOrder(dto.OrderRequest{Email: "rosa@example.com", Total: 10})
	require.NoError(t, err)

	status := "Delivered"
	require.NoError(t, env.svc.UpdateOrder(order.ID, dto.OrderPatch{Status: &status}))

	got, err := env.svc.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Delivered", got.Status)
	assert.Equal(t, 10.0, got.Total)

	err = env.svc.UpdateOrder(uuid.NewString(), dto.OrderPatch{Status: &status})
	assert.Equal(t, KindNotFound, kindOf(t, err))
	assert.EqualError(t, err, "Order not found")
}

func TestWishlistDuplicate(t *testing.T) {
	t.Parallel()
	env := newShopTestEnv()

	_, err := env.svc.AddWishlistItem(dto.WishlistItemRequest{Email: "rosa@example.com", Title: "Peony"})
	require.NoError(t, err)

	_, err = env.svc.AddWishlistItem(dto.WishlistItemRequest{Email: "rosa@example.com", Title: "Peony"})
	require.Error(t, err)
	assert.Equal(t, KindInvalid, kindOf(t, err))
	assert.EqualError(t, err, "Item already in wishlist")

	// same title under another account is fine
	_, err = env.svc.AddWishlistItem(dto.WishlistItemRequest{Email: "lily@example.com", Title: "Peony"})
	require.NoError(t, err)
}

func TestWishlistRequiresEmail(t *testing.T) {
	t.Parallel()
	env := newShopTestEnv()

	_, err := env.svc.AddWishlistItem(dto.WishlistItemRequest{Title: "Peony"})
	assert.Equal(t, KindInvalid, kindOf(t, err))

	_, err = env.svc.ListWishlist("")
	assert.Equal(t, KindInvalid, kindOf(t, err))
}

func TestProductDefaults(t *testing.T) {
	t.Parallel()
	env := newShopTestEnv()

	product, err := env.svc.AddProduct(dto.ProductRequest{Title: "White orchid", Category: "orchids", Price: 39.5})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, product.Rating, 4.0)
	assert.Less(t, product.Rating, 5.0)
	assert.GreaterOrEqual(t, product.ReviewCount, 5)
	assert.GreaterOrEqual(t, product.Stock, 1)

	// explicit values are kept as sent
	explicit, err := env.svc.AddProduct(dto.ProductRequest{Title: "Cactus", Rating: 3.2, ReviewCount: 7, Stock: 12})
	require.NoError(t, err)
	assert.Equal(t, 3.2, explicit.Rating)
	assert.Equal(t, 7, explicit.ReviewCount)
	assert.Equal(t, 12, explicit.Stock)
}

func TestPaymentLifecycle(t *testing.T) {
	t.Parallel()
	env := newShopTestEnv()

	payment, err := env.svc.AddPayment(dto.PaymentRequest{
		Email:  "rosa@example.com",
		Amount: 24.99,
		Method: "card",
		Status: "paid",
	})
	require.NoError(t, err)

	status := "refunded"
	require.NoError(t, env.svc.UpdatePayment(payment.ID, dto.PaymentPatch{Status: &status}))

	got, err := env.svc.GetPayment(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, "refunded", got.Status)
	assert.Equal(t, 24.99, got.Amount)

	require.NoError(t, env.svc.DeletePayment(payment.ID))
	_, err = env.svc.GetPayment(payment.ID)
	assert.EqualError(t, err, "Payment not found")
}

func TestReviewLifecycle(t *testing.T) {
	t.Parallel()
	env := newShopTestEnv()

	review, err := env.svc.AddReview(dto.ReviewRequest{Email: "rosa@example.com", Rating: 5, Comment: "Lovely"})
	require.NoError(t, err)

	comment := "Wilted on arrival"
	rating := 2
	require.NoError(t, env.svc.UpdateReview(review.ID, dto.ReviewPatch{Rating: &rating, Comment: &comment}))

	got, err := env.svc.GetReview(review.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Rating)
	assert.Equal(t, "Wilted on arrival", got.Comment)
}

func TestLocationValidation(t *testing.T) {
	t.Parallel()
	env := newShopTestEnv()

	_, err := env.svc.AddLocation(dto.UserLocationRequest{Email: "rosa@example.com"})
	assert.Equal(t, KindInvalid, kindOf(t, err))
	assert.EqualError(t, err, "Email and locationId required")

	location, err := env.svc.AddLocation(dto.UserLocationRequest{Email: "rosa@example.com", LocationID: "BKK-01"})
	require.NoError(t, err)

	got, err := env.svc.GetLocation(location.ID)
	require.NoError(t, err)
	assert.Equal(t, "BKK-01", got.LocationID)
}
