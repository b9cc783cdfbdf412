package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/petalperfect/shop_service/internal/domain"
	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

type fakeAccountRepo struct {
	accounts  map[string]*domain.Account
	createErr error
	findCalls int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*domain.Account{}}
}

func (f *fakeAccountRepo) CreateAccount(a *domain.Account) (*domain.Account, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = time.Now()
	f.accounts[a.ID] = a
	return a, nil
}

func (f *fakeAccountRepo) FindAccountByEmail(email string) (*domain.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccountRepo) FindAccountById(id string) (*domain.Account, error) {
	f.findCalls++
	if a, ok := f.accounts[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccountRepo) SaveAccount(a *domain.Account) error {
	f.accounts[a.ID] = a
	return nil
}

func (f *fakeAccountRepo) DeleteAccount(id string) error {
	delete(f.accounts, id)
	return nil
}

type fakeOrderRepo struct {
	orders []domain.Order
}

func (f *fakeOrderRepo) CreateOrder(o *domain.Order) (*domain.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.CreatedAt = time.Now()
	f.orders = append(f.orders, *o)
	return o, nil
}

func (f *fakeOrderRepo) FindOrderById(id string) (*domain.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			return &f.orders[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) ListOrdersByEmail(email string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if o.Email == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) SaveOrder(o *domain.Order) error {
	for i := range f.orders {
		if f.orders[i].ID == o.ID {
			f.orders[i] = *o
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) DeleteOrder(id string) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeOrderRepo) DeleteOrdersByEmail(email string) error {
	var kept []domain.Order
	for _, o := range f.orders {
		if o.Email != email {
			kept = append(kept, o)
		}
	}
	f.orders = kept
	return nil
}

type fakeCartRepo struct {
	items []domain.CartItem
}

func (f *fakeCartRepo) CreateCartItem(c *domain.CartItem) (*domain.CartItem, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now()
	f.items = append(f.items, *c)
	return c, nil
}

func (f *fakeCartRepo) FindCartItemById(id string) (*domain.CartItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCartRepo) ListCartItemsByEmail(email string) ([]domain.CartItem, error) {
	var out []domain.CartItem
	for _, c := range f.items {
		if c.Email == email {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) SaveCartItem(c *domain.CartItem) error {
	for i := range f.items {
		if f.items[i].ID == c.ID {
			f.items[i] = *c
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCartRepo) DeleteCartItem(id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCartRepo) DeleteCartItemsByEmail(email string) error {
	var kept []domain.CartItem
	for _, c := range f.items {
		if c.Email != email {
			kept = append(kept, c)
		}
	}
	f.items = kept
	return nil
}

type fakeWishlistRepo struct {
	items []domain.WishlistItem
}

func (f *fakeWishlistRepo) CreateWishlistItem(w *domain.WishlistItem) (*domain.WishlistItem, error) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	w.CreatedAt = time.Now()
	f.items = append(f.items, *w)
	return w, nil
}

func (f *fakeWishlistRepo) FindWishlistItemById(id string) (*domain.WishlistItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWishlistRepo) FindWishlistItemByEmailAndTitle(email, title string) (*domain.WishlistItem, error) {
	for i := range f.items {
		if f.items[i].Email == email && f.items[i].Title == title {
			return &f.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWishlistRepo) ListWishlistItemsByEmail(email string) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	for _, w := range f.items {
		if w.Email == email {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWishlistRepo) DeleteWishlistItem(id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeWishlistRepo) DeleteWishlistItemsByEmail(email string) error {
	var kept []domain.WishlistItem
	for _, w := range f.items {
		if w.Email != email {
			kept = append(kept, w)
		}
	}
	f.items = kept
	return nil
}

type fakePaymentRepo struct {
	payments []domain.Payment
}

func (f *fakePaymentRepo) CreatePayment(p *domain.Payment) (*domain.Payment, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	f.payments = append(f.payments, *p)
	return p, nil
}

func (f *fakePaymentRepo) FindPaymentById(id string) (*domain.Payment, error) {
	for i := range f.payments {
		if f.payments[i].ID == id {
			return &f.payments[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePaymentRepo) ListPayments() ([]domain.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) SavePayment(p *domain.Payment) error {
	for i := range f.payments {
		if f.payments[i].ID == p.ID {
			f.payments[i] = *p
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakePaymentRepo) DeletePayment(id string) error {
	for i := range f.payments {
		if f.payments[i].ID == id {
			f.payments = append(f.payments[:i], f.payments[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeProductRepo struct {
	products []domain.Product
}

func (f *fakeProductRepo) CreateProduct(p *domain.Product) (*domain.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	f.products = append(f.products, *p)
	return p, nil
}

func (f *fakeProductRepo) FindProductById(id string) (*domain.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) ListProducts() ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) SaveProduct(p *domain.Product) error {
	for i := range f.products {
		if f.products[i].ID == p.ID {
			f.products[i] = *p
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) DeleteProduct(id string) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeReviewRepo struct {
	reviews []domain.Review
}

func (f *fakeReviewRepo) CreateReview(r *domain.Review) (*domain.Review, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	f.reviews = append(f.reviews, *r)
	return r, nil
}

func (f *fakeReviewRepo) FindReviewById(id string) (*domain.Review, error) {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			return &f.reviews[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReviewRepo) ListReviews() ([]domain.Review, error) {
	return f.reviews, nil
}

func (f *fakeReviewRepo) SaveReview(r *domain.Review) error {
	for i := range f.reviews {
		if f.reviews[i].ID == r.ID {
			f.reviews[i] = *r
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeReviewRepo) DeleteReview(id string) error {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeLocationRepo struct {
	locations []domain.UserLocation
}

func (f *fakeLocationRepo) CreateLocation(l *domain.UserLocation) (*domain.UserLocation, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	f.locations = append(f.locations, *l)
	return l, nil
}

func (f *fakeLocationRepo) FindLocationById(id string) (*domain.UserLocation, error) {
	for i := range f.locations {
		if f.locations[i].ID == id {
			return &f.locations[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLocationRepo) ListLocations() ([]domain.UserLocation, error) {
	return f.locations, nil
}

func (f *fakeLocationRepo) SaveLocation(l *domain.UserLocation) error {
	for i := range f.locations {
		if f.locations[i].ID == l.ID {
			f.locations[i] = *l
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeLocationRepo) DeleteLocation(id string) error {
	for i := range f.locations {
		if f.locations[i].ID == id {
			f.locations = append(f.locations[:i], f.locations[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeProducer struct {
	keys []string
}

func (f *fakeProducer) PublishMessage(key, value []byte) error {
	f.keys = append(f.keys, string(key))
	return nil
}
