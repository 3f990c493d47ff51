package service

import (
	"sync"

	"storefront/pkg/domain/model"
)

type Event interface{ Type() string }
type EventDispatcher interface{ Dispatch(event Event) error }

// CartService is the single source of truth for one checkout session:
// the cart lines, the customer record and the current payment attempt.
// Totals are always recomputed from it, never cached elsewhere.
type CartService interface {
	AddToCart(product model.Product)
	RemoveFromCart(productID string)
	UpdateQuantity(productID string, quantity int)
	SetCustomerInfo(info model.CustomerInfo)
	SetPaymentInfo(info model.PaymentInfo)
	ClearCart()

	Items() []model.CartItem
	CustomerInfo() (model.CustomerInfo, bool)
	PaymentInfo() (model.PaymentInfo, bool)
	TotalPriceCents() int64
}

func NewCartService(deliveryFeeCents int64, dispatcher EventDispatcher) CartService {
	return &cartService{deliveryFee: deliveryFeeCents, dispatcher: dispatcher}
}

type cartService struct {
	mu          sync.Mutex
	items       []model.CartItem
	customer    *model.CustomerInfo
	payment     *model.PaymentInfo
	deliveryFee int64
	dispatcher  EventDispatcher
}

// AddToCart increments the existing line for the product or appends a new
// one with quantity 1, preserving insertion order. No stock cap is applied
// here; clamping is the caller's responsibility.
func (s *cartService) AddToCart(product model.Product) {
	s.mu.Lock()

	quantity := 1
	found := false
	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity++
			quantity = s.items[i].Quantity
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, model.CartItem{Product: product, Quantity: 1})
	}

	s.mu.Unlock()

	_ = s.dispatcher.Dispatch(model.ItemAddedToCart{ProductID: product.ID, Quantity: quantity})
}

// RemoveFromCart drops the line for the product if present. Removing an
// absent product is a no-op.
func (s *cartService) RemoveFromCart(productID string) {
	s.mu.Lock()
	removed := s.removeLocked(productID)
	s.mu.Unlock()

	if removed {
		_ = s.dispatcher.Dispatch(model.ItemRemovedFromCart{ProductID: productID})
	}
}

// UpdateQuantity sets the line's quantity unconditionally; zero removes
// the line. The store does not validate the value against stock or sign,
// that is the caller's concern.
func (s *cartService) UpdateQuantity(productID string, quantity int) {
	if quantity == 0 {
		s.RemoveFromCart(productID)
		return
	}

	s.mu.Lock()
	changed := false
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			changed = true
			break
		}
	}
	s.mu.Unlock()

	if changed {
		_ = s.dispatcher.Dispatch(model.CartQuantityChanged{ProductID: productID, Quantity: quantity})
	}
}

func (s *cartService) SetCustomerInfo(info model.CustomerInfo) {
	s.mu.Lock()
	s.customer = &info
	s.mu.Unlock()
}

func (s *cartService) SetPaymentInfo(info model.PaymentInfo) {
	s.mu.Lock()
	s.payment = &info
	s.mu.Unlock()
}

// ClearCart atomically resets the cart, customer and payment slots. Used
// both after a successful checkout and for abandon/restart.
func (s *cartService) ClearCart() {
	s.mu.Lock()
	s.items = nil
	s.customer = nil
	s.payment = nil
	s.mu.Unlock()

	_ = s.dispatcher.Dispatch(model.CartCleared{})
}

func (s *cartService) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *cartService) CustomerInfo() (model.CustomerInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.customer == nil {
		return model.CustomerInfo{}, false
	}
	return *s.customer, true
}

func (s *cartService) PaymentInfo() (model.PaymentInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.payment == nil {
		return model.PaymentInfo{}, false
	}
	return *s.payment, true
}

// TotalPriceCents recomputes the order total on every call:
// sum(line price * quantity) plus the fixed delivery fee.
func (s *cartService) TotalPriceCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subtotal int64
	for _, item := range s.items {
		subtotal += item.Product.PriceCents * int64(item.Quantity)
	}
	return subtotal + s.deliveryFee
}

func (s *cartService) removeLocked(productID string) bool {
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}
