package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"
)

const testDeliveryFee = 2000

func setupCart(t *testing.T) (service.CartService, *mockEventDispatcher) {
	dispatcher := &mockEventDispatcher{}
	cart := service.NewCartService(testDeliveryFee, dispatcher)
	return cart, dispatcher
}

func TestAddToCart(t *testing.T) {
	cart, dispatcher := setupCart(t)
	notebook := testProduct("1", "Notebook", 1000, 10)
	mouse := testProduct("2", "Mouse", 500, 5)

	cart.AddToCart(notebook)
	cart.AddToCart(mouse)
	cart.AddToCart(notebook)

	items := cart.Items()
	require.Len(t, items, 2)

	// Insertion order is preserved; the duplicate add incremented the line.
	assert.Equal(t, "1", items[0].Product.ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "2", items[1].Product.ID)
	assert.Equal(t, 1, items[1].Quantity)

	require.Len(t, dispatcher.events, 3)
	event, ok := dispatcher.events[2].(model.ItemAddedToCart)
	require.True(t, ok)
	assert.Equal(t, "1", event.ProductID)
	assert.Equal(t, 2, event.Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	cart, dispatcher := setupCart(t)
	cart.AddToCart(testProduct("1", "Notebook", 1000, 10))
	cart.AddToCart(testProduct("2", "Mouse", 500, 5))
	dispatcher.Reset()

	cart.RemoveFromCart("1")

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].Product.ID)
	require.Len(t, dispatcher.events, 1)

	// Removing the same id again is a no-op, no event, no error.
	cart.RemoveFromCart("1")
	assert.Len(t, cart.Items(), 1)
	assert.Len(t, dispatcher.events, 1)
}

func TestUpdateQuantity(t *testing.T) {
	cart, dispatcher := setupCart(t)
	cart.AddToCart(testProduct("1", "Notebook", 1000, 10))
	dispatcher.Reset()

	t.Run("Sets the value unconditionally", func(t *testing.T) {
		cart.UpdateQuantity("1", 7)
		assert.Equal(t, 7, cart.Items()[0].Quantity)

		// The store does not clamp to stock.
		cart.UpdateQuantity("1", 99)
		assert.Equal(t, 99, cart.Items()[0].Quantity)
	})

	t.Run("Unknown id is a no-op", func(t *testing.T) {
		dispatcher.Reset()
		cart.UpdateQuantity("missing", 3)
		require.Len(t, cart.Items(), 1)
		assert.Len(t, dispatcher.events, 0)
	})

	t.Run("Zero removes the line", func(t *testing.T) {
		cart.UpdateQuantity("1", 0)
		assert.Len(t, cart.Items(), 0)
	})
}

func TestTotalPriceCents(t *testing.T) {
	cart, _ := setupCart(t)

	// Empty cart still carries the delivery fee.
	assert.Equal(t, int64(testDeliveryFee), cart.TotalPriceCents())

	cart.AddToCart(testProduct("1", "Notebook", 1000, 10))
	cart.AddToCart(testProduct("1", "Notebook", 1000, 10))
	cart.AddToCart(testProduct("2", "Mouse", 500, 5))

	// 1000*2 + 500*1 + 2000 delivery fee.
	assert.Equal(t, int64(4500), cart.TotalPriceCents())

	cart.UpdateQuantity("2", 3)
	assert.Equal(t, int64(5500), cart.TotalPriceCents(), "total must reflect the latest mutation")
}

func TestClearCart(t *testing.T) {
	cart, dispatcher := setupCart(t)
	cart.AddToCart(testProduct("1", "Notebook", 1000, 10))
	cart.SetCustomerInfo(model.CustomerInfo{Name: "Jane Doe", Email: "jane@example.com"})
	cart.SetPaymentInfo(model.PaymentInfo{CardNumber: "1111", Network: model.Visa})
	dispatcher.Reset()

	cart.ClearCart()

	assert.Len(t, cart.Items(), 0)
	_, ok := cart.CustomerInfo()
	assert.False(t, ok)
	_, ok = cart.PaymentInfo()
	assert.False(t, ok)

	require.Len(t, dispatcher.events, 1)
	_, ok = dispatcher.events[0].(model.CartCleared)
	assert.True(t, ok)
}

func TestCustomerInfoOverwrite(t *testing.T) {
	cart, _ := setupCart(t)

	cart.SetCustomerInfo(model.CustomerInfo{Name: "Jane Doe"})
	cart.SetCustomerInfo(model.CustomerInfo{Name: "John Roe"})

	info, ok := cart.CustomerInfo()
	require.True(t, ok)
	assert.Equal(t, "John Roe", info.Name)
}
