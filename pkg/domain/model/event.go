package model

import "github.com/google/uuid"

type ItemAddedToCart struct {
	ProductID string
	Quantity  int
}

func (e ItemAddedToCart) Type() string { return "ItemAddedToCart" }

type ItemRemovedFromCart struct {
	ProductID string
}

func (e ItemRemovedFromCart) Type() string { return "ItemRemovedFromCart" }

type CartQuantityChanged struct {
	ProductID string
	Quantity  int
}

func (e CartQuantityChanged) Type() string { return "CartQuantityChanged" }

type CartCleared struct{}

func (e CartCleared) Type() string { return "CartCleared" }

type PaymentApproved struct {
	TransactionID string
	Network       CardNetwork
	AmountCents   int64
}

func (e PaymentApproved) Type() string { return "PaymentApproved" }

type PaymentRejected struct {
	TransactionID string
	Network       CardNetwork
	Reason        string
}

func (e PaymentRejected) Type() string { return "PaymentRejected" }

type OrderConfirmed struct {
	OrderID       uuid.UUID
	TransactionID string
	TotalCents    int64
	ItemCount     int
}

func (e OrderConfirmed) Type() string { return "OrderConfirmed" }

type ConfirmationEmailFailed struct {
	OrderID uuid.UUID
	Email   string
	Reason  string
}

func (e ConfirmationEmailFailed) Type() string { return "ConfirmationEmailFailed" }
