package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"
)

type Handler struct {
	catalog  model.CatalogRepository
	cart     service.CartService
	checkout service.CheckoutService
}

type errorResponse struct {
	Error string `json:"error"`
}

type cartResponse struct {
	Items      []model.CartItem `json:"items"`
	TotalCents int64            `json:"total_cents"`
	Total      string           `json:"total"`
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	CardNumber string `json:"card_number"`
	CardHolder string `json:"card_holder"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

type checkoutResponse struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	AuthorizationCode string `json:"authorization_code"`
	CardLastFour      string `json:"card_last_four"`
	Total             string `json:"total"`
	EmailSent         bool   `json:"email_sent"`
	Message           string `json:"message"`
}

type declinedResponse struct {
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

func (h *Handler) listProducts(w http.ResponseWriter, _ *http.Request) {
	products, err := h.catalog.List()
	if err != nil {
		log.WithError(err).Error("list products")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "catalog unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) getCart(w http.ResponseWriter, _ *http.Request) {
	h.writeCart(w)
}

// addItem puts one unit of the product in the cart. The stock cap lives
// here, not in the store: a line already at stock is not incremented.
func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	product, err := h.catalog.Find(req.ProductID)
	if errors.Is(err, model.ErrProductNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		log.WithError(err).Error("find product")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "catalog unavailable"})
		return
	}

	inCart := 0
	for _, item := range h.cart.Items() {
		if item.Product.ID == product.ID {
			inCart = item.Quantity
			break
		}
	}
	if inCart >= product.Stock {
		writeJSON(w, http.StatusConflict, errorResponse{Error: "not enough stock"})
		return
	}

	h.cart.AddToCart(*product)
	h.writeCart(w)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}
	if req.Quantity < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "quantity cannot be negative"})
		return
	}

	h.cart.UpdateQuantity(mux.Vars(r)["productID"], req.Quantity)
	h.writeCart(w)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	h.cart.RemoveFromCart(mux.Vars(r)["productID"])
	h.writeCart(w)
}

func (h *Handler) setCustomer(w http.ResponseWriter, r *http.Request) {
	var info model.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}
	h.cart.SetCustomerInfo(info)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) postCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	result, err := h.checkout.Checkout(r.Context(), model.PaymentInfo{
		CardNumber: req.CardNumber,
		CardHolder: req.CardHolder,
		ExpiryDate: req.ExpiryDate,
		CVV:        req.CVV,
	})

	switch {
	case err == nil, errors.Is(err, service.ErrNotificationFailed):
		// The payment settled either way; a failed email is reported in
		// the payload, not as an HTTP failure.
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrMissingCustomerInfo),
		errors.Is(err, model.ErrInvalidCardNumber),
		errors.Is(err, model.ErrInvalidExpiryDate),
		errors.Is(err, model.ErrUnsupportedCardType):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	default:
		var declined *model.PaymentDeclinedError
		if errors.As(err, &declined) {
			writeJSON(w, http.StatusPaymentRequired, declinedResponse{
				TransactionID: declined.TransactionID,
				Message:       declined.Reason,
			})
			return
		}
		log.WithError(err).Error("checkout")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "payment could not be processed"})
		return
	}

	writeJSON(w, http.StatusOK, checkoutResponse{
		OrderID:           result.OrderID.String(),
		TransactionID:     result.Payment.TransactionID,
		AuthorizationCode: result.Payment.AuthorizationCode,
		CardLastFour:      result.Payment.CardLastFour,
		Total:             service.FormatPrice(result.TotalCents),
		EmailSent:         result.EmailSent,
		Message:           result.Payment.Message,
	})
}

func (h *Handler) writeCart(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, cartResponse{
		Items:      h.cart.Items(),
		TotalCents: h.cart.TotalPriceCents(),
		Total:      service.FormatPrice(h.cart.TotalPriceCents()),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("write response")
	}
}
