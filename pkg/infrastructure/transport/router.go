package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"
)

func Router(catalog model.CatalogRepository, cart service.CartService, checkout service.CheckoutService) http.Handler {
	h := &Handler{catalog: catalog, cart: cart, checkout: checkout}

	r := mux.NewRouter()
	s := r.PathPrefix("/api/v1").Subrouter()

	s.HandleFunc("/products", h.listProducts).Methods(http.MethodGet)
	s.HandleFunc("/cart", h.getCart).Methods(http.MethodGet)
	s.HandleFunc("/cart/items", h.addItem).Methods(http.MethodPost)
	s.HandleFunc("/cart/items/{productID}", h.updateItem).Methods(http.MethodPut)
	s.HandleFunc("/cart/items/{productID}", h.removeItem).Methods(http.MethodDelete)
	s.HandleFunc("/customer", h.setCustomer).Methods(http.MethodPut)
	s.HandleFunc("/checkout", h.postCheckout).Methods(http.MethodPost)

	return logMiddleware(r)
}

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}
