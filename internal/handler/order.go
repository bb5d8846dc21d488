package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/service"
)

const maxCheckoutBody = 16 << 10

func CheckoutHandler(checkoutSvc *service.CheckoutService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req service.CheckoutRequest
		body := http.MaxBytesReader(w, r.Body, maxCheckoutBody)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := checkoutSvc.Checkout(r.Context(), req, r.UserAgent())
		if err != nil {
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				writeJSON(w, http.StatusUnprocessableEntity, verr)
				return
			}
			slog.Error("checkout failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		slog.Info("order captured", "order_id", res.Order.OrderID, "plan", res.Order.PlanID, "currency", res.Order.Currency)
		writeJSON(w, http.StatusCreated, res)
	}
}

// GetOrderHandler backs the success page.
func GetOrderHandler(store *service.OrderStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderId")

		order, ok := store.FindByOrderID(r.Context(), orderID)
		if !ok {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, order)
	}
}
