package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"storefront/internal/i18n"
	"storefront/internal/model"
	"storefront/internal/service"
)

type adminOrdersResponse struct {
	Source   service.Source `json:"source"`
	SyncedAt *time.Time     `json:"syncedAt,omitempty"`
	Stats    service.Stats  `json:"stats"`
	Orders   []model.Order  `json:"orders"`
}

func ListAdminOrdersHandler(adminSvc *service.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		orders, src := adminSvc.Orders(r.Context(), q.Get("refresh") == "1")

		resp := adminOrdersResponse{
			Source: src,
			Stats:  service.ComputeStats(orders, time.Now()),
			Orders: service.Filter(orders, q.Get("q"), q.Get("status")),
		}
		if at := adminSvc.SyncedAt(); !at.IsZero() {
			resp.SyncedAt = &at
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

func UpdateStatusHandler(adminSvc *service.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		orderID := chi.URLParam(r, "orderId")

		var req statusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		status, ok := model.LookupStatus(req.Status)
		if !ok {
			http.Error(w, "invalid status", http.StatusUnprocessableEntity)
			return
		}

		if !adminSvc.SetStatus(r.Context(), orderID, status) {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ExportOrdersHandler(adminSvc *service.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		orders, _ := adminSvc.Orders(r.Context(), false)
		orders = service.Filter(orders, q.Get("q"), q.Get("status"))

		filename := "orders-" + time.Now().Format("2006-01-02") + ".csv"
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(service.ExportCSV(orders, i18n.ResolveLocale(q.Get("lang")))))
	}
}
