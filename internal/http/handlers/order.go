package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mrsedghi/deliverino-sub000/internal/apperr"
	"github.com/mrsedghi/deliverino-sub000/internal/logx"
)

// OrderHandler serves HTTP endpoints for orders and offer decisions.
type OrderHandler struct {
	orders  orderUsecase
	arbiter arbiterUsecase
	logger  logx.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(logger logx.Logger, orders orderUsecase, arbiter arbiterUsecase) *OrderHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &OrderHandler{orders: orders, arbiter: arbiter, logger: logger}
}

func orderIDFromURL(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		return "", errors.New("invalid id")
	}
	return id, nil
}

// Create handles POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	o, err := h.orders.Create(r.Context(), req.toModel())
	switch {
	case err == nil:
		w.Header().Set("Location", "/orders/"+o.ID)
		writeJSON(h.logger, w, r, http.StatusCreated, orderToResponse(o, nil))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Get handles GET /orders/{id} and includes the offer audit trail.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := orderIDFromURL(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	o, offers, err := h.orders.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(o, offers))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Accept handles POST /orders/{id}/accept.
func (h *OrderHandler) Accept(w http.ResponseWriter, r *http.Request) {
	id, err := orderIDFromURL(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req courierActionRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.CourierID <= 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid courier_id")
		return
	}

	res, err := h.arbiter.Accept(r.Context(), id, req.CourierID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, acceptToResponse(res))
	case errors.Is(err, apperr.ErrOfferNotFound):
		// expired, cancelled, lost the race or never offered: all the same
		writeError(h.logger, w, r, http.StatusConflict, "offer not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Reject handles POST /orders/{id}/reject.
func (h *OrderHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := orderIDFromURL(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req courierActionRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.CourierID <= 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid courier_id")
		return
	}

	if err := h.arbiter.Reject(r.Context(), id, req.CourierID); err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
}
