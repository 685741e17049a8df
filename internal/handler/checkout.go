package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/internal/service"
	"github.com/easyqist/storefront/pkg/response"
)

type CheckoutHandler struct {
	service   *service.CheckoutService
	validator *validator.Validate
}

func NewCheckoutHandler(service *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service:   service,
		validator: validator.New(),
	}
}

// GetTotals previews the checkout totals for the current cart.
func (h *CheckoutHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.Totals(r.Context(), UserID(r))
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, totals)
}

// PlaceOrder runs the checkout: snapshot, totals, optional schedule, order.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		response.BadRequest(w, "validation failed", err)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), UserID(r), req.ShippingAddress, req.InstallmentMonths)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Created(w, order)
}

// ListMyOrders returns the caller's order history in creation order.
func (h *CheckoutHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.GetUserOrders(r.Context(), UserID(r))
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, orders)
}

// GetOrder returns one of the caller's orders.
func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	order, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		response.AppError(w, err)
		return
	}
	if order.UserID != UserID(r) && Role(r) != domain.RoleAdmin {
		response.NotFound(w, "order not found")
		return
	}

	response.Success(w, order)
}
