package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/internal/service"
	"github.com/easyqist/storefront/pkg/response"
)

// AdminHandler serves the administrative dashboard: every order, order status
// transitions, and installment payment tracking.
type AdminHandler struct {
	service   *service.CheckoutService
	validator *validator.Validate
}

func NewAdminHandler(service *service.CheckoutService) *AdminHandler {
	return &AdminHandler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListAllOrders(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, orders)
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	var req domain.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		response.BadRequest(w, "validation failed", err)
		return
	}

	if err := h.service.UpdateOrderStatus(r.Context(), orderID, req.Status); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, nil)
}

func (h *AdminHandler) MarkInstallmentPaid(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID := vars["orderId"]

	paymentNumber, err := strconv.Atoi(vars["paymentNumber"])
	if err != nil {
		response.BadRequest(w, "payment number must be an integer", err)
		return
	}

	if err := h.service.MarkInstallmentPaid(r.Context(), orderID, paymentNumber); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, nil)
}
