package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/internal/service"
	"github.com/easyqist/storefront/pkg/response"
)

type CartHandler struct {
	service   *service.CartService
	validator *validator.Validate
}

func NewCartHandler(service *service.CartService) *CartHandler {
	return &CartHandler{
		service:   service,
		validator: validator.New(),
	}
}

type cartResponse struct {
	Lines    []service.CartLine `json:"lines"`
	Subtotal decimal.Decimal    `json:"subtotal"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := UserID(r)

	lines, err := h.service.GetCart(r.Context(), userID)
	if err != nil {
		response.AppError(w, err)
		return
	}
	subtotal, err := h.service.Subtotal(r.Context(), userID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, cartResponse{Lines: lines, Subtotal: subtotal})
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req domain.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		response.BadRequest(w, "validation failed", err)
		return
	}

	if err := h.service.AddToCart(r.Context(), UserID(r), req.ProductID, req.Quantity); err != nil {
		response.AppError(w, err)
		return
	}

	response.Created(w, nil)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]

	var req domain.UpdateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	if err := h.service.SetQuantity(r.Context(), UserID(r), itemID, req.Quantity); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, nil)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]

	if err := h.service.RemoveFromCart(r.Context(), UserID(r), itemID); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, nil)
}
