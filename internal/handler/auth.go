package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/internal/service"
	"github.com/easyqist/storefront/pkg/response"
)

type AuthHandler struct {
	service   *service.AuthService
	validator *validator.Validate
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		response.BadRequest(w, "validation failed", err)
		return
	}

	auth, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, auth)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		response.BadRequest(w, "validation failed", err)
		return
	}

	auth, err := h.service.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Created(w, auth)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), UserID(r)); err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, nil)
}

// Session returns the persisted session user, mirroring what a client reads
// from its local state on startup.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.CurrentSession(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, user)
}
