package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogapi/internal/models"
	"blogapi/internal/service"
)

type RegisterRequest struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type RegisterResponse struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Message   string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string           `json:"message"`
	Token   models.TokenPair `json:"token"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteFieldErrors(w, fieldErrors(err), http.StatusBadRequest)
		return
	}

	serviceReq := service.RegisterRequest{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	user, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			WriteFieldErrors(w, FieldErrors{"email": {EmailNotUnique}}, http.StatusBadRequest)
		case errors.Is(err, service.ErrUsernameTaken):
			WriteFieldErrors(w, FieldErrors{"username": {UsernameNotUnique}}, http.StatusBadRequest)
		default:
			WriteError(w, "Failed to register user", http.StatusInternalServerError)
		}
		return
	}

	// password is never echoed back
	response := RegisterResponse{
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Message:   RegisterSuccess,
	}

	WriteJSON(w, response, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteFieldErrors(w, fieldErrors(err), http.StatusBadRequest)
		return
	}

	_, pair, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// same body for unknown email and wrong password
			WriteFieldErrors(w, FieldErrors{"non_field_errors": {InvalidCredentials}}, http.StatusBadRequest)
		} else {
			WriteError(w, "Failed to log in", http.StatusInternalServerError)
		}
		return
	}

	response := LoginResponse{
		Message: LoginSuccess,
		Token:   *pair,
	}

	WriteJSON(w, response, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteFieldErrors(w, fieldErrors(err), http.StatusBadRequest)
		return
	}

	if err := h.TokenService.BlacklistRefreshToken(r.Context(), req.Refresh); err != nil {
		switch {
		case errors.Is(err, service.ErrTokenBlacklisted):
			WriteFieldErrors(w, FieldErrors{"refresh": {TokenBlacklisted}}, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidToken):
			WriteFieldErrors(w, FieldErrors{"refresh": {TokenInvalid}}, http.StatusBadRequest)
		default:
			WriteError(w, "Failed to log out", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: LogoutSuccess}, http.StatusOK)
}

func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteFieldErrors(w, fieldErrors(err), http.StatusBadRequest)
		return
	}

	pair, err := h.TokenService.RefreshPair(r.Context(), req.Refresh)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenBlacklisted):
			WriteFieldErrors(w, FieldErrors{"refresh": {TokenBlacklisted}}, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidToken):
			WriteFieldErrors(w, FieldErrors{"refresh": {TokenInvalid}}, http.StatusBadRequest)
		default:
			WriteError(w, "Failed to refresh tokens", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, pair, http.StatusOK)
}
