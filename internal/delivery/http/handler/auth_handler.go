package handler

import (
	"encoding/json"
	"net/http"

	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/delivery/http/middleware"
	"rhu-patient-portal/internal/usecase"
	"rhu-patient-portal/pkg/response"
	"rhu-patient-portal/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// RegisterPatient handles front-desk patient registration.
func (h *AuthHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.RegisterPatient(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email is already registered", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date of birth, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid email or password")
		case usecase.ErrAccountLocked:
			response.Error(w, http.StatusLocked, "Account is temporarily locked, try again later", nil)
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", tokens)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), tokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken, usecase.ErrSessionExpired, usecase.ErrUserNotFound:
			response.Unauthorized(w, "Invalid or expired refresh token")
		default:
			response.InternalServerError(w, "Failed to refresh token")
		}
		return
	}

	response.Success(w, http.StatusOK, "Token refreshed successfully", tokens)
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.authUsecase.ChangePassword(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrWrongPassword:
			response.Error(w, http.StatusBadRequest, "Current password is incorrect", nil)
		case usecase.ErrSessionExpired:
			response.Unauthorized(w, "")
		default:
			response.InternalServerError(w, "Failed to change password")
		}
		return
	}

	response.Success(w, http.StatusOK, "Password changed successfully, please login again", nil)
}

func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.authUsecase.GetCurrentUser(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrSessionExpired:
			response.Unauthorized(w, "")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get current user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}
