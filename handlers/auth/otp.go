package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/krishimitra/api/database"
	"github.com/krishimitra/api/model"
	"github.com/krishimitra/api/utils/auth"
	"github.com/krishimitra/api/utils/response"
	"github.com/krishimitra/api/utils/validation"
)

// AuthHandler handles phone verification requests
type AuthHandler struct {
	store      database.Storage
	otp        *auth.OTPService
	jwtManager *auth.JWTManager
	validator  *validation.Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store database.Storage, otp *auth.OTPService, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		store:      store,
		otp:        otp,
		jwtManager: jwtManager,
		validator:  validation.NewValidator(),
	}
}

// RequestOTPRequest is the body for POST /api/auth/otp/request
type RequestOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,min=10,max=15"`
}

// VerifyOTPRequest is the body for POST /api/auth/otp/verify
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,min=10,max=15"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
	Name        string `json:"name" validate:"omitempty,max=100"`
}

// VerifyOTPResponse carries the session token and the verified user
type VerifyOTPResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// RequestOTP handles POST /api/auth/otp/request
func (h *AuthHandler) RequestOTP(c *fiber.Ctx) error {
	var req RequestOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	if err := h.otp.Request(c.Context(), req.PhoneNumber); err != nil {
		if errors.Is(err, auth.ErrTooManyRequests) {
			return response.TooManyRequests(c, "Too many verification codes requested, try again later")
		}
		return response.InternalServerError(c, "Failed to send verification code")
	}

	return response.JSON(c, fiber.Map{"message": "Verification code sent"})
}

// VerifyOTP handles POST /api/auth/otp/verify. A first-time phone number
// creates the user row; the response carries a session token.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	if err := h.otp.Verify(c.Context(), req.PhoneNumber, req.Code); err != nil {
		switch {
		case errors.Is(err, auth.ErrCodeExpired):
			return response.Unauthorized(c, "Verification code expired, request a new one")
		case errors.Is(err, auth.ErrCodeInvalid):
			return response.Unauthorized(c, "Invalid verification code")
		case errors.Is(err, auth.ErrTooManyAttempts):
			return response.Unauthorized(c, "Too many failed attempts, request a new code")
		default:
			return response.InternalServerError(c, "Failed to verify code")
		}
	}

	user, err := h.store.GetUserByPhone(req.PhoneNumber)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch user")
	}
	if user == nil {
		user, err = h.store.CreateUser(model.InsertUser{
			PhoneNumber: req.PhoneNumber,
			Name:        req.Name,
		})
		if err != nil {
			return response.InternalServerError(c, "Failed to create user")
		}
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.PhoneNumber, user.IsAdmin)
	if err != nil {
		return response.InternalServerError(c, "Failed to issue session token")
	}

	return response.JSON(c, VerifyOTPResponse{Token: token, User: user})
}
