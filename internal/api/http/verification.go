package apiHttp

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/debate-hall/backend/internal/service"
	"github.com/debate-hall/backend/pkg/logger"
)

type sendVerificationRequest struct {
	Email string `json:"email" binding:"required"`
}

type verifyEmailRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required,vercode"`
}

// @Summary Send verification code
// @Tags Verification
// @Description Generates a one-time 6-digit code and mails it to the given address
// @Accept json
// @Produce json
// @Param input body sendVerificationRequest true "recipient"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/send-verification [post]
func (h *Handler) sendVerification(c *gin.Context) {
	var req sendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, msgInvalidEmail)
		return
	}

	err := h.services.Verification.Request(c.Request.Context(), req.Email)
	switch {
	case err == nil:
		successResponse(c, msgCodeSent)
	case errors.Is(err, service.ErrInvalidEmail):
		errorResponse(c, http.StatusBadRequest, msgInvalidEmail)
	default:
		logger.Error("send verification failed", zap.String("email", req.Email), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, msgSendFailedRetry)
	}
}

// @Summary Confirm verification code
// @Tags Verification
// @Description Checks the supplied code; a matching code is consumed and cannot be replayed
// @Accept json
// @Produce json
// @Param input body verifyEmailRequest true "email and code"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/verify-email [post]
func (h *Handler) verifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// a malformed confirm looks exactly like a wrong code, so a
		// caller cannot probe which addresses have pending records
		errorResponse(c, http.StatusBadRequest, msgVerifyInvalid)
		return
	}

	err := h.services.Verification.Confirm(c.Request.Context(), req.Email, req.Code)
	switch {
	case err == nil:
		successResponse(c, msgVerifySucceeded)
	case errors.Is(err, service.ErrCodeNotFound),
		errors.Is(err, service.ErrCodeExpired),
		errors.Is(err, service.ErrCodeMismatch):
		errorResponse(c, http.StatusBadRequest, msgVerifyInvalid)
	default:
		logger.Error("verify email failed", zap.String("email", req.Email), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, msgVerifyFailed)
	}
}
