package apiHttp

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/debate-hall/backend/internal/domain"
	"github.com/debate-hall/backend/pkg/logger"
)

type sendDebateResultRequest struct {
	Email        string               `json:"email" binding:"required"`
	DebateReport *domain.DebateReport `json:"debateReport" binding:"required"`
}

// @Summary Mail a debate transcript
// @Tags Debate
// @Description Renders the caller-supplied transcript into a mail and relays it; nothing is stored
// @Accept json
// @Produce json
// @Param input body sendDebateResultRequest true "recipient and transcript"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/send-debate-result [post]
func (h *Handler) sendDebateResult(c *gin.Context) {
	var req sendDebateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, msgMissingParams)
		return
	}

	if err := h.services.Debate.SendResult(c.Request.Context(), req.Email, *req.DebateReport); err != nil {
		logger.Error("send debate result failed",
			zap.String("email", req.Email),
			zap.String("topic", req.DebateReport.Topic),
			zap.Error(err),
		)
		errorResponse(c, http.StatusInternalServerError, msgDebateSendFailed)
		return
	}

	successResponse(c, msgDebateResultSent)
}

// @Summary Spirit roster
// @Tags Debate
// @Description Static display data for the seven scripted debaters
// @Produce json
// @Success 200 {array} domain.Spirit
// @Router /api/spirits [get]
func (h *Handler) spirits(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Spirits())
}
