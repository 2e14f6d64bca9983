package apiHttp

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/debate-hall/backend/internal/bot"
	"github.com/debate-hall/backend/pkg/logger"
)

// @Summary LINE webhook
// @Tags Bot
// @Description Receives the LINE event envelope and replies to text commands
// @Accept json
// @Success 200
// @Failure 400
// @Failure 500
// @Router /webhook [post]
func (h *Handler) webhook(c *gin.Context) {
	if err := h.bot.HandleRequest(c.Request); err != nil {
		if errors.Is(err, bot.ErrInvalidSignature) {
			c.Status(http.StatusBadRequest)
			return
		}

		logger.Error("webhook processing failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
