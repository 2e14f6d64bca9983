package apiHttp

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "智能辯論所"
	serviceVersion = "1.0.0"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
} // @name HealthResponse

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UnixMilli(),
		Service:   serviceName,
		Version:   serviceVersion,
	})
}
