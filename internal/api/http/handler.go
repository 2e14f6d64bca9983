package apiHttp

import (
	"net/http"
	"path/filepath"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/debate-hall/backend/docs"
	"github.com/debate-hall/backend/internal/bot"
	"github.com/debate-hall/backend/internal/config"
	"github.com/debate-hall/backend/internal/service"
	"github.com/debate-hall/backend/pkg/limiter"
	"github.com/debate-hall/backend/pkg/logger"
	"github.com/debate-hall/backend/pkg/validator"
)

// @title 智能辯論所 API
// @version 1.0
// @description Promotional front end and chatbot webhook for the AI debate hall.

// @BasePath /

type Handler struct {
	services *service.Services
	bot      *bot.Bot
	config   *config.Config
}

func NewHandlers(services *service.Services, lineBot *bot.Bot, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		bot:      lineBot,
		config:   cfg,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	// process-lifetime limiter, stopped implicitly on shutdown
	rateLimiter := limiter.New(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL)

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		rateLimiter.Middleware(),
		corsMiddleware,
	)
	router.Use(ginzap.CustomRecoveryWithZap(logger.Logger(), true, func(c *gin.Context, err any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
	}))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}

	router.StaticFile("/", filepath.Join(cfg.HttpServer.StaticDir, "index.html"))
	router.Static("/public", cfg.HttpServer.StaticDir)

	router.GET("/health", h.health)
	router.POST("/webhook", h.webhook)

	h.initAPI(router)

	router.NoRoute(func(c *gin.Context) {
		notFoundResponse(c)
	})

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	api := router.Group("/api")

	api.POST("/send-verification", h.sendVerification)
	api.POST("/verify-email", h.verifyEmail)
	api.POST("/send-debate-result", h.sendDebateResult)
	api.GET("/spirits", h.spirits)
}
