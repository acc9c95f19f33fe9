// Package router wires repositories, services and handlers into the gin engine.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"legal-board-api/internal/client"
	"legal-board-api/internal/domain"
	"legal-board-api/internal/handler"
	"legal-board-api/internal/metrics"
	"legal-board-api/internal/middleware"
	"legal-board-api/internal/realtime"
	"legal-board-api/internal/repository"
	"legal-board-api/internal/service"
)

// Config holds the dependencies of the router
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	JWTSecret      string
	BasePath       string
	Metrics        *metrics.Metrics
	Redis          *redis.Client // optional; enables the responsables cache
	ResponsableTTL time.Duration
	FileStore      client.FileStore
	Hub            *realtime.Hub // optional; disables /eventos when nil
	Board          service.BoardOptions
	AllowedOrigins []string
}

// Setup builds the engine with every route of the service
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Repositories
	hearingRepo := repository.NewHearingRepository(cfg.DB)
	meetingRepo := repository.NewMeetingRepository(cfg.DB)
	deadlineRepo := repository.NewDeadlineRepository(cfg.DB)
	activityRepo := repository.NewActivityRepository(cfg.DB)
	processRepo := repository.NewProcessRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	responsibleRepo := repository.NewResponsibleRepository(cfg.DB)
	if cfg.Redis != nil {
		var recorder repository.CacheRecorder
		if cfg.Metrics != nil {
			recorder = cfg.Metrics
		}
		responsibleRepo = repository.NewCachedResponsibleRepository(responsibleRepo, cfg.Redis, cfg.ResponsableTTL, recorder, cfg.Logger)
	}

	// Services
	var publisher service.EventPublisher
	if cfg.Hub != nil {
		publisher = cfg.Hub
	}
	hearingService := service.NewItemService[*domain.Hearing](service.BoardHearings, hearingRepo, cfg.Board, publisher, cfg.Metrics, cfg.Logger)
	meetingService := service.NewItemService[*domain.Meeting](service.BoardMeetings, meetingRepo, cfg.Board, publisher, cfg.Metrics, cfg.Logger)
	deadlineService := service.NewItemService[*domain.Deadline](service.BoardDeadlines, deadlineRepo, cfg.Board, publisher, cfg.Metrics, cfg.Logger)
	activityService := service.NewItemService[*domain.Activity](service.BoardActivities, activityRepo, cfg.Board, publisher, cfg.Metrics, cfg.Logger)
	dashboardService := service.NewDashboardService(service.DashboardRepositories{
		Hearings:     hearingRepo,
		Meetings:     meetingRepo,
		Deadlines:    deadlineRepo,
		Activities:   activityRepo,
		Responsibles: responsibleRepo,
	}, cfg.Logger)
	responsibleService := service.NewResponsibleService(responsibleRepo, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, hearingRepo, cfg.Logger)

	// Handlers
	hearingHandler := handler.NewItemHandler[domain.Hearing](hearingService, cfg.Logger)
	meetingHandler := handler.NewItemHandler[domain.Meeting](meetingService, cfg.Logger)
	deadlineHandler := handler.NewItemHandler[domain.Deadline](deadlineService, cfg.Logger)
	activityHandler := handler.NewItemHandler[domain.Activity](activityService, cfg.Logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, cfg.Logger)
	responsibleHandler := handler.NewResponsibleHandler(responsibleService, cfg.Logger)
	commentHandler := handler.NewCommentHandler(commentService, cfg.Logger)
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)

	// Health and metrics (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.BasePath)
	{
		if cfg.BasePath != "" && cfg.BasePath != "/" {
			api.GET("/health", healthHandler.Health)
			api.GET("/ready", healthHandler.Ready)
			api.GET("/metrics", gin.WrapH(promhttp.Handler()))
		}
		api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

		// Authenticated by a token query parameter
		if cfg.Hub != nil {
			events := handler.NewEventHandler(cfg.Hub, cfg.JWTSecret, cfg.AllowedOrigins, cfg.Logger)
			api.GET("/procesos/:processId/eventos", events.Subscribe)
		}

		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(cfg.JWTSecret))
		{
			process := authenticated.Group("/procesos/:processId")

			hearingHandler.Register(process, authenticated)
			meetingHandler.Register(process, authenticated)
			deadlineHandler.Register(process, authenticated)
			activityHandler.Register(process, authenticated)

			process.GET("/metricas", dashboardHandler.GetDashboard)
			process.GET("/metricas/:board", dashboardHandler.GetSummary)

			if cfg.FileStore != nil {
				attachmentService := service.NewAttachmentService(processRepo, hearingRepo, activityRepo, cfg.FileStore, cfg.Logger)
				attachmentHandler := handler.NewAttachmentHandler(attachmentService, cfg.Logger)
				process.GET("/audiencias/:id/archivos", attachmentHandler.ItemFiles(service.BoardHearings))
				process.GET("/actividades/:id/archivos", attachmentHandler.ItemFiles(service.BoardActivities))
				process.GET("/archivos/descarga", attachmentHandler.Download)
			}

			authenticated.GET("/responsables", responsibleHandler.ListActive)
			authenticated.GET("/audiencias/:id/comentarios", commentHandler.List)
			authenticated.POST("/audiencias/:id/comentarios", commentHandler.Create)
		}
	}

	return r
}
