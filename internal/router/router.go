package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"board-automation-api/internal/client"
	"board-automation-api/internal/config"
	"board-automation-api/internal/engine"
	"board-automation-api/internal/handler"
	"board-automation-api/internal/metrics"
	"board-automation-api/internal/middleware"
	"board-automation-api/internal/repository"
	"board-automation-api/internal/service"
)

// Setup wires repositories, services, the rule engine, and handlers into a
// gin engine. The redis client may be nil; role lookups then skip the cache.
func Setup(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(middleware.Metrics(m))

	// Repositories
	roleRepo := repository.NewRoleAssignmentRepository(db)
	ruleRepo := repository.NewRuleRepository(db)
	executionRepo := repository.NewExecutionRepository(db)

	// Collaborator clients
	boardClient := client.NewBoardClient(cfg.BoardAPI.BaseURL, cfg.BoardAPI.APIKey, cfg.BoardAPI.Timeout, logger, m)
	mailClient := client.NewMailClient(cfg.MailAPI.BaseURL, cfg.MailAPI.APIKey, cfg.MailAPI.Timeout, logger, m)

	// Services
	permissionService := service.NewPermissionService(roleRepo, redisClient, m, logger)
	ruleService := service.NewRuleService(ruleRepo, m, logger)
	executionService := service.NewExecutionService(executionRepo, logger)

	// Rule engine
	dispatcher := engine.NewDispatcher(boardClient, mailClient, permissionService, logger)
	ruleEngine := engine.New(ruleRepo, executionRepo, dispatcher, m, logger)

	// Handlers
	ruleHandler := handler.NewRuleHandler(ruleService)
	roleHandler := handler.NewRoleHandler(permissionService)
	activityHandler := handler.NewActivityHandler(ruleEngine)
	executionHandler := handler.NewExecutionHandler(executionService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Health and metrics endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.Server.BasePath)
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)

		// Activity intake from the board service (service-to-service, no user auth)
		internal := api.Group("/internal")
		{
			internal.POST("/activities", activityHandler.ReceiveActivity)
		}

		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(cfg.JWT.Secret))
		{
			boards := authenticated.Group("/boards/:boardId")
			{
				// Rules
				boards.POST("/rules", ruleHandler.CreateRule)
				boards.GET("/rules", ruleHandler.ListRules)

				// Roles
				boards.POST("/roles", roleHandler.AssignRole)
				boards.GET("/roles", roleHandler.ListAssignments)
				boards.GET("/roles/:userId", roleHandler.GetUserRole)
				boards.DELETE("/roles/:userId", roleHandler.RevokeRole)
				boards.GET("/permissions/check", roleHandler.CheckPermission)

				// Execution audit trail
				boards.GET("/executions", executionHandler.ListBoardExecutions)
			}

			rules := authenticated.Group("/rules/:ruleId")
			{
				rules.GET("", ruleHandler.GetRule)
				rules.PUT("", ruleHandler.UpdateRule)
				rules.DELETE("", ruleHandler.DeleteRule)
				rules.GET("/executions", executionHandler.ListRuleExecutions)
			}
		}
	}

	return r
}
