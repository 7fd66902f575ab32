package routes

import (
	"fmt"

	"skills-tracker-backend/internal/api/handlers"
	"skills-tracker-backend/internal/api/middleware"
	"skills-tracker-backend/internal/auth"
	"skills-tracker-backend/internal/config"
	"skills-tracker-backend/internal/metrics"
	"skills-tracker-backend/internal/operation"
	"skills-tracker-backend/internal/repository"
	"skills-tracker-backend/internal/service"
	"skills-tracker-backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()
	router.ContextWithFallback = true

	var m *metrics.Metrics
	registry := prometheus.NewRegistry()
	if cfg.MetricsEnabled {
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.NewMetrics(registry)
	}

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if m != nil {
		router.Use(middleware.Metrics(m))
	}

	// Initialize validator
	validator := validation.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	teamSkillRepo := repository.NewTeamSkillRepository(db)

	// Initialize services
	operations := operation.NewFactory(userRepo, skillRepo, teamRepo, memberRepo, teamSkillRepo)
	skillService := service.NewSkillService(skillRepo, operations, m, validator)
	teamService := service.NewTeamService(teamRepo, memberRepo, teamSkillRepo, operations, m, validator)
	userService := service.NewUserService(userRepo, operations, m, validator)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	skillHandler := handlers.NewSkillHandler(skillService)
	teamHandler := handlers.NewTeamHandler(teamService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if m != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/validate", authHandler.ValidateToken)
	}

	// Everything below requires a bearer token
	protected := v1.Group("")
	protected.Use(authMiddleware.RequireAuth())

	users := protected.Group("/users")
	{
		users.GET("/me", userHandler.GetCurrentUser)
		users.GET("/:username/permissions", userHandler.GetPermissions)
		users.POST("/:username/permissions", userHandler.AddPermissions)
		users.DELETE("/:username/permissions", userHandler.RemovePermissions)
	}

	skills := protected.Group("/skills")
	{
		skills.GET("", skillHandler.ListSkills)
		skills.POST("", skillHandler.CreateSkill)
		skills.GET("/:id", skillHandler.GetSkill)
		skills.DELETE("/:id", skillHandler.DeleteSkill)
		skills.GET("/:id/prerequisites", skillHandler.GetPrerequisites)
		skills.POST("/:id/prerequisites", skillHandler.AddPrerequisite)
		skills.DELETE("/:id/prerequisites/:prerequisiteId", skillHandler.RemovePrerequisite)
		skills.GET("/:id/contributions", skillHandler.GetContributions)
		skills.POST("/:id/contributions", skillHandler.AddContribution)
		skills.DELETE("/:id/contributions/:contributionId", skillHandler.RemoveContribution)
	}

	teams := protected.Group("/teams")
	{
		teams.GET("", teamHandler.ListTeams)
		teams.POST("", teamHandler.CreateTeam)
		teams.GET("/:id", teamHandler.GetTeam)
		teams.DELETE("/:id", teamHandler.DeleteTeam)
		teams.GET("/:id/members", teamHandler.GetMembers)
		teams.POST("/:id/members", teamHandler.AddMember)
		teams.DELETE("/:id/members/:userId", teamHandler.RemoveMember)
		teams.PATCH("/:id/members/:userId/admin", teamHandler.SetAdminRights)
		teams.GET("/:id/skills", teamHandler.GetTeamSkills)
		teams.POST("/:id/skills", teamHandler.AddTeamSkill)
		teams.DELETE("/:id/skills/:skillId", teamHandler.RemoveTeamSkill)
		teams.POST("/:id/skills/:skillId/upvote", teamHandler.UpvoteTeamSkill)
		teams.DELETE("/:id/skills/:skillId/upvote", teamHandler.DownvoteTeamSkill)
	}

	return router, nil
}
