package router

import (
	"math"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yukikurage/taskmate-api/internal/config"
	"github.com/yukikurage/taskmate-api/internal/constants"
	"github.com/yukikurage/taskmate-api/internal/handlers"
	"github.com/yukikurage/taskmate-api/internal/middleware"
	"github.com/yukikurage/taskmate-api/internal/repository"
	"github.com/yukikurage/taskmate-api/internal/services"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Dependencies are the long-lived resources the HTTP layer needs.
type Dependencies struct {
	DB     *gorm.DB
	Config *config.Config
	// Redis is optional. When set, rate limiting is shared through it.
	Redis *redis.Client
}

// New builds the gin engine with every route registered.
func New(deps Dependencies) *gin.Engine {
	cfg := deps.Config

	// Repositories
	userRepo := repository.NewUserRepository(deps.DB)
	taskRepo := repository.NewTaskRepository(deps.DB)
	completionRepo := repository.NewCompletionRepository(deps.DB)

	// Services
	userService := services.NewUserService(userRepo, cfg.BcryptCost)
	authService := services.NewAuthService(userRepo)
	taskService := services.NewTaskService(taskRepo, userRepo)
	completionService := services.NewCompletionService(completionRepo, taskRepo, userRepo)
	dashboardService := services.NewDashboardService(userRepo, taskRepo)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService, userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	completionHandler := handlers.NewCompletionHandler(completionService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Redis)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryWithLog())
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	if limiter := rateLimiter(cfg, deps.Redis); limiter != nil {
		r.Use(limiter)
	}
	r.Use(middleware.ErrorHandler(cfg.IsDevelopment()))

	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)

	users := r.Group("/users")
	{
		users.POST("/create", middleware.ValidateUserInput(), userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PATCH("/:id", middleware.ValidateUserUpdate(), userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	tasks := r.Group("/tasks")
	{
		tasks.POST("/create", middleware.ValidateTaskInput(), taskHandler.CreateTask)
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/user/:userId", taskHandler.ListUserTasks)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PATCH("/:id", middleware.ValidateTaskUpdate(), taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}

	completions := r.Group("/completeTasks")
	{
		completions.POST("/create", middleware.ValidateCompletionInput(), completionHandler.CreateCompletion)
		completions.GET("", completionHandler.ListCompletions)
		completions.GET("/task/:taskId", completionHandler.ListTaskCompletions)
		completions.GET("/user/:userId", completionHandler.ListUserCompletions)
		completions.PATCH("/:id", middleware.ValidateCompletionUpdate(), completionHandler.UpdateCompletion)
		completions.DELETE("/:id", completionHandler.DeleteCompletion)
	}

	r.POST("/login", authHandler.Login)
	r.GET("/check-email/:email", authHandler.CheckEmail)
	r.GET("/dashboard/stats", dashboardHandler.Stats)

	r.NoRoute(middleware.NotFound())

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", constants.HeaderRequestID}
	c.ExposeHeaders = []string{constants.HeaderRequestID}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// rateLimiter returns nil when RATE_LIMIT_RPS is not positive. With Redis the
// budget is ceil(RPS) requests per second shared across instances.
func rateLimiter(cfg *config.Config, redisClient *redis.Client) gin.HandlerFunc {
	if cfg.RateLimitRPS <= 0 {
		return nil
	}

	if redisClient != nil {
		return middleware.NewDistributedRateLimiter(redisClient).CreateMiddleware("api", middleware.RateLimit{
			Rate:    int(math.Ceil(cfg.RateLimitRPS)),
			Window:  time.Second,
			KeyFunc: middleware.IPKeyFunc,
		})
	}

	return middleware.RateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
}
