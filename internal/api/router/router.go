package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"orbit-hrms/backend/config"
	"orbit-hrms/backend/internal/api/handler"
	"orbit-hrms/backend/internal/api/middleware"
	"orbit-hrms/backend/internal/model"
	"orbit-hrms/backend/internal/repository"
	"orbit-hrms/backend/pkg/jwt"
	"orbit-hrms/backend/pkg/redis"
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	repo *repository.Repository,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(&cfg.Server.CORS))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// auth (login is the only unauthenticated endpoint)
		api.POST("/auth/login",
			middleware.RateLimit(rdb, 10, time.Minute),
			h.Auth.Login)

		authorized := api.Group("")
		authorized.Use(middleware.Auth(jwtMgr, rdb, repo.User, cfg.Auth.Cookie.Name))
		{
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.POST("/auth/logout", h.Auth.Logout)

			// users
			users := authorized.Group("/users")
			{
				users.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleHR), h.User.List)
				users.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleHR), h.User.Create)
				users.GET("/directory", h.User.Directory)
				users.GET("/me", h.User.Me)
				users.PATCH("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleHR), h.User.Update)
				users.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.User.Delete)
				users.PATCH("/:id/leaves", middleware.RequireRole(model.RoleAdmin, model.RoleHR), h.User.UpdateLeaveBalance)
			}

			// attendance
			attendance := authorized.Group("/attendance")
			{
				attendance.GET("", h.Attendance.List)
				attendance.POST("/clock-in", h.Attendance.ClockIn)
				attendance.POST("/clock-out", h.Attendance.ClockOut)
			}

			// leaves
			leaves := authorized.Group("/leaves")
			{
				leaves.GET("", h.Leave.List)
				leaves.POST("", h.Leave.Apply)
				leaves.GET("/calendar.ics", h.Leave.Calendar)
				leaves.PATCH("/:id", middleware.RequireRole(model.RoleAdmin, model.RolePayroll), h.Leave.UpdateStatus)
			}

			// payruns
			payruns := authorized.Group("/payruns")
			{
				payruns.GET("", middleware.RequireRole(model.RoleAdmin, model.RolePayroll), h.Payroll.List)
				payruns.POST("", middleware.RequireRole(model.RoleAdmin, model.RolePayroll), h.Payroll.Generate)
				payruns.GET("/me", h.Payroll.MyPayslips)
				payruns.GET("/:id/export", middleware.RequireRole(model.RoleAdmin, model.RolePayroll), h.Payroll.Export)
			}

			// settings
			settings := authorized.Group("/settings")
			{
				settings.GET("", h.Settings.Get)
				settings.PATCH("", middleware.RequireRole(model.RoleAdmin), h.Settings.Update)
			}
		}
	}

	return r
}
