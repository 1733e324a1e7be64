// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"project-admin/internal/api"
	"project-admin/internal/cache"
	"project-admin/internal/database"
	"project-admin/internal/handler"
	"project-admin/internal/handler/auth"
	"project-admin/internal/handler/projects"
	"project-admin/internal/handler/users"
	"project-admin/internal/middleware"
	"project-admin/internal/service"
	"project-admin/internal/worker"
)

// Deps 是註冊路由需要的相依元件
type Deps struct {
	DB           database.DB
	Cache        cache.Cache
	Gate         *service.Gate
	Pool         worker.Pool
	Logger       zerolog.Logger
	LoginLimiter *middleware.IPRateLimiter
	SecureCookie bool
	// Registry 為 nil 時使用 prometheus 預設 registry
	Registry *prometheus.Registry
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	// 限流與 log 只採用連線來源位址，不信任 client 帶的 X-Forwarded-For / X-Real-IP
	e.IPExtractor = echo.ExtractIPDirect()

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.ContextLogger(d.Logger))
	e.Use(middleware.RequestLogger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	g := e.Group("/api")
	gate := d.Gate
	sessionOpts := auth.SessionOptions{SecureCookie: d.SecureCookie}

	// 健康檢查（不需登入）
	g.GET("/health", handler.HealthHandler())
	g.GET("/health/ready", handler.ReadyHandler(d.DB, d.Cache))

	// 登入、登出與目前使用者
	login := auth.LoginHandler(d.DB, gate, d.Pool, sessionOpts)
	if d.LoginLimiter != nil {
		g.POST("/auth/login", login, d.LoginLimiter.Middleware())
	} else {
		g.POST("/auth/login", login)
	}
	g.POST("/auth/logout", middleware.RequireIdentity(gate, auth.LogoutHandler(gate, sessionOpts)))
	g.GET("/auth/me", middleware.RequireIdentity(gate, auth.MeHandler(d.DB)))

	// 管理員專屬 Users
	g.GET("/users", middleware.Guard(gate, service.ListUsers, users.ListUsersHandler(d.DB)))
	g.POST("/users", middleware.Guard(gate, service.CreateUser, users.CreateUserHandler(d.DB)))
	g.DELETE("/users/:id", middleware.Guard(gate, service.DeleteUser, users.DeleteUserHandler(d.DB, gate)))

	// Projects：讀取依角色過濾，寫入僅限管理員
	g.GET("/projects", middleware.Guard(gate, service.ReadOwnProjects, projects.ListProjectsHandler(d.DB)))
	g.GET("/projects/:id", middleware.Guard(gate, service.ReadOwnProjects, projects.GetProjectHandler(d.DB)))
	g.POST("/projects", middleware.Guard(gate, service.CreateProject, projects.CreateProjectHandler(d.DB)))
	g.PUT("/projects/:id", middleware.Guard(gate, service.UpdateProject, projects.UpdateProjectHandler(d.DB)))
	g.DELETE("/projects/:id", middleware.Guard(gate, service.DeleteProject, projects.DeleteProjectHandler(d.DB)))
	g.POST("/projects/:id/assign", middleware.Guard(gate, service.AssignUsers, projects.AssignHandler(d.DB)))
	g.GET("/projects/:id/assignments", middleware.Guard(gate, service.AssignUsers, projects.ListAssignmentsHandler(d.DB)))
}
