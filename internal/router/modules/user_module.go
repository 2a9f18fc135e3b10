package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niroggyan/healthcare-api/internal/container"
	handlers "github.com/niroggyan/healthcare-api/internal/interface/http"
	"github.com/niroggyan/healthcare-api/internal/interface/middleware"
	"github.com/niroggyan/healthcare-api/pkg/helpers"
)

// UserModule wires patient account routes.
// Public: POST /api/users/register, POST /api/users/login, POST /api/users/refresh
// Protected: POST /api/users/logout, GET /api/users/profile

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	users := rg.Group("/users")
	users.POST("/register", registerLimiter, m.Handler.Register)
	users.POST("/login", loginLimiter, m.Handler.Login)
	users.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	auth := users.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.GetProfile)
	}
}
