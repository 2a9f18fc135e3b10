package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niroggyan/healthcare-api/internal/container"
	handlers "github.com/niroggyan/healthcare-api/internal/interface/http"
	"github.com/niroggyan/healthcare-api/internal/interface/middleware"
	"github.com/niroggyan/healthcare-api/pkg/helpers"
)

// AppointmentModule wires booking and appointment management. Everything is
// behind auth; booking itself carries a tighter per-route limit because each
// attempt can fan out to paid verification providers.

type AppointmentModule struct {
	Handler *handlers.AppointmentHandler
	JWT     *helpers.JWTManager
}

func NewAppointmentModule(h *handlers.AppointmentHandler, jwt *helpers.JWTManager) *AppointmentModule {
	return &AppointmentModule{Handler: h, JWT: jwt}
}

func (m *AppointmentModule) Register(rg *gin.RouterGroup) {
	bookLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	appts := rg.Group("/appointments")
	appts.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		appts.POST("", bookLimiter, m.Handler.Create)
		appts.GET("", m.Handler.List)
		appts.GET("/:id", m.Handler.Get)
		appts.PUT("/:id", m.Handler.Update)
		appts.DELETE("/:id", m.Handler.Delete)
	}
}
