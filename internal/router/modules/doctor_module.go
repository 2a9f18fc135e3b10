package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/niroggyan/healthcare-api/internal/container"
	handlers "github.com/niroggyan/healthcare-api/internal/interface/http"
	"github.com/niroggyan/healthcare-api/internal/interface/middleware"
	"github.com/niroggyan/healthcare-api/pkg/helpers"
)

// DoctorModule wires the doctor directory.
// Public: GET /api/doctors (optional ?q= search), GET /api/doctors/:id
// Protected: POST/PUT/DELETE (profile management)

type DoctorModule struct {
	Handler *handlers.DoctorHandler
	JWT     *helpers.JWTManager
}

func NewDoctorModule(h *handlers.DoctorHandler, jwt *helpers.JWTManager) *DoctorModule {
	return &DoctorModule{Handler: h, JWT: jwt}
}

func (m *DoctorModule) Register(rg *gin.RouterGroup) {
	doctors := rg.Group("/doctors")
	doctors.GET("", m.Handler.List)
	doctors.GET("/:id", m.Handler.Get)

	authed := middleware.Auth(container.GetRedis(), m.JWT)
	doctors.POST("", authed, m.Handler.Create)
	doctors.PUT("/:id", authed, m.Handler.Update)
	doctors.DELETE("/:id", authed, m.Handler.Delete)
}
