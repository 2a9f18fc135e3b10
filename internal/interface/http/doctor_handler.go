package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/niroggyan/healthcare-api/internal/application"
	"github.com/niroggyan/healthcare-api/internal/domain/entity"
	"github.com/niroggyan/healthcare-api/internal/domain/repository"
	"github.com/niroggyan/healthcare-api/pkg/response"
	"github.com/niroggyan/healthcare-api/pkg/validation"
)

type DoctorHandler struct {
	Svc    *application.DoctorService
	Logger *logrus.Logger
}

func NewDoctorHandler(svc *application.DoctorService, logger *logrus.Logger) *DoctorHandler {
	return &DoctorHandler{Svc: svc, Logger: logger}
}

type doctorRequest struct {
	Name           string `json:"name" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	ProfileImage   string `json:"profile_image"`
	Availability   string `json:"availability"`
	Experience     int    `json:"experience"`
	Description    string `json:"description"`
	WorkStart      string `json:"work_start" binding:"omitempty,appttime"`
	WorkEnd        string `json:"work_end" binding:"omitempty,appttime"`
}

func (r doctorRequest) toInput() application.DoctorInput {
	return application.DoctorInput{
		Name:           r.Name,
		Specialization: r.Specialization,
		Email:          r.Email,
		Phone:          r.Phone,
		ProfileImage:   r.ProfileImage,
		Availability:   r.Availability,
		Experience:     r.Experience,
		Description:    r.Description,
		WorkStart:      r.WorkStart,
		WorkEnd:        r.WorkEnd,
	}
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req doctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	d, err := h.Svc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("create doctor failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "Error creating doctor", nil)
		return
	}
	response.Success(c, http.StatusCreated, d, "doctor created", nil)
}

// List returns the directory; with ?q= it narrows to doctors whose name or
// specialization matches.
func (h *DoctorHandler) List(c *gin.Context) {
	var (
		ds  []entity.Doctor
		err error
	)
	if q := c.Query("q"); q != "" {
		ds, err = h.Svc.Search(c.Request.Context(), q)
	} else {
		ds, err = h.Svc.List(c.Request.Context())
	}
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list doctors failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "Error fetching doctors", nil)
		return
	}
	response.Success(c, http.StatusOK, ds, "doctors", gin.H{"count": len(ds)})
}

func (h *DoctorHandler) Get(c *gin.Context) {
	d, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "Doctor not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "Error fetching doctor", nil)
		return
	}
	response.Success(c, http.StatusOK, d, "doctor", nil)
}

type doctorUpdateRequest struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	ProfileImage   string `json:"profile_image"`
	Availability   string `json:"availability"`
	Experience     int    `json:"experience"`
	Description    string `json:"description"`
	WorkStart      string `json:"work_start" binding:"omitempty,appttime"`
	WorkEnd        string `json:"work_end" binding:"omitempty,appttime"`
}

func (h *DoctorHandler) Update(c *gin.Context) {
	var req doctorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	d, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.DoctorInput{
		Name:           req.Name,
		Specialization: req.Specialization,
		Email:          req.Email,
		Phone:          req.Phone,
		ProfileImage:   req.ProfileImage,
		Availability:   req.Availability,
		Experience:     req.Experience,
		Description:    req.Description,
		WorkStart:      req.WorkStart,
		WorkEnd:        req.WorkEnd,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "Doctor not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "Error updating doctor", nil)
		return
	}
	response.Success(c, http.StatusOK, d, "doctor updated", nil)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "Doctor not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "Error deleting doctor", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "doctor deleted", nil)
}
