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

type AppointmentHandler struct {
	Svc    *application.BookingService
	Logger *logrus.Logger
}

func NewAppointmentHandler(svc *application.BookingService, logger *logrus.Logger) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc, Logger: logger}
}

type bookingRequest struct {
	PatientName     string `json:"patient_name" binding:"required"`
	PatientEmail    string `json:"patient_email"`
	DoctorID        string `json:"doctor_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required,apptdate"`
	AppointmentTime string `json:"appointment_time" binding:"required,appttime"`
	Reason          string `json:"reason"`
}

// admissionStatus maps a rejection stage to the client-facing status code.
// Only a missing doctor is a 404; everything else the pipeline turns away is
// a problem with the request itself.
func admissionStatus(reason application.RejectReason) int {
	if reason == application.ReasonDoctorNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	email := req.PatientEmail
	if email == "" {
		email = c.GetString("userEmail")
	}

	appt, err := h.Svc.Book(c.Request.Context(), application.BookingRequest{
		PatientName:     req.PatientName,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
	}, email)
	if err != nil {
		var adm *application.AdmissionError
		if errors.As(err, &adm) {
			response.Error[any](c, admissionStatus(adm.Reason), adm.Message, gin.H{"reason": string(adm.Reason)})
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("create appointment failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "Error creating appointment", nil)
		return
	}
	response.Success(c, http.StatusCreated, appt, "appointment booked", nil)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	appt, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "Appointment not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "Error fetching appointment", nil)
		return
	}
	response.Success(c, http.StatusOK, appt, "appointment", nil)
}

// List returns appointments filtered by ?doctor_id= or ?patient_email=.
// Without a filter it lists the session user's own appointments.
func (h *AppointmentHandler) List(c *gin.Context) {
	var (
		appts []entity.Appointment
		err   error
	)
	switch {
	case c.Query("doctor_id") != "":
		appts, err = h.Svc.ListByDoctor(c.Request.Context(), c.Query("doctor_id"))
	case c.Query("patient_email") != "":
		appts, err = h.Svc.ListByPatient(c.Request.Context(), c.Query("patient_email"))
	default:
		appts, err = h.Svc.ListByPatient(c.Request.Context(), c.GetString("userEmail"))
	}
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list appointments failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "Error fetching appointments", nil)
		return
	}
	response.Success(c, http.StatusOK, appts, "appointments", gin.H{"count": len(appts)})
}

type appointmentUpdateRequest struct {
	AppointmentDate string `json:"appointment_date" binding:"omitempty,apptdate"`
	AppointmentTime string `json:"appointment_time" binding:"omitempty,appttime"`
	Status          string `json:"status" binding:"omitempty,oneof=Scheduled Completed Cancelled"`
	Reason          string `json:"reason"`
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req appointmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	appt, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdateAppointmentInput{
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          req.Status,
		Reason:          req.Reason,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "Appointment not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "Error updating appointment", nil)
		return
	}
	response.Success(c, http.StatusOK, appt, "appointment updated", nil)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "Appointment not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "Error cancelling appointment", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"cancelled": true}, "appointment cancelled", nil)
}
