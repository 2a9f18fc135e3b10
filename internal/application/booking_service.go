package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/niroggyan/healthcare-api/internal/domain/entity"
	"github.com/niroggyan/healthcare-api/internal/domain/repository"
	"github.com/niroggyan/healthcare-api/internal/infrastructure/redislock"
	"github.com/niroggyan/healthcare-api/internal/verification"
	"github.com/niroggyan/healthcare-api/pkg/mailer"
)

// RejectReason identifies which admission stage turned a booking away.
type RejectReason string

const (
	ReasonMissingEmail     RejectReason = "missing-email"
	ReasonInvalidFormat    RejectReason = "invalid-format"
	ReasonDomainNotFound   RejectReason = "domain-not-found"
	ReasonMailboxNotFound  RejectReason = "mailbox-not-found"
	ReasonUndeliverable    RejectReason = "undeliverable"
	ReasonLowConfidence    RejectReason = "low-confidence"
	ReasonDoctorNotFound   RejectReason = "doctor-not-found"
	ReasonSlotTaken        RejectReason = "slot-taken"
	ReasonValidationFailed RejectReason = "validation-failed"
)

// AdmissionError is a booking rejection. Each stage rejects with its own
// reason and message so callers can tell causes apart.
type AdmissionError struct {
	Reason  RejectReason
	Message string
}

func (e *AdmissionError) Error() string { return e.Message }

func reject(reason RejectReason, message string) *AdmissionError {
	return &AdmissionError{Reason: reason, Message: message}
}

// EmailChecker abstracts the deliverability cascade for the pipeline.
type EmailChecker interface {
	Check(ctx context.Context, email string) *verification.Verdict
}

// Notifier delivers the confirmation job asynchronously; its failure never
// changes an admission outcome.
type Notifier interface {
	PublishJSON(ctx context.Context, body any) error
}

// BookingRequest is the transient input to one admission attempt.
type BookingRequest struct {
	PatientName     string
	DoctorID        string
	AppointmentDate string
	AppointmentTime string
	Reason          string
}

// BookingService runs the admission pipeline for appointment bookings:
// requester email deliverability, doctor existence, slot availability, then
// persistence and a fire-and-forget confirmation email.
type BookingService struct {
	Appointments repository.AppointmentRepository
	Doctors      repository.DoctorRepository
	Checker      EmailChecker
	Notifier     Notifier
	Guard        *SlotGuard

	// Locker, when non-nil, serializes check+insert per slot so the first
	// writer wins. Left nil, the check-then-act race stays open.
	Locker redislock.SlotLocker

	// FailOpen governs unexpected faults inside the checker only; negative
	// verdicts always reject regardless of this switch.
	FailOpen      bool
	ConfidenceMin int

	Logger *logrus.Logger
}

func NewBookingService(
	appointments repository.AppointmentRepository,
	doctors repository.DoctorRepository,
	checker EmailChecker,
	notifier Notifier,
	locker redislock.SlotLocker,
	failOpen bool,
	confidenceMin int,
	logger *logrus.Logger,
) *BookingService {
	return &BookingService{
		Appointments:  appointments,
		Doctors:       doctors,
		Checker:       checker,
		Notifier:      notifier,
		Guard:         NewSlotGuard(appointments),
		Locker:        locker,
		FailOpen:      failOpen,
		ConfidenceMin: confidenceMin,
		Logger:        logger,
	}
}

// Book runs the full admission decision for one request. It returns either
// the persisted appointment with its doctor attached, an *AdmissionError, or
// a store fault.
func (s *BookingService) Book(ctx context.Context, req BookingRequest, patientEmail string) (*entity.Appointment, error) {
	if patientEmail == "" {
		return nil, reject(ReasonMissingEmail, "Email is required.")
	}

	verdict, err := s.verifyEmail(ctx, patientEmail)
	if err != nil {
		if !s.FailOpen {
			return nil, reject(ReasonValidationFailed, "Email validation failed.")
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", patientEmail).Warn("email verification faulted, admitting without verdict")
		}
	} else if rej := admissionGate(verdict, s.ConfidenceMin); rej != nil {
		return nil, rej
	}

	doctor, err := s.Doctors.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, reject(ReasonDoctorNotFound, "Doctor not found")
		}
		return nil, err
	}

	key := SlotKey{DoctorID: req.DoctorID, Date: req.AppointmentDate, Time: req.AppointmentTime}
	appt := &entity.Appointment{
		DoctorID:        req.DoctorID,
		PatientName:     req.PatientName,
		PatientEmail:    patientEmail,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
		Status:          entity.StatusScheduled,
	}

	if s.Locker != nil {
		err = s.Locker.WithSlotLock(ctx, key.String(), func(lockCtx context.Context) error {
			return s.checkAndCreate(lockCtx, key, appt)
		})
		if errors.Is(err, redislock.ErrLockNotAcquired) {
			return nil, reject(ReasonSlotTaken, "This time slot is already booked")
		}
	} else {
		err = s.checkAndCreate(ctx, key, appt)
	}
	if err != nil {
		return nil, err
	}

	s.notifyConfirmation(ctx, appt, doctor)

	appt.Doctor = doctor
	return appt, nil
}

func (s *BookingService) checkAndCreate(ctx context.Context, key SlotKey, appt *entity.Appointment) error {
	occupied, err := s.Guard.IsOccupied(ctx, key)
	if err != nil {
		return err
	}
	if occupied {
		return reject(ReasonSlotTaken, "This time slot is already booked")
	}
	return s.Appointments.Create(ctx, appt)
}

// verifyEmail recovers a panicking checker into an error so the fail-open /
// fail-closed policy can decide; Check itself never errors for any input.
func (s *BookingService) verifyEmail(ctx context.Context, email string) (v *verification.Verdict, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = nil
			err = fmt.Errorf("email verification panicked: %v", r)
		}
	}()
	v = s.Checker.Check(ctx, email)
	if v == nil {
		return nil, errors.New("email verification returned no verdict")
	}
	return v, nil
}

// admissionGate applies the verdict checks in the pipeline's fixed order.
func admissionGate(v *verification.Verdict, confidenceMin int) *AdmissionError {
	switch {
	case !v.FormatValid:
		return reject(ReasonInvalidFormat, "Invalid email format.")
	case v.MXFound != nil && !*v.MXFound:
		return reject(ReasonDomainNotFound, "Email domain does not exist.")
	case v.SMTPValid != nil && !*v.SMTPValid:
		return reject(ReasonMailboxNotFound, "Email address does not exist.")
	case v.Deliverability == verification.Undeliverable:
		return reject(ReasonUndeliverable, "Email address is undeliverable.")
	case v.Confidence != nil && *v.Confidence < confidenceMin:
		return reject(ReasonLowConfidence, "Email address could not be verified.")
	}
	return nil
}

func (s *BookingService) notifyConfirmation(ctx context.Context, appt *entity.Appointment, doctor *entity.Doctor) {
	if s.Notifier == nil {
		return
	}
	job := mailer.EmailJob{
		To:       appt.PatientEmail,
		Template: mailer.TemplateAppointmentConfirmation,
		Data: map[string]any{
			"PatientName": appt.PatientName,
			"DoctorName":  doctor.Name,
			"Date":        appt.AppointmentDate,
			"Time":        appt.AppointmentTime,
		},
	}
	if err := s.Notifier.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("appointment_id", appt.ID).Warn("failed to enqueue confirmation email")
	}
}

// ListByPatient returns the appointments booked under one patient email.
func (s *BookingService) ListByPatient(ctx context.Context, email string) ([]entity.Appointment, error) {
	return s.Appointments.ListByPatientEmail(ctx, email)
}

// ListByDoctor returns all appointments for one doctor.
func (s *BookingService) ListByDoctor(ctx context.Context, doctorID string) ([]entity.Appointment, error) {
	return s.Appointments.ListByDoctor(ctx, doctorID)
}

func (s *BookingService) Get(ctx context.Context, id string) (*entity.Appointment, error) {
	return s.Appointments.GetByID(ctx, id)
}

// UpdateAppointmentInput carries optional field updates; empty means keep.
type UpdateAppointmentInput struct {
	PatientName     string
	AppointmentDate string
	AppointmentTime string
	Reason          string
	Status          string
}

// Update mutates an existing appointment. Status changes (including
// cancellation) go through here; a cancelled appointment frees its slot.
func (s *BookingService) Update(ctx context.Context, id string, in UpdateAppointmentInput) (*entity.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.PatientName != "" {
		appt.PatientName = in.PatientName
	}
	if in.AppointmentDate != "" {
		appt.AppointmentDate = in.AppointmentDate
	}
	if in.AppointmentTime != "" {
		appt.AppointmentTime = in.AppointmentTime
	}
	if in.Reason != "" {
		appt.Reason = in.Reason
	}
	if in.Status != "" {
		appt.Status = in.Status
	}
	if err := s.Appointments.Update(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	return s.Appointments.Delete(ctx, id)
}
