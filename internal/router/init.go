package router

import (
	"net"

	"github.com/niroggyan/healthcare-api/internal/application"
	"github.com/niroggyan/healthcare-api/internal/container"
	"github.com/niroggyan/healthcare-api/internal/infrastructure/postgres"
	"github.com/niroggyan/healthcare-api/internal/infrastructure/redislock"
	handlers "github.com/niroggyan/healthcare-api/internal/interface/http"
	"github.com/niroggyan/healthcare-api/internal/router/modules"
	"github.com/niroggyan/healthcare-api/internal/verification"
)

// buildChecker assembles the deliverability cascade in the configured
// provider order, always backed by the DNS fallback.
func buildChecker() *verification.Checker {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	var providers []verification.Provider
	for _, name := range cfg.VerifyProviderOrder() {
		switch name {
		case "abstract":
			if cfg.AbstractEmailAPIKey != "" {
				providers = append(providers, verification.NewAbstractProvider(cfg.AbstractEmailAPIKey, cfg.AbstractEmailAPIURL))
			}
		case "mailgun":
			if cfg.MailgunAPIKey != "" {
				providers = append(providers, verification.NewMailgunProvider(cfg.MailgunDomain, cfg.MailgunAPIKey))
			}
		default:
			logger.WithField("provider", name).Warn("unknown email verification provider, skipping")
		}
	}

	fallback := verification.NewDNSFallback(net.DefaultResolver, logger)
	return verification.NewChecker(providers, fallback, cfg.EmailConfidenceMin, cfg.EmailVerifyTimeout, logger)
}

func buildBookingService() *application.BookingService {
	cfg := container.GetConfig()

	apptRepo := postgres.NewAppointmentRepository(container.GetPGPool())
	doctorRepo := postgres.NewDoctorRepository(container.GetPGPool())

	var locker redislock.SlotLocker
	if cfg.BookingSlotLockEnabled {
		locker = redislock.NewSlotLocker(container.GetRedis(), cfg.BookingSlotLockTTL)
	}

	var notifier application.Notifier
	if pub := container.GetRabbitPub(); pub != nil {
		notifier = pub
	}

	return application.NewBookingService(
		apptRepo,
		doctorRepo,
		buildChecker(),
		notifier,
		locker,
		cfg.EmailVerifyFailOpen,
		cfg.EmailConfidenceMin,
		container.GetLogger(),
	)
}

// InitModules wires every feature module into the registry. Called once at
// startup after the container singletons are set.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	jwt := container.GetJWT()
	logger := container.GetLogger()

	userSvc := application.NewUserService(
		postgres.NewUserRepository(container.GetPGPool()),
		jwt,
		container.GetRedis(),
		logger,
	)
	userHandler := handlers.NewUserHandler(userSvc, jwt, logger, cfg.CookieDomain, cfg.CookieSecure)
	r.Add(modules.NewUserModule(userHandler, jwt))

	doctorSvc := application.NewDoctorService(postgres.NewDoctorRepository(container.GetPGPool()))
	r.Add(modules.NewDoctorModule(handlers.NewDoctorHandler(doctorSvc, logger), jwt))

	bookingSvc := buildBookingService()
	r.Add(modules.NewAppointmentModule(handlers.NewAppointmentHandler(bookingSvc, logger), jwt))
}
