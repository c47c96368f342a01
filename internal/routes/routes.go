package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barberrock/booking-api/internal/audit"
	"github.com/barberrock/booking-api/internal/auth"
	"github.com/barberrock/booking-api/internal/config"
	"github.com/barberrock/booking-api/internal/handlers"
	infraRepo "github.com/barberrock/booking-api/internal/infra/repository"
	"github.com/barberrock/booking-api/internal/lock"
	"github.com/barberrock/booking-api/internal/middleware"
	ucAccount "github.com/barberrock/booking-api/internal/usecase/account"
	ucAlert "github.com/barberrock/booking-api/internal/usecase/alert"
	ucAppointment "github.com/barberrock/booking-api/internal/usecase/appointment"
	ucCatalog "github.com/barberrock/booking-api/internal/usecase/catalog"
	ucGallery "github.com/barberrock/booking-api/internal/usecase/gallery"
	ucLoyalty "github.com/barberrock/booking-api/internal/usecase/loyalty"
	ucSurvey "github.com/barberrock/booking-api/internal/usecase/survey"
	"github.com/barberrock/booking-api/internal/validators"
)

// Deps are the process-wide collaborators built in main. Store is nil when
// object storage is not configured.
type Deps struct {
	Audit  audit.Recorder
	Locker lock.Locker
	Store  ucGallery.ObjectStore
	Tokens *auth.Tokens
	Logger *zap.Logger
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {
	loc := cfg.Location()
	log := deps.Logger

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	surveyRepo := infraRepo.NewSurveyGormRepository(db)
	alertRepo := infraRepo.NewAlertGormRepository(db)
	accountRepo := infraRepo.NewAccountGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	galleryRepo := infraRepo.NewGalleryGormRepository(db)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, loc)

	scheduleUC := ucAppointment.NewScheduleAppointment(
		appointmentRepo,
		deps.Locker,
		deps.Audit,
		log,
		ucAppointment.ScheduleOptions{
			Location:               loc,
			DefaultPackageDuration: cfg.DefaultPackageDuration,
		},
	)

	changeStatusUC := ucAppointment.NewChangeAppointmentStatus(appointmentRepo, deps.Audit, loc)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo, loc)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(appointmentRepo, loc)

	// ======================================================
	// USE CASES — SURROUNDING FEATURES
	// ======================================================
	registerUC := ucAccount.NewRegisterAccount(
		accountRepo,
		deps.Tokens,
		validators.IsEmailDomainValid,
		deps.Audit,
		log,
		cfg.LoyaltyThreshold,
	)

	catalogUC := ucCatalog.NewCatalog(catalogRepo)
	galleryListUC := ucGallery.NewList(galleryRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		scheduleUC,
		changeStatusUC,
		listByDateUC,
		listByMonthUC,
		loc,
		log,
	)

	authHandler := handlers.NewAuthHandler(
		registerUC,
		ucAccount.NewLogin(accountRepo, deps.Tokens),
		ucAccount.NewListUsers(accountRepo),
		log,
	)

	meHandler := handlers.NewMeHandler(
		ucAccount.NewMe(accountRepo),
		ucLoyalty.NewGetPromotions(appointmentRepo),
		log,
	)

	surveyHandler := handlers.NewSurveyHandler(
		ucSurvey.NewGetInfo(surveyRepo),
		ucSurvey.NewSubmit(surveyRepo, deps.Audit),
		ucSurvey.NewScanQR(surveyRepo),
		ucSurvey.NewPendingByQR(surveyRepo),
		ucSurvey.NewGetBarberQR(surveyRepo, cfg.FrontendURL),
		log,
	)

	alertHandler := handlers.NewAlertHandler(
		ucAlert.NewListPending(alertRepo, loc),
		ucAlert.NewMarkSent(alertRepo, deps.Audit, loc),
		log,
	)

	publicHandler := handlers.NewPublicHandler(catalogUC, galleryListUC, log)

	workingHoursHandler := handlers.NewWorkingHoursHandler(
		ucCatalog.NewGetSchedule(catalogRepo),
		ucCatalog.NewUpdateSchedule(catalogRepo, deps.Audit),
		log,
	)

	serviceHandler := handlers.NewServiceHandler(ucCatalog.NewCreateService(catalogRepo), log)

	galleryHandler := handlers.NewGalleryHandler(
		ucGallery.NewUpload(galleryRepo, deps.Store, deps.Audit, cfg.MediaMaxWidth),
		log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(db), loc, log)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register/", authHandler.Register)
		api.POST("/login/", authHandler.Login)

		api.GET("/citas/horarios-disponibles/", appointmentHandler.Availability)

		api.GET("/barberos/", publicHandler.Barbers)
		api.GET("/servicios/", publicHandler.Services)
		api.GET("/paquetes/", publicHandler.Packages)
		api.GET("/productos/", publicHandler.Products)
		api.GET("/galeria/", publicHandler.Gallery)

		api.GET("/encuestas/info/", surveyHandler.Info)
		api.POST("/encuestas/enviar/", surveyHandler.Submit)
		api.GET("/qr/:token/", surveyHandler.ScanQR)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("")
		secured.Use(middleware.AuthMiddleware(deps.Tokens))
		{
			secured.GET("/me/", meHandler.GetMe)
			secured.GET("/promociones/", meHandler.Promotions)

			// appointments
			secured.POST("/citas/agendar/", appointmentHandler.Schedule)
			secured.PATCH("/citas/:id/estado/", appointmentHandler.ChangeStatus)

			// barber agenda, schedule and QR
			secured.GET("/mi-agenda/", appointmentHandler.ListByDate)
			secured.GET("/mi-agenda/mes/", appointmentHandler.ListByMonth)
			secured.GET("/barberos/:id/agenda/", appointmentHandler.ListByDate)
			secured.GET("/barberos/:id/agenda/mes/", appointmentHandler.ListByMonth)
			secured.GET("/barberos/:id/horario/", workingHoursHandler.Get)
			secured.PUT("/barberos/:id/horario/", workingHoursHandler.Update)
			secured.GET("/barberos/:id/qr/", surveyHandler.BarberQR)

			secured.GET("/qr/:token/encuesta/", surveyHandler.PendingByQR)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			{
				admin.GET("/alertas/", alertHandler.List)
				admin.POST("/alertas/:id/enviar/", alertHandler.MarkSent)

				admin.GET("/usuarios/", authHandler.ListUsers)
				admin.POST("/usuarios/", authHandler.CreateUser)

				admin.POST("/servicios/", serviceHandler.Create)
				admin.POST("/galeria/", galleryHandler.Upload)

				admin.GET("/auditoria/", auditLogsHandler.List)
			}
		}
	}
}
