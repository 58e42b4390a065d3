package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/skinlab011/salon-booking/internal/audit"
	"github.com/skinlab011/salon-booking/internal/config"
	"github.com/skinlab011/salon-booking/internal/handlers"
	infraRepo "github.com/skinlab011/salon-booking/internal/infra/repository"
	"github.com/skinlab011/salon-booking/internal/middleware"
	"github.com/skinlab011/salon-booking/internal/notify"
	"github.com/skinlab011/salon-booking/internal/schedule"
	ucBooking "github.com/skinlab011/salon-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var mailer notify.Mailer
	if cfg.SendGridAPIKey != "" {
		mailer = notify.NewSendGridMailer(cfg.SendGridAPIKey, cfg.FromEmail, cfg.FromName)
	} else {
		mailer = notify.NewStubMailer(log)
	}
	notifier := notify.NewDispatcher(mailer, cfg.AdminEmail, log)

	weeklyHours := schedule.DefaultWeeklyHours()

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo, weeklyHours)

	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, weeklyHours, notifier)

	createWalkInUC := ucBooking.NewCreateWalkIn(createBookingUC, auditDispatcher)

	updateStatusUC := ucBooking.NewUpdateBookingStatus(bookingRepo, notifier, auditDispatcher)

	cancelByLinkUC := ucBooking.NewCancelByLink(bookingRepo, notifier)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	revenueUC := ucBooking.NewRevenue(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	publicHandler := handlers.NewPublicHandler(
		db,
		getAvailabilityUC,
		createBookingUC,
		cancelByLinkUC,
	)

	adminBookingHandler := handlers.NewAdminBookingHandler(
		listBookingsUC,
		updateStatusUC,
		createWalkInUC,
		revenueUC,
	)

	treatmentHandler := handlers.NewTreatmentHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/treatments", publicHandler.ListTreatments)
			publicAPI.GET("/availability", publicHandler.Availability)

			publicAPI.POST("/bookings",
				middleware.RateLimit(rdb, 10, time.Minute, log),
				publicHandler.CreateBooking,
			)
			publicAPI.GET("/bookings/cancel",
				middleware.RateLimit(rdb, 20, time.Minute, log),
				publicHandler.CancelBooking,
			)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN API
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		admin.Use(middleware.AdminOnly(db))
		{
			admin.GET("/bookings", adminBookingHandler.List)
			admin.POST("/bookings", adminBookingHandler.CreateWalkIn)
			admin.PATCH("/bookings/:id/status", adminBookingHandler.UpdateStatus)

			admin.GET("/revenue", adminBookingHandler.Revenue)

			admin.GET("/treatments", treatmentHandler.List)
			admin.PATCH("/treatments/:id", treatmentHandler.Update)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
