package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/skinlab011/salon-booking/internal/domain/booking"
	"github.com/skinlab011/salon-booking/internal/httperr"
	"github.com/skinlab011/salon-booking/internal/httpresp"
	"github.com/skinlab011/salon-booking/internal/models"
	ucBooking "github.com/skinlab011/salon-booking/internal/usecase/booking"
	"github.com/skinlab011/salon-booking/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	db              *gorm.DB
	getAvailability *ucBooking.GetAvailability
	createBooking   *ucBooking.CreateBooking
	cancelByLink    *ucBooking.CancelByLink
}

func NewPublicHandler(
	db *gorm.DB,
	getAvailability *ucBooking.GetAvailability,
	createBooking *ucBooking.CreateBooking,
	cancelByLink *ucBooking.CancelByLink,
) *PublicHandler {
	return &PublicHandler{
		db:              db,
		getAvailability: getAvailability,
		createBooking:   createBooking,
		cancelByLink:    cancelByLink,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	TreatmentID uint   `json:"treatment_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM
	Message     string `json:"message"`
	Locale      string `json:"locale"`
}

// ======================================================
// CATALOG
// ======================================================

func (h *PublicHandler) ListTreatments(c *gin.Context) {
	var categories []models.TreatmentCategory
	if err := h.db.
		Order("sort_order ASC").
		Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_treatments", "Failed to load the catalog.")
		return
	}

	var treatments []models.Treatment
	if err := h.db.
		Where("active = true").
		Order("sort_order ASC").
		Find(&treatments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_treatments", "Failed to load the catalog.")
		return
	}

	out := make([]models.CategoryWithTreatments, 0, len(categories))
	for _, cat := range categories {
		entry := models.CategoryWithTreatments{TreatmentCategory: cat, Treatments: []models.Treatment{}}
		for _, t := range treatments {
			if t.CategoryID == cat.ID {
				entry.Treatments = append(entry.Treatments, t)
			}
		}
		out = append(out, entry)
	}

	httpresp.List(c, out)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Date is required.")
		return
	}

	// Duration comes from the selected treatment when given, otherwise
	// from an explicit duration parameter, otherwise 60.
	duration := 0
	if treatmentIDStr := c.Query("treatment_id"); treatmentIDStr != "" {
		treatmentID, err := strconv.ParseUint(treatmentIDStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_treatment_id", "Invalid treatment.")
			return
		}

		var treatment models.Treatment
		if err := h.db.First(&treatment, uint(treatmentID)).Error; err != nil {
			httperr.NotFound(c, "treatment_not_found", "Treatment not found.")
			return
		}
		duration = treatment.EffectiveDuration()
	} else if durationStr := c.Query("duration"); durationStr != "" {
		d, err := strconv.Atoi(durationStr)
		if err != nil || d <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Invalid duration.")
			return
		}
		duration = d
	}

	availability, err := h.getAvailability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			Date:            dateStr,
			DurationMinutes: duration,
		},
	)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		httperr.Internal(c, "availability_failed", "Failed to compute availability.")
		return
	}

	httpresp.OK(c, availability)
}

// ======================================================
// CREATE BOOKING
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "All required fields must be filled in.")
		return
	}

	if !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	b, err := h.createBooking.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			ClientName:  req.Name,
			ClientEmail: req.Email,
			ClientPhone: req.Phone,
			TreatmentID: req.TreatmentID,
			Date:        req.Date,
			Time:        req.Time,
			Message:     req.Message,
			Locale:      req.Locale,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"success":    true,
		"booking_id": b.BookingID,
	})
}

// ======================================================
// CANCELLATION LINK
// ======================================================

func (h *PublicHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Query("id")
	if bookingID == "" {
		httperr.BadRequest(c, "missing_params", "This cancellation link is not valid.")
		return
	}

	b, alreadyCancelled, err := h.cancelByLink.Execute(c.Request.Context(), bookingID)
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "No booking exists with this ID.")
			return
		}
		if httperr.IsBusiness(err, "invalid_status_transition") {
			httperr.BadRequest(c, "invalid_status_transition", "This booking can no longer be cancelled.")
			return
		}
		httperr.Internal(c, "cancel_failed", "Cancellation failed, please contact us directly.")
		return
	}

	if alreadyCancelled {
		httpresp.Notice(c, "already_cancelled", "This booking was already cancelled.")
		return
	}

	httpresp.OK(c, gin.H{
		"success":    true,
		"booking_id": b.BookingID,
		"status":     b.Status,
	})
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapBookingErrors(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "missing_fields":
		httperr.BadRequest(c, "missing_fields", "All required fields must be filled in.")
	case "invalid_date":
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
	case "invalid_time":
		httperr.BadRequest(c, "invalid_time", "Invalid time.")
	case "treatment_not_found":
		httperr.NotFound(c, "treatment_not_found", "Treatment not found.")
	case "outside_business_hours":
		httperr.BadRequest(c, "outside_business_hours", "The salon is closed at the requested time.")
	case "slot_taken":
		httperr.Conflict(c, "slot_taken", "The selected slot is no longer available. Please pick another.")
	default:
		httperr.Internal(c, "booking_failed", "Server error, please try again.")
	}
}
