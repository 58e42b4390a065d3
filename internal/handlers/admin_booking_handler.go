package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/skinlab011/salon-booking/internal/domain/booking"
	"github.com/skinlab011/salon-booking/internal/httperr"
	"github.com/skinlab011/salon-booking/internal/httpresp"
	"github.com/skinlab011/salon-booking/internal/middleware"
	"github.com/skinlab011/salon-booking/internal/timezone"
	ucBooking "github.com/skinlab011/salon-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminBookingHandler struct {
	listBookings *ucBooking.ListBookings
	updateStatus *ucBooking.UpdateBookingStatus
	createWalkIn *ucBooking.CreateWalkIn
	revenue      *ucBooking.Revenue
}

func NewAdminBookingHandler(
	listBookings *ucBooking.ListBookings,
	updateStatus *ucBooking.UpdateBookingStatus,
	createWalkIn *ucBooking.CreateWalkIn,
	revenue *ucBooking.Revenue,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		listBookings: listBookings,
		updateStatus: updateStatus,
		createWalkIn: createWalkIn,
		revenue:      revenue,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type WalkInBookingRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	TreatmentID uint   `json:"treatment_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Message     string `json:"message"`
}

// ======================================================
// CALENDAR LISTS
// ======================================================

func (h *AdminBookingHandler) List(c *gin.Context) {
	status := c.Query("status")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	if date := c.Query("date"); date != "" {
		bookings, err := h.listBookings.ByDate(c.Request.Context(), date, status, limit)
		if err != nil {
			mapListErrors(c, err)
			return
		}
		httpresp.List(c, bookings)
		return
	}

	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_params", "Provide either date or year+month.")
		return
	}

	year, errY := strconv.Atoi(yearStr)
	month, errM := strconv.Atoi(monthStr)
	if errY != nil || errM != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid year or month.")
		return
	}

	bookings, err := h.listBookings.ByMonth(c.Request.Context(), year, month, status, limit)
	if err != nil {
		mapListErrors(c, err)
		return
	}
	httpresp.List(c, bookings)
}

func mapListErrors(c *gin.Context, err error) {
	if httperr.IsBusiness(err, "invalid_date") {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}
	httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AdminBookingHandler) UpdateStatus(c *gin.Context) {
	actorEmail := c.MustGet(middleware.ContextAdminEmail).(string)
	bookingID := c.Param("id")

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Status is required.")
		return
	}

	to := domain.Status(req.Status)
	if !to.Valid() || to == domain.StatusPending {
		httperr.BadRequest(c, "invalid_status", "Invalid target status.")
		return
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), actorEmail, bookingID, to, req.Reason)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "booking_not_found":
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case "invalid_status_transition":
			httperr.BadRequest(c, "invalid_status_transition", "This transition is not allowed.")
		default:
			httperr.Internal(c, "status_update_failed", "Failed to update the booking.")
		}
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// WALK-IN ENTRY
// ======================================================

func (h *AdminBookingHandler) CreateWalkIn(c *gin.Context) {
	actorEmail := c.MustGet(middleware.ContextAdminEmail).(string)

	var req WalkInBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Name, treatment, date and time are required.")
		return
	}

	b, err := h.createWalkIn.Execute(
		c.Request.Context(),
		actorEmail,
		ucBooking.CreateBookingInput{
			ClientName:  req.Name,
			ClientEmail: req.Email,
			ClientPhone: req.Phone,
			TreatmentID: req.TreatmentID,
			Date:        req.Date,
			Time:        req.Time,
			Message:     req.Message,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// REVENUE
// ======================================================

func (h *AdminBookingHandler) Revenue(c *gin.Context) {
	summary, err := h.revenue.Execute(c.Request.Context(), timezone.Now())
	if err != nil {
		httperr.Internal(c, "revenue_failed", "Failed to compute revenue.")
		return
	}

	httpresp.OK(c, summary)
}
