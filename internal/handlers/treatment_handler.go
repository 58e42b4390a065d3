package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skinlab011/salon-booking/internal/audit"
	"github.com/skinlab011/salon-booking/internal/httperr"
	"github.com/skinlab011/salon-booking/internal/httpresp"
	"github.com/skinlab011/salon-booking/internal/middleware"
	"github.com/skinlab011/salon-booking/internal/models"
)

type TreatmentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewTreatmentHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *TreatmentHandler {
	return &TreatmentHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type UpdateTreatmentRequest struct {
	NameMe *string `json:"name_me,omitempty"`
	NameEn *string `json:"name_en,omitempty"`
	NameRu *string `json:"name_ru,omitempty"`

	Price      *string  `json:"price,omitempty"`
	PriceValue *float64 `json:"price_value,omitempty"`

	DurationMinutes *int  `json:"duration_minutes,omitempty"`
	SortOrder       *int  `json:"sort_order,omitempty"`
	Active          *bool `json:"active,omitempty"`
}

// --------- Handlers ---------

// List returns the full catalog including inactive treatments, for the
// admin price editor.
func (h *TreatmentHandler) List(c *gin.Context) {
	var treatments []models.Treatment
	if err := h.db.
		Order("category_id ASC").
		Order("sort_order ASC").
		Find(&treatments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_treatments", "Failed to list treatments.")
		return
	}

	httpresp.List(c, treatments)
}

// Update edits price/name/duration fields. Duration edits only affect
// future bookings: historical bookings keep their snapshotted duration.
func (h *TreatmentHandler) Update(c *gin.Context) {
	actorEmail := c.MustGet(middleware.ContextAdminEmail).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_treatment_id", "Invalid treatment.")
		return
	}

	var treatment models.Treatment
	if err := h.db.First(&treatment, uint(id)).Error; err != nil {
		httperr.NotFound(c, "treatment_not_found", "Treatment not found.")
		return
	}

	var req UpdateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.NameMe != nil {
		treatment.NameMe = *req.NameMe
	}
	if req.NameEn != nil {
		treatment.NameEn = *req.NameEn
	}
	if req.NameRu != nil {
		treatment.NameRu = *req.NameRu
	}
	if req.Price != nil {
		treatment.Price = *req.Price
	}
	if req.PriceValue != nil {
		treatment.PriceValue = req.PriceValue
	}
	if req.DurationMinutes != nil {
		treatment.DurationMinutes = req.DurationMinutes
	}
	if req.SortOrder != nil {
		treatment.SortOrder = *req.SortOrder
	}
	if req.Active != nil {
		treatment.Active = *req.Active
	}

	if err := h.db.Save(&treatment).Error; err != nil {
		httperr.Internal(c, "treatment_update_failed", "Failed to update the treatment.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail,
		Action:     "treatment_updated",
		Entity:     "treatment",
		EntityID:   &treatment.ID,
	})

	httpresp.OK(c, treatment)
}
