package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/cache"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/models"
)

type SettingsHandler struct {
	db    *gorm.DB
	cache *cache.Availability
}

func NewSettingsHandler(db *gorm.DB, cache *cache.Availability) *SettingsHandler {
	return &SettingsHandler{db: db, cache: cache}
}

type SettingsRequest struct {
	IntervalMinutes   int `json:"interval_minutes" binding:"required,min=5,max=240"`
	MinAdvanceMinutes int `json:"min_advance_minutes" binding:"min=0,max=1440"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	var s models.ScheduleSettings
	if err := h.db.First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, models.ScheduleSettings{
				IntervalMinutes:   30,
				MinAdvanceMinutes: 60,
			})
			return
		}
		httperr.Internal(c, "failed_to_get_settings", "Erro ao carregar ajustes.")
		return
	}

	c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var s models.ScheduleSettings
	err := h.db.First(&s).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Internal(c, "failed_to_get_settings", "Erro ao carregar ajustes.")
		return
	}

	s.IntervalMinutes = req.IntervalMinutes
	s.MinAdvanceMinutes = req.MinAdvanceMinutes

	if err := h.db.Save(&s).Error; err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Erro ao salvar ajustes.")
		return
	}

	// granularidade e antecedência mudaram: todo dia pode ter mudado
	h.cache.InvalidateAll(c.Request.Context())

	userID := currentUserID(c)
	writeAudit(h.db, &userID, "settings_updated", "schedule_settings", &s.ID, req)

	c.JSON(http.StatusOK, s)
}
