package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/cache"
	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/httpresp"
	"github.com/navalhaclub/booking-api/internal/models"
)

type BlockedSlotHandler struct {
	db    *gorm.DB
	cache *cache.Availability
}

func NewBlockedSlotHandler(db *gorm.DB, cache *cache.Availability) *BlockedSlotHandler {
	return &BlockedSlotHandler{db: db, cache: cache}
}

type BlockedSlotRequest struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Time   string `json:"time" binding:"required"` // HH:MM
	Reason string `json:"reason"`
}

func (h *BlockedSlotHandler) List(c *gin.Context) {
	q := h.db.Order("date ASC, time ASC")

	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}

	var blocks []models.BlockedSlot
	if err := q.Find(&blocks).Error; err != nil {
		httperr.Internal(c, "failed_to_list_blocks", "Erro ao listar bloqueios.")
		return
	}

	httpresp.List(c, blocks)
}

func (h *BlockedSlotHandler) Create(c *gin.Context) {
	var req BlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if _, err := parseDate(req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}
	if _, err := schedule.ParseClock(req.Time); err != nil {
		httperr.BadRequest(c, "invalid_time", "Hora inválida.")
		return
	}

	block := models.BlockedSlot{
		Date:   req.Date,
		Time:   req.Time,
		Reason: req.Reason,
	}

	if err := h.db.Create(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_create_block", "Erro ao criar bloqueio.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), block.Date)

	userID := currentUserID(c)
	writeAudit(h.db, &userID, "slot_blocked", "blocked_slot", &block.ID, req)

	c.JSON(http.StatusCreated, block)
}

func (h *BlockedSlotHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	var block models.BlockedSlot
	if err := h.db.First(&block, uint(id)).Error; err != nil {
		httperr.NotFound(c, "block_not_found", "Bloqueio não encontrado.")
		return
	}

	if err := h.db.Delete(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_block", "Erro ao remover bloqueio.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), block.Date)

	userID := currentUserID(c)
	writeAudit(h.db, &userID, "slot_unblocked", "blocked_slot", &block.ID, nil)

	httpresp.OK(c, gin.H{"status": "ok"})
}
