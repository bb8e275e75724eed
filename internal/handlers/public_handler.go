package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/httpresp"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db *gorm.DB

	availabilityUC *appointment.GetAvailability
	createUC       *appointment.CreateAppointment
	cancelUC       *appointment.CancelAppointment
	listByPhoneUC  *appointment.ListAppointmentsByPhone
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *appointment.GetAvailability,
	createUC *appointment.CreateAppointment,
	cancelUC *appointment.CancelAppointment,
	listByPhoneUC *appointment.ListAppointmentsByPhone,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
		cancelUC:       cancelUC,
		listByPhoneUC:  listByPhoneUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ServiceIDs  []uint `json:"service_ids" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

////////////////////////////////////////////////////////
// SERVICES (catálogo do cliente)
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("active = true")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	idsStr := c.Query("service_ids")

	if dateStr == "" || idsStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviços obrigatórios.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	var ids []uint
	for _, part := range strings.Split(idsStr, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
			return
		}
		ids = append(ids, uint(id))
	}

	res, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{Date: date, ServiceIDs: ids},
	)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	// lista vazia é resposta normal (dia fechado ou lotado)
	c.JSON(http.StatusOK, res)
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		appointment.CreateAppointmentInput{
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ServiceIDs:  req.ServiceIDs,
			Date:        req.Date,
			Time:        req.Time,
			Notes:       req.Notes,
		},
	)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"public_code": ap.PublicCode,
		"date":        ap.Date,
		"time":        ap.Time,
		"status":      ap.Status,
		"total_price": ap.TotalPrice,
	})
}

////////////////////////////////////////////////////////
// MY APPOINTMENTS (por telefone) + CANCEL (por código)
////////////////////////////////////////////////////////

func (h *PublicHandler) MyAppointments(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		httperr.BadRequest(c, "missing_params", "Telefone obrigatório.")
		return
	}

	list, err := h.listByPhoneUC.Execute(c.Request.Context(), phone)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *PublicHandler) CancelByCode(c *gin.Context) {
	code := c.Param("code")

	ap, err := h.cancelUC.ExecuteByCode(c.Request.Context(), code)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"public_code": ap.PublicCode,
		"status":      ap.Status,
	})
}
