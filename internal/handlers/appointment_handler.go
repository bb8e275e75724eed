package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/httpresp"
	"github.com/navalhaclub/booking-api/internal/timezone"
	"github.com/navalhaclub/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER (painel do admin)
// ======================================================

type AppointmentHandler struct {
	createUC      *appointment.CreateAppointment
	confirmUC     *appointment.ConfirmAppointment
	completeUC    *appointment.CompleteAppointment
	cancelUC      *appointment.CancelAppointment
	listByDateUC  *appointment.ListAppointmentsByDate
	listByMonthUC *appointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	createUC *appointment.CreateAppointment,
	confirmUC *appointment.ConfirmAppointment,
	completeUC *appointment.CompleteAppointment,
	cancelUC *appointment.CancelAppointment,
	listByDateUC *appointment.ListAppointmentsByDate,
	listByMonthUC *appointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:      createUC,
		confirmUC:     confirmUC,
		completeUC:    completeUC,
		cancelUC:      cancelUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
	}
}

// ======================================================
// CREATE (agendamento manual pelo balcão)
// ======================================================

type AdminCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ServiceIDs  []uint `json:"service_ids" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AdminCreateAppointmentRequest
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

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.DefaultQuery("date", todayStr())

	if _, err := parseDate(dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	list, err := h.listByDateUC.Execute(c.Request.Context(), dateStr)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	now := timezone.Now()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	list, err := h.listByMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	ap, uerr := h.confirmUC.Execute(c.Request.Context(), uint(id), currentUserID(c))
	if uerr != nil {
		respondUsecaseError(c, uerr)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	ap, uerr := h.completeUC.Execute(c.Request.Context(), uint(id), currentUserID(c))
	if uerr != nil {
		respondUsecaseError(c, uerr)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	ap, uerr := h.cancelUC.Execute(c.Request.Context(), uint(id), currentUserID(c))
	if uerr != nil {
		respondUsecaseError(c, uerr)
		return
	}

	httpresp.OK(c, ap)
}
