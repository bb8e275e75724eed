package handlers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/timezone"
)

// --------------------------------------------------
// Datas no fuso da barbearia
// --------------------------------------------------

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, timezone.Location())
}

func todayStr() string {
	return timezone.Now().Format("2006-01-02")
}

// --------------------------------------------------
// Identidade do admin logado
// --------------------------------------------------

func currentUserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

// --------------------------------------------------
// Auditoria síncrona para CRUDs simples
// --------------------------------------------------

func writeAudit(
	db *gorm.DB,
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	meta any,
) {

	var payload string
	if meta != nil {
		if b, err := json.Marshal(meta); err == nil {
			payload = string(b)
		}
	}

	log := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: payload,
	}

	db.Create(&log)
}

// --------------------------------------------------
// Mapeamento de erros dos use cases
// --------------------------------------------------

// Disponibilidade vazia NÃO passa por aqui: lista vazia é 200.
func respondUsecaseError(c *gin.Context, err error) {
	var cfgErr *schedule.ConfigurationError
	if errors.As(err, &cfgErr) {
		// expediente corrompido pelo admin; o dia fica fechado até consertar
		httperr.Internal(c, "configuration_error", "Expediente mal configurado.")
		return
	}

	if code, ok := httperr.BusinessCode(err); ok {
		switch code {
		case "slot_unavailable":
			httperr.Conflict(c, code, "Esse horário acabou de ser ocupado. Escolha outro.")
		case "invalid_state":
			httperr.Conflict(c, code, "Agendamento não está mais nesse estado.")
		default:
			httperr.BadRequest(c, code, "Dados inválidos.")
		}
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "not_found", "Registro não encontrado.")
		return
	}

	httperr.Internal(c, "internal_error", "Erro interno.")
}
