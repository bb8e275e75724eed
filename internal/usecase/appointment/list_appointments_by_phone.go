package appointment

import (
	"context"

	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
	"github.com/navalhaclub/booking-api/internal/dto"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/validators"
)

// Listagem "meus agendamentos" do cliente, chaveada pelo telefone
type ListAppointmentsByPhone struct {
	repo domain.Repository
}

func NewListAppointmentsByPhone(repo domain.Repository) *ListAppointmentsByPhone {
	return &ListAppointmentsByPhone{repo: repo}
}

func (uc *ListAppointmentsByPhone) Execute(
	ctx context.Context,
	rawPhone string,
) ([]dto.AppointmentListDTO, error) {

	phone, ok := validators.NormalizePhone(rawPhone)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	apps, err := uc.repo.ListAppointmentsByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	return toListDTOs(apps), nil
}
