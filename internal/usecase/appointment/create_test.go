package appointment

import (
	"context"
	"testing"

	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/timezone"
)

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientName:  "João Silva",
		ClientPhone: "(11) 98765-4321",
		ServiceIDs:  []uint{1},
		Date:        futureMondayStr,
		Time:        "10:00",
	}
}

func createRepo() *mockRepo {
	repo := newMockRepo()
	repo.addService(1, "Corte de Cabelo", 30, 20)
	repo.addWorkDay(1, "09:00", "12:00")
	return repo
}

func TestCreateAppointment_Success(t *testing.T) {
	repo := createRepo()
	uc := NewCreateAppointment(repo, nil, nil)

	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if ap.PublicCode == "" {
		t.Error("public code não foi gerado")
	}
	if ap.Status != "pending" {
		t.Errorf("status esperado pending, veio %s", ap.Status)
	}
	if ap.TotalPrice != 20 {
		t.Errorf("preço total esperado 20, veio %.2f", ap.TotalPrice)
	}
	if len(ap.Items) != 1 || ap.Items[0].PriceAtBooking != 20 {
		t.Errorf("itens com snapshot de preço esperados, veio %+v", ap.Items)
	}
	if !repo.recheckCalled {
		t.Error("criação não passou pelo re-check transacional")
	}

	// cliente criado com telefone normalizado
	if _, ok := repo.clients["11987654321"]; !ok {
		t.Errorf("cliente não foi criado: %+v", repo.clients)
	}

	stored, _ := repo.ListAppointmentsByDate(context.Background(), futureMondayStr)
	if len(stored) != 1 {
		t.Fatalf("esperado 1 agendamento persistido, veio %d", len(stored))
	}
}

func TestCreateAppointment_MultipleServices(t *testing.T) {
	repo := createRepo()
	repo.addService(2, "Barba Completa", 20, 15)
	uc := NewCreateAppointment(repo, nil, nil)

	in := validInput()
	in.ServiceIDs = []uint{1, 2}

	ap, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if ap.TotalPrice != 35 {
		t.Errorf("preço total esperado 35, veio %.2f", ap.TotalPrice)
	}
	if len(ap.Items) != 2 {
		t.Errorf("esperados 2 itens, veio %d", len(ap.Items))
	}
}

func TestCreateAppointment_SlotTaken(t *testing.T) {
	repo := createRepo()
	repo.addAppointment(futureMondayStr, "10:00", 60, "pending")
	uc := NewCreateAppointment(repo, nil, nil)

	in := validInput()
	in.Time = "10:30" // dentro do agendamento de 60min das 10:00

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Errorf("esperado slot_unavailable, veio %v", err)
	}
}

func TestCreateAppointment_CancelledDoesNotBlock(t *testing.T) {
	repo := createRepo()
	repo.addAppointment(futureMondayStr, "10:00", 60, "cancelled")
	uc := NewCreateAppointment(repo, nil, nil)

	if _, err := uc.Execute(context.Background(), validInput()); err != nil {
		t.Errorf("cancelado não deveria ocupar o horário: %v", err)
	}
}

func TestCreateAppointment_BlockedSlot(t *testing.T) {
	repo := createRepo()
	repo.blocks = append(repo.blocks, models.BlockedSlot{
		Date: futureMondayStr,
		Time: "10:00",
	})
	uc := NewCreateAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Errorf("esperado slot_unavailable, veio %v", err)
	}
}

func TestCreateAppointment_OutsideShift(t *testing.T) {
	repo := createRepo()
	uc := NewCreateAppointment(repo, nil, nil)

	in := validInput()
	in.Time = "14:00" // tarde fechada no fixture

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Errorf("esperado slot_unavailable, veio %v", err)
	}
}

func TestCreateAppointment_ClosedWeekday(t *testing.T) {
	repo := newMockRepo()
	repo.addService(1, "Corte de Cabelo", 30, 20)
	uc := NewCreateAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Errorf("esperado slot_unavailable, veio %v", err)
	}
}

func TestCreateAppointment_InvalidPhone(t *testing.T) {
	uc := NewCreateAppointment(createRepo(), nil, nil)

	in := validInput()
	in.ClientPhone = "123"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "invalid_phone") {
		t.Errorf("esperado invalid_phone, veio %v", err)
	}
}

func TestCreateAppointment_InvalidTime(t *testing.T) {
	uc := NewCreateAppointment(createRepo(), nil, nil)

	in := validInput()
	in.Time = "25:99"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "invalid_time") {
		t.Errorf("esperado invalid_time, veio %v", err)
	}
}

func TestCreateAppointment_PastDate(t *testing.T) {
	uc := NewCreateAppointment(createRepo(), nil, nil)

	in := validInput()
	in.Date = "2020-01-01"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("esperado invalid_date, veio %v", err)
	}
}

func TestCreateAppointment_TooSoonToday(t *testing.T) {
	uc := NewCreateAppointment(createRepo(), nil, nil)

	// meia-noite e meia de hoje nunca respeita 60min de antecedência
	in := validInput()
	in.Date = timezone.Now().Format("2006-01-02")
	in.Time = "00:30"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "too_soon") {
		t.Errorf("esperado too_soon, veio %v", err)
	}
}

func TestCreateAppointment_UnknownService(t *testing.T) {
	uc := NewCreateAppointment(createRepo(), nil, nil)

	in := validInput()
	in.ServiceIDs = []uint{1, 99}

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Errorf("esperado service_not_found, veio %v", err)
	}
}

func TestCreateAppointment_NoServices(t *testing.T) {
	uc := NewCreateAppointment(createRepo(), nil, nil)

	in := validInput()
	in.ServiceIDs = nil

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "service_required") {
		t.Errorf("esperado service_required, veio %v", err)
	}
}

func TestCreateAppointment_ReusesClientByPhone(t *testing.T) {
	repo := createRepo()
	uc := NewCreateAppointment(repo, nil, nil)

	first, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	in := validInput()
	in.ClientName = "Outro Nome"
	in.Time = "11:00"

	second, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if first.ClientID != second.ClientID {
		t.Errorf("mesmo telefone deveria reusar o cliente: %d != %d", first.ClientID, second.ClientID)
	}
	if len(repo.clients) != 1 {
		t.Errorf("esperado 1 cliente, veio %d", len(repo.clients))
	}
}
