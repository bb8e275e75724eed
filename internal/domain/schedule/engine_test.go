package schedule

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

// segunda-feira
var testDate = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func at(hm string) time.Time {
	m, err := ParseClock(hm)
	if err != nil {
		panic(err)
	}
	return time.Date(2026, 3, 9, m/60, m%60, 0, 0, time.UTC)
}

func morningDay(start, end string) WorkDay {
	return WorkDay{
		Weekday: 1,
		Open:    true,
		Morning: &Shift{Start: start, End: end, Open: true},
	}
}

func TestComputeAvailability_FreeMorning(t *testing.T) {
	day := morningDay("09:00", "12:00")
	cfg := Config{IntervalMinutes: 30, MinAdvanceMinutes: 60}

	got, err := ComputeAvailability(day, cfg, CandidateRequest{
		Date:            testDate,
		DurationMinutes: 30,
		Now:             at("07:30"),
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("esperado %v, veio %v", want, got)
	}
}

func TestComputeAvailability_ExistingBookingExcludesOverlaps(t *testing.T) {
	day := morningDay("09:00", "12:00")
	cfg := Config{IntervalMinutes: 30, MinAdvanceMinutes: 60}

	// reserva 10:00 por 60min ocupa [600, 660)
	got, err := ComputeAvailability(day, cfg, CandidateRequest{
		Date:            testDate,
		DurationMinutes: 30,
		Now:             at("07:30"),
		Bookings:        []Span{{Start: 600, End: 660}},
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	// 10:30 também cai: [10:30, 11:00) cruza [10:00, 11:00)
	want := []string{"09:00", "09:30", "11:00", "11:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("esperado %v, veio %v", want, got)
	}
}

func TestComputeAvailability_LongerDurationShrinksTail(t *testing.T) {
	day := morningDay("09:00", "12:00")
	cfg := Config{IntervalMinutes: 30, MinAdvanceMinutes: 60}

	got, err := ComputeAvailability(day, cfg, CandidateRequest{
		Date:            testDate,
		DurationMinutes: 60,
		Now:             at("07:30"),
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	// último início válido é 11:00 (11:00+60 = 12:00)
	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("esperado %v, veio %v", want, got)
	}
}

func TestComputeAvailability_AdvanceNoticeSameDay(t *testing.T) {
	day := morningDay("09:00", "12:00")
	cfg := Config{IntervalMinutes: 30, MinAdvanceMinutes: 60}

	got, err := ComputeAvailability(day, cfg, CandidateRequest{
		Date:            testDate,
		DurationMinutes: 30,
		Now:             at("09:15"),
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	// corte em 09:15+60 = 10:15; t <= 10:15 sai
	want := []string{"10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("esperado %v, veio %v", want, got)
	}
}

func TestComputeAvailability_AdvanceNoticeBoundaryExcluded(t *testing.T) {
	day := morningDay("09:00", "12:00")
	cfg := Config{IntervalMinutes: 30, MinAdvanceMinutes: 60}

	// 08:00+60 = 09:00 exato: o slot das 09:00 falha t > corte
	got, err := ComputeAvailability(day, cfg, CandidateRequest{
		Date:            testDate,
		DurationMinutes: 30,
		Now:             at("08:00"),
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	want := []string{"09:30", "10:00", "10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("esperado %v, veio %v", want, got)
	}
}

func TestComputeAvailability_FutureDayIgnoresClock(t *testing.T) {
	day := morningDay("09:00", "12:00")
	cfg := Config{IntervalMinutes: 30, MinAdvanceMinutes: 60}

	// 23:59 da véspera não corta nada do dia seguinte
	got, err := ComputeAvailability(day, cfg, CandidateRequest{
		Date:            testDate,
		DurationMinutes: 30,
		Now:             time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(got) != 6 || got[0] != "09:00" {
		t.Errorf("dia futuro deveria ofertar tudo, veio %v", got)
	}
}

func TestComputeAvailability_ClosedDay(t *testing.T) {
	day := WorkDay{
		Weekday: 1,
		Open:    false,
		Morning: &Shift{Start: "09:00", End: "12:00", Open: true},
	}

	got, err := ComputeAvailability(day, Config{IntervalMinutes: 30}, CandidateRequest{
		Date:            testDate,
		DurationMinutes: 30,
		Now:             at("07:30"),
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("dia fechado deveria vir vazio, veio %v", got)
	}
}

func TestComputeAvailability_ClosedShiftSkipped(t *testing.T) {
	day := WorkDay{
		Weekday:   1,
		Open:      true,
		Morning:   &Shift{Start: "09:00", End: "12:00", Open: false},
		Afternoon: &Shift{Start: "14:00", End: "15:00", Open: true},
	}

	got, err := ComputeAvailability(day, Config{IntervalMinutes: 30}, CandidateRequest{
		Date:            testDate,
		DurationMinutes: 30,
		Now:             at("07:30"),
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	want := []string{"14:00", "14:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("esperado %v, veio %v", want, got)
	}
}

func TestComputeAvailability_TwoShiftsOrdered(t *testing.T) {
	day := WorkDay{
		Weekday:   1,
		Open:      true,
		Morning:   &Shift{Start: "09:00", End: "12:00", Open: true},
		Afternoon: &Shift{Start: "14:00", End: "18:00", Open: true},
	}

	got, err := ComputeAvailability(day, Config{IntervalMinutes: 60}, CandidateRequest{
		Date:            testDate,
		DurationMinutes: 60,
		Now:             at("07:30"),
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	want := []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("esperado %v, veio %v", want, got)
	}

	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("lista fora de ordem em %d: %v", i, got)
		}
	}
}

func TestComputeAvailability_BlockKillsContainingSpan(t *testing.T) {
	day := morningDay("09:00", "12:00")
	cfg := Config{IntervalMinutes: 30}

	// bloqueio às 10:15 cai dentro de [10:00, 10:30)
	block, _ := ParseClock("10:15")
	got, err := ComputeAvailability(day, cfg, CandidateRequest{
		Date:            testDate,
		DurationMinutes: 30,
		Now:             at("07:30"),
		Blocks:          []int{block},
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	want := []string{"09:00", "09:30", "10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("esperado %v, veio %v", want, got)
	}
}

func TestComputeAvailability_BlockAtSpanEndDoesNotConflict(t *testing.T) {
	day := morningDay("09:00", "10:00")
	cfg := Config{IntervalMinutes: 30}

	// meio-aberto: bloqueio às 09:30 não afeta [09:00, 09:30)
	block, _ := ParseClock("09:30")
	got, err := ComputeAvailability(day, cfg, CandidateRequest{
		Date:            testDate,
		DurationMinutes: 30,
		Now:             at("07:30"),
		Blocks:          []int{block},
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	want := []string{"09:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("esperado %v, veio %v", want, got)
	}
}

func TestComputeAvailability_DurationExceedingShift(t *testing.T) {
	day := morningDay("09:00", "10:00")

	got, err := ComputeAvailability(day, Config{IntervalMinutes: 30}, CandidateRequest{
		Date:            testDate,
		DurationMinutes: 90,
		Now:             at("07:30"),
	})
	if err != nil {
		t.Fatalf("duração maior que o turno não é erro: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("esperado vazio, veio %v", got)
	}
}

func TestComputeAvailability_InvalidDuration(t *testing.T) {
	day := morningDay("09:00", "12:00")

	_, err := ComputeAvailability(day, Config{}, CandidateRequest{
		Date:            testDate,
		DurationMinutes: 0,
		Now:             at("07:30"),
	})
	if !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("esperado ErrInvalidDuration, veio %v", err)
	}
}

func TestComputeAvailability_MalformedShiftIsConfigurationError(t *testing.T) {
	day := morningDay("9h00", "12:00")

	_, err := ComputeAvailability(day, Config{IntervalMinutes: 30}, CandidateRequest{
		Date:            testDate,
		DurationMinutes: 30,
		Now:             at("07:30"),
	})

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("esperado ConfigurationError, veio %v", err)
	}
}

func TestComputeAvailability_InvertedShiftIsConfigurationError(t *testing.T) {
	day := morningDay("12:00", "09:00")

	_, err := ComputeAvailability(day, Config{IntervalMinutes: 30}, CandidateRequest{
		Date:            testDate,
		DurationMinutes: 30,
		Now:             at("07:30"),
	})

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("esperado ConfigurationError, veio %v", err)
	}
}

func TestComputeAvailability_Idempotent(t *testing.T) {
	day := morningDay("09:00", "12:00")
	cfg := Config{IntervalMinutes: 15, MinAdvanceMinutes: 30}
	req := CandidateRequest{
		Date:            testDate,
		DurationMinutes: 45,
		Now:             at("08:00"),
		Blocks:          []int{615},
		Bookings:        []Span{{Start: 540, End: 570}},
	}

	first, err := ComputeAvailability(day, cfg, req)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	second, err := ComputeAvailability(day, cfg, req)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("mesmas entradas, saídas diferentes: %v vs %v", first, second)
	}
}

func TestComputeAvailability_FitInvariant(t *testing.T) {
	day := morningDay("09:00", "12:00")
	cfg := Config{IntervalMinutes: 15}
	dur := 45

	got, err := ComputeAvailability(day, cfg, CandidateRequest{
		Date:            testDate,
		DurationMinutes: dur,
		Now:             at("07:30"),
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	end, _ := ParseClock("12:00")
	for _, hm := range got {
		start, err := ParseClock(hm)
		if err != nil {
			t.Fatalf("saída não parseável: %q", hm)
		}
		if start+dur > end {
			t.Errorf("slot %s estoura o turno", hm)
		}
	}
}
