package schedule

import (
	"errors"
	"time"
)

// ======================================================
// Motor de disponibilidade
//
// Função pura sobre três coleções lidas logo antes da
// chamada: expediente, bloqueios e reservas do dia. Não
// faz I/O nem guarda estado; lista vazia é resultado
// normal, nunca erro.
// ======================================================

const DefaultIntervalMinutes = 30

var ErrInvalidDuration = errors.New("duração solicitada deve ser positiva")

// Shift é um turno aberto [Start, End) dentro do dia, em "HH:MM".
type Shift struct {
	Start string
	End   string
	Open  bool
}

// WorkDay é o expediente de um dia da semana: até dois turnos,
// cada um com seu próprio liga/desliga.
type WorkDay struct {
	Weekday   int // 0 = domingo
	Open      bool
	Morning   *Shift
	Afternoon *Shift
}

// Config são os ajustes do admin, resolvidos uma única vez por
// consulta e passados explicitamente (nada de reler settings no
// meio do cálculo).
type Config struct {
	IntervalMinutes   int
	MinAdvanceMinutes int
}

// Span é um intervalo meio-aberto [Start, End) em minutos.
type Span struct {
	Start int
	End   int
}

func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && s.End > o.Start
}

// Contains informa se o instante t cai dentro de [Start, End).
func (s Span) Contains(t int) bool {
	return t >= s.Start && t < s.End
}

// CandidateRequest é o pedido efêmero de uma consulta: a data alvo,
// a duração total dos serviços, o relógio atual e as ocupações do
// dia já convertidas para minutos.
type CandidateRequest struct {
	Date            time.Time
	DurationMinutes int
	Now             time.Time

	Blocks   []int  // instantes bloqueados pelo admin
	Bookings []Span // faixas ocupadas por reservas ativas
}

// ComputeAvailability devolve os inícios ofertáveis do dia, em
// ordem estritamente crescente, turno da manhã antes do da tarde.
func ComputeAvailability(day WorkDay, cfg Config, req CandidateRequest) ([]string, error) {
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	if !day.Open {
		return []string{}, nil
	}

	interval := cfg.IntervalMinutes
	if interval <= 0 {
		interval = DefaultIntervalMinutes
	}

	var candidates []int
	for _, sh := range []*Shift{day.Morning, day.Afternoon} {
		starts, err := shiftCandidates(sh, req.DurationMinutes, interval)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, starts...)
	}

	// O filtro de antecedência só vale para o próprio dia: amanhã
	// às 00:00 é válido mesmo com o relógio em 23:59 de hoje.
	today := sameLocalDay(req.Date, req.Now)
	nowMins := req.Now.Hour()*60 + req.Now.Minute()

	times := make([]string, 0, len(candidates))
	last := -1

	for _, t := range candidates {
		if today && t <= nowMins+cfg.MinAdvanceMinutes {
			continue
		}

		span := Span{Start: t, End: t + req.DurationMinutes}
		if conflicts(span, req.Blocks, req.Bookings) {
			continue
		}

		// turnos bem configurados nunca repetem início
		if t <= last {
			continue
		}
		last = t

		times = append(times, FormatClock(t))
	}

	return times, nil
}

// shiftCandidates gera todo início t, de interval em interval, cuja
// faixa [t, t+dur) cabe inteira em [start, end). Duração maior que
// o turno produz sequência vazia, não erro.
func shiftCandidates(sh *Shift, dur, interval int) ([]int, error) {
	if sh == nil || !sh.Open {
		return nil, nil
	}

	start, err := ParseClock(sh.Start)
	if err != nil {
		return nil, err
	}

	end, err := ParseClock(sh.End)
	if err != nil {
		return nil, err
	}

	if start >= end {
		return nil, &ConfigurationError{Field: "shift", Value: sh.Start + "-" + sh.End}
	}

	var starts []int
	for t := start; t+dur <= end; t += interval {
		starts = append(starts, t)
	}

	return starts, nil
}

// conflicts decide se a faixa candidata esbarra em algum bloqueio
// (instante contido, meio-aberto) ou reserva (sobreposição padrão).
// Um único conflito já desqualifica o slot.
func conflicts(span Span, blocks []int, bookings []Span) bool {
	for _, b := range blocks {
		if span.Contains(b) {
			return true
		}
	}

	for _, bk := range bookings {
		if span.Overlaps(bk) {
			return true
		}
	}

	return false
}

func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
