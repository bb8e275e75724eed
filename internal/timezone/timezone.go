package timezone

import (
	"sync"
	"time"
)

// Barbearia única, calendário local único. O fuso vem da config na
// subida do processo; datas de outros fusos estão fora de escopo.

const DefaultTimezone = "America/Sao_Paulo"

var (
	mu   sync.RWMutex
	name = DefaultTimezone
)

// Configure troca o fuso do processo (chamado uma vez no boot).
func Configure(tz string) {
	if !IsValid(tz) {
		return
	}
	mu.Lock()
	name = tz
	mu.Unlock()
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location() *time.Location {
	mu.RLock()
	tz := name
	mu.RUnlock()

	if loc, err := time.LoadLocation(tz); err == nil {
		return loc
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
