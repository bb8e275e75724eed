package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// ===============================
// Horário "HH:MM" <-> minutos
// ===============================

// ConfigurationError indica expediente corrompido cadastrado pelo
// admin (horário não parseável ou turno com início >= fim). O dia
// afetado deve ser tratado como fechado até a correção.
type ConfigurationError struct {
	Field string
	Value string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("horário de expediente inválido: %s=%q", e.Field, e.Value)
}

// ParseClock converte "HH:MM" em minutos desde a meia-noite.
func ParseClock(hm string) (int, error) {
	parts := strings.Split(hm, ":")
	if len(parts) != 2 {
		return 0, &ConfigurationError{Field: "time", Value: hm}
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, &ConfigurationError{Field: "time", Value: hm}
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, &ConfigurationError{Field: "time", Value: hm}
	}

	return h*60 + m, nil
}

// FormatClock converte minutos desde a meia-noite em "HH:MM".
func FormatClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
