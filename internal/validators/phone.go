package validators

import "strings"

// NormalizePhone reduz o telefone a dígitos (aceita máscara
// "(11) 98765-4321" e prefixo +55) e valida o tamanho. Clientes são
// identificados pelo telefone, então a normalização precisa ser
// estável entre reservas.
func NormalizePhone(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()

	// DDD 55 existe (Santa Maria), então o código do país só sai
	// quando o número não cabe sem ele
	if len(digits) > 11 && strings.HasPrefix(digits, "55") {
		digits = digits[2:]
	}

	if len(digits) < 10 || len(digits) > 11 {
		return "", false
	}

	return digits, true
}
