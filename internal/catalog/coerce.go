package catalog

import (
	"strconv"
	"strings"
)

// Tipos de coerción laxa para inputs del API. El frontend manda valores
// con tipado flojo (números como strings, flags como números); cada campo
// opcional de un patch declara acá su regla de coerción una sola vez, en
// el borde, en lugar de coercionar después del merge.

// LooseInt acepta un número JSON, un string numérico o null.
// Cualquier otra cosa coerciona a 0 (que luego cae en la validación de
// campo requerido, igual que Number(x) || 0 en el frontend).
type LooseInt int

func (v *LooseInt) UnmarshalJSON(b []byte) error {
	f, ok := looseFloat(b)
	if !ok {
		*v = 0
		return nil
	}
	*v = LooseInt(int(f))
	return nil
}

// LooseNumber es como LooseInt pero conserva decimales.
type LooseNumber float64

func (v *LooseNumber) UnmarshalJSON(b []byte) error {
	f, ok := looseFloat(b)
	if !ok {
		*v = 0
		return nil
	}
	*v = LooseNumber(f)
	return nil
}

// LooseBool acepta bool, string o número.
// Regla declarada: true, "true", "1" y números != 0 son true; todo lo
// demás (incluyendo "false" y "0", a diferencia del truthiness de JS) es false.
type LooseBool bool

func (v *LooseBool) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch s {
	case "true":
		*v = true
		return nil
	case "false", "null":
		*v = false
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		t := strings.ToLower(strings.TrimSpace(s[1 : len(s)-1]))
		*v = t == "true" || t == "1"
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*v = f != 0
		return nil
	}
	*v = false
	return nil
}

func looseFloat(b []byte) (float64, bool) {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return 0, false
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
		if s == "" {
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ToNumber coerciona un valor JSON ya decodificado (any) a número.
// Lo usa el upsert masivo de precios, donde la matriz llega sin tipar.
func ToNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
