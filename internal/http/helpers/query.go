package helpers

import (
	"net/http"
	"strconv"
	"strings"
)

// Los filtros de listado llegan como query params planos (?id=3&q=corolla
// &active=true). Un param ausente o malformado significa "sin filtro".

// QueryInt devuelve el valor entero de un query param, o 0 si falta o no
// es numérico.
func QueryInt(r *http.Request, key string) int {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// QueryStr devuelve el valor de un query param, trimmed.
func QueryStr(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
