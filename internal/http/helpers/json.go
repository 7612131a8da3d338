// Package helpers contiene utilidades compartidas por los controllers.
package helpers

import (
	"encoding/json"
	"io"
	"net/http"

	httperrors "github.com/dropDatabas3/catalogo/internal/http/errors"
)

// ReadJSON decodifica JSON de forma tolerante (no falla por campos
// desconocidos) y limita el body a 1MB. Devuelve false si ya escribió
// el error HTTP.
func ReadJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil && err != io.EOF {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return false
	}
	return true
}

// WriteJSON escribe una respuesta JSON estándar.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OKResponse es el envelope de mutaciones: { ok: true, data: <registro> }.
// Para operaciones sin registro (upsert masivo de precios) Data queda afuera.
type OKResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

// WriteOK escribe el envelope de éxito con el registro afectado.
func WriteOK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, OKResponse{OK: true, Data: data})
}
