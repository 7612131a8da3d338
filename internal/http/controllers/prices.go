package controllers

import (
	"net/http"

	"github.com/dropDatabas3/catalogo/internal/catalog"
	"github.com/dropDatabas3/catalogo/internal/http/helpers"
	"github.com/dropDatabas3/catalogo/internal/http/services"
)

// PriceController expone la matriz de precios: listado enriquecido, upsert
// masivo y edición puntual.
type PriceController struct {
	svc services.PriceService
}

func NewPriceController(svc services.PriceService) *PriceController {
	return &PriceController{svc: svc}
}

// List responde GET /v1/prices. Filtros: ?id, ?model_id, ?subtype_id.
// Devuelve solo precios cuyo modelo y subtipo existen y están activos.
func (c *PriceController) List(w http.ResponseWriter, r *http.Request) {
	f := catalog.PriceFilter{
		ID:        helpers.QueryInt(r, "id"),
		ModelID:   helpers.QueryInt(r, "model_id"),
		SubtypeID: helpers.QueryInt(r, "subtype_id"),
	}
	rows, err := c.svc.List(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, err, "Error al listar precios")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, rows)
}

// Upsert responde POST /v1/prices con la matriz completa
// { "<model_id>": { "<subtype_id>": <precio>, ... }, ... }.
func (c *PriceController) Upsert(w http.ResponseWriter, r *http.Request) {
	var m catalog.PriceMatrix
	if !helpers.ReadJSON(w, r, &m) {
		return
	}
	if err := c.svc.UpsertMatrix(r.Context(), m); err != nil {
		writeServiceError(w, r, err, "Error al guardar precios")
		return
	}
	helpers.WriteOK(w, nil)
}

func (c *PriceController) Update(w http.ResponseWriter, r *http.Request) {
	var p catalog.PricePatch
	if !helpers.ReadJSON(w, r, &p) {
		return
	}
	rec, err := c.svc.Update(r.Context(), p)
	if err != nil {
		writeServiceError(w, r, err, "Error al editar precio")
		return
	}
	helpers.WriteOK(w, rec)
}

func (c *PriceController) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	rec, err := c.svc.Delete(r.Context(), int(req.ID))
	if err != nil {
		writeServiceError(w, r, err, "Error al eliminar precio")
		return
	}
	helpers.WriteOK(w, rec)
}
