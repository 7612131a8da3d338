package controllers

import (
	"net/http"

	"github.com/dropDatabas3/catalogo/internal/catalog"
	"github.com/dropDatabas3/catalogo/internal/http/helpers"
	"github.com/dropDatabas3/catalogo/internal/http/services"
)

// BrandController expone el CRUD de marcas.
type BrandController struct {
	svc services.BrandService
}

func NewBrandController(svc services.BrandService) *BrandController {
	return &BrandController{svc: svc}
}

// List responde GET /v1/brands. Filtros: ?id, ?q, ?active.
func (c *BrandController) List(w http.ResponseWriter, r *http.Request) {
	f := catalog.BrandFilter{
		ID:     helpers.QueryInt(r, "id"),
		Q:      helpers.QueryStr(r, "q"),
		Active: helpers.QueryStr(r, "active"),
	}
	rows, err := c.svc.List(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, err, "Error al listar marcas")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, rows)
}

// Create responde POST /v1/brands.
func (c *BrandController) Create(w http.ResponseWriter, r *http.Request) {
	var in catalog.BrandInput
	if !helpers.ReadJSON(w, r, &in) {
		return
	}
	rec, err := c.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Error al crear marca")
		return
	}
	helpers.WriteOK(w, rec)
}

// Update responde PUT /v1/brands.
func (c *BrandController) Update(w http.ResponseWriter, r *http.Request) {
	var p catalog.BrandPatch
	if !helpers.ReadJSON(w, r, &p) {
		return
	}
	rec, err := c.svc.Update(r.Context(), p)
	if err != nil {
		writeServiceError(w, r, err, "Error al editar marca")
		return
	}
	helpers.WriteOK(w, rec)
}

// Delete responde DELETE /v1/brands con body { "id": <n> }.
func (c *BrandController) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	rec, err := c.svc.Delete(r.Context(), int(req.ID))
	if err != nil {
		writeServiceError(w, r, err, "Error al eliminar marca")
		return
	}
	helpers.WriteOK(w, rec)
}
