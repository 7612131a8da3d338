package controllers

import (
	"net/http"

	"github.com/dropDatabas3/catalogo/internal/catalog"
	"github.com/dropDatabas3/catalogo/internal/http/helpers"
	"github.com/dropDatabas3/catalogo/internal/http/services"
)

// ModelController expone el CRUD de modelos.
type ModelController struct {
	svc services.ModelService
}

func NewModelController(svc services.ModelService) *ModelController {
	return &ModelController{svc: svc}
}

// List responde GET /v1/models. Filtros: ?id, ?brand_id, ?q, ?active.
func (c *ModelController) List(w http.ResponseWriter, r *http.Request) {
	f := catalog.ModelFilter{
		ID:      helpers.QueryInt(r, "id"),
		BrandID: helpers.QueryInt(r, "brand_id"),
		Q:       helpers.QueryStr(r, "q"),
		Active:  helpers.QueryStr(r, "active"),
	}
	rows, err := c.svc.List(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, err, "Error al listar modelos")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, rows)
}

func (c *ModelController) Create(w http.ResponseWriter, r *http.Request) {
	var in catalog.ModelInput
	if !helpers.ReadJSON(w, r, &in) {
		return
	}
	rec, err := c.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Error al crear modelo")
		return
	}
	helpers.WriteOK(w, rec)
}

func (c *ModelController) Update(w http.ResponseWriter, r *http.Request) {
	var p catalog.ModelPatch
	if !helpers.ReadJSON(w, r, &p) {
		return
	}
	rec, err := c.svc.Update(r.Context(), p)
	if err != nil {
		writeServiceError(w, r, err, "Error al editar modelo")
		return
	}
	helpers.WriteOK(w, rec)
}

func (c *ModelController) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	rec, err := c.svc.Delete(r.Context(), int(req.ID))
	if err != nil {
		writeServiceError(w, r, err, "Error al eliminar modelo")
		return
	}
	helpers.WriteOK(w, rec)
}
