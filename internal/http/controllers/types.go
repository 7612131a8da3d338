package controllers

import (
	"net/http"

	"github.com/dropDatabas3/catalogo/internal/catalog"
	"github.com/dropDatabas3/catalogo/internal/http/helpers"
	"github.com/dropDatabas3/catalogo/internal/http/services"
)

// TypeController expone el CRUD de tipos de vehículo.
type TypeController struct {
	svc services.TypeService
}

func NewTypeController(svc services.TypeService) *TypeController {
	return &TypeController{svc: svc}
}

func (c *TypeController) List(w http.ResponseWriter, r *http.Request) {
	f := catalog.TypeFilter{
		ID:     helpers.QueryInt(r, "id"),
		Q:      helpers.QueryStr(r, "q"),
		Active: helpers.QueryStr(r, "active"),
	}
	rows, err := c.svc.List(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, err, "Error al listar tipos")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, rows)
}

func (c *TypeController) Create(w http.ResponseWriter, r *http.Request) {
	var in catalog.TypeInput
	if !helpers.ReadJSON(w, r, &in) {
		return
	}
	rec, err := c.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Error al crear tipo")
		return
	}
	helpers.WriteOK(w, rec)
}

func (c *TypeController) Update(w http.ResponseWriter, r *http.Request) {
	var p catalog.TypePatch
	if !helpers.ReadJSON(w, r, &p) {
		return
	}
	rec, err := c.svc.Update(r.Context(), p)
	if err != nil {
		writeServiceError(w, r, err, "Error al editar tipo")
		return
	}
	helpers.WriteOK(w, rec)
}

func (c *TypeController) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	rec, err := c.svc.Delete(r.Context(), int(req.ID))
	if err != nil {
		writeServiceError(w, r, err, "Error al eliminar tipo")
		return
	}
	helpers.WriteOK(w, rec)
}
