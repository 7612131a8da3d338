package controllers

import (
	"net/http"

	"github.com/dropDatabas3/catalogo/internal/catalog"
	"github.com/dropDatabas3/catalogo/internal/http/helpers"
	"github.com/dropDatabas3/catalogo/internal/http/services"
)

// SubtypeController expone el CRUD de subtipos.
type SubtypeController struct {
	svc services.SubtypeService
}

func NewSubtypeController(svc services.SubtypeService) *SubtypeController {
	return &SubtypeController{svc: svc}
}

// List responde GET /v1/subtypes. Cada fila sale enriquecida con el nombre
// del tipo (type_name), null si el tipo ya no existe.
func (c *SubtypeController) List(w http.ResponseWriter, r *http.Request) {
	f := catalog.SubtypeFilter{
		ID:     helpers.QueryInt(r, "id"),
		TypeID: helpers.QueryInt(r, "type_id"),
		Q:      helpers.QueryStr(r, "q"),
		Active: helpers.QueryStr(r, "active"),
	}
	rows, err := c.svc.List(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, err, "Error al listar subtipos")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, rows)
}

func (c *SubtypeController) Create(w http.ResponseWriter, r *http.Request) {
	var in catalog.SubtypeInput
	if !helpers.ReadJSON(w, r, &in) {
		return
	}
	rec, err := c.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Error al crear subtipo")
		return
	}
	helpers.WriteOK(w, rec)
}

func (c *SubtypeController) Update(w http.ResponseWriter, r *http.Request) {
	var p catalog.SubtypePatch
	if !helpers.ReadJSON(w, r, &p) {
		return
	}
	rec, err := c.svc.Update(r.Context(), p)
	if err != nil {
		writeServiceError(w, r, err, "Error al editar subtipo")
		return
	}
	helpers.WriteOK(w, rec)
}

func (c *SubtypeController) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	rec, err := c.svc.Delete(r.Context(), int(req.ID))
	if err != nil {
		writeServiceError(w, r, err, "Error al eliminar subtipo")
		return
	}
	helpers.WriteOK(w, rec)
}
