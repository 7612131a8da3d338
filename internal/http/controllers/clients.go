package controllers

import (
	"net/http"

	"github.com/dropDatabas3/catalogo/internal/catalog"
	"github.com/dropDatabas3/catalogo/internal/http/helpers"
	"github.com/dropDatabas3/catalogo/internal/http/services"
)

// ClientController expone el CRUD de clientes.
type ClientController struct {
	svc services.ClientService
}

func NewClientController(svc services.ClientService) *ClientController {
	return &ClientController{svc: svc}
}

// List responde GET /v1/clients. Filtros: ?id, ?model_id, ?brand_id, ?q
// (busca en dni, placa, vin, email y celular) y ?active sobre estado.
func (c *ClientController) List(w http.ResponseWriter, r *http.Request) {
	f := catalog.ClientFilter{
		ID:      helpers.QueryInt(r, "id"),
		ModelID: helpers.QueryInt(r, "model_id"),
		BrandID: helpers.QueryInt(r, "brand_id"),
		Q:       helpers.QueryStr(r, "q"),
		Active:  helpers.QueryStr(r, "active"),
	}
	rows, err := c.svc.List(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, err, "Error al listar clientes")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, rows)
}

func (c *ClientController) Create(w http.ResponseWriter, r *http.Request) {
	var in catalog.ClientInput
	if !helpers.ReadJSON(w, r, &in) {
		return
	}
	rec, err := c.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Error al crear cliente")
		return
	}
	helpers.WriteOK(w, rec)
}

func (c *ClientController) Update(w http.ResponseWriter, r *http.Request) {
	var p catalog.ClientPatch
	if !helpers.ReadJSON(w, r, &p) {
		return
	}
	rec, err := c.svc.Update(r.Context(), p)
	if err != nil {
		writeServiceError(w, r, err, "Error al editar cliente")
		return
	}
	helpers.WriteOK(w, rec)
}

func (c *ClientController) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	rec, err := c.svc.Delete(r.Context(), int(req.ID))
	if err != nil {
		writeServiceError(w, r, err, "Error al eliminar cliente")
		return
	}
	helpers.WriteOK(w, rec)
}
