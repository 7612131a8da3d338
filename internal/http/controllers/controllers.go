// Package controllers adapta HTTP a los services del catálogo: parseo de
// query params y bodies, envelopes de respuesta y mapeo de errores.
package controllers

import (
	"errors"
	"net/http"

	"github.com/dropDatabas3/catalogo/internal/catalog"
	httperrors "github.com/dropDatabas3/catalogo/internal/http/errors"
	"github.com/dropDatabas3/catalogo/internal/http/services"
	"github.com/dropDatabas3/catalogo/internal/observability/logger"
)

// Controllers agrupa los controllers del servicio.
type Controllers struct {
	Health   *HealthController
	Brands   *BrandController
	Models   *ModelController
	Types    *TypeController
	Subtypes *SubtypeController
	Prices   *PriceController
	Clients  *ClientController
}

// New construye los controllers sobre los services dados.
func New(svcs *services.Services) *Controllers {
	return &Controllers{
		Health:   NewHealthController(),
		Brands:   NewBrandController(svcs.Brands),
		Models:   NewModelController(svcs.Models),
		Types:    NewTypeController(svcs.Types),
		Subtypes: NewSubtypeController(svcs.Subtypes),
		Prices:   NewPriceController(svcs.Prices),
		Clients:  NewClientController(svcs.Clients),
	}
}

// writeServiceError serializa errores de service. Los *AppError salen tal
// cual (validación 400, no encontrado 404); cualquier otro error es de
// infraestructura: se loguea y sale como 500 con el mensaje genérico de la
// operación y el detalle del error real.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	var appErr *httperrors.AppError
	if errors.As(err, &appErr) {
		httperrors.WriteError(w, appErr)
		return
	}
	logger.From(r.Context()).Error(internalMsg,
		logger.Layer("controller"),
		logger.Err(err),
	)
	httperrors.WriteError(w, httperrors.Internal(internalMsg, err))
}

// deleteRequest es el body de los DELETE: { "id": <n> }. El id se coerciona
// igual que en los patches (acepta número o string numérico).
type deleteRequest struct {
	ID catalog.LooseInt `json:"id"`
}
