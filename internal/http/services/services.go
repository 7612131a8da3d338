// Package services implementa la lógica de negocio del catálogo.
//
// Cada service ejecuta el mismo ciclo sobre su tabla: cargar el documento
// completo, filtrar/validar/mutar en memoria y persistirlo entero. Las
// mutaciones corren bajo el lock de la tabla (store.Locker) para que dos
// requests concurrentes no observen el mismo lastId ni se pisen escrituras.
//
// Los errores esperados (validación, no encontrado) se devuelven como
// *httperrors.AppError con el mensaje en el idioma del dominio; cualquier
// otro error es de infraestructura y lo envuelve el controller.
package services

import (
	"strings"
	"time"

	"github.com/dropDatabas3/catalogo/internal/store"
)

// Deps contiene las dependencias inyectables de los services.
type Deps struct {
	Store store.Store
}

// Services agrupa los services del catálogo, uno por entidad.
type Services struct {
	Brands   BrandService
	Models   ModelService
	Types    TypeService
	Subtypes SubtypeService
	Prices   PriceService
	Clients  ClientService
}

// New construye y cablea todos los services.
func New(deps Deps) *Services {
	return &Services{
		Brands:   NewBrandService(deps.Store),
		Models:   NewModelService(deps.Store),
		Types:    NewTypeService(deps.Store),
		Subtypes: NewSubtypeService(deps.Store),
		Prices:   NewPriceService(deps.Store),
		Clients:  NewClientService(deps.Store),
	}
}

// ===== helpers de filtro compartidos =====

// matchQ hace substring match case-insensitive de q sobre los campos de
// texto concatenados (mismo criterio que el buscador del frontend).
func matchQ(q string, fields ...string) bool {
	return strings.Contains(
		strings.ToLower(strings.Join(fields, " ")),
		strings.ToLower(q),
	)
}

// matchActive interpreta el filtro de flag booleano: los literales "true"
// y "false" filtran; cualquier otro valor significa "sin filtro".
func matchActive(filter string, active bool) bool {
	switch filter {
	case "true":
		return active
	case "false":
		return !active
	default:
		return true
	}
}

func nowUTC() time.Time { return time.Now().UTC() }
