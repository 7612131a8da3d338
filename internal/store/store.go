// Package store define la abstracción de persistencia del catálogo.
//
// Cada entidad vive en una "tabla": un documento JSON completo con su
// contador de IDs y su arreglo de registros. El Store no interpreta el
// documento; sólo lo carga y lo sobreescribe entero. La semántica
// load-mutate-persist vive en los services.
package store

import (
	"context"
	"errors"
	"sync"
)

// Table identifica una colección persistida del catálogo.
type Table string

const (
	TableBrands   Table = "brands"
	TableModels   Table = "models"
	TableTypes    Table = "types"
	TableSubtypes Table = "subtypes"
	TablePrices   Table = "prices"
	TableClients  Table = "clients"
)

// ErrNotExist indica que la tabla todavía no fue persistida.
// El primer acceso la inicializa vacía (lastId=0, sin registros).
var ErrNotExist = errors.New("store: table does not exist")

// Store abstrae la persistencia de una tabla completa.
type Store interface {
	// Load devuelve el documento completo de la tabla.
	// Si nunca se persistió devuelve ErrNotExist.
	Load(ctx context.Context, t Table) ([]byte, error)

	// Save sobreescribe el documento completo de la tabla.
	Save(ctx context.Context, t Table, doc []byte) error

	// Locker devuelve el lock de la tabla. Toda mutación debe ejecutar su
	// ciclo load-mutate-persist bajo este lock: es lo que evita IDs
	// duplicados y lost updates entre requests concurrentes.
	Locker(t Table) sync.Locker
}
