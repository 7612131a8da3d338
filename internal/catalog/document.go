package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dropDatabas3/catalogo/internal/store"
)

// Cada tabla persiste como {"lastId": N, "<tabla>": [...]}. El nombre del
// arreglo coincide con el nombre de la tabla, así que el codec es genérico.

// LoadTable carga el documento de una tabla. En el primer acceso (archivo
// inexistente) inicializa la tabla vacía, la persiste y la devuelve, para
// que la primera lectura nunca falle.
//
// Decodificación tolerante: un lastId no numérico queda en 0 y una
// colección que no es un arreglo queda vacía; sólo un documento que no es
// JSON válido propaga error.
func LoadTable[R any](ctx context.Context, st store.Store, t store.Table) (int, []R, error) {
	raw, err := st.Load(ctx, t)
	if errors.Is(err, store.ErrNotExist) {
		if err := SaveTable[R](ctx, st, t, 0, nil); err != nil {
			return 0, nil, err
		}
		return 0, nil, nil
	}
	if err != nil {
		return 0, nil, err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0, nil, fmt.Errorf("tabla %s corrupta: %w", t, err)
	}

	var lastID int
	if b, ok := doc["lastId"]; ok {
		var n float64
		if json.Unmarshal(b, &n) == nil {
			lastID = int(n)
		}
	}

	var rows []R
	if b, ok := doc[string(t)]; ok {
		var rs []R
		if json.Unmarshal(b, &rs) == nil {
			rows = rs
		}
	}
	return lastID, rows, nil
}

// SaveTable sobreescribe el documento completo de la tabla.
// Un slice nil se persiste como [] para mantener la forma del documento.
func SaveTable[R any](ctx context.Context, st store.Store, t store.Table, lastID int, rows []R) error {
	if rows == nil {
		rows = []R{}
	}
	b, err := json.MarshalIndent(map[string]any{
		"lastId":  lastID,
		string(t): rows,
	}, "", "  ")
	if err != nil {
		return err
	}
	return st.Save(ctx, t, b)
}
