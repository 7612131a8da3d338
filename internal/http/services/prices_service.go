package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/dropDatabas3/catalogo/internal/catalog"
	httperrors "github.com/dropDatabas3/catalogo/internal/http/errors"
	"github.com/dropDatabas3/catalogo/internal/observability/logger"
	"github.com/dropDatabas3/catalogo/internal/store"
)

// PriceService define las operaciones sobre precios.
//
// El listado hace el join de lectura contra models/brands/subtypes/types:
// una fila cuyo modelo o subtipo no existe o está inactivo se descarta
// entera; marca y tipo faltantes sólo dejan su nombre en null.
//
// La escritura principal es el upsert masivo de la matriz de precios
// (model_id -> subtype_id -> precio), idempotente por par.
type PriceService interface {
	List(ctx context.Context, f catalog.PriceFilter) ([]catalog.PriceView, error)
	UpsertMatrix(ctx context.Context, m catalog.PriceMatrix) error
	Update(ctx context.Context, p catalog.PricePatch) (*catalog.Price, error)
	Delete(ctx context.Context, id int) (*catalog.Price, error)
}

type priceService struct {
	st store.Store
}

func NewPriceService(st store.Store) PriceService {
	return &priceService{st: st}
}

func (s *priceService) List(ctx context.Context, f catalog.PriceFilter) ([]catalog.PriceView, error) {
	_, prices, err := catalog.LoadTable[catalog.Price](ctx, s.st, store.TablePrices)
	if err != nil {
		return nil, err
	}

	// fan-out de lectura sobre las otras cuatro tablas. Si alguna tabla de
	// padres no se puede leer, el join sigue con lo que haya (mismo criterio
	// que el frontend: readJSON con fallback a lista vacía).
	models := make(map[int]catalog.Model)
	if _, rows, err := catalog.LoadTable[catalog.Model](ctx, s.st, store.TableModels); err == nil {
		for _, m := range rows {
			models[m.ID] = m
		}
	}
	brands := make(map[int]catalog.Brand)
	if _, rows, err := catalog.LoadTable[catalog.Brand](ctx, s.st, store.TableBrands); err == nil {
		for _, b := range rows {
			brands[b.ID] = b
		}
	}
	subtypes := make(map[int]catalog.Subtype)
	if _, rows, err := catalog.LoadTable[catalog.Subtype](ctx, s.st, store.TableSubtypes); err == nil {
		for _, st := range rows {
			subtypes[st.ID] = st
		}
	}
	types := make(map[int]catalog.VehicleType)
	if _, rows, err := catalog.LoadTable[catalog.VehicleType](ctx, s.st, store.TableTypes); err == nil {
		for _, t := range rows {
			types[t.ID] = t
		}
	}

	out := make([]catalog.PriceView, 0, len(prices))
	for _, p := range prices {
		if f.ID != 0 && p.ID != f.ID {
			continue
		}
		if f.ModelID != 0 && p.ModelID != f.ModelID {
			continue
		}
		if f.SubtypeID != 0 && p.SubtypeID != f.SubtypeID {
			continue
		}

		model, ok := models[p.ModelID]
		if !ok || !model.IsActive {
			continue
		}
		sub, ok := subtypes[p.SubtypeID]
		if !ok || !sub.IsActive {
			continue
		}

		view := catalog.PriceView{
			Price:       p,
			ModelName:   model.Name,
			Year:        model.Year,
			Version:     model.Version,
			SubtypeName: sub.Name,
		}
		if brand, ok := brands[model.BrandID]; ok {
			view.BrandName = &brand.Name
		}
		if vt, ok := types[sub.TypeID]; ok {
			view.TypeName = &vt.Name
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *priceService) UpsertMatrix(ctx context.Context, m catalog.PriceMatrix) error {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Table("prices"), logger.Op("UpsertMatrix"))

	l := s.st.Locker(store.TablePrices)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.Price](ctx, s.st, store.TablePrices)
	if err != nil {
		return err
	}

	created, updated := 0, 0
	for modelKey, subMap := range m {
		modelID, err := strconv.Atoi(strings.TrimSpace(modelKey))
		if err != nil || modelID == 0 {
			continue
		}
		for subKey, raw := range subMap {
			subtypeID, err := strconv.Atoi(strings.TrimSpace(subKey))
			if err != nil || subtypeID == 0 {
				continue
			}
			// precio vacío, cero o no numérico: celda sin cargar, se saltea
			price, ok := catalog.ToNumber(raw)
			if !ok || price == 0 {
				continue
			}

			idx := -1
			for i := range rows {
				if rows[i].ModelID == modelID && rows[i].SubtypeID == subtypeID {
					idx = i
					break
				}
			}

			now := nowUTC()
			if idx >= 0 {
				rows[idx].Price = price
				rows[idx].UpdatedAt = now
				updated++
			} else {
				lastID++
				rows = append(rows, catalog.Price{
					ID:        lastID,
					ModelID:   modelID,
					SubtypeID: subtypeID,
					Price:     price,
					CreatedAt: now,
					UpdatedAt: now,
				})
				created++
			}
		}
	}

	// un solo persist para todo el batch
	if err := catalog.SaveTable(ctx, s.st, store.TablePrices, lastID, rows); err != nil {
		return err
	}
	log.Info("price matrix saved", logger.Int("created", created), logger.Int("updated", updated))
	return nil
}

func (s *priceService) Update(ctx context.Context, p catalog.PricePatch) (*catalog.Price, error) {
	id := int(p.ID)
	if id == 0 {
		return nil, httperrors.Validation("Falta id")
	}

	l := s.st.Locker(store.TablePrices)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.Price](ctx, s.st, store.TablePrices)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range rows {
		if rows[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, httperrors.NotFound("Precio no encontrado")
	}

	cur := rows[idx]
	if p.ModelID != nil {
		cur.ModelID = int(*p.ModelID)
	}
	if p.SubtypeID != nil {
		cur.SubtypeID = int(*p.SubtypeID)
	}
	if p.Price != nil {
		cur.Price = float64(*p.Price)
	}

	// el par (modelo, subtipo) sigue siendo único después del merge
	for _, other := range rows {
		if other.ID != id && other.ModelID == cur.ModelID && other.SubtypeID == cur.SubtypeID {
			return nil, httperrors.Validation("Ya existe un precio para ese modelo y subtipo")
		}
	}
	cur.UpdatedAt = nowUTC()

	rows[idx] = cur
	if err := catalog.SaveTable(ctx, s.st, store.TablePrices, lastID, rows); err != nil {
		return nil, err
	}
	return &cur, nil
}

func (s *priceService) Delete(ctx context.Context, id int) (*catalog.Price, error) {
	if id == 0 {
		return nil, httperrors.Validation("Falta id")
	}

	l := s.st.Locker(store.TablePrices)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.Price](ctx, s.st, store.TablePrices)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range rows {
		if rows[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, httperrors.NotFound("Precio no encontrado")
	}

	removed := rows[idx]
	rows = append(rows[:idx], rows[idx+1:]...)

	if err := catalog.SaveTable(ctx, s.st, store.TablePrices, lastID, rows); err != nil {
		return nil, err
	}
	return &removed, nil
}
