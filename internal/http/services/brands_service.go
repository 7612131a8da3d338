package services

import (
	"context"
	"strings"

	"github.com/dropDatabas3/catalogo/internal/catalog"
	httperrors "github.com/dropDatabas3/catalogo/internal/http/errors"
	"github.com/dropDatabas3/catalogo/internal/observability/logger"
	"github.com/dropDatabas3/catalogo/internal/store"
)

// BrandService define las operaciones sobre marcas.
type BrandService interface {
	List(ctx context.Context, f catalog.BrandFilter) ([]catalog.Brand, error)
	Create(ctx context.Context, in catalog.BrandInput) (*catalog.Brand, error)
	Update(ctx context.Context, p catalog.BrandPatch) (*catalog.Brand, error)
	Delete(ctx context.Context, id int) (*catalog.Brand, error)
}

type brandService struct {
	st store.Store
}

// NewBrandService crea el service de marcas.
func NewBrandService(st store.Store) BrandService {
	return &brandService{st: st}
}

func (s *brandService) List(ctx context.Context, f catalog.BrandFilter) ([]catalog.Brand, error) {
	_, rows, err := catalog.LoadTable[catalog.Brand](ctx, s.st, store.TableBrands)
	if err != nil {
		return nil, err
	}

	out := make([]catalog.Brand, 0, len(rows))
	for _, b := range rows {
		if f.ID != 0 && b.ID != f.ID {
			continue
		}
		if f.Q != "" && !matchQ(f.Q, b.Name) {
			continue
		}
		if !matchActive(f.Active, b.IsActive) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *brandService) Create(ctx context.Context, in catalog.BrandInput) (*catalog.Brand, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Table("brands"), logger.Op("Create"))

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperrors.Validation("Nombre requerido")
	}

	l := s.st.Locker(store.TableBrands)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.Brand](ctx, s.st, store.TableBrands)
	if err != nil {
		return nil, err
	}

	// nombres únicos case-insensitive dentro de la tabla
	for _, b := range rows {
		if strings.EqualFold(b.Name, name) {
			return nil, httperrors.Validation("Marca ya existe")
		}
	}

	now := nowUTC()
	brand := catalog.Brand{
		ID:        lastID + 1,
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	rows = append(rows, brand)

	if err := catalog.SaveTable(ctx, s.st, store.TableBrands, brand.ID, rows); err != nil {
		return nil, err
	}
	log.Info("brand created", logger.RecordID(brand.ID))
	return &brand, nil
}

func (s *brandService) Update(ctx context.Context, p catalog.BrandPatch) (*catalog.Brand, error) {
	id := int(p.ID)
	if id == 0 {
		return nil, httperrors.Validation("Falta id")
	}

	l := s.st.Locker(store.TableBrands)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.Brand](ctx, s.st, store.TableBrands)
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
		return nil, httperrors.NotFound("Marca no encontrada")
	}

	cur := rows[idx]
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		for _, b := range rows {
			if b.ID != id && name != "" && strings.EqualFold(b.Name, name) {
				return nil, httperrors.Validation("Marca ya existe")
			}
		}
		cur.Name = name
	}
	if p.Active != nil {
		cur.IsActive = bool(*p.Active)
	}
	cur.UpdatedAt = nowUTC()

	rows[idx] = cur
	if err := catalog.SaveTable(ctx, s.st, store.TableBrands, lastID, rows); err != nil {
		return nil, err
	}
	return &cur, nil
}

func (s *brandService) Delete(ctx context.Context, id int) (*catalog.Brand, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Table("brands"), logger.Op("Delete"))

	if id == 0 {
		return nil, httperrors.Validation("Falta id")
	}

	l := s.st.Locker(store.TableBrands)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.Brand](ctx, s.st, store.TableBrands)
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
		return nil, httperrors.NotFound("Marca no encontrada")
	}

	removed := rows[idx]
	rows = append(rows[:idx], rows[idx+1:]...)

	if err := catalog.SaveTable(ctx, s.st, store.TableBrands, lastID, rows); err != nil {
		return nil, err
	}
	// sin cascade: modelos y clientes que referencian la marca quedan con
	// el FK colgando y se filtran en los joins de lectura
	log.Info("brand deleted", logger.RecordID(id))
	return &removed, nil
}
