package services

import (
	"context"
	"strings"

	"github.com/dropDatabas3/catalogo/internal/catalog"
	httperrors "github.com/dropDatabas3/catalogo/internal/http/errors"
	"github.com/dropDatabas3/catalogo/internal/observability/logger"
	"github.com/dropDatabas3/catalogo/internal/store"
)

// TypeService define las operaciones sobre tipos de vehículo.
// Misma forma que BrandService: entidad con nombre único y flag de activo.
type TypeService interface {
	List(ctx context.Context, f catalog.TypeFilter) ([]catalog.VehicleType, error)
	Create(ctx context.Context, in catalog.TypeInput) (*catalog.VehicleType, error)
	Update(ctx context.Context, p catalog.TypePatch) (*catalog.VehicleType, error)
	Delete(ctx context.Context, id int) (*catalog.VehicleType, error)
}

type typeService struct {
	st store.Store
}

func NewTypeService(st store.Store) TypeService {
	return &typeService{st: st}
}

func (s *typeService) List(ctx context.Context, f catalog.TypeFilter) ([]catalog.VehicleType, error) {
	_, rows, err := catalog.LoadTable[catalog.VehicleType](ctx, s.st, store.TableTypes)
	if err != nil {
		return nil, err
	}

	out := make([]catalog.VehicleType, 0, len(rows))
	for _, t := range rows {
		if f.ID != 0 && t.ID != f.ID {
			continue
		}
		if f.Q != "" && !matchQ(f.Q, t.Name) {
			continue
		}
		if !matchActive(f.Active, t.IsActive) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *typeService) Create(ctx context.Context, in catalog.TypeInput) (*catalog.VehicleType, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Table("types"), logger.Op("Create"))

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperrors.Validation("Nombre obligatorio")
	}

	l := s.st.Locker(store.TableTypes)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.VehicleType](ctx, s.st, store.TableTypes)
	if err != nil {
		return nil, err
	}

	for _, t := range rows {
		if strings.EqualFold(t.Name, name) {
			return nil, httperrors.Validation("Tipo ya existe")
		}
	}

	now := nowUTC()
	vt := catalog.VehicleType{
		ID:        lastID + 1,
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	rows = append(rows, vt)

	if err := catalog.SaveTable(ctx, s.st, store.TableTypes, vt.ID, rows); err != nil {
		return nil, err
	}
	log.Info("type created", logger.RecordID(vt.ID))
	return &vt, nil
}

func (s *typeService) Update(ctx context.Context, p catalog.TypePatch) (*catalog.VehicleType, error) {
	id := int(p.ID)
	if id == 0 {
		return nil, httperrors.Validation("Falta id")
	}

	l := s.st.Locker(store.TableTypes)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.VehicleType](ctx, s.st, store.TableTypes)
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
		return nil, httperrors.NotFound("Tipo no encontrado")
	}

	cur := rows[idx]
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		for _, t := range rows {
			if t.ID != id && name != "" && strings.EqualFold(t.Name, name) {
				return nil, httperrors.Validation("Tipo ya existe")
			}
		}
		cur.Name = name
	}
	if p.Active != nil {
		cur.IsActive = bool(*p.Active)
	}
	cur.UpdatedAt = nowUTC()

	rows[idx] = cur
	if err := catalog.SaveTable(ctx, s.st, store.TableTypes, lastID, rows); err != nil {
		return nil, err
	}
	return &cur, nil
}

func (s *typeService) Delete(ctx context.Context, id int) (*catalog.VehicleType, error) {
	if id == 0 {
		return nil, httperrors.Validation("Falta id")
	}

	l := s.st.Locker(store.TableTypes)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.VehicleType](ctx, s.st, store.TableTypes)
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
		return nil, httperrors.NotFound("Tipo no encontrado")
	}

	removed := rows[idx]
	rows = append(rows[:idx], rows[idx+1:]...)

	if err := catalog.SaveTable(ctx, s.st, store.TableTypes, lastID, rows); err != nil {
		return nil, err
	}
	return &removed, nil
}
