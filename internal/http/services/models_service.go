package services

import (
	"context"
	"strings"

	"github.com/dropDatabas3/catalogo/internal/catalog"
	httperrors "github.com/dropDatabas3/catalogo/internal/http/errors"
	"github.com/dropDatabas3/catalogo/internal/observability/logger"
	"github.com/dropDatabas3/catalogo/internal/store"
)

// ModelService define las operaciones sobre modelos de vehículo.
type ModelService interface {
	List(ctx context.Context, f catalog.ModelFilter) ([]catalog.Model, error)
	Create(ctx context.Context, in catalog.ModelInput) (*catalog.Model, error)
	Update(ctx context.Context, p catalog.ModelPatch) (*catalog.Model, error)
	Delete(ctx context.Context, id int) (*catalog.Model, error)
}

type modelService struct {
	st store.Store
}

func NewModelService(st store.Store) ModelService {
	return &modelService{st: st}
}

func (s *modelService) List(ctx context.Context, f catalog.ModelFilter) ([]catalog.Model, error) {
	_, rows, err := catalog.LoadTable[catalog.Model](ctx, s.st, store.TableModels)
	if err != nil {
		return nil, err
	}

	out := make([]catalog.Model, 0, len(rows))
	for _, m := range rows {
		if f.ID != 0 && m.ID != f.ID {
			continue
		}
		if f.BrandID != 0 && m.BrandID != f.BrandID {
			continue
		}
		if f.Q != "" && !matchQ(f.Q, m.Name, m.Version) {
			continue
		}
		if !matchActive(f.Active, m.IsActive) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *modelService) Create(ctx context.Context, in catalog.ModelInput) (*catalog.Model, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Table("models"), logger.Op("Create"))

	name := strings.TrimSpace(in.Name)
	year := int(in.Year)
	version := strings.TrimSpace(in.Version)
	brandID := int(in.BrandID)

	if name == "" || year == 0 || brandID == 0 {
		return nil, httperrors.Validation("Campos obligatorios faltantes")
	}

	l := s.st.Locker(store.TableModels)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.Model](ctx, s.st, store.TableModels)
	if err != nil {
		return nil, err
	}

	now := nowUTC()
	model := catalog.Model{
		ID:        lastID + 1,
		Name:      name,
		Year:      year,
		Version:   version,
		BrandID:   brandID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	rows = append(rows, model)

	if err := catalog.SaveTable(ctx, s.st, store.TableModels, model.ID, rows); err != nil {
		return nil, err
	}
	log.Info("model created", logger.RecordID(model.ID))
	return &model, nil
}

func (s *modelService) Update(ctx context.Context, p catalog.ModelPatch) (*catalog.Model, error) {
	id := int(p.ID)
	if id == 0 {
		return nil, httperrors.Validation("Falta id")
	}

	l := s.st.Locker(store.TableModels)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.Model](ctx, s.st, store.TableModels)
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
		return nil, httperrors.NotFound("Modelo no encontrado")
	}

	// merge: los campos no enviados conservan el valor actual
	cur := rows[idx]
	if p.Name != nil {
		cur.Name = strings.TrimSpace(*p.Name)
	}
	if p.Year != nil {
		cur.Year = int(*p.Year)
	}
	if p.Version != nil {
		cur.Version = strings.TrimSpace(*p.Version)
	}
	if p.BrandID != nil {
		cur.BrandID = int(*p.BrandID)
	}
	if p.Active != nil {
		cur.IsActive = bool(*p.Active)
	}
	cur.UpdatedAt = nowUTC()

	rows[idx] = cur
	if err := catalog.SaveTable(ctx, s.st, store.TableModels, lastID, rows); err != nil {
		return nil, err
	}
	return &cur, nil
}

func (s *modelService) Delete(ctx context.Context, id int) (*catalog.Model, error) {
	if id == 0 {
		return nil, httperrors.Validation("Falta id")
	}

	l := s.st.Locker(store.TableModels)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.Model](ctx, s.st, store.TableModels)
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
		return nil, httperrors.NotFound("Modelo no encontrado")
	}

	removed := rows[idx]
	rows = append(rows[:idx], rows[idx+1:]...)

	if err := catalog.SaveTable(ctx, s.st, store.TableModels, lastID, rows); err != nil {
		return nil, err
	}
	return &removed, nil
}
