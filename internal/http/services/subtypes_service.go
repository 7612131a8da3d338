package services

import (
	"context"
	"strings"

	"github.com/dropDatabas3/catalogo/internal/catalog"
	httperrors "github.com/dropDatabas3/catalogo/internal/http/errors"
	"github.com/dropDatabas3/catalogo/internal/observability/logger"
	"github.com/dropDatabas3/catalogo/internal/store"
)

// SubtypeService define las operaciones sobre subtipos.
// El listado enriquece cada fila con el nombre del tipo padre (join de
// lectura, sin denormalizar nada en disco).
type SubtypeService interface {
	List(ctx context.Context, f catalog.SubtypeFilter) ([]catalog.SubtypeView, error)
	Create(ctx context.Context, in catalog.SubtypeInput) (*catalog.Subtype, error)
	Update(ctx context.Context, p catalog.SubtypePatch) (*catalog.Subtype, error)
	Delete(ctx context.Context, id int) (*catalog.Subtype, error)
}

type subtypeService struct {
	st store.Store
}

func NewSubtypeService(st store.Store) SubtypeService {
	return &subtypeService{st: st}
}

func (s *subtypeService) List(ctx context.Context, f catalog.SubtypeFilter) ([]catalog.SubtypeView, error) {
	_, rows, err := catalog.LoadTable[catalog.Subtype](ctx, s.st, store.TableSubtypes)
	if err != nil {
		return nil, err
	}

	// tabla de tipos sólo para resolver nombres; si no existe, todos los
	// type_name quedan en null
	typeNames := make(map[int]string)
	if _, types, err := catalog.LoadTable[catalog.VehicleType](ctx, s.st, store.TableTypes); err == nil {
		for _, t := range types {
			typeNames[t.ID] = t.Name
		}
	}

	out := make([]catalog.SubtypeView, 0, len(rows))
	for _, st := range rows {
		if f.ID != 0 && st.ID != f.ID {
			continue
		}
		if f.TypeID != 0 && st.TypeID != f.TypeID {
			continue
		}
		if f.Q != "" && !matchQ(f.Q, st.Name, st.Version) {
			continue
		}
		if !matchActive(f.Active, st.IsActive) {
			continue
		}
		view := catalog.SubtypeView{Subtype: st}
		if name, ok := typeNames[st.TypeID]; ok {
			view.TypeName = &name
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *subtypeService) Create(ctx context.Context, in catalog.SubtypeInput) (*catalog.Subtype, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Table("subtypes"), logger.Op("Create"))

	name := strings.TrimSpace(in.Name)
	typeID := int(in.TypeID)
	if name == "" || typeID == 0 {
		return nil, httperrors.Validation("Nombre o tipo inválido")
	}

	var year *int
	if in.Year != nil {
		y := int(*in.Year)
		year = &y
	}

	l := s.st.Locker(store.TableSubtypes)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.Subtype](ctx, s.st, store.TableSubtypes)
	if err != nil {
		return nil, err
	}

	now := nowUTC()
	sub := catalog.Subtype{
		ID:        lastID + 1,
		Name:      name,
		TypeID:    typeID,
		Year:      year,
		Version:   strings.TrimSpace(in.Version),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	rows = append(rows, sub)

	if err := catalog.SaveTable(ctx, s.st, store.TableSubtypes, sub.ID, rows); err != nil {
		return nil, err
	}
	log.Info("subtype created", logger.RecordID(sub.ID))
	return &sub, nil
}

func (s *subtypeService) Update(ctx context.Context, p catalog.SubtypePatch) (*catalog.Subtype, error) {
	id := int(p.ID)
	if id == 0 {
		return nil, httperrors.Validation("Falta id")
	}

	l := s.st.Locker(store.TableSubtypes)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.Subtype](ctx, s.st, store.TableSubtypes)
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
		return nil, httperrors.NotFound("Subtipo no encontrado")
	}

	cur := rows[idx]
	if p.Name != nil {
		cur.Name = strings.TrimSpace(*p.Name)
	}
	if p.TypeID != nil {
		cur.TypeID = int(*p.TypeID)
	}
	if p.Year != nil {
		y := int(*p.Year)
		cur.Year = &y
	}
	if p.Version != nil {
		cur.Version = strings.TrimSpace(*p.Version)
	}
	if p.Active != nil {
		cur.IsActive = bool(*p.Active)
	}
	cur.UpdatedAt = nowUTC()

	rows[idx] = cur
	if err := catalog.SaveTable(ctx, s.st, store.TableSubtypes, lastID, rows); err != nil {
		return nil, err
	}
	return &cur, nil
}

func (s *subtypeService) Delete(ctx context.Context, id int) (*catalog.Subtype, error) {
	if id == 0 {
		return nil, httperrors.Validation("Falta id")
	}

	l := s.st.Locker(store.TableSubtypes)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.Subtype](ctx, s.st, store.TableSubtypes)
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
		return nil, httperrors.NotFound("Subtipo no encontrado")
	}

	removed := rows[idx]
	rows = append(rows[:idx], rows[idx+1:]...)

	if err := catalog.SaveTable(ctx, s.st, store.TableSubtypes, lastID, rows); err != nil {
		return nil, err
	}
	return &removed, nil
}
