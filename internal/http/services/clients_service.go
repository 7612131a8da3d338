package services

import (
	"context"
	"strings"

	"github.com/dropDatabas3/catalogo/internal/catalog"
	httperrors "github.com/dropDatabas3/catalogo/internal/http/errors"
	"github.com/dropDatabas3/catalogo/internal/observability/logger"
	"github.com/dropDatabas3/catalogo/internal/store"
)

// ClientService define las operaciones sobre clientes.
//
// Tres constraints de unicidad independientes: DNI, email y placa. La
// placa se normaliza a mayúsculas y el email a minúsculas al entrar, así
// la comparación por igualdad ya es case-insensitive.
type ClientService interface {
	List(ctx context.Context, f catalog.ClientFilter) ([]catalog.Client, error)
	Create(ctx context.Context, in catalog.ClientInput) (*catalog.Client, error)
	Update(ctx context.Context, p catalog.ClientPatch) (*catalog.Client, error)
	Delete(ctx context.Context, id int) (*catalog.Client, error)
}

type clientService struct {
	st store.Store
}

func NewClientService(st store.Store) ClientService {
	return &clientService{st: st}
}

func normDNI(s string) string   { return strings.TrimSpace(s) }
func normPlaca(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }
func normEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func (s *clientService) List(ctx context.Context, f catalog.ClientFilter) ([]catalog.Client, error) {
	_, rows, err := catalog.LoadTable[catalog.Client](ctx, s.st, store.TableClients)
	if err != nil {
		return nil, err
	}

	out := make([]catalog.Client, 0, len(rows))
	for _, c := range rows {
		if f.ID != 0 && c.ID != f.ID {
			continue
		}
		if f.ModelID != 0 && c.ModelID != f.ModelID {
			continue
		}
		if f.BrandID != 0 && c.BrandID != f.BrandID {
			continue
		}
		if f.Q != "" && !matchQ(f.Q, c.DNI, c.Placa, c.VIN, c.Email, c.Celular) {
			continue
		}
		if !matchActive(f.Active, c.Estado) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *clientService) Create(ctx context.Context, in catalog.ClientInput) (*catalog.Client, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Table("clients"), logger.Op("Create"))

	dni := normDNI(in.DNI)
	placa := normPlaca(in.Placa)
	vin := strings.TrimSpace(in.VIN)
	kms := int(in.Kms)
	celular := strings.TrimSpace(in.Celular)
	email := normEmail(in.Email)
	modelID := int(in.ModelID)
	brandID := int(in.BrandID)

	if dni == "" || placa == "" || vin == "" || kms == 0 || celular == "" || email == "" || modelID == 0 || brandID == 0 {
		return nil, httperrors.Validation("Datos incompletos")
	}

	l := s.st.Locker(store.TableClients)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.Client](ctx, s.st, store.TableClients)
	if err != nil {
		return nil, err
	}

	// duplicado si coincide dni O email O placa
	for _, c := range rows {
		if c.DNI == dni || c.Email == email || c.Placa == placa {
			return nil, httperrors.Validation("Cliente ya existe (DNI, email o placa duplicada)")
		}
	}

	now := nowUTC()
	client := catalog.Client{
		ID:        lastID + 1,
		DNI:       dni,
		Placa:     placa,
		VIN:       vin,
		Kms:       kms,
		Celular:   celular,
		Email:     email,
		Estado:    bool(in.Estado),
		ModelID:   modelID,
		BrandID:   brandID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	rows = append(rows, client)

	if err := catalog.SaveTable(ctx, s.st, store.TableClients, client.ID, rows); err != nil {
		return nil, err
	}
	log.Info("client created", logger.RecordID(client.ID))
	return &client, nil
}

func (s *clientService) Update(ctx context.Context, p catalog.ClientPatch) (*catalog.Client, error) {
	id := int(p.ID)
	if id == 0 {
		return nil, httperrors.Validation("Falta id")
	}

	l := s.st.Locker(store.TableClients)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.Client](ctx, s.st, store.TableClients)
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
		return nil, httperrors.NotFound("Cliente no encontrado")
	}

	// los tres campos únicos se validan contra TODOS los otros registros
	// antes de mutar nada; actualizar al propio valor actual es válido
	if p.DNI != nil {
		if next := normDNI(*p.DNI); next != "" {
			for _, c := range rows {
				if c.ID != id && c.DNI == next {
					return nil, httperrors.Validation("DNI ya registrado")
				}
			}
		}
	}
	if p.Email != nil {
		if next := normEmail(*p.Email); next != "" {
			for _, c := range rows {
				if c.ID != id && c.Email == next {
					return nil, httperrors.Validation("Email ya registrado")
				}
			}
		}
	}
	if p.Placa != nil {
		if next := normPlaca(*p.Placa); next != "" {
			for _, c := range rows {
				if c.ID != id && c.Placa == next {
					return nil, httperrors.Validation("Placa ya registrada")
				}
			}
		}
	}

	cur := rows[idx]
	if p.DNI != nil {
		cur.DNI = normDNI(*p.DNI)
	}
	if p.Placa != nil {
		cur.Placa = normPlaca(*p.Placa)
	}
	if p.VIN != nil {
		cur.VIN = strings.TrimSpace(*p.VIN)
	}
	if p.Kms != nil {
		cur.Kms = int(*p.Kms)
	}
	if p.Celular != nil {
		cur.Celular = strings.TrimSpace(*p.Celular)
	}
	if p.Email != nil {
		cur.Email = normEmail(*p.Email)
	}
	if p.Estado != nil {
		cur.Estado = bool(*p.Estado)
	}
	if p.ModelID != nil {
		cur.ModelID = int(*p.ModelID)
	}
	if p.BrandID != nil {
		cur.BrandID = int(*p.BrandID)
	}
	cur.UpdatedAt = nowUTC()

	rows[idx] = cur
	if err := catalog.SaveTable(ctx, s.st, store.TableClients, lastID, rows); err != nil {
		return nil, err
	}
	return &cur, nil
}

func (s *clientService) Delete(ctx context.Context, id int) (*catalog.Client, error) {
	if id == 0 {
		return nil, httperrors.Validation("Falta id")
	}

	l := s.st.Locker(store.TableClients)
	l.Lock()
	defer l.Unlock()

	lastID, rows, err := catalog.LoadTable[catalog.Client](ctx, s.st, store.TableClients)
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
		return nil, httperrors.NotFound("Cliente no encontrado")
	}

	removed := rows[idx]
	rows = append(rows[:idx], rows[idx+1:]...)

	if err := catalog.SaveTable(ctx, s.st, store.TableClients, lastID, rows); err != nil {
		return nil, err
	}
	return &removed, nil
}
