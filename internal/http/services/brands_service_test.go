package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/catalogo/internal/catalog"
	httperrors "github.com/dropDatabas3/catalogo/internal/http/errors"
	"github.com/dropDatabas3/catalogo/internal/store"
	"github.com/dropDatabas3/catalogo/internal/store/memory"
)

func newBrandSvc() (BrandService, *memory.Provider) {
	st := memory.New()
	return NewBrandService(st), st
}

func TestBrandCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBrandSvc()

	a, err := svc.Create(ctx, catalog.BrandInput{Name: "Toyota"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, err := svc.Create(ctx, catalog.BrandInput{Name: "Hyundai"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", a.ID, b.ID)
	}
	if !a.IsActive {
		t.Fatal("marca nueva debería nacer activa")
	}
	if a.CreatedAt != a.UpdatedAt {
		t.Fatal("created_at y updated_at deberían ser idénticos al crear")
	}
}

func TestBrandCreateRejectsDuplicateNameCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBrandSvc()

	if _, err := svc.Create(ctx, catalog.BrandInput{Name: "Toyota"}); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Create(ctx, catalog.BrandInput{Name: "TOYOTA"})
	var appErr *httperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("err = %v, want *AppError", err)
	}
	if appErr.HTTPStatus != 400 || appErr.Message != "Marca ya existe" {
		t.Fatalf("got status=%d message=%q", appErr.HTTPStatus, appErr.Message)
	}
}

func TestBrandCreateRequiresName(t *testing.T) {
	svc, _ := newBrandSvc()
	_, err := svc.Create(context.Background(), catalog.BrandInput{Name: "   "})
	var appErr *httperrors.AppError
	if !errors.As(err, &appErr) || appErr.Message != "Nombre requerido" {
		t.Fatalf("err = %v, want validación de nombre", err)
	}
}

func TestBrandUpdateMergesAndRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBrandSvc()

	created, _ := svc.Create(ctx, catalog.BrandInput{Name: "Toyota"})

	inactive := catalog.LooseBool(false)
	updated, err := svc.Update(ctx, catalog.BrandPatch{
		ID:     catalog.LooseInt(created.ID),
		Active: &inactive,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Toyota" {
		t.Fatalf("campo no enviado se pisó: name=%q", updated.Name)
	}
	if updated.IsActive {
		t.Fatal("is_active debería haber cambiado a false")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatal("updated_at debería refrescarse")
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Fatal("created_at no debe cambiar en update")
	}
}

func TestBrandUpdateRejectsDuplicateName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBrandSvc()

	svc.Create(ctx, catalog.BrandInput{Name: "Toyota"})
	b, _ := svc.Create(ctx, catalog.BrandInput{Name: "Hyundai"})

	name := "toyota"
	_, err := svc.Update(ctx, catalog.BrandPatch{ID: catalog.LooseInt(b.ID), Name: &name})
	var appErr *httperrors.AppError
	if !errors.As(err, &appErr) || appErr.Message != "Marca ya existe" {
		t.Fatalf("err = %v, want duplicado", err)
	}
}

func TestBrandUpdateMissingID(t *testing.T) {
	svc, _ := newBrandSvc()
	_, err := svc.Update(context.Background(), catalog.BrandPatch{})
	var appErr *httperrors.AppError
	if !errors.As(err, &appErr) || appErr.Message != "Falta id" {
		t.Fatalf("err = %v, want Falta id", err)
	}
}

func TestBrandDeleteNotFoundLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	svc, st := newBrandSvc()

	svc.Create(ctx, catalog.BrandInput{Name: "Toyota"})
	before, err := st.Load(ctx, store.TableBrands)
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.Delete(ctx, 999)
	var appErr *httperrors.AppError
	if !errors.As(err, &appErr) || appErr.HTTPStatus != 404 {
		t.Fatalf("err = %v, want 404", err)
	}

	after, err := st.Load(ctx, store.TableBrands)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Fatal("un delete fallido no debe modificar la tabla")
	}
}

func TestBrandDeleteDoesNotReuseIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBrandSvc()

	svc.Create(ctx, catalog.BrandInput{Name: "Toyota"})
	b, _ := svc.Create(ctx, catalog.BrandInput{Name: "Hyundai"})

	if _, err := svc.Delete(ctx, b.ID); err != nil {
		t.Fatal(err)
	}

	// lastId no retrocede: el siguiente create sigue la secuencia
	c, err := svc.Create(ctx, catalog.BrandInput{Name: "Kia"})
	if err != nil {
		t.Fatal(err)
	}
	if c.ID != 3 {
		t.Fatalf("id = %d, want 3 (sin reuso tras delete)", c.ID)
	}
}

func TestBrandConcurrentCreatesSerializeWrites(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBrandSvc()

	// N creates en paralelo contra la misma tabla: el lock de la tabla
	// serializa el ciclo load-mutate-persist, así que ninguna goroutine
	// puede observar el mismo lastId ni pisar la escritura de otra.
	const n = 50
	ids := make([]int, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			b, err := svc.Create(ctx, catalog.BrandInput{Name: fmt.Sprintf("Marca %02d", i)})
			if err != nil {
				return err
			}
			ids[i] = b.ID
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("create concurrente: %v", err)
	}

	seen := make(map[int]bool, n)
	for _, id := range ids {
		if id < 1 || id > n {
			t.Fatalf("id fuera de secuencia: %d", id)
		}
		if seen[id] {
			t.Fatalf("id duplicado: %d", id)
		}
		seen[id] = true
	}

	// y ningún registro se perdió por un lost update
	rows, err := svc.List(ctx, catalog.BrandFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != n {
		t.Fatalf("len = %d, want %d", len(rows), n)
	}
}

func TestBrandListFilters(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBrandSvc()

	svc.Create(ctx, catalog.BrandInput{Name: "Toyota"})
	b, _ := svc.Create(ctx, catalog.BrandInput{Name: "Hyundai"})

	inactive := catalog.LooseBool(false)
	svc.Update(ctx, catalog.BrandPatch{ID: catalog.LooseInt(b.ID), Active: &inactive})

	all, err := svc.List(ctx, catalog.BrandFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("sin filtro: %d filas, want 2", len(all))
	}

	active, _ := svc.List(ctx, catalog.BrandFilter{Active: "true"})
	if len(active) != 1 || active[0].Name != "Toyota" {
		t.Fatalf("active=true: %+v", active)
	}

	byQ, _ := svc.List(ctx, catalog.BrandFilter{Q: "hyun"})
	if len(byQ) != 1 || byQ[0].Name != "Hyundai" {
		t.Fatalf("q=hyun: %+v", byQ)
	}

	// valor de active que no es "true"/"false" = sin filtro
	loose, _ := svc.List(ctx, catalog.BrandFilter{Active: "yes"})
	if len(loose) != 2 {
		t.Fatalf("active=yes debería ignorarse: %d filas", len(loose))
	}
}
