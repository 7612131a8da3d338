package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dropDatabas3/catalogo/internal/catalog"
	httperrors "github.com/dropDatabas3/catalogo/internal/http/errors"
	"github.com/dropDatabas3/catalogo/internal/store/memory"
)

// fixture: una marca, dos modelos, un tipo y dos subtipos
func pricesFixture(t *testing.T) (*Services, context.Context) {
	t.Helper()
	ctx := context.Background()
	svcs := New(Deps{Store: memory.New()})

	if _, err := svcs.Brands.Create(ctx, catalog.BrandInput{Name: "Toyota"}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Corolla", "Hilux"} {
		_, err := svcs.Models.Create(ctx, catalog.ModelInput{
			Name: name, Year: 2024, Version: "XEI", BrandID: 1,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svcs.Types.Create(ctx, catalog.TypeInput{Name: "Sedán"}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Base", "Full"} {
		_, err := svcs.Subtypes.Create(ctx, catalog.SubtypeInput{Name: name, TypeID: 1})
		if err != nil {
			t.Fatal(err)
		}
	}
	return svcs, ctx
}

func TestPriceMatrixUpsertCreatesAndUpdates(t *testing.T) {
	svcs, ctx := pricesFixture(t)

	err := svcs.Prices.UpsertMatrix(ctx, catalog.PriceMatrix{
		"1": {"1": float64(20000), "2": float64(25000)},
		"2": {"1": float64(30000)},
	})
	if err != nil {
		t.Fatalf("UpsertMatrix: %v", err)
	}

	rows, err := svcs.Prices.List(ctx, catalog.PriceFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("len = %d, want 3", len(rows))
	}

	// segundo write sobre el mismo par: actualiza in-place, la tabla no crece
	err = svcs.Prices.UpsertMatrix(ctx, catalog.PriceMatrix{
		"1": {"1": float64(21000)},
	})
	if err != nil {
		t.Fatal(err)
	}
	rows, _ = svcs.Prices.List(ctx, catalog.PriceFilter{ModelID: 1, SubtypeID: 1})
	if len(rows) != 1 {
		t.Fatalf("par duplicado: len = %d, want 1", len(rows))
	}
	if rows[0].Price.Price != 21000 {
		t.Fatalf("price = %v, want 21000", rows[0].Price.Price)
	}

	all, _ := svcs.Prices.List(ctx, catalog.PriceFilter{})
	if len(all) != 3 {
		t.Fatalf("la tabla creció tras el update: %d, want 3", len(all))
	}
}

func TestPriceMatrixSkipsInvalidCells(t *testing.T) {
	svcs, ctx := pricesFixture(t)

	// claves no numéricas, precio cero, string no numérico y null se saltean
	err := svcs.Prices.UpsertMatrix(ctx, catalog.PriceMatrix{
		"abc": {"1": float64(10000)},
		"1": {
			"xyz": float64(10000),
			"1":   float64(0),
			"2":   "no-precio",
		},
		"2": {"1": nil},
	})
	if err != nil {
		t.Fatalf("celdas inválidas no deberían fallar el batch: %v", err)
	}
	rows, _ := svcs.Prices.List(ctx, catalog.PriceFilter{})
	if len(rows) != 0 {
		t.Fatalf("no debería haberse creado nada: %+v", rows)
	}

	// strings numéricos sí coercionan
	if err := svcs.Prices.UpsertMatrix(ctx, catalog.PriceMatrix{"1": {"1": "19990.50"}}); err != nil {
		t.Fatal(err)
	}
	rows, _ = svcs.Prices.List(ctx, catalog.PriceFilter{})
	if len(rows) != 1 || rows[0].Price.Price != 19990.50 {
		t.Fatalf("coerción de string numérico: %+v", rows)
	}
}

func TestPriceListJoinExclusions(t *testing.T) {
	svcs, ctx := pricesFixture(t)

	if err := svcs.Prices.UpsertMatrix(ctx, catalog.PriceMatrix{
		"1": {"1": float64(20000)},
		"2": {"2": float64(30000)},
	}); err != nil {
		t.Fatal(err)
	}

	// modelo inactivo: su fila desaparece del listado
	inactive := catalog.LooseBool(false)
	if _, err := svcs.Models.Update(ctx, catalog.ModelPatch{ID: 2, Active: &inactive}); err != nil {
		t.Fatal(err)
	}
	rows, err := svcs.Prices.List(ctx, catalog.PriceFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].ModelID != 1 {
		t.Fatalf("modelo inactivo debería excluirse: %+v", rows)
	}

	// el registro sigue en disco: reactivar el modelo lo trae de vuelta
	activeAgain := catalog.LooseBool(true)
	svcs.Models.Update(ctx, catalog.ModelPatch{ID: 2, Active: &activeAgain})
	rows, _ = svcs.Prices.List(ctx, catalog.PriceFilter{})
	if len(rows) != 2 {
		t.Fatalf("reactivado: %d filas, want 2", len(rows))
	}

	// subtipo borrado: misma exclusión
	if _, err := svcs.Subtypes.Delete(ctx, 2); err != nil {
		t.Fatal(err)
	}
	rows, _ = svcs.Prices.List(ctx, catalog.PriceFilter{})
	if len(rows) != 1 {
		t.Fatalf("subtipo borrado debería excluir su fila: %+v", rows)
	}
}

func TestPriceListNullableEnrichment(t *testing.T) {
	svcs, ctx := pricesFixture(t)

	if err := svcs.Prices.UpsertMatrix(ctx, catalog.PriceMatrix{"1": {"1": float64(20000)}}); err != nil {
		t.Fatal(err)
	}

	rows, _ := svcs.Prices.List(ctx, catalog.PriceFilter{})
	if len(rows) != 1 {
		t.Fatalf("fixture: %+v", rows)
	}
	if rows[0].ModelName != "Corolla" || rows[0].SubtypeName != "Base" {
		t.Fatalf("join: %+v", rows[0])
	}
	if rows[0].BrandName == nil || *rows[0].BrandName != "Toyota" {
		t.Fatalf("brand_name: %v", rows[0].BrandName)
	}
	if rows[0].TypeName == nil || *rows[0].TypeName != "Sedán" {
		t.Fatalf("type_name: %v", rows[0].TypeName)
	}

	// marca borrada: la fila sobrevive con brand_name null
	if _, err := svcs.Brands.Delete(ctx, 1); err != nil {
		t.Fatal(err)
	}
	rows, _ = svcs.Prices.List(ctx, catalog.PriceFilter{})
	if len(rows) != 1 {
		t.Fatalf("marca faltante no debería excluir la fila: %+v", rows)
	}
	if rows[0].BrandName != nil {
		t.Fatalf("brand_name = %v, want null", *rows[0].BrandName)
	}
}

func TestPriceUpdatePairUniqueness(t *testing.T) {
	svcs, ctx := pricesFixture(t)

	if err := svcs.Prices.UpsertMatrix(ctx, catalog.PriceMatrix{
		"1": {"1": float64(20000), "2": float64(25000)},
	}); err != nil {
		t.Fatal(err)
	}

	// mover el precio 2 al par del precio 1: conflicto
	sub := catalog.LooseInt(1)
	_, err := svcs.Prices.Update(ctx, catalog.PricePatch{ID: 2, SubtypeID: &sub})
	var appErr *httperrors.AppError
	if !errors.As(err, &appErr) || appErr.Message != "Ya existe un precio para ese modelo y subtipo" {
		t.Fatalf("err = %v, want conflicto de par", err)
	}

	// cambiar sólo el precio es válido
	p := catalog.LooseNumber(26000)
	updated, err := svcs.Prices.Update(ctx, catalog.PricePatch{ID: 2, Price: &p})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Price != 26000 {
		t.Fatalf("price = %v, want 26000", updated.Price)
	}
}

func TestPriceDelete(t *testing.T) {
	svcs, ctx := pricesFixture(t)

	if err := svcs.Prices.UpsertMatrix(ctx, catalog.PriceMatrix{"1": {"1": float64(20000)}}); err != nil {
		t.Fatal(err)
	}
	if _, err := svcs.Prices.Delete(ctx, 1); err != nil {
		t.Fatal(err)
	}
	_, err := svcs.Prices.Delete(ctx, 1)
	var appErr *httperrors.AppError
	if !errors.As(err, &appErr) || appErr.HTTPStatus != 404 {
		t.Fatalf("segundo delete: err = %v, want 404", err)
	}
}
