package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dropDatabas3/catalogo/internal/catalog"
	httperrors "github.com/dropDatabas3/catalogo/internal/http/errors"
	"github.com/dropDatabas3/catalogo/internal/store/memory"
)

func TestSubtypeCreateValidation(t *testing.T) {
	svc := NewSubtypeService(memory.New())

	_, err := svc.Create(context.Background(), catalog.SubtypeInput{Name: "Base"})
	var appErr *httperrors.AppError
	if !errors.As(err, &appErr) || appErr.Message != "Nombre o tipo inválido" {
		t.Fatalf("err = %v, want validación", err)
	}
}

func TestSubtypeYearNullable(t *testing.T) {
	ctx := context.Background()
	svc := NewSubtypeService(memory.New())

	// sin year: queda null
	a, err := svc.Create(ctx, catalog.SubtypeInput{Name: "Base", TypeID: 1})
	if err != nil {
		t.Fatal(err)
	}
	if a.Year != nil {
		t.Fatalf("year = %v, want null", *a.Year)
	}

	year := catalog.LooseInt(2024)
	b, err := svc.Create(ctx, catalog.SubtypeInput{Name: "Full", TypeID: 1, Year: &year})
	if err != nil {
		t.Fatal(err)
	}
	if b.Year == nil || *b.Year != 2024 {
		t.Fatalf("year = %v, want 2024", b.Year)
	}
}

func TestSubtypeListEnrichesTypeName(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	svcs := New(Deps{Store: st})

	if _, err := svcs.Types.Create(ctx, catalog.TypeInput{Name: "Sedán"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svcs.Subtypes.Create(ctx, catalog.SubtypeInput{Name: "Base", TypeID: 1}); err != nil {
		t.Fatal(err)
	}
	// subtipo con tipo inexistente: se lista igual, type_name null
	if _, err := svcs.Subtypes.Create(ctx, catalog.SubtypeInput{Name: "Huérfano", TypeID: 99}); err != nil {
		t.Fatal(err)
	}

	rows, err := svcs.Subtypes.List(ctx, catalog.SubtypeFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0].TypeName == nil || *rows[0].TypeName != "Sedán" {
		t.Fatalf("type_name = %v, want Sedán", rows[0].TypeName)
	}
	if rows[1].TypeName != nil {
		t.Fatalf("type_name del huérfano = %v, want null", *rows[1].TypeName)
	}
}

func TestSubtypeFilterByType(t *testing.T) {
	ctx := context.Background()
	svc := NewSubtypeService(memory.New())

	svc.Create(ctx, catalog.SubtypeInput{Name: "Base", TypeID: 1})
	svc.Create(ctx, catalog.SubtypeInput{Name: "Off-road", TypeID: 2})

	rows, err := svc.List(ctx, catalog.SubtypeFilter{TypeID: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Name != "Off-road" {
		t.Fatalf("type_id=2: %+v", rows)
	}
}

func TestTypeCreateDuplicateRejected(t *testing.T) {
	ctx := context.Background()
	svc := NewTypeService(memory.New())

	if _, err := svc.Create(ctx, catalog.TypeInput{Name: "Sedán"}); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Create(ctx, catalog.TypeInput{Name: "sedán"})
	var appErr *httperrors.AppError
	if !errors.As(err, &appErr) || appErr.Message != "Tipo ya existe" {
		t.Fatalf("err = %v, want Tipo ya existe", err)
	}
}
