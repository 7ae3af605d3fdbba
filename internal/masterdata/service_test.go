package masterdata

import (
	"context"
	"testing"

	"github.com/google/uuid"

	pkgerrors "github.com/strideworks/stride-backend/pkg/errors"
)

func TestParseCollection(t *testing.T) {
	for _, raw := range []string{"categories", "brands", "manufacturer-companies", "units"} {
		if _, err := ParseCollection(raw); err != nil {
			t.Fatalf("expected %q to parse, got %v", raw, err)
		}
	}

	_, err := ParseCollection("warehouses")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestCreateRequiresName(t *testing.T) {
	svc, err := NewService(NewRepository(nil))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Create(context.Background(), CollectionBrands, CreateItemInput{Name: "   "})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRenameRequiresName(t *testing.T) {
	svc, err := NewService(NewRepository(nil))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Rename(context.Background(), CollectionUnits, uuid.Nil, "")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
