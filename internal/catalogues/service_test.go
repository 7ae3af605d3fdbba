package catalogues

import (
	"context"
	"testing"
	"time"

	"github.com/strideworks/stride-backend/pkg/db"
	"github.com/strideworks/stride-backend/pkg/db/models"
	"github.com/strideworks/stride-backend/pkg/enums"
	pkgerrors "github.com/strideworks/stride-backend/pkg/errors"
	"github.com/strideworks/stride-backend/pkg/types"
)

func strPtr(v string) *string { return &v }

func stagePtr(v enums.CatalogueStage) *enums.CatalogueStage { return &v }

func imageRef(url string) types.ImageRef {
	return types.ImageRef{URL: url}
}

func expectValidation(t *testing.T, err error) {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestValidateStageDate(t *testing.T) {
	if err := validateStageDate(enums.StageAvailable, nil); err != nil {
		t.Fatalf("available stage must not require a date: %v", err)
	}

	err := validateStageDate(enums.StageWishlist, nil)
	expectValidation(t, err)

	when := time.Now()
	if err := validateStageDate(enums.StageWishlist, &when); err != nil {
		t.Fatalf("wishlist with date must pass: %v", err)
	}
}

func TestApplyUpdateStageToWishlistRequiresDate(t *testing.T) {
	catalogue := &models.Catalogue{
		ArticleName:  "AirWalk",
		Gender:       enums.GenderMen,
		Stage:        enums.StageAvailable,
		PrimaryImage: imageRef("https://cdn.example.com/a.jpg"),
	}

	err := applyUpdate(catalogue, UpdateCatalogueInput{Stage: stagePtr(enums.StageWishlist)})
	expectValidation(t, err)

	when := time.Now()
	if err := applyUpdate(catalogue, UpdateCatalogueInput{
		Stage:      stagePtr(enums.StageWishlist),
		ExpectedAt: &when,
	}); err != nil {
		t.Fatalf("wishlist with date must pass: %v", err)
	}
	if catalogue.Stage != enums.StageWishlist {
		t.Fatalf("expected stage updated, got %s", catalogue.Stage)
	}
}

func TestApplyUpdateStageKeepsExistingDate(t *testing.T) {
	when := time.Now()
	catalogue := &models.Catalogue{
		Stage:        enums.StageAvailable,
		ExpectedAt:   &when,
		PrimaryImage: imageRef("https://cdn.example.com/a.jpg"),
	}
	if err := applyUpdate(catalogue, UpdateCatalogueInput{Stage: stagePtr(enums.StageWishlist)}); err != nil {
		t.Fatalf("existing date must satisfy wishlist stage: %v", err)
	}
}

func TestApplyUpdateSecondaryImagesAppendByDefault(t *testing.T) {
	catalogue := &models.Catalogue{
		Stage:           enums.StageAvailable,
		SecondaryImages: types.ImageRefList{imageRef("https://cdn.example.com/1.jpg")},
	}

	incoming := []types.ImageRef{imageRef("https://cdn.example.com/2.jpg")}
	if err := applyUpdate(catalogue, UpdateCatalogueInput{SecondaryImages: &incoming}); err != nil {
		t.Fatalf("append update: %v", err)
	}
	if len(catalogue.SecondaryImages) != 2 {
		t.Fatalf("expected 2 secondary images after append, got %d", len(catalogue.SecondaryImages))
	}

	replacement := []types.ImageRef{imageRef("https://cdn.example.com/3.jpg")}
	if err := applyUpdate(catalogue, UpdateCatalogueInput{
		SecondaryImages:  &replacement,
		ReplaceSecondary: true,
	}); err != nil {
		t.Fatalf("replace update: %v", err)
	}
	if len(catalogue.SecondaryImages) != 1 || catalogue.SecondaryImages[0].URL != "https://cdn.example.com/3.jpg" {
		t.Fatalf("expected wholesale replace, got %v", catalogue.SecondaryImages)
	}
}

func TestApplyUpdatePrimaryImageCannotBeCleared(t *testing.T) {
	catalogue := &models.Catalogue{
		Stage:        enums.StageAvailable,
		PrimaryImage: imageRef("https://cdn.example.com/a.jpg"),
	}
	empty := types.ImageRef{}
	err := applyUpdate(catalogue, UpdateCatalogueInput{PrimaryImage: &empty})
	expectValidation(t, err)
	if catalogue.PrimaryImage.URL != "https://cdn.example.com/a.jpg" {
		t.Fatal("primary image must be untouched after failed clear")
	}
}

func TestApplyUpdateRejectsEmptyArticleName(t *testing.T) {
	catalogue := &models.Catalogue{ArticleName: "AirWalk", Stage: enums.StageAvailable}
	err := applyUpdate(catalogue, UpdateCatalogueInput{ArticleName: strPtr("   ")})
	expectValidation(t, err)
	if catalogue.ArticleName != "AirWalk" {
		t.Fatal("article name must be untouched after failed update")
	}
}

func TestBuildVariantRowsAssignsPositionsInOrder(t *testing.T) {
	rows, err := buildVariantRows([]VariantInput{
		{ItemName: "Red/7-10", Sizes: types.SizeQuantities{{Size: "7", Qty: 10}}},
		{ItemName: "Black/6-9"},
		{ItemName: "Tan/8-11"},
	})
	if err != nil {
		t.Fatalf("build variants: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row.Position != i {
			t.Fatalf("expected position %d, got %d", i, row.Position)
		}
	}
	if rows[1].SKU != "N/A" {
		t.Fatalf("expected default SKU N/A, got %q", rows[1].SKU)
	}
}

func TestBuildVariantRowsValidation(t *testing.T) {
	_, err := buildVariantRows([]VariantInput{{ItemName: "  "}})
	expectValidation(t, err)

	_, err = buildVariantRows([]VariantInput{{ItemName: "Red", CostPrice: -1}})
	expectValidation(t, err)

	_, err = buildVariantRows([]VariantInput{{
		ItemName: "Red",
		Sizes:    types.SizeQuantities{{Size: "7", Qty: -2}},
	}})
	expectValidation(t, err)
}

func TestCreateValidationGuards(t *testing.T) {
	svc, err := NewService(NewRepository(nil), &db.Client{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	tests := []struct {
		name    string
		input   CreateCatalogueInput
		wantMsg string
	}{
		{
			name: "missing primary image",
			input: CreateCatalogueInput{
				ArticleName: "AirWalk",
				Gender:      enums.GenderMen,
			},
			wantMsg: "primaryImage is required",
		},
		{
			name: "wishlist without expected date",
			input: CreateCatalogueInput{
				ArticleName:  "AirWalk",
				Gender:       enums.GenderMen,
				Stage:        enums.StageWishlist,
				PrimaryImage: &types.ImageRef{URL: "https://cdn.example.com/a.jpg"},
			},
		},
		{
			name: "blank article name",
			input: CreateCatalogueInput{
				ArticleName:  "   ",
				Gender:       enums.GenderMen,
				PrimaryImage: &types.ImageRef{URL: "https://cdn.example.com/a.jpg"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			expectValidation(t, err)
			if tt.wantMsg != "" {
				if got := pkgerrors.As(err).Message(); got != tt.wantMsg {
					t.Fatalf("message = %q, want %q", got, tt.wantMsg)
				}
			}
		})
	}
}

func TestNewCatalogueDTODefaultsCollections(t *testing.T) {
	dto := NewCatalogueDTO(&models.Catalogue{
		ArticleName:  "AirWalk",
		Gender:       enums.GenderUnisex,
		Stage:        enums.StageAvailable,
		PrimaryImage: imageRef("https://cdn.example.com/a.jpg"),
	})
	if dto.SecondaryImages == nil {
		t.Fatal("secondary images must serialize as [] not null")
	}
	if dto.Variants == nil {
		t.Fatal("variants must serialize as [] not null")
	}
}
