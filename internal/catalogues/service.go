package catalogues

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strideworks/stride-backend/pkg/db"
	"github.com/strideworks/stride-backend/pkg/db/models"
	"github.com/strideworks/stride-backend/pkg/enums"
	pkgerrors "github.com/strideworks/stride-backend/pkg/errors"
	"github.com/strideworks/stride-backend/pkg/pagination"
	"github.com/strideworks/stride-backend/pkg/types"
)

// Service exposes catalogue master management operations.
type Service interface {
	Create(ctx context.Context, input CreateCatalogueInput) (*CatalogueDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*CatalogueDTO, error)
	List(ctx context.Context, input ListCataloguesInput) (*ListResult, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCatalogueInput) (*CatalogueDTO, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// VariantInput is one colour/size-run entry. Order in the slice is the
// display order.
type VariantInput struct {
	ItemName     string
	SKU          *string
	CostPrice    float64
	SellingPrice float64
	MRP          float64
	Sizes        types.SizeQuantities
}

// CreateCatalogueInput holds the validated payload to create an article.
type CreateCatalogueInput struct {
	ArticleName           string
	SoleColor             string
	Gender                enums.Gender
	CategoryID            *uuid.UUID
	BrandID               *uuid.UUID
	ManufacturerCompanyID *uuid.UUID
	UnitID                *uuid.UUID
	Stage                 enums.CatalogueStage
	ExpectedAt            *time.Time
	PrimaryImage          *types.ImageRef
	SecondaryImages       []types.ImageRef
	Variants              []VariantInput
}

// UpdateCatalogueInput holds optional mutation values; nil fields are
// untouched. SecondaryImages are appended unless ReplaceSecondary is set.
// Variants, when present, replace the existing set wholesale.
type UpdateCatalogueInput struct {
	ArticleName           *string
	SoleColor             *string
	Gender                *enums.Gender
	CategoryID            *uuid.UUID
	BrandID               *uuid.UUID
	ManufacturerCompanyID *uuid.UUID
	UnitID                *uuid.UUID
	Stage                 *enums.CatalogueStage
	ExpectedAt            *time.Time
	PrimaryImage          *types.ImageRef
	SecondaryImages       *[]types.ImageRef
	ReplaceSecondary      bool
	Variants              *[]VariantInput
}

// ListCataloguesInput carries filters for the catalogue listing.
type ListCataloguesInput struct {
	Filter ListFilter
	Page   pagination.Params
}

// ListResult pairs a catalogue page with the unpaged total.
type ListResult struct {
	Catalogues []CatalogueDTO
	Total      int64
	Page       pagination.Params
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs a catalogue service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalogue repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

func (s *service) Create(ctx context.Context, input CreateCatalogueInput) (*CatalogueDTO, error) {
	articleName := strings.TrimSpace(input.ArticleName)
	if articleName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "article_name is required")
	}
	if !input.Gender.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid gender")
	}
	if input.PrimaryImage == nil || input.PrimaryImage.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "primaryImage is required")
	}

	stage := input.Stage
	if stage == "" {
		stage = enums.StageAvailable
	}
	if !stage.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid stage")
	}
	if err := validateStageDate(stage, input.ExpectedAt); err != nil {
		return nil, err
	}

	variants, err := buildVariantRows(input.Variants)
	if err != nil {
		return nil, err
	}

	secondary := input.SecondaryImages
	if secondary == nil {
		secondary = []types.ImageRef{}
	}

	catalogue := &models.Catalogue{
		ArticleName:           articleName,
		SoleColor:             strings.TrimSpace(input.SoleColor),
		Gender:                input.Gender,
		CategoryID:            input.CategoryID,
		BrandID:               input.BrandID,
		ManufacturerCompanyID: input.ManufacturerCompanyID,
		UnitID:                input.UnitID,
		Stage:                 stage,
		ExpectedAt:            input.ExpectedAt,
		PrimaryImage:          *input.PrimaryImage,
		SecondaryImages:       secondary,
		Variants:              variants,
	}

	if err := s.repo.Create(ctx, catalogue); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert catalogue")
	}
	return s.Get(ctx, catalogue.ID)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*CatalogueDTO, error) {
	catalogue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "catalogue not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load catalogue")
	}
	return NewCatalogueDTO(catalogue), nil
}

func (s *service) List(ctx context.Context, input ListCataloguesInput) (*ListResult, error) {
	page := pagination.Normalize(input.Page)
	rows, total, err := s.repo.List(ctx, input.Filter, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list catalogues")
	}

	out := make([]CatalogueDTO, len(rows))
	for i := range rows {
		out[i] = *NewCatalogueDTO(&rows[i])
	}
	return &ListResult{Catalogues: out, Total: total, Page: page}, nil
}

// Update applies a last-write-wins merge. Concurrent editors are not
// serialized; the final state is whichever write lands last.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateCatalogueInput) (*CatalogueDTO, error) {
	catalogue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "catalogue not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load catalogue")
	}

	if err := applyUpdate(catalogue, input); err != nil {
		return nil, err
	}

	var replacement []models.CatalogueVariant
	if input.Variants != nil {
		replacement, err = buildVariantRows(*input.Variants)
		if err != nil {
			return nil, err
		}
		for i := range replacement {
			replacement[i].CatalogueID = catalogue.ID
		}
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Update(ctx, catalogue); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update catalogue")
		}
		if input.Variants != nil {
			if err := txRepo.ReplaceVariants(ctx, catalogue.ID, replacement); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: replace variants")
			}
		}
		return nil
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update catalogue")
	}

	return s.Get(ctx, catalogue.ID)
}

func (s *service) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MarkDeleted(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "catalogue not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete catalogue")
	}
	return nil
}

func applyUpdate(catalogue *models.Catalogue, input UpdateCatalogueInput) error {
	if input.ArticleName != nil {
		name := strings.TrimSpace(*input.ArticleName)
		if name == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "article_name cannot be empty")
		}
		catalogue.ArticleName = name
	}
	if input.SoleColor != nil {
		catalogue.SoleColor = strings.TrimSpace(*input.SoleColor)
	}
	if input.Gender != nil {
		if !input.Gender.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, "invalid gender")
		}
		catalogue.Gender = *input.Gender
	}
	if input.CategoryID != nil {
		catalogue.CategoryID = input.CategoryID
	}
	if input.BrandID != nil {
		catalogue.BrandID = input.BrandID
	}
	if input.ManufacturerCompanyID != nil {
		catalogue.ManufacturerCompanyID = input.ManufacturerCompanyID
	}
	if input.UnitID != nil {
		catalogue.UnitID = input.UnitID
	}
	if input.ExpectedAt != nil {
		catalogue.ExpectedAt = input.ExpectedAt
	}
	if input.Stage != nil {
		if !input.Stage.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, "invalid stage")
		}
		catalogue.Stage = *input.Stage
	}
	if err := validateStageDate(catalogue.Stage, catalogue.ExpectedAt); err != nil {
		return err
	}
	if input.PrimaryImage != nil {
		if input.PrimaryImage.IsZero() {
			return pkgerrors.New(pkgerrors.CodeValidation, "primary_image cannot be cleared")
		}
		catalogue.PrimaryImage = *input.PrimaryImage
	}
	if input.SecondaryImages != nil {
		incoming := *input.SecondaryImages
		if incoming == nil {
			incoming = []types.ImageRef{}
		}
		if input.ReplaceSecondary {
			catalogue.SecondaryImages = incoming
		} else {
			// Secondary images accumulate across edits unless the caller
			// asks for a wholesale replace.
			catalogue.SecondaryImages = append(catalogue.SecondaryImages, incoming...)
		}
	}
	return nil
}

func validateStageDate(stage enums.CatalogueStage, expectedAt *time.Time) error {
	if stage == enums.StageWishlist && expectedAt == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "expected_at is required for wishlist stage")
	}
	return nil
}

func buildVariantRows(inputs []VariantInput) ([]models.CatalogueVariant, error) {
	variants := make([]models.CatalogueVariant, 0, len(inputs))
	for i, input := range inputs {
		itemName := strings.TrimSpace(input.ItemName)
		if itemName == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "variant item_name is required").
				WithDetails(map[string]any{"position": i})
		}
		if input.CostPrice < 0 || input.SellingPrice < 0 || input.MRP < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "variant prices cannot be negative").
				WithDetails(map[string]any{"position": i})
		}
		if err := input.Sizes.Validate(); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid variant sizes").
				WithDetails(map[string]any{"position": i})
		}

		sku := "N/A"
		if input.SKU != nil && strings.TrimSpace(*input.SKU) != "" {
			sku = strings.TrimSpace(*input.SKU)
		}

		sizes := input.Sizes
		if sizes == nil {
			sizes = types.SizeQuantities{}
		}

		variants = append(variants, models.CatalogueVariant{
			Position:     i,
			ItemName:     itemName,
			SKU:          sku,
			CostPrice:    input.CostPrice,
			SellingPrice: input.SellingPrice,
			MRP:          input.MRP,
			Sizes:        sizes,
		})
	}
	return variants, nil
}
