package collection

import (
	"context"
	"errors"

	"github.com/arifmahmud/trendora-backend/pkg/db"
	"github.com/arifmahmud/trendora-backend/pkg/db/models"
	pkgerrors "github.com/arifmahmud/trendora-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AddItemInput carries the client-supplied fields of a new collection item.
type AddItemInput struct {
	AddedID   int             `json:"addedID"`
	Title     string          `json:"title"`
	UserEmail string          `json:"userEmail"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url"`
	UserName  string          `json:"userName"`
	Size      string          `json:"size"`
}

// ServiceParams groups dependencies for a collection service.
type ServiceParams struct {
	Repo *Repository
}

// Service exposes the owner-scoped collection operations shared by the cart
// and the wishlist.
type Service interface {
	ListAll(ctx context.Context) ([]models.CollectionItem, error)
	ListByOwner(ctx context.Context, userEmail string) ([]models.CollectionItem, error)
	AddItem(ctx context.Context, input AddItemInput) (*models.CollectionItem, error)
	DeleteItem(ctx context.Context, id uint) error
}

type service struct {
	repo *Repository
}

// NewService builds a collection service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "collection repo is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.CollectionItem, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) ListByOwner(ctx context.Context, userEmail string) ([]models.CollectionItem, error) {
	return s.repo.ListByOwner(ctx, userEmail)
}

// AddItem inserts the row unless the owner already holds the same product.
// The existence check is the fast path; the unique index on
// (addedID, userEmail) backstops it, so two concurrent inserts of the same
// pair still produce exactly one row.
func (s *service) AddItem(ctx context.Context, input AddItemInput) (*models.CollectionItem, error) {
	if _, err := s.repo.FindByPair(ctx, input.AddedID, input.UserEmail); err == nil {
		return nil, duplicateErr(input.AddedID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := &models.CollectionItem{
		AddedID:   input.AddedID,
		Title:     input.Title,
		UserEmail: input.UserEmail,
		Price:     input.Price,
		ImageURL:  input.ImageURL,
		UserName:  input.UserName,
		Size:      input.Size,
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, duplicateErr(input.AddedID)
		}
		return nil, err
	}
	return item, nil
}

// DeleteItem removes the row with the given id.
func (s *service) DeleteItem(ctx context.Context, id uint) error {
	affected, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Item not found")
	}
	return nil
}

func duplicateErr(addedID int) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeConflict, "item already added").
		WithDetails(map[string]any{"addedID": addedID})
}
