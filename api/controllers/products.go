package controllers

import (
	"context"
	"net/http"

	"github.com/arifmahmud/trendora-backend/api/responses"
	pkgerrors "github.com/arifmahmud/trendora-backend/pkg/errors"
	"github.com/arifmahmud/trendora-backend/pkg/logger"
)

// ProductLister is the read surface of the catalog repository.
type ProductLister interface {
	ListAll(ctx context.Context) ([]map[string]any, error)
}

// ProductList handles GET /products.
func ProductList(repo ProductLister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if repo == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		products, err := repo.ListAll(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}
