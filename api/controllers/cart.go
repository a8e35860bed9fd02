package controllers

import (
	"net/http"

	"github.com/arifmahmud/trendora-backend/internal/collection"
	"github.com/arifmahmud/trendora-backend/pkg/logger"
)

const cartDuplicateMessage = "This product is already added to your cart."

// CartAddItem handles POST /add-product.
func CartAddItem(svc collection.Service, logg *logger.Logger) http.HandlerFunc {
	return addCollectionItem(svc, logg, cartDuplicateMessage)
}

// CartList handles GET /added-items.
func CartList(svc collection.Service, logg *logger.Logger) http.HandlerFunc {
	return listCollection(svc, logg)
}

// CartListByUser handles GET /added-items/{userEmail}.
func CartListByUser(svc collection.Service, logg *logger.Logger) http.HandlerFunc {
	return listCollectionByOwner(svc, logg)
}

// CartDeleteItem handles DELETE /added-items/{id}.
func CartDeleteItem(svc collection.Service, logg *logger.Logger) http.HandlerFunc {
	return deleteCollectionItem(svc, logg)
}
