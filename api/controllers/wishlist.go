package controllers

import (
	"net/http"

	"github.com/arifmahmud/trendora-backend/internal/collection"
	"github.com/arifmahmud/trendora-backend/pkg/logger"
)

const wishlistDuplicateMessage = "This product is already added to your wishlist."

// WishlistAddItem handles POST /wishlist.
func WishlistAddItem(svc collection.Service, logg *logger.Logger) http.HandlerFunc {
	return addCollectionItem(svc, logg, wishlistDuplicateMessage)
}

// WishlistList handles GET /wishlist.
func WishlistList(svc collection.Service, logg *logger.Logger) http.HandlerFunc {
	return listCollection(svc, logg)
}

// WishlistListByUser handles GET /wishlist/{userEmail}.
func WishlistListByUser(svc collection.Service, logg *logger.Logger) http.HandlerFunc {
	return listCollectionByOwner(svc, logg)
}

// WishlistDeleteItem handles DELETE /wishlist/{id}.
func WishlistDeleteItem(svc collection.Service, logg *logger.Logger) http.HandlerFunc {
	return deleteCollectionItem(svc, logg)
}
