package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/arifmahmud/trendora-backend/api/responses"
	"github.com/arifmahmud/trendora-backend/internal/collection"
	pkgerrors "github.com/arifmahmud/trendora-backend/pkg/errors"
	"github.com/arifmahmud/trendora-backend/pkg/logger"
)

type addItemResponse struct {
	Message string `json:"message"`
	AddedID int    `json:"addedID"`
}

type deleteItemResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// The cart and wishlist surfaces are the same owner-scoped collection with
// different tables and duplicate messages, so every handler pair below is
// one constructor instantiated twice.

func listCollection(svc collection.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "collection service unavailable"))
			return
		}

		items, err := svc.ListAll(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

func listCollectionByOwner(svc collection.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "collection service unavailable"))
			return
		}

		userEmail := chi.URLParam(r, "userEmail")
		items, err := svc.ListByOwner(ctx, userEmail)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

func addCollectionItem(svc collection.Service, logg *logger.Logger, duplicateMessage string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "collection service unavailable"))
			return
		}

		var input collection.AddItemInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payload"))
			return
		}

		item, err := svc.AddItem(ctx, input)
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeConflict {
				responses.WriteJSON(w, http.StatusBadRequest, addItemResponse{
					Message: duplicateMessage,
					AddedID: input.AddedID,
				})
				return
			}
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, addItemResponse{
			Message: "Product added successfully",
			AddedID: item.AddedID,
		})
	}
}

func deleteCollectionItem(svc collection.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "collection service unavailable"))
			return
		}

		raw := strings.TrimSpace(chi.URLParam(r, "id"))
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item id"))
			return
		}

		if err := svc.DeleteItem(ctx, uint(id)); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, deleteItemResponse{
			Message: "Item deleted successfully",
			ID:      uint(id),
		})
	}
}
