package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/arifmahmud/trendora-backend/internal/collection"
	"github.com/arifmahmud/trendora-backend/pkg/db/models"
	pkgerrors "github.com/arifmahmud/trendora-backend/pkg/errors"
)

type stubCollectionService struct {
	items     []models.CollectionItem
	listErr   error
	added     *models.CollectionItem
	addErr    error
	deleteErr error
}

func (s stubCollectionService) ListAll(context.Context) ([]models.CollectionItem, error) {
	return s.items, s.listErr
}

func (s stubCollectionService) ListByOwner(_ context.Context, userEmail string) ([]models.CollectionItem, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	matched := []models.CollectionItem{}
	for _, item := range s.items {
		if item.UserEmail == userEmail {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (s stubCollectionService) AddItem(context.Context, collection.AddItemInput) (*models.CollectionItem, error) {
	return s.added, s.addErr
}

func (s stubCollectionService) DeleteItem(context.Context, uint) error {
	return s.deleteErr
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

const addProductBody = `{"addedID":1,"title":"Shirt","userEmail":"a@x.com","price":19.99,"image_url":"http://x/1.png","userName":"A","size":"M"}`

func TestCartAddItemSuccess(t *testing.T) {
	added := &models.CollectionItem{ID: 1, AddedID: 1, UserEmail: "a@x.com", Price: decimal.NewFromFloat(19.99)}
	handler := CartAddItem(stubCollectionService{added: added}, nil)

	req := httptest.NewRequest(http.MethodPost, "/add-product", strings.NewReader(addProductBody))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}

	var body struct {
		Message string `json:"message"`
		AddedID int    `json:"addedID"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != "Product added successfully" {
		t.Fatalf("unexpected message %q", body.Message)
	}
	if body.AddedID != 1 {
		t.Fatalf("unexpected addedID %d", body.AddedID)
	}
}

func TestCartAddItemDuplicate(t *testing.T) {
	dup := pkgerrors.New(pkgerrors.CodeConflict, "item already added")
	handler := CartAddItem(stubCollectionService{addErr: dup}, nil)

	req := httptest.NewRequest(http.MethodPost, "/add-product", strings.NewReader(addProductBody))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}

	var body struct {
		Message string `json:"message"`
		AddedID int    `json:"addedID"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != "This product is already added to your cart." {
		t.Fatalf("unexpected message %q", body.Message)
	}
	if body.AddedID != 1 {
		t.Fatalf("unexpected addedID %d", body.AddedID)
	}
}

func TestCartAddItemMalformedBody(t *testing.T) {
	handler := CartAddItem(stubCollectionService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/add-product", strings.NewReader("{not json"))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartListByUserFilters(t *testing.T) {
	items := []models.CollectionItem{
		{ID: 1, AddedID: 1, UserEmail: "a@x.com"},
		{ID: 2, AddedID: 2, UserEmail: "b@x.com"},
	}
	handler := CartListByUser(stubCollectionService{items: items}, nil)

	req := httptest.NewRequest(http.MethodGet, "/added-items/a@x.com", nil)
	req = withURLParam(req, "userEmail", "a@x.com")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var body []models.CollectionItem
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body) != 1 || body[0].UserEmail != "a@x.com" {
		t.Fatalf("unexpected rows %+v", body)
	}
}

func TestCartListByUserEmptyIsNotAnError(t *testing.T) {
	handler := CartListByUser(stubCollectionService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/added-items/nobody@x.com", nil)
	req = withURLParam(req, "userEmail", "nobody@x.com")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := strings.TrimSpace(resp.Body.String()); got != "[]" {
		t.Fatalf("expected empty array, got %s", got)
	}
}

func TestCartDeleteItemSuccess(t *testing.T) {
	handler := CartDeleteItem(stubCollectionService{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/added-items/42", nil)
	req = withURLParam(req, "id", "42")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var body struct {
		Message string `json:"message"`
		ID      uint   `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != "Item deleted successfully" || body.ID != 42 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestCartDeleteItemNotFound(t *testing.T) {
	notFound := pkgerrors.New(pkgerrors.CodeNotFound, "Item not found")
	handler := CartDeleteItem(stubCollectionService{deleteErr: notFound}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/added-items/999", nil)
	req = withURLParam(req, "id", "999")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error != "Item not found" {
		t.Fatalf("unexpected error %q", body.Error)
	}
}

func TestCartDeleteItemInvalidID(t *testing.T) {
	handler := CartDeleteItem(stubCollectionService{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/added-items/abc", nil)
	req = withURLParam(req, "id", "abc")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
