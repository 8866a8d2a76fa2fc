package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "money/internal/errors"
	"money/internal/models"
	"money/internal/services"
)

// --- mock item service ---

type mockItemService struct {
	createItemFn  func(name string, price float64, categoryID uint) (*models.Item, error)
	getItemsFn    func() ([]models.Item, error)
	getItemByIDFn func(itemID uint) (*models.Item, error)
	deleteItemFn  func(itemID uint) error
}

func (m *mockItemService) CreateItem(name string, price float64, categoryID uint) (*models.Item, error) {
	if m.createItemFn != nil {
		return m.createItemFn(name, price, categoryID)
	}
	return &models.Item{Name: name, Price: price, CategoryID: &categoryID}, nil
}

func (m *mockItemService) GetItems() ([]models.Item, error) {
	if m.getItemsFn != nil {
		return m.getItemsFn()
	}
	return []models.Item{}, nil
}

func (m *mockItemService) GetItemByID(itemID uint) (*models.Item, error) {
	if m.getItemByIDFn != nil {
		return m.getItemByIDFn(itemID)
	}
	return &models.Item{}, nil
}

func (m *mockItemService) DeleteItem(itemID uint) error {
	if m.deleteItemFn != nil {
		return m.deleteItemFn(itemID)
	}
	return nil
}

var _ services.ItemServicer = (*mockItemService)(nil)

func setupItemRouter(handler *ItemHandler) *gin.Engine {
	r := gin.New()
	r.GET("/items", handler.GetItems)
	r.POST("/items", handler.CreateItem)
	r.DELETE("/items/:id", handler.DeleteItem)
	return r
}

func TestItemHandler_GetItems(t *testing.T) {
	t.Run("embeds category", func(t *testing.T) {
		categoryID := uint(2)
		svc := &mockItemService{
			getItemsFn: func() ([]models.Item, error) {
				return []models.Item{
					{
						ID:         1,
						Name:       "Pommes",
						Price:      12.5,
						CategoryID: &categoryID,
						Category:   &models.ProductType{ID: 2, Name: "Fruits"},
					},
				}, nil
			},
		}
		handler := NewItemHandler(svc)
		r := setupItemRouter(handler)

		rec := doRequest(r, "GET", "/items", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var items []map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
			t.Fatalf("expected a JSON array, got %s: %v", rec.Body.String(), err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		category, ok := items[0]["category"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected embedded category object, got %v", items[0]["category"])
		}
		if category["name"] != "Fruits" {
			t.Errorf("expected category name Fruits, got %v", category["name"])
		}
		if items[0]["categoryId"] != float64(2) {
			t.Errorf("expected categoryId 2, got %v", items[0]["categoryId"])
		}
	})

	t.Run("missing category serializes as null", func(t *testing.T) {
		svc := &mockItemService{
			getItemsFn: func() ([]models.Item, error) {
				return []models.Item{{ID: 1, Name: "Mystère", Price: 3}}, nil
			},
		}
		handler := NewItemHandler(svc)
		r := setupItemRouter(handler)

		rec := doRequest(r, "GET", "/items", "")

		var items []map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if items[0]["category"] != nil {
			t.Errorf("expected null category, got %v", items[0]["category"])
		}
		if items[0]["categoryId"] != nil {
			t.Errorf("expected null categoryId, got %v", items[0]["categoryId"])
		}
	})
}

func TestItemHandler_CreateItem(t *testing.T) {
	t.Run("returns joined row", func(t *testing.T) {
		svc := &mockItemService{
			createItemFn: func(name string, price float64, categoryID uint) (*models.Item, error) {
				return &models.Item{
					ID:         7,
					Name:       name,
					Price:      price,
					CategoryID: &categoryID,
					Category:   &models.ProductType{ID: categoryID, Name: "Fruits"},
				}, nil
			},
		}
		handler := NewItemHandler(svc)
		r := setupItemRouter(handler)

		rec := doRequest(r, "POST", "/items", `{"name":"Pommes","price":12.5,"categoryId":2}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var item map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		category, ok := item["category"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected embedded category, got %v", item["category"])
		}
		if category["name"] != "Fruits" {
			t.Errorf("expected category name Fruits, got %v", category["name"])
		}
	})

	t.Run("zero price accepted", func(t *testing.T) {
		var gotPrice float64 = -1
		svc := &mockItemService{
			createItemFn: func(name string, price float64, categoryID uint) (*models.Item, error) {
				gotPrice = price
				return &models.Item{Name: name, Price: price}, nil
			},
		}
		handler := NewItemHandler(svc)
		r := setupItemRouter(handler)

		rec := doRequest(r, "POST", "/items", `{"name":"Échantillon","price":0,"categoryId":1}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotPrice != 0 {
			t.Errorf("expected service to receive price 0, got %v", gotPrice)
		}
	})

	t.Run("missing price", func(t *testing.T) {
		handler := NewItemHandler(&mockItemService{})
		r := setupItemRouter(handler)

		rec := doRequest(r, "POST", "/items", `{"name":"Pommes","categoryId":2}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "validation_error" {
			t.Errorf("expected validation_error, got %s", code)
		}
	})

	t.Run("missing categoryId", func(t *testing.T) {
		handler := NewItemHandler(&mockItemService{})
		r := setupItemRouter(handler)

		rec := doRequest(r, "POST", "/items", `{"name":"Pommes","price":12.5}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		svc := &mockItemService{
			createItemFn: func(name string, price float64, categoryID uint) (*models.Item, error) {
				return nil, apperrors.WithMessage(apperrors.ErrValidation, "categoryId does not reference an existing category")
			},
		}
		handler := NewItemHandler(svc)
		r := setupItemRouter(handler)

		rec := doRequest(r, "POST", "/items", `{"name":"Pommes","price":12.5,"categoryId":9999}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "validation_error" {
			t.Errorf("expected validation_error, got %s", code)
		}
	})
}

func TestItemHandler_DeleteItem(t *testing.T) {
	t.Run("returns success", func(t *testing.T) {
		var gotID uint
		svc := &mockItemService{
			deleteItemFn: func(itemID uint) error {
				gotID = itemID
				return nil
			},
		}
		handler := NewItemHandler(svc)
		r := setupItemRouter(handler)

		rec := doRequest(r, "DELETE", "/items/42", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if body := strings.TrimSpace(rec.Body.String()); body != `{"success":true}` {
			t.Errorf("expected {\"success\":true}, got %s", body)
		}
		if gotID != 42 {
			t.Errorf("expected service to receive id 42, got %d", gotID)
		}
	})

	t.Run("absent id still succeeds", func(t *testing.T) {
		handler := NewItemHandler(&mockItemService{})
		r := setupItemRouter(handler)

		rec := doRequest(r, "DELETE", "/items/424242", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("non numeric id", func(t *testing.T) {
		handler := NewItemHandler(&mockItemService{})
		r := setupItemRouter(handler)

		rec := doRequest(r, "DELETE", "/items/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "validation_error" {
			t.Errorf("expected validation_error, got %s", code)
		}
	})
}
