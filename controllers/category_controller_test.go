package controllers_test

import (
	"net/http"
	"testing"

	"github.com/NebiyouChanie/sapore/entity"
)

func TestCategoryListEmpty(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/categories", "", "")
	wantStatus(t, w, http.StatusNotFound)
}

func TestCategoryCreateRequiresAdmin(t *testing.T) {
	r, db := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/categories", `{"name":"Pasta"}`, "")
	wantStatus(t, w, http.StatusUnauthorized)

	var count int64
	db.Model(&entity.Category{}).Count(&count)
	if count != 0 {
		t.Errorf("category created without a session")
	}
}

func TestCategoryDuplicateCreate(t *testing.T) {
	r, _ := newTestServer(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/categories", `{"name":"Pasta"}`, token)
	wantStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodPost, "/categories", `{"name":"Pasta"}`, token)
	wantStatus(t, w, http.StatusBadRequest)
}

func TestCategoryUpdate(t *testing.T) {
	r, db := newTestServer(t)
	token := adminToken(t)

	category := entity.Category{Name: "Pasta"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := doJSON(t, r, http.MethodPut, "/categories/999", `{"name":"Pizza"}`, token)
	wantStatus(t, w, http.StatusNotFound)

	w = doJSON(t, r, http.MethodPut, "/categories/1", `{}`, token)
	wantStatus(t, w, http.StatusBadRequest)

	w = doJSON(t, r, http.MethodPut, "/categories/1", `{"name":"Pizza"}`, token)
	wantStatus(t, w, http.StatusOK)
}

func TestCategoryDeleteReferencedByItems(t *testing.T) {
	r, db := newTestServer(t)
	token := adminToken(t)

	category := entity.Category{Name: "Pasta"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	item := entity.MenuItem{
		Name: "Carbonara", Description: "Classic", Price: 12.5,
		CategoryID: category.ID, ImageUrl: "https://img.example.com/c.jpg",
		ItemType: entity.ItemTypeMainDish,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}

	w := doJSON(t, r, http.MethodDelete, "/categories/1", "", token)
	wantStatus(t, w, http.StatusBadRequest)

	// both the category and its items are untouched
	var categories, items int64
	db.Model(&entity.Category{}).Count(&categories)
	db.Model(&entity.MenuItem{}).Count(&items)
	if categories != 1 || items != 1 {
		t.Errorf("counts after blocked delete: categories=%d items=%d, want 1/1", categories, items)
	}

	// removing the item unblocks the delete
	if err := db.Delete(&entity.MenuItem{}, item.ID).Error; err != nil {
		t.Fatalf("delete item: %v", err)
	}
	w = doJSON(t, r, http.MethodDelete, "/categories/1", "", token)
	wantStatus(t, w, http.StatusOK)
}
