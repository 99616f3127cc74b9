package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/NebiyouChanie/sapore/entity"
)

func decodeData(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var envelope struct {
		OK   bool            `json:"ok"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, body)
	}
	var data map[string]any
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		t.Fatalf("decode data: %v (%s)", err, envelope.Data)
	}
	return data
}

func decodeDataList(t *testing.T, body []byte) []map[string]any {
	t.Helper()
	var envelope struct {
		OK   bool             `json:"ok"`
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, body)
	}
	return envelope.Data
}

func TestMenuItemDisplayPolicy(t *testing.T) {
	r, db := newTestServer(t)

	category := entity.Category{Name: "Pasta"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	item := entity.MenuItem{
		Name: "Carbonara", Description: "Classic roman pasta", Price: 12.5,
		CategoryID: category.ID, ImageUrl: "https://img.example.com/c.jpg",
		ItemType: entity.ItemTypeMainDish,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}

	// hide price, keep description
	if err := db.Model(&entity.MenuSettings{}).Where("1 = 1").
		Updates(map[string]interface{}{"show_price": false, "show_description": true}).Error; err != nil {
		t.Fatalf("update settings: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/menu-items", "", "")
	wantStatus(t, w, http.StatusOK)
	items := decodeDataList(t, w.Body.Bytes())
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0]["price"] != nil {
		t.Errorf("price = %v, want hidden (null)", items[0]["price"])
	}
	if items[0]["description"] != "Classic roman pasta" {
		t.Errorf("description = %v, want intact", items[0]["description"])
	}

	// the admin panel flag bypasses the policy
	w = doJSON(t, r, http.MethodGet, "/menu-items?admin=true", "", "")
	wantStatus(t, w, http.StatusOK)
	items = decodeDataList(t, w.Body.Bytes())
	if items[0]["price"] != 12.5 {
		t.Errorf("admin price = %v, want 12.5", items[0]["price"])
	}
	if items[0]["description"] != "Classic roman pasta" {
		t.Errorf("admin description = %v, want intact", items[0]["description"])
	}
}

func TestMenuItemCreateReadRoundtrip(t *testing.T) {
	r, db := newTestServer(t)
	token := adminToken(t)

	if err := db.Create(&entity.Category{Name: "Dessert"}).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	payload := `{
		"name": "Tiramisu",
		"description": "Espresso-soaked layers",
		"price": 7.25,
		"categoryId": 1,
		"isSpecial": true,
		"imageUrl": "https://img.example.com/t.jpg",
		"itemType": "dessert"
	}`
	w := doJSON(t, r, http.MethodPost, "/menu-items", payload, token)
	wantStatus(t, w, http.StatusCreated)
	created := decodeData(t, w.Body.Bytes())

	w = doJSON(t, r, http.MethodGet, "/menu-items/1", "", "")
	wantStatus(t, w, http.StatusOK)
	read := decodeData(t, w.Body.Bytes())

	for _, field := range []string{"name", "description", "price", "isSpecial", "isMainMenu", "imageUrl", "itemType", "categoryId"} {
		if created[field] != read[field] {
			t.Errorf("%s: created %v != read %v", field, created[field], read[field])
		}
	}
	if category, ok := read["category"].(map[string]any); !ok || category["name"] != "Dessert" {
		t.Errorf("embedded category = %v, want Dessert", read["category"])
	}
}

func TestMenuItemValidation(t *testing.T) {
	r, _ := newTestServer(t)
	token := adminToken(t)

	payload := `{
		"name": "Mystery",
		"description": "???",
		"price": 5,
		"categoryId": 1,
		"imageUrl": "not-a-url",
		"itemType": "drink"
	}`
	w := doJSON(t, r, http.MethodPost, "/menu-items", payload, token)
	wantStatus(t, w, http.StatusBadRequest)

	var body struct {
		Details map[string][]string `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Details["imageUrl"]) == 0 || len(body.Details["itemType"]) == 0 {
		t.Errorf("details = %v, want imageUrl and itemType errors", body.Details)
	}
}

func TestMenuItemGetMissing(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/menu-items/42", "", "")
	wantStatus(t, w, http.StatusNotFound)
}
