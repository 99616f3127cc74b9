package controllers_test

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NebiyouChanie/sapore/configs"
	"github.com/NebiyouChanie/sapore/entity"
	"github.com/NebiyouChanie/sapore/routes"
	"github.com/NebiyouChanie/sapore/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeMailer struct {
	sent int
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.sent++
	return nil
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Create(&entity.MenuSettings{ShowPrice: true, ShowDescription: true}).Error; err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	cfg := &configs.Config{
		JWTSecret:   "test-secret",
		JWTTTL:      time.Hour,
		NotifyEmail: "owner@sapore.restaurant",
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, &fakeMailer{}, nil)
	return r, db
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken("admin@sapore.restaurant", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}
