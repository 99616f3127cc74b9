package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/NebiyouChanie/sapore/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entity.Reservation{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestReservationListPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewReservationRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		res := &entity.Reservation{
			Name:           fmt.Sprintf("guest-%d", i),
			Email:          fmt.Sprintf("guest-%d@example.com", i),
			PhoneNumber:    "0123456789",
			NumberOfGuests: 2,
			Date:           mustDate(t, "2025-04-01"),
			Time:           "19:00",
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(res); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	reservations, total, err := repo.List(ReservationFilter{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 25 {
		t.Errorf("total = %d, want 25", total)
	}
	if len(reservations) != 10 {
		t.Fatalf("len(data) = %d, want 10", len(reservations))
	}

	// newest-created-first: page 2 starts at the 11th newest (guest-14)
	if reservations[0].Name != "guest-14" {
		t.Errorf("first of page 2 = %s, want guest-14", reservations[0].Name)
	}
}

func TestReservationListDateFilterInclusive(t *testing.T) {
	db := newTestDB(t)
	repo := NewReservationRepository(db)

	dates := []string{"2025-04-01", "2025-04-02", "2025-04-03", "2025-04-04", "2025-04-05"}
	for _, d := range dates {
		res := &entity.Reservation{
			Name:           d,
			Email:          "guest@example.com",
			PhoneNumber:    "0123456789",
			NumberOfGuests: 2,
			Date:           mustDate(t, d),
			Time:           "19:00",
		}
		if err := repo.Create(res); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	start := mustDate(t, "2025-04-02")
	end := mustDate(t, "2025-04-04")
	reservations, total, err := repo.List(ReservationFilter{StartDate: &start, EndDate: &end, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	for _, r := range reservations {
		if r.Date.Before(start) || r.Date.After(end) {
			t.Errorf("reservation %s outside [%s, %s]", r.Name, "2025-04-02", "2025-04-04")
		}
	}

	// boundary dates are included
	found := map[string]bool{}
	for _, r := range reservations {
		found[r.Name] = true
	}
	if !found["2025-04-02"] || !found["2025-04-04"] {
		t.Errorf("boundary dates missing from %v", found)
	}
}

func TestReservationListOpenEndedBounds(t *testing.T) {
	db := newTestDB(t)
	repo := NewReservationRepository(db)

	for _, d := range []string{"2025-04-01", "2025-04-10", "2025-04-20"} {
		if err := repo.Create(&entity.Reservation{
			Name: d, Email: "g@example.com", PhoneNumber: "0123456789",
			NumberOfGuests: 1, Date: mustDate(t, d), Time: "18:00",
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	start := mustDate(t, "2025-04-10")
	_, total, err := repo.List(ReservationFilter{StartDate: &start})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 {
		t.Errorf("startDate only: total = %d, want 2", total)
	}

	end := mustDate(t, "2025-04-10")
	_, total, err = repo.List(ReservationFilter{EndDate: &end})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 {
		t.Errorf("endDate only: total = %d, want 2", total)
	}
}

func TestReservationDefaultStatusPending(t *testing.T) {
	db := newTestDB(t)
	repo := NewReservationRepository(db)

	res := &entity.Reservation{
		Name: "guest", Email: "g@example.com", PhoneNumber: "0123456789",
		NumberOfGuests: 2, Date: mustDate(t, "2025-04-01"), Time: "19:00",
	}
	if err := repo.Create(res); err != nil {
		t.Fatalf("create: %v", err)
	}

	stored, err := repo.FindByID(res.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.Status != entity.StatusPending {
		t.Errorf("status = %q, want %q", stored.Status, entity.StatusPending)
	}
}
