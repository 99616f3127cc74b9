package repository

import (
	"time"

	"github.com/NebiyouChanie/sapore/entity"
	"gorm.io/gorm"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

// ReservationFilter bounds the date range inclusively; either bound may
// be nil.
type ReservationFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
}

func (r *ReservationRepository) Create(res *entity.Reservation) error {
	return r.DB.Create(res).Error
}

func (r *ReservationRepository) FindByID(id uint) (*entity.Reservation, error) {
	var res entity.Reservation
	if err := r.DB.First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) Save(res *entity.Reservation) error {
	return r.DB.Save(res).Error
}

func (r *ReservationRepository) Delete(id uint) (int64, error) {
	result := r.DB.Delete(&entity.Reservation{}, id)
	return result.RowsAffected, result.Error
}

func (r *ReservationRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.Reservation{}).Where("id = ?", id).
		Update("status", status).Error
}

// List returns one page of reservations, newest created first, plus the
// total match count for the filter.
func (r *ReservationRepository) List(f ReservationFilter) ([]entity.Reservation, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 10
	}
	offset := (f.Page - 1) * f.PageSize

	q := r.DB.Model(&entity.Reservation{})
	if f.StartDate != nil {
		q = q.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date <= ?", *f.EndDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reservations []entity.Reservation
	err := q.Order("created_at DESC").Limit(f.PageSize).Offset(offset).
		Find(&reservations).Error
	return reservations, total, err
}
