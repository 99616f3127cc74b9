package repository

import (
	"github.com/NebiyouChanie/sapore/entity"
	"gorm.io/gorm"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) FindByEmail(email string) (*entity.Admin, error) {
	var admin entity.Admin
	if err := r.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Admin{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *AdminRepository) Create(admin *entity.Admin) error {
	return r.DB.Create(admin).Error
}
