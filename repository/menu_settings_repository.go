package repository

import (
	"github.com/NebiyouChanie/sapore/entity"
	"gorm.io/gorm"
)

type MenuSettingsRepository struct {
	DB *gorm.DB
}

func NewMenuSettingsRepository(db *gorm.DB) *MenuSettingsRepository {
	return &MenuSettingsRepository{DB: db}
}

// Get returns the singleton settings row, seeded at startup.
func (r *MenuSettingsRepository) Get() (*entity.MenuSettings, error) {
	var settings entity.MenuSettings
	if err := r.DB.First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *MenuSettingsRepository) Update(id uint, showPrice, showDescription bool) error {
	return r.DB.Model(&entity.MenuSettings{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"show_price":       showPrice,
			"show_description": showDescription,
		}).Error
}
