package repository

import (
	"github.com/NebiyouChanie/sapore/entity"
	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

func (r *MenuItemRepository) FindAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Preload("Category").Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

// Update writes the full schema through a field map so false booleans
// are persisted too.
func (r *MenuItemRepository) Update(item *entity.MenuItem) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":         item.Name,
			"description":  item.Description,
			"price":        item.Price,
			"category_id":  item.CategoryID,
			"is_special":   item.IsSpecial,
			"is_main_menu": item.IsMainMenu,
			"image_url":    item.ImageUrl,
			"item_type":    item.ItemType,
		}).Error
}

func (r *MenuItemRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}

func (r *MenuItemRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
