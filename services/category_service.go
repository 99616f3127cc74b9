package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NebiyouChanie/sapore/entity"
	"github.com/NebiyouChanie/sapore/pkg/apperr"
	"github.com/NebiyouChanie/sapore/repository"
	"gorm.io/gorm"
)

type CategoryService struct {
	repo      *repository.CategoryRepository
	menuItems *repository.MenuItemRepository
}

func NewCategoryService(repo *repository.CategoryRepository, menuItems *repository.MenuItemRepository) *CategoryService {
	return &CategoryService{repo: repo, menuItems: menuItems}
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.repo.FindAll()
}

// Create inserts in one statement; the unique index decides duplicates,
// so two concurrent creates with the same name cannot both succeed.
func (s *CategoryService) Create(name string) (*entity.Category, error) {
	category := &entity.Category{Name: strings.TrimSpace(name)}
	if err := s.repo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Category already exists")
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(id uint, name string) (*entity.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Category not found")
		}
		return nil, err
	}

	if err := s.repo.UpdateName(id, strings.TrimSpace(name)); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Category already exists")
		}
		return nil, err
	}
	category.Name = strings.TrimSpace(name)
	return category, nil
}

// Delete refuses while any menu item still references the category.
func (s *CategoryService) Delete(id uint) (*entity.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Category not found")
		}
		return nil, err
	}

	count, err := s.menuItems.CountByCategory(id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict(fmt.Sprintf("This category is used by %d menu item(s)", count))
	}

	if err := s.repo.Delete(id); err != nil {
		return nil, err
	}
	return category, nil
}
