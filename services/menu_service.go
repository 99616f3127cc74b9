package services

import (
	"errors"
	"time"

	"github.com/NebiyouChanie/sapore/entity"
	"github.com/NebiyouChanie/sapore/pkg/apperr"
	"github.com/NebiyouChanie/sapore/repository"
	"gorm.io/gorm"
)

type MenuService struct {
	repo     *repository.MenuItemRepository
	settings *repository.MenuSettingsRepository
}

func NewMenuService(repo *repository.MenuItemRepository, settings *repository.MenuSettingsRepository) *MenuService {
	return &MenuService{repo: repo, settings: settings}
}

// MenuItemView is a menu item as exposed to readers: price and
// description are null when the display policy hides them.
type MenuItemView struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       *float64        `json:"price"`
	IsSpecial   bool            `json:"isSpecial"`
	IsMainMenu  bool            `json:"isMainMenu"`
	ImageUrl    string          `json:"imageUrl"`
	ItemType    entity.ItemType `json:"itemType"`
	CategoryID  uint            `json:"categoryId"`
	Category    entity.Category `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func viewOf(item entity.MenuItem, showPrice, showDescription bool) MenuItemView {
	v := MenuItemView{
		ID:         item.ID,
		Name:       item.Name,
		IsSpecial:  item.IsSpecial,
		IsMainMenu: item.IsMainMenu,
		ImageUrl:   item.ImageUrl,
		ItemType:   item.ItemType,
		CategoryID: item.CategoryID,
		Category:   item.Category,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
	if showPrice {
		price := item.Price
		v.Price = &price
	}
	if showDescription {
		description := item.Description
		v.Description = &description
	}
	return v
}

// List applies the display policy unless the caller is the admin panel.
func (s *MenuService) List(isAdmin bool) ([]MenuItemView, error) {
	items, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	showPrice, showDescription := true, true
	if !isAdmin {
		settings, err := s.settings.Get()
		if err != nil {
			return nil, apperr.Dependency("menu settings row missing", err)
		}
		showPrice = settings.ShowPrice
		showDescription = settings.ShowDescription
	}

	views := make([]MenuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, viewOf(item, showPrice, showDescription))
	}
	return views, nil
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Menu item not found")
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Create(item *entity.MenuItem) (*entity.MenuItem, error) {
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return s.repo.FindByID(item.ID)
}

func (s *MenuService) Update(id uint, item *entity.MenuItem) (*entity.MenuItem, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	item.ID = id
	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func (s *MenuService) Delete(id uint) error {
	affected, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Menu item not found")
	}
	return nil
}
