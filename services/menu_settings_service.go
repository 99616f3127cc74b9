package services

import (
	"errors"

	"github.com/NebiyouChanie/sapore/entity"
	"github.com/NebiyouChanie/sapore/pkg/apperr"
	"github.com/NebiyouChanie/sapore/repository"
	"gorm.io/gorm"
)

type MenuSettingsService struct {
	repo *repository.MenuSettingsRepository
}

func NewMenuSettingsService(repo *repository.MenuSettingsRepository) *MenuSettingsService {
	return &MenuSettingsService{repo: repo}
}

func (s *MenuSettingsService) Get() (*entity.MenuSettings, error) {
	settings, err := s.repo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// seeded at startup; absence is an operational fault
			return nil, apperr.Dependency("menu settings row missing", err)
		}
		return nil, err
	}
	return settings, nil
}

func (s *MenuSettingsService) Update(showPrice, showDescription bool) (*entity.MenuSettings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(settings.ID, showPrice, showDescription); err != nil {
		return nil, err
	}
	settings.ShowPrice = showPrice
	settings.ShowDescription = showDescription
	return settings, nil
}
