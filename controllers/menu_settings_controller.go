package controllers

import (
	"github.com/NebiyouChanie/sapore/pkg/resp"
	"github.com/NebiyouChanie/sapore/services"
	"github.com/gin-gonic/gin"
)

type MenuSettingsRequest struct {
	ShowPrice       bool `json:"showPrice"`
	ShowDescription bool `json:"showDescription"`
}

type MenuSettingsController struct {
	service *services.MenuSettingsService
}

func NewMenuSettingsController(service *services.MenuSettingsService) *MenuSettingsController {
	return &MenuSettingsController{service: service}
}

// GET /menu-settings
func (ctl *MenuSettingsController) Get(c *gin.Context) {
	settings, err := ctl.service.Get()
	if err != nil {
		resp.Error(c, "[MENUSETTINGS_GET]", err)
		return
	}
	resp.OK(c, settings)
}

// POST /menu-settings
func (ctl *MenuSettingsController) Update(c *gin.Context) {
	var req MenuSettingsRequest
	if err := bindJSON(c, &req); err != nil {
		resp.Error(c, "[MENUSETTINGS_POST]", err)
		return
	}

	settings, err := ctl.service.Update(req.ShowPrice, req.ShowDescription)
	if err != nil {
		resp.Error(c, "[MENUSETTINGS_POST]", err)
		return
	}
	resp.OK(c, settings)
}
