package controllers

import (
	"strconv"

	"github.com/NebiyouChanie/sapore/entity"
	"github.com/NebiyouChanie/sapore/pkg/resp"
	"github.com/NebiyouChanie/sapore/services"
	"github.com/gin-gonic/gin"
)

type MenuItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,min=0"`
	CategoryID  uint     `json:"categoryId" binding:"required"`
	IsSpecial   bool     `json:"isSpecial"`
	IsMainMenu  bool     `json:"isMainMenu"`
	ImageUrl    string   `json:"imageUrl" binding:"required,url"`
	ItemType    string   `json:"itemType" binding:"required,oneof=starter maindish dessert"`
}

func (r *MenuItemRequest) toEntity() *entity.MenuItem {
	return &entity.MenuItem{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		CategoryID:  r.CategoryID,
		IsSpecial:   r.IsSpecial,
		IsMainMenu:  r.IsMainMenu,
		ImageUrl:    r.ImageUrl,
		ItemType:    entity.ItemType(r.ItemType),
	}
}

type MenuItemController struct {
	service *services.MenuService
}

func NewMenuItemController(service *services.MenuService) *MenuItemController {
	return &MenuItemController{service: service}
}

// GET /menu-items
// ?admin=true is the admin panel flag: it bypasses the display policy.
func (ctl *MenuItemController) List(c *gin.Context) {
	isAdmin := c.Query("admin") == "true"

	items, err := ctl.service.List(isAdmin)
	if err != nil {
		resp.Error(c, "[MENUITEM_LIST]", err)
		return
	}
	resp.OK(c, items)
}

// GET /menu-items/:id
func (ctl *MenuItemController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "Invalid menu item ID")
		return
	}

	item, err := ctl.service.Get(uint(id))
	if err != nil {
		resp.Error(c, "[MENUITEM_GET]", err)
		return
	}
	resp.OK(c, item)
}

// POST /menu-items
func (ctl *MenuItemController) Create(c *gin.Context) {
	var req MenuItemRequest
	if err := bindJSON(c, &req); err != nil {
		resp.Error(c, "[MENUITEM_POST]", err)
		return
	}

	item, err := ctl.service.Create(req.toEntity())
	if err != nil {
		resp.Error(c, "[MENUITEM_POST]", err)
		return
	}
	resp.Created(c, item)
}

// PUT /menu-items/:id
func (ctl *MenuItemController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req MenuItemRequest
	if err := bindJSON(c, &req); err != nil {
		resp.Error(c, "[MENUITEM_PUT]", err)
		return
	}

	item, err := ctl.service.Update(uint(id), req.toEntity())
	if err != nil {
		resp.Error(c, "[MENUITEM_PUT]", err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id
func (ctl *MenuItemController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := ctl.service.Delete(uint(id)); err != nil {
		resp.Error(c, "[MENUITEM_DELETE]", err)
		return
	}
	resp.OK(c, gin.H{"message": "Menu item deleted successfully"})
}
