package controllers

import (
	"strconv"

	"github.com/NebiyouChanie/sapore/pkg/apperr"
	"github.com/NebiyouChanie/sapore/pkg/resp"
	"github.com/NebiyouChanie/sapore/services"
	"github.com/gin-gonic/gin"
)

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CategoryController struct {
	service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

// GET /categories
func (ctl *CategoryController) List(c *gin.Context) {
	categories, err := ctl.service.List()
	if err != nil {
		resp.Error(c, "[CATEGORY_LIST]", err)
		return
	}
	if len(categories) == 0 {
		resp.Error(c, "[CATEGORY_LIST]", apperr.NotFound("No Categories Found"))
		return
	}
	resp.OK(c, categories)
}

// POST /categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req CategoryRequest
	if err := bindJSON(c, &req); err != nil {
		resp.Error(c, "[CATEGORY_POST]", err)
		return
	}

	category, err := ctl.service.Create(req.Name)
	if err != nil {
		resp.Error(c, "[CATEGORY_POST]", err)
		return
	}
	resp.OK(c, category)
}

// PUT /categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "Invalid category ID")
		return
	}

	var req CategoryRequest
	if err := bindJSON(c, &req); err != nil {
		resp.Error(c, "[CATEGORY_PUT]", err)
		return
	}

	category, err := ctl.service.Update(uint(id), req.Name)
	if err != nil {
		resp.Error(c, "[CATEGORY_PUT]", err)
		return
	}
	resp.OK(c, category)
}

// DELETE /categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "Invalid category ID")
		return
	}

	category, err := ctl.service.Delete(uint(id))
	if err != nil {
		resp.Error(c, "[CATEGORY_DELETE]", err)
		return
	}
	resp.OK(c, category)
}
