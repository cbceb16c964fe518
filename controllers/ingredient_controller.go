package controllers

import (
	"strconv"

	"github.com/andyrob2215/AAASmores/pkg/resp"
	"github.com/andyrob2215/AAASmores/repository"

	"github.com/gin-gonic/gin"
)

type IngredientController struct {
	Repo *repository.IngredientRepository
}

func NewIngredientController(repo *repository.IngredientRepository) *IngredientController {
	return &IngredientController{Repo: repo}
}

// GET /ingredients — in-stock only, for the customization picker.
func (ctl *IngredientController) List(c *gin.Context) {
	out, err := ctl.Repo.ListInStock()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /ingredients (staff)
func (ctl *IngredientController) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Repo.Create(req.Name); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"success": true})
}

// PUT /ingredients/:id/toggle (staff) — flips stock; dependent menu items
// recompute availability on the next read.
func (ctl *IngredientController) Toggle(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		InStock *bool `json:"inStock" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Repo.SetInStock(uint(id), *req.InStock); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Success(c)
}

// DELETE /ingredients/:id (staff) — also drops the recipe rows using it.
func (ctl *IngredientController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Success(c)
}
