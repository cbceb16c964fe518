package controllers

import (
	"encoding/json"
	"strconv"

	"github.com/andyrob2215/AAASmores/configs"
	"github.com/andyrob2215/AAASmores/entity"
	"github.com/andyrob2215/AAASmores/pkg/resp"
	"github.com/andyrob2215/AAASmores/services"
	"github.com/andyrob2215/AAASmores/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menus *services.MenuService
	Cfg   *configs.Config
}

func NewMenuController(menus *services.MenuService, cfg *configs.Config) *MenuController {
	return &MenuController{Menus: menus, Cfg: cfg}
}

// GET /menu
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Menus.ListPublic()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /menu (staff, multipart: fields + optional image + ingredientIds)
func (ctl *MenuController) Create(c *gin.Context) {
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	item := entity.MenuItem{
		Name:               c.PostForm("name"),
		Description:        c.PostForm("description"),
		Price:              price,
		Category:           c.PostForm("category"),
		ManualAvailability: formBool(c, "manual_availability", true),
		IsVisible:          formBool(c, "is_visible", true),
	}
	if item.Name == "" {
		resp.BadRequest(c, "name is required")
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := utils.SaveUpload(c, file, ctl.Cfg.UploadDir)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		item.ImageURL = url
	}

	recipe, _ := parseIngredientIDs(c.PostForm("ingredientIds"))

	if err := ctl.Menus.Create(&item, recipe); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"success": true, "id": item.ID})
}

// PUT /menu/:id (staff, multipart; image kept when absent, recipe rewritten
// only when an ingredient list was sent)
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	fields := map[string]any{
		"name":                c.PostForm("name"),
		"description":         c.PostForm("description"),
		"price":               price,
		"category":            c.PostForm("category"),
		"manual_availability": formBool(c, "manual_availability", true),
		"is_visible":          formBool(c, "is_visible", true),
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := utils.SaveUpload(c, file, ctl.Cfg.UploadDir)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		fields["image_url"] = url
	}

	raw := c.PostForm("ingredientIds")
	recipe, recipeSent := parseIngredientIDs(raw)

	if err := ctl.Menus.Update(uint(id), fields, recipe, recipeSent); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Success(c)
}

// DELETE /menu/:id (staff) — soft delete, order history keeps its rows.
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Menus.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Success(c)
}

// parseIngredientIDs accepts either [{"id":1,"qty":2}] or a bare [1,2],
// normalizing the latter to quantity 1 per ingredient.
func parseIngredientIDs(raw string) ([]services.RecipeIn, bool) {
	if raw == "" {
		return nil, false
	}
	var structured []services.RecipeIn
	if err := json.Unmarshal([]byte(raw), &structured); err == nil {
		return structured, true
	}
	var bare []uint
	if err := json.Unmarshal([]byte(raw), &bare); err == nil {
		out := make([]services.RecipeIn, 0, len(bare))
		for _, id := range bare {
			out = append(out, services.RecipeIn{ID: id, Qty: 1})
		}
		return out, true
	}
	return nil, true // malformed list clears the recipe, matching old behavior
}

func formBool(c *gin.Context, key string, fallback bool) bool {
	v := c.PostForm(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
