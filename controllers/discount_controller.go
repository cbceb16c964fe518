package controllers

import (
	"strconv"

	"github.com/andyrob2215/AAASmores/pkg/resp"
	"github.com/andyrob2215/AAASmores/services"

	"github.com/gin-gonic/gin"
)

type DiscountController struct {
	Discounts *services.DiscountService
}

func NewDiscountController(discounts *services.DiscountService) *DiscountController {
	return &DiscountController{Discounts: discounts}
}

// POST /discounts/validate — public, used live by the cart screen.
func (ctl *DiscountController) Validate(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	d, err := ctl.Discounts.Validate(req.Code)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if d == nil {
		resp.OK(c, gin.H{"valid": false})
		return
	}
	resp.OK(c, gin.H{"valid": true, "discount": d})
}

// POST /discounts (staff)
func (ctl *DiscountController) Create(c *gin.Context) {
	var req struct {
		Code  string  `json:"code" binding:"required"`
		Type  string  `json:"type" binding:"required,oneof=percent flat"`
		Value float64 `json:"value" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Discounts.Create(req.Code, req.Type, req.Value); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"success": true})
}

// DELETE /discounts/:id (staff)
func (ctl *DiscountController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Discounts.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Success(c)
}
