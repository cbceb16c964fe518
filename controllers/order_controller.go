package controllers

import (
	"errors"
	"strconv"

	"github.com/andyrob2215/AAASmores/pkg/resp"
	"github.com/andyrob2215/AAASmores/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.Orders.Checkout(&req)
	if err != nil {
		if errors.Is(err, services.ErrUnlockCode) {
			resp.Forbidden(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// PUT /orders/:id/payment-method
func (ctl *OrderController) ChangePaymentMethod(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		PaymentMethod string `json:"paymentMethod" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Orders.ChangePaymentMethod(uint(id), req.PaymentMethod); err != nil {
		if errors.Is(err, services.ErrUnknownMethod) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Success(c)
}

// GET /unpaid
func (ctl *OrderController) ListUnpaid(c *gin.Context) {
	orders, err := ctl.Orders.ListUnpaid()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// ----- Staff routes -----

// PUT /orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Orders.UpdateStatus(uint(id), req.Status); err != nil {
		if errors.Is(err, services.ErrUnknownStatus) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Success(c)
}

// PUT /orders/:id/pickup
func (ctl *OrderController) Pickup(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Orders.MarkPickedUp(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Success(c)
}

// PUT /admin/orders/:id/mark-paid
func (ctl *OrderController) MarkPaid(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Orders.MarkPaid(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Success(c)
}

// PUT /admin/orders/:id/delete — cancels; orders are never physically removed.
func (ctl *OrderController) Cancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Orders.Cancel(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Success(c)
}
