package controllers

import (
	"github.com/andyrob2215/AAASmores/pkg/resp"
	"github.com/andyrob2215/AAASmores/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	DashboardSvc *services.DashboardService
}

func NewAdminController(dashboard *services.DashboardService) *AdminController {
	return &AdminController{DashboardSvc: dashboard}
}

// GET /admin/dashboard — one payload for the whole staff screen; the client
// polls it on a fixed interval rather than subscribing to anything.
func (ctl *AdminController) Dashboard(c *gin.Context) {
	out, err := ctl.DashboardSvc.Build()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
