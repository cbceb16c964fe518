package controllers

import (
	"github.com/andyrob2215/AAASmores/configs"
	"github.com/andyrob2215/AAASmores/pkg/resp"
	"github.com/andyrob2215/AAASmores/services"
	"github.com/andyrob2215/AAASmores/utils"

	"github.com/gin-gonic/gin"
)

type ConfigController struct {
	Config *services.ConfigService
	Cfg    *configs.Config
}

func NewConfigController(config *services.ConfigService, cfg *configs.Config) *ConfigController {
	return &ConfigController{Config: config, Cfg: cfg}
}

// GET /config — read on most page loads.
func (ctl *ConfigController) Get(c *gin.Context) {
	settings, err := ctl.Config.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, settings)
}

// POST /config (staff) — partial upsert.
func (ctl *ConfigController) Update(c *gin.Context) {
	var req services.UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Config.Update(&req); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Success(c)
}

// POST /config/background (staff, multipart) — hero image or video.
func (ctl *ConfigController) SetBackground(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "no file uploaded")
		return
	}

	url, err := utils.SaveUpload(c, file, ctl.Cfg.UploadDir)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	kind := utils.UploadKind(file)

	if err := ctl.Config.SetHeroBackground(url, kind); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"success": true, "url": url, "type": kind})
}
