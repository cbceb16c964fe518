package controllers

import (
	"github.com/andyrob2215/AAASmores/pkg/resp"
	"github.com/andyrob2215/AAASmores/services"

	"github.com/gin-gonic/gin"
)

type QueueController struct {
	Queue *services.QueueService
}

func NewQueueController(queue *services.QueueService) *QueueController {
	return &QueueController{Queue: queue}
}

// GET /queue — polled every few seconds by the queue screen.
func (ctl *QueueController) List(c *gin.Context) {
	entries, err := ctl.Queue.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, entries)
}
