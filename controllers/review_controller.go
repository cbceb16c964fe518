package controllers

import (
	"errors"

	"github.com/andyrob2215/AAASmores/pkg/resp"
	"github.com/andyrob2215/AAASmores/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

// GET /reviews
func (ctl *ReviewController) List(c *gin.Context) {
	out, err := ctl.Reviews.ListLatest()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /reviews
func (ctl *ReviewController) Create(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Reviews.Create(req.Name, req.Rating, req.Comment); err != nil {
		if errors.Is(err, services.ErrBadRating) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"success": true})
}

// POST /feedback — free-form, separate from star reviews.
func (ctl *ReviewController) CreateFeedback(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Feedback string `json:"feedback" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Reviews.CreateFeedback(req.Name, req.Feedback); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"success": true})
}
