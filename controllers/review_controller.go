package controllers

import (
	"github.com/gin-gonic/gin"

	"tourbooking/response"
	"tourbooking/services"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) ReviewController {
	return ReviewController{Reviews: reviews}
}

// GetReviews lists reviews for moderation; ?pending=true shows unapproved ones only
func (r ReviewController) GetReviews(c *gin.Context) {
	list, err := r.Reviews.List(c.Request.Context(), c.Query("pending") == "true")
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, list)
}

func (r ReviewController) ApproveReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	review, err := r.Reviews.Approve(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, review)
}

func (r ReviewController) DeleteReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := r.Reviews.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}
