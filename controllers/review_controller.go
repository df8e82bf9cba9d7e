// controllers/review_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ger123348/NgopiBareng/pkg/resp"
	"github.com/ger123348/NgopiBareng/services"
	"github.com/ger123348/NgopiBareng/utils"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Service: s}
}

// ===== DTO =====

type CreateReviewRequest struct {
	CafeID  uint   `json:"cafeId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

// ===== Handlers =====

// POST /reviews (Protected) — หนึ่งรีวิวต่อคนต่อร้าน
func (rc *ReviewController) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := rc.Service.Add(utils.CurrentUserID(c), req.CafeID, req.Rating, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, rev)
}

// PUT /reviews/:id (Protected, เจ้าของรีวิวเท่านั้น)
func (rc *ReviewController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := rc.Service.Update(uint(id), utils.CurrentUserID(c), services.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, rev)
}

// DELETE /reviews/:id (Protected, เจ้าของรีวิวเท่านั้น)
func (rc *ReviewController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := rc.Service.Delete(uint(id), utils.CurrentUserID(c), utils.CurrentRole(c)); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "review deleted"})
}

// DELETE /reviews/admin/:id (admin) — ข้ามเช็คเจ้าของ
func (rc *ReviewController) AdminDelete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := rc.Service.Delete(uint(id), utils.CurrentUserID(c), "admin"); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "review deleted by admin"})
}
