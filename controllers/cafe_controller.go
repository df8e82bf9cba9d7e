// controllers/cafe_controller.go
package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ger123348/NgopiBareng/configs"
	"github.com/ger123348/NgopiBareng/pkg/resp"
	"github.com/ger123348/NgopiBareng/services"
	"github.com/ger123348/NgopiBareng/utils"
)

type CafeController struct {
	Service *services.CafeService
	Cfg     *configs.Config
}

func NewCafeController(s *services.CafeService, cfg *configs.Config) *CafeController {
	return &CafeController{Service: s, Cfg: cfg}
}

// GET /cafes (public, admin เห็น status อื่นได้เมื่อ filter เอง)
func (ctl *CafeController) List(c *gin.Context) {
	var f services.ListCafesFilter

	if v := c.Query("campus_id"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id > 0 {
			f.CampusID = uint(id)
		}
	}
	f.Status = c.Query("status")
	f.PriceCategory = c.Query("price_category")
	if v := c.Query("rating"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinRating = min
		}
	}
	if v := c.Query("facilities"); v != "" {
		for _, fac := range strings.Split(v, ",") {
			if fac = strings.TrimSpace(fac); fac != "" {
				f.Facilities = append(f.Facilities, fac)
			}
		}
	}
	f.Sort = c.Query("sort")

	vis := services.VisibilityFor(utils.CurrentRole(c), f.Status)
	cafes, err := ctl.Service.List(f, vis)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cafes})
}

// GET /cafes/:id (public)
func (ctl *CafeController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	cafe, err := ctl.Service.Detail(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, cafe)
}

// POST /cafes (Protected, multipart) — ยื่นร้านใหม่ เริ่ม pending เสมอ
func (ctl *CafeController) Submit(c *gin.Context) {
	in := services.CreateCafeInput{
		Name:          c.PostForm("name"),
		Description:   c.PostForm("description"),
		Address:       c.PostForm("address"),
		PriceCategory: c.PostForm("price_category"),
		Facilities:    c.PostFormArray("facilities"),
	}
	for _, raw := range c.PostFormArray("campus_ids") {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			resp.BadRequest(c, "campus_ids must be positive integers")
			return
		}
		in.CampusIDs = append(in.CampusIDs, uint(id))
	}

	form, err := c.MultipartForm()
	if err != nil {
		resp.BadRequest(c, "multipart form required")
		return
	}
	files := form.File["images"]
	// เช็คจำนวนกับชนิดรูปให้จบก่อน ค่อยเริ่มอัปโหลด
	if len(files) < ctl.Cfg.MinCafeImages {
		resp.BadRequest(c, "at least 3 images are required")
		return
	}
	images := make([]*utils.UploadedImage, 0, len(files))
	for _, fh := range files {
		img, err := utils.ReadImage(fh, "cafes", ctl.Cfg.MaxImageBytes)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		images = append(images, img)
	}

	cafe, err := ctl.Service.Submit(c.Request.Context(), utils.CurrentUserID(c), in, images)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, cafe)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /cafes/:id/status (admin)
func (ctl *CafeController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cafe, err := ctl.Service.SetStatus(uint(id), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, cafe)
}

// DELETE /cafes/:id (admin) — ลบร้านพร้อมลูกทั้งหมด
func (ctl *CafeController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Service.Delete(c.Request.Context(), uint(id)); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cafe deleted"})
}

type CreateMenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price" binding:"min=0"`
}

// POST /cafes/:id/menu-items (เจ้าของร้านหรือ admin)
func (ctl *CafeController) AddMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Service.AddMenuItem(utils.CurrentUserID(c), utils.CurrentRole(c), uint(id), services.MenuItemInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, item)
}
