// controllers/campus_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ger123348/NgopiBareng/configs"
	"github.com/ger123348/NgopiBareng/pkg/resp"
	"github.com/ger123348/NgopiBareng/services"
	"github.com/ger123348/NgopiBareng/utils"
)

type CampusController struct {
	Service *services.CampusService
	Cfg     *configs.Config
}

func NewCampusController(s *services.CampusService, cfg *configs.Config) *CampusController {
	return &CampusController{Service: s, Cfg: cfg}
}

// GET /campuses (public)
func (ctl *CampusController) List(c *gin.Context) {
	campuses, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": campuses})
}

// POST /campuses (admin, multipart) — รูปใส่หรือไม่ใส่ก็ได้
func (ctl *CampusController) Create(c *gin.Context) {
	name := c.PostForm("name")

	var image *utils.UploadedImage
	if fh, err := c.FormFile("image"); err == nil {
		img, err := utils.ReadImage(fh, "campuses", ctl.Cfg.MaxImageBytes)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		image = img
	}

	campus, err := ctl.Service.Create(c.Request.Context(), name, image)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, campus)
}
