package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ger123348/NgopiBareng/pkg/resp"
	"github.com/ger123348/NgopiBareng/services"
)

type AdminController struct {
	Dashboard *services.DashboardService
}

func NewAdminController(dash *services.DashboardService) *AdminController {
	return &AdminController{Dashboard: dash}
}

// GET /admin/stats — ตัวเลขรวม ๆ
func (ac *AdminController) Stats(c *gin.Context) {
	stats, err := ac.Dashboard.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}
