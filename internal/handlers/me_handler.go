package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/allanebarua/Tenant-Management-System/internal/dto"
	"github.com/allanebarua/Tenant-Management-System/internal/httpresp"
	"github.com/allanebarua/Tenant-Management-System/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe returns the authenticated principal's own representation. The
// middleware already loaded the landlord and contact associations.
func (h *MeHandler) GetMe(c *gin.Context) {
	principal := middleware.Principal(c)
	httpresp.OK(c, dto.NewUserResponse(principal))
}
