package controllers

import (
	"net/http"

	"github.com/CollegeSite/College-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type MagazineController struct {
	service *services.MagazineService
}

func NewMagazineController(service *services.MagazineService) *MagazineController {
	return &MagazineController{service: service}
}

type magazineRequest struct {
	MagazineName string `json:"magazineName"`
	MagazineLink string `json:"magazineLink"`
}

// UploadMagazine handles POST requests registering a magazine link.
func (mc *MagazineController) UploadMagazine(ctx *gin.Context) {
	var req magazineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	magazine, err := mc.service.UploadMagazine(ctx.Request.Context(), req.MagazineName, req.MagazineLink)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Magazine uploaded successfully", "magazine": magazine})
}

// GetAllMagazines handles GET requests listing every magazine link.
func (mc *MagazineController) GetAllMagazines(ctx *gin.Context) {
	magazines, err := mc.service.GetAllMagazines(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, magazines)
}

// DeleteMagazine handles DELETE requests removing a magazine by name.
func (mc *MagazineController) DeleteMagazine(ctx *gin.Context) {
	var req struct {
		MagazineName string `json:"magazineName"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mc.service.DeleteMagazine(ctx.Request.Context(), req.MagazineName); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Magazine deleted successfully"})
}
