package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/CollegeSite/College-Backend/src/models"
	"github.com/CollegeSite/College-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type PositionController struct {
	service *services.PositionService
}

func NewPositionController(service *services.PositionService) *PositionController {
	return &PositionController{service: service}
}

// AddPositionHolder handles POST requests creating a holder (multipart field
// "image") if the role still has capacity.
func (pc *PositionController) AddPositionHolder(ctx *gin.Context) {
	name := strings.TrimSpace(ctx.PostForm("name"))
	position := models.Position(strings.TrimSpace(ctx.PostForm("position")))

	header, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Image is required"})
		return
	}
	image, err := readFormFile(header)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Could not read uploaded file"})
		return
	}

	holder, err := pc.service.AddPositionHolder(ctx.Request.Context(), name, position, image)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, holder)
}

// GetAllPositionHolders handles GET requests listing every holder.
func (pc *PositionController) GetAllPositionHolders(ctx *gin.Context) {
	holders, err := pc.service.GetAllPositionHolders(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, holders)
}

// DeletePositionHolder handles DELETE requests removing a holder and their
// portrait.
func (pc *PositionController) DeletePositionHolder(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	if err := pc.service.DeletePositionHolder(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Position holder deleted successfully"})
}
