package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/CollegeSite/College-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ProfessorController struct {
	service *services.ProfessorService
}

func NewProfessorController(service *services.ProfessorService) *ProfessorController {
	return &ProfessorController{service: service}
}

// CreateProfessor handles POST requests creating a profile with a portrait
// (multipart field "image").
func (pc *ProfessorController) CreateProfessor(ctx *gin.Context) {
	input := services.ProfessorInput{
		Name:           strings.TrimSpace(ctx.PostForm("name")),
		Department:     strings.TrimSpace(ctx.PostForm("department")),
		Specialization: strings.TrimSpace(ctx.PostForm("specialization")),
		About:          strings.TrimSpace(ctx.PostForm("about")),
	}
	if input.Name == "" || input.Department == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Name and department are required"})
		return
	}

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

	professor, err := pc.service.CreateProfessor(ctx.Request.Context(), input, image)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, professor)
}

// GetAllProfessors handles GET requests listing every profile.
func (pc *ProfessorController) GetAllProfessors(ctx *gin.Context) {
	professors, err := pc.service.GetAllProfessors(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, professors)
}

// GetProfessorByID handles GET requests for a single profile.
func (pc *ProfessorController) GetProfessorByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	professor, err := pc.service.GetProfessorByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, professor)
}

// UpdateProfessor handles PUT requests patching a profile; an optional new
// portrait replaces (and destroys) the old one.
func (pc *ProfessorController) UpdateProfessor(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	input := services.ProfessorInput{
		Name:           strings.TrimSpace(ctx.PostForm("name")),
		Department:     strings.TrimSpace(ctx.PostForm("department")),
		Specialization: strings.TrimSpace(ctx.PostForm("specialization")),
		About:          strings.TrimSpace(ctx.PostForm("about")),
	}

	var image []byte
	if header, err := ctx.FormFile("image"); err == nil {
		image, err = readFormFile(header)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Could not read uploaded file"})
			return
		}
	}

	professor, err := pc.service.UpdateProfessor(ctx.Request.Context(), id, input, image)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, professor)
}

// DeleteProfessor handles DELETE requests removing a profile and its portrait.
func (pc *ProfessorController) DeleteProfessor(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	if err := pc.service.DeleteProfessor(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Professor deleted successfully"})
}
