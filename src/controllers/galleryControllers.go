package controllers

import (
	"net/http"
	"strconv"

	"github.com/CollegeSite/College-Backend/src/dtos"
	"github.com/CollegeSite/College-Backend/src/models"
	"github.com/CollegeSite/College-Backend/src/services"
	"github.com/CollegeSite/College-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type GalleryController struct {
	service *services.GalleryService
}

func NewGalleryController(service *services.GalleryService) *GalleryController {
	return &GalleryController{service: service}
}

// UploadImages handles POST requests appending up to 8 images to a named
// event's gallery (multipart field "images", text field "eventName").
func (gc *GalleryController) UploadImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	headers := form.File["images"]
	if len(headers) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No images provided"})
		return
	}
	if len(headers) > models.MaxGalleryImages {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "At most 8 images can be uploaded at once"})
		return
	}

	files := make([][]byte, 0, len(headers))
	for _, header := range headers {
		data, err := readFormFile(header)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
			return
		}
		files = append(files, data)
	}

	result, err := gc.service.AddImages(ctx.Request.Context(), ctx.PostForm("eventName"), files)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ImportDriveImages handles POST requests appending images fetched from
// Google Drive share links instead of direct uploads.
func (gc *GalleryController) ImportDriveImages(ctx *gin.Context) {
	var req dtos.DriveImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.DriveURLs) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No drive links provided"})
		return
	}
	if len(req.DriveURLs) > models.MaxGalleryImages {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "At most 8 images can be imported at once"})
		return
	}

	files := make([][]byte, 0, len(req.DriveURLs))
	for _, url := range req.DriveURLs {
		if !utils.IsGoogleDriveURL(url) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Not a Google Drive link: " + url})
			return
		}
		fileID, err := utils.ExtractFileIDFromURL(url)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		data, err := utils.DownloadDriveFile(fileID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		files = append(files, data)
	}

	result, err := gc.service.AddImages(ctx.Request.Context(), req.EventName, files)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetEvents handles GET requests listing every gallery.
func (gc *GalleryController) GetEvents(ctx *gin.Context) {
	galleries, err := gc.service.GetAllGalleries(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, galleries)
}

// DeleteEvent handles DELETE requests removing a gallery and its remote images.
func (gc *GalleryController) DeleteEvent(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := gc.service.DeleteGallery(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Event and associated images deleted successfully"})
}

// DeleteImage handles DELETE requests removing one image from a gallery.
func (gc *GalleryController) DeleteImage(ctx *gin.Context) {
	var req dtos.DeleteImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	remaining, err := gc.service.DeleteSingleImage(ctx.Request.Context(), req.EventName, req.ImageURL)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message":         "Image deleted successfully",
		"remainingImages": remaining,
	})
}
