package routes

import (
	"github.com/CollegeSite/College-Backend/src/controllers"
	"github.com/CollegeSite/College-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupGalleryRoutes(router *gin.Engine, service *services.GalleryService) {
	galleryController := controllers.NewGalleryController(service)

	gallery := router.Group("/cloudinary")
	{
		gallery.POST("/uploadCloudinary", galleryController.UploadImages)
		gallery.POST("/importDrive", galleryController.ImportDriveImages)
		gallery.GET("/events", galleryController.GetEvents)
		gallery.DELETE("/deleteEvent/:id", galleryController.DeleteEvent)
		gallery.DELETE("/deleteCloudinary", galleryController.DeleteImage)
	}
}
