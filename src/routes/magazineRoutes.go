package routes

import (
	"github.com/CollegeSite/College-Backend/src/controllers"
	"github.com/CollegeSite/College-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupMagazineRoutes(router *gin.Engine, service *services.MagazineService) {
	magazineController := controllers.NewMagazineController(service)

	magazine := router.Group("/magazine")
	{
		magazine.POST("/uploadMagazine", magazineController.UploadMagazine)
		magazine.GET("/magazines", magazineController.GetAllMagazines)
		magazine.DELETE("/deleteMagazine", magazineController.DeleteMagazine)
	}
}
