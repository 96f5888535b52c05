package routes

import (
	"github.com/CollegeSite/College-Backend/src/controllers"
	"github.com/CollegeSite/College-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupPositionRoutes(router *gin.Engine, service *services.PositionService) {
	positionController := controllers.NewPositionController(service)

	positions := router.Group("/positions")
	{
		positions.POST("/addPositionHolder", positionController.AddPositionHolder)
		positions.GET("/all", positionController.GetAllPositionHolders)
		positions.DELETE("/delete/:id", positionController.DeletePositionHolder)
	}
}
