package routes

import (
	"github.com/CollegeSite/College-Backend/src/controllers"
	"github.com/CollegeSite/College-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUpcomingEventRoutes(router *gin.Engine, service *services.UpcomingEventService) {
	eventController := controllers.NewUpcomingEventController(service)

	events := router.Group("/upcomingEvents")
	{
		events.POST("/create", eventController.CreateEvent)
		events.PUT("/update/:id", eventController.UpdateEvent)
		events.DELETE("/delete/:id", eventController.DeleteEvent)
		events.GET("/all", eventController.GetAllEvents)
	}
}
