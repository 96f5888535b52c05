package routes

import (
	"github.com/CollegeSite/College-Backend/src/controllers"
	"github.com/CollegeSite/College-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupNoticeRoutes(router *gin.Engine, service *services.NoticeService) {
	noticeController := controllers.NewNoticeController(service)

	notice := router.Group("/notice")
	{
		notice.POST("/create", noticeController.CreateNotice)
		notice.PUT("/update/:id", noticeController.UpdateNotice)
		notice.DELETE("/delete/:id", noticeController.DeleteNotice)
		notice.GET("/all", noticeController.GetAllNotices)
		notice.GET("/export", noticeController.ExportNotices)
	}
}
