package routes

import (
	"github.com/CollegeSite/College-Backend/src/controllers"
	"github.com/CollegeSite/College-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupProfessorRoutes(router *gin.Engine, service *services.ProfessorService) {
	professorController := controllers.NewProfessorController(service)

	faculties := router.Group("/faculties")
	{
		faculties.POST("/professors", professorController.CreateProfessor)
		faculties.GET("/professors", professorController.GetAllProfessors)
		faculties.GET("/professors/:id", professorController.GetProfessorByID)
		faculties.PUT("/professors/:id", professorController.UpdateProfessor)
		faculties.DELETE("/professors/:id", professorController.DeleteProfessor)
	}
}
