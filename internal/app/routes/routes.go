package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jlmarcelo/studentportal/internal/app/controllers"
)

// SetupRouter configures all application routes.
func SetupRouter(router *gin.Engine, studentController *controllers.StudentController) {
	api := router.Group("/api")

	students := api.Group("/students")
	{
		students.POST("", studentController.Register)
		students.POST("/login", studentController.Login)
		students.GET("", studentController.List)
		students.GET("/:id", studentController.GetByID)
		students.PUT("/:id", studentController.Update)
		students.DELETE("/:id", studentController.Delete)
	}

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
