package http

import (
	"todolist/internal/adapter/http/handlers"
	"todolist/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler, logHandler *handlers.LogHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		tasks := api.Group("/tasks")
		tasks.GET("", taskHandler.ListRootTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/search/:phrase", taskHandler.SearchTasks)
		tasks.GET("/logs", logHandler.ListTaskLogs)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PATCH("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
		tasks.PATCH("/:id/root", taskHandler.UpdateTaskRoot)
		tasks.GET("/:id/logs", logHandler.ListLogsByTask)
	}
}
