package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置和返回一个 Gin 引擎实例。
func SetupRouter(a *API) *gin.Engine {
	// 使用默认中间件 (logger, recovery) 创建一个 Gin 引擎。
	r := gin.Default()

	r.GET("/", a.HomeHandler)
	r.GET("/health", a.HealthHandler)

	// 任务记录路由组
	tasks := r.Group("/tasks")
	{
		tasks.POST("", a.CreateTaskHandler)
		tasks.GET("", a.ListTasksHandler)
		tasks.GET("/:id", a.GetTaskHandler)
		tasks.PATCH("/:id", a.UpdateTaskHandler)
		tasks.DELETE("/:id", a.DeleteTaskHandler)
	}

	return r
}
