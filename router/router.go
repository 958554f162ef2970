package router

import (
	"net/http"

	"contentai/api"
	"contentai/config"
	"contentai/middleware"
	"contentai/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *gorm.DB, summarizer service.Summarizer) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	v1 := r.Group("/api/v1")
	{
		// 需要 JWT 认证的路由，身份由上游签发
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			contentHandler := api.NewContentHandler(db, summarizer)
			contents := authorized.Group("/contents")
			{
				contents.GET("", contentHandler.List)
				contents.POST("", contentHandler.Create)
				contents.GET("/:id", contentHandler.Get)
				contents.PUT("/:id", contentHandler.Update)
				contents.DELETE("/:id", contentHandler.Delete)
				contents.GET("/:id/ai-logs", contentHandler.History)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
