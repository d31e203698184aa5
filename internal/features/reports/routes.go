package reports

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/cleancity/internal/config"
	"github.com/xyz-asif/cleancity/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, subjects middleware.SubjectSource) {
	repo := NewRepository(db)
	handler := NewHandler(repo, cfg)

	group := router.Group("/reports")
	group.Use(middleware.Auth(subjects))
	{
		group.POST("", handler.Create)
		group.GET("/admin/all", middleware.AdminOnly(), handler.ListAll)
		group.GET("/user/my-reports", handler.MyReports)
		group.GET("/:id", handler.Get)
		group.PUT("/:id/status", middleware.AdminOnly(), handler.UpdateStatus)
		group.PUT("/:id/verify", handler.Verify)
		group.DELETE("/:id", middleware.AdminOnly(), handler.Delete)
	}
}
