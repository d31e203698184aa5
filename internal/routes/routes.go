package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/cleancity/internal/config"
	"github.com/xyz-asif/cleancity/internal/features/auth"
	"github.com/xyz-asif/cleancity/internal/features/reports"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	api := router.Group("/api")

	// The auth repository doubles as the subject resolver for the auth
	// middleware, so token ids are always checked against live accounts.
	authRepo := auth.NewRepository(db)

	auth.RegisterRoutes(api, authRepo)
	reports.RegisterRoutes(api, db, cfg, authRepo)
}
