package auth

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/cleancity/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, repo *Repository) {
	handler := NewHandler(repo)

	// Brute-force protection on credential endpoints only.
	loginLimiter := ratelimit.New(10, time.Minute)
	loginLimiter.StartCleanup(5 * time.Minute)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", ratelimit.Middleware(loginLimiter), handler.Login)
		authGroup.POST("/admin/register", handler.AdminRegister)
		authGroup.POST("/admin/login", ratelimit.Middleware(loginLimiter), handler.AdminLogin)
	}
}
