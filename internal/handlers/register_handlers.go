package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/expensemaster/expense_master_app/cmd/docs"
	"github.com/expensemaster/expense_master_app/internal/core/ports"
	"github.com/expensemaster/expense_master_app/internal/middleware"
	"github.com/expensemaster/expense_master_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes. The credential policy is
// declared here, once: everything under the gated group mutates state or
// lists in bulk and requires a valid bearer credential; the public group
// holds credential issuance and single-record lookups only.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *ports.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg)

	// Public single-record lookups.
	public := r.Group("/api/v1")
	registerCompanyPublicRoutes(public, services.Company)
	registerUserPublicRoutes(public, services.User)

	// Everything else requires a credential.
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	registerCompanyRoutes(v1, services.Company)
	registerUserRoutes(v1, services.User)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
