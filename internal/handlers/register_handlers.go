package handlers

import (
	"github.com/FoundlyHQ/foundly-backend/cmd/docs"
	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	portssvc "github.com/FoundlyHQ/foundly-backend/internal/core/ports/services"
	"github.com/FoundlyHQ/foundly-backend/internal/middleware"
	"github.com/FoundlyHQ/foundly-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	registerHomeRoutes(r)

	// Public authentication routes (send-otp gets its own rate limit inside)
	registerAuthRoutes(r, cfg, services)

	// Items mix public reads with authenticated writes, so the auth middleware
	// is applied per route rather than on the whole group.
	registerItemRoutes(r, cfg, services.Item)
	registerClaimRoutes(r, cfg, services.Claim)
	registerUserRoutes(r, cfg, services.User)
	registerNotificationRoutes(r, cfg, services.Notification)

	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidators adds domain-aware binding rules to gin's validator
// so bad filter values fail binding instead of silently matching nothing.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("itemtype", func(fl validator.FieldLevel) bool {
		t := domain.ItemType(fl.Field().String())
		return t == domain.ItemTypeLost || t == domain.ItemTypeFound
	})
	_ = v.RegisterValidation("itemstatus", func(fl validator.FieldLevel) bool {
		switch domain.ItemStatus(fl.Field().String()) {
		case domain.ItemStatusActive, domain.ItemStatusFound, domain.ItemStatusClaimed, domain.ItemStatusResolved:
			return true
		}
		return false
	})
}

// authRequired builds the JWT middleware for routes that need a signed-in user.
func authRequired(cfg *config.Config) gin.HandlerFunc {
	return middleware.AuthMiddleware(cfg.JWTSecret)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
