package handlers

import (
	"fmt"

	"github.com/SscSPs/payroll_app/cmd/docs"
	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/dto"
	"github.com/SscSPs/payroll_app/internal/middleware"
	"github.com/SscSPs/payroll_app/internal/platform/config"
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
) error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidations(v); err != nil {
			return fmt.Errorf("failed to register request validations: %w", err)
		}
	}

	r.GET("/health", getHealth)

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) error {
	v1 := r.Group("/api/v1")

	chatLimiter, err := middleware.NewMemoryLimiter(cfg.ChatRateLimit)
	if err != nil {
		return err
	}

	registerCurrencyRoutes(v1, service.Currency)
	registerEmployeeRoutes(v1, service.Employee)
	registerReportingRoutes(v1, service.Reporting)
	registerExchangeRateRoutes(v1, service.ExchangeRate)
	registerSettingsRoutes(v1, service.Settings)
	registerRosterRoutes(v1, service.Roster)
	registerChatRoutes(v1, service.Chat, middleware.RateLimit(chatLimiter))
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
