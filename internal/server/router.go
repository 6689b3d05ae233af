// Package server assembles the HTTP stack: repositories, services, handlers
// and middleware.
package server

import (
	"context"
	"time"

	_ "supportcenter/api/swagger" // swagger docs
	"supportcenter/internal/config"
	"supportcenter/internal/database"
	"supportcenter/internal/handler"
	"supportcenter/internal/logger"
	"supportcenter/internal/middleware"
	"supportcenter/internal/repository"
	"supportcenter/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services bundles the business layer so main can seed before serving.
type Services struct {
	Users           service.UserService
	Roles           service.RoleService
	Permissions     service.PermissionService
	RolePermissions service.RolePermissionService
	FAQs            service.FAQService
	Audit           service.AuditService
}

// NewServices wires Repository -> Service over db.
func NewServices(db *gorm.DB, log logger.Recorder, userOpts ...service.UserOption) *Services {
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permRepo := repository.NewPermissionRepository(db)
	linkRepo := repository.NewRolePermissionRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	txManager := repository.NewTransactionManager(db)

	audit := service.NewAuditService(auditRepo, log)
	return &Services{
		Users:           service.NewUserService(userRepo, roleRepo, txManager, audit, log, userOpts...),
		Roles:           service.NewRoleService(roleRepo, permRepo, linkRepo, userRepo, txManager, audit, log),
		Permissions:     service.NewPermissionService(permRepo, linkRepo, txManager, audit, log),
		RolePermissions: service.NewRolePermissionService(roleRepo, permRepo, linkRepo, txManager, audit, log),
		FAQs:            service.NewFAQService(faqRepo, txManager, audit, log),
		Audit:           audit,
	}
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(cfg *config.Config, db *gorm.DB, svc *Services, log *logger.Logger) (*gin.Engine, error) {
	if err := handler.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(log.Zerolog()),
		middleware.Instrument(),
		middleware.SecureHeaders(!cfg.IsDevelopment()),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics", "/swagger/"})),
	)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", middleware.UserIDHeader}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	health := handler.NewHealthHandler(func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}, log)
	router.GET("/health", health.Health)

	api := router.Group("/api/v1", middleware.AttachActor())
	handler.NewUserHandler(svc.Users, log).RegisterRoutes(api)
	handler.NewRoleHandler(svc.Roles, log).RegisterRoutes(api)
	handler.NewPermissionHandler(svc.Permissions, log).RegisterRoutes(api)
	handler.NewRolePermissionHandler(svc.RolePermissions, log).RegisterRoutes(api)
	handler.NewFAQHandler(svc.FAQs, log).RegisterRoutes(api)
	handler.NewAuditHandler(svc.Audit, log).RegisterRoutes(api)

	return router, nil
}
