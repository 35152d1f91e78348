package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/attachment"
	"github.com/jhoicas/Activos-api/internal/application/auth"
	"github.com/jhoicas/Activos-api/internal/application/reporting"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BranchUC     *usecase.BranchUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	AssetUC      *usecase.AssetUseCase
	AttachmentUC *attachment.UseCase
	ReportUC     *reporting.UseCase
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	StatsUC      *usecase.StatsUseCase
	JWTSecret    string
	Metrics      *Metrics // opcional; nil desactiva /metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api")
	authn := AuthMiddleware(deps.JWTSecret)
	can := RequirePermission

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authn, can(entity.PermUserManage), authHandler.Register)
	authGroup.Get("/me", authn, authHandler.Me)

	// Users
	users := api.Group("/users", authn, can(entity.PermUserManage))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	api.Get("/stats", authn, can(entity.PermStatsRead), NewStatsHandler(deps.StatsUC).Get)

	// Branches
	branches := api.Group("/branches", authn)
	branchHandler := NewBranchHandler(deps.BranchUC, deps.WarehouseUC)
	branches.Post("/", can(entity.PermBranchEdit), branchHandler.Create)
	branches.Get("/", can(entity.PermBranchRead), branchHandler.List)
	branches.Get("/:id", can(entity.PermBranchRead), branchHandler.GetByID)
	branches.Put("/:id", can(entity.PermBranchEdit), branchHandler.Update)
	branches.Delete("/:id", can(entity.PermBranchDelete), branchHandler.Delete)
	branches.Get("/:id/warehouses", can(entity.PermWarehouseRead), branchHandler.Warehouses)

	// Warehouses
	warehouses := api.Group("/warehouses", authn)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.AssetUC)
	warehouses.Post("/", can(entity.PermWarehouseEdit), warehouseHandler.Create)
	warehouses.Get("/", can(entity.PermWarehouseRead), warehouseHandler.List)
	warehouses.Get("/:id", can(entity.PermWarehouseRead), warehouseHandler.GetByID)
	warehouses.Put("/:id", can(entity.PermWarehouseEdit), warehouseHandler.Update)
	warehouses.Delete("/:id", can(entity.PermWarehouseDelete), warehouseHandler.Delete)
	warehouses.Get("/:id/assets", can(entity.PermAssetRead), warehouseHandler.Assets)

	// Assets (export antes de /:id)
	assets := api.Group("/assets", authn)
	assetHandler := NewAssetHandler(deps.AssetUC, deps.AttachmentUC, deps.ReportUC)
	assets.Get("/export", can(entity.PermAssetRead), assetHandler.Export)
	assets.Post("/", can(entity.PermAssetEdit), assetHandler.Create)
	assets.Get("/", can(entity.PermAssetRead), assetHandler.List)
	assets.Get("/:id", can(entity.PermAssetRead), assetHandler.GetByID)
	assets.Put("/:id", can(entity.PermAssetEdit), assetHandler.Update)
	assets.Delete("/:id", can(entity.PermAssetDelete), assetHandler.Delete)
	assets.Post("/:id/attachment", can(entity.PermAssetEdit), assetHandler.UploadAttachment)
	assets.Get("/:id/attachment", can(entity.PermAssetRead), assetHandler.DownloadAttachment)
	assets.Delete("/:id/attachment", can(entity.PermAssetEdit), assetHandler.DeleteAttachment)
	assets.Get("/:id/label", can(entity.PermPrintBarcode), assetHandler.Label)
}
