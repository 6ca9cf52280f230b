package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/allanebarua/Tenant-Management-System/internal/audit"
	"github.com/allanebarua/Tenant-Management-System/internal/cache"
	"github.com/allanebarua/Tenant-Management-System/internal/config"
	"github.com/allanebarua/Tenant-Management-System/internal/handlers"
	infraRepo "github.com/allanebarua/Tenant-Management-System/internal/infra/repository"
	"github.com/allanebarua/Tenant-Management-System/internal/middleware"
	ucContact "github.com/allanebarua/Tenant-Management-System/internal/usecase/contact"
	ucUser "github.com/allanebarua/Tenant-Management-System/internal/usecase/user"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewTenancyGormRepository(db)
	tokenCache := cache.NewTokenCache(cfg.RedisAddr)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createUserUC := ucUser.NewCreateUser(repo, auditDispatcher)
	listUsersUC := ucUser.NewListUsers(repo)
	getUserUC := ucUser.NewGetUser(repo)
	updateUserUC := ucUser.NewUpdateUser(repo, auditDispatcher)
	deleteUserUC := ucUser.NewDeleteUser(repo, tokenCache, auditDispatcher)

	createContactUC := ucContact.NewCreateContact(repo, auditDispatcher)
	listContactsUC := ucContact.NewListContacts(repo)
	getContactUC := ucContact.NewGetContact(repo)
	updateContactUC := ucContact.NewUpdateContact(repo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	userHandler := handlers.NewUserHandler(
		createUserUC,
		listUsersUC,
		getUserUC,
		updateUserUC,
		deleteUserUC,
	)

	contactHandler := handlers.NewContactHandler(
		createContactUC,
		listContactsUC,
		getContactUC,
		updateContactUC,
	)

	meHandler := handlers.NewMeHandler()

	// ======================================================
	// ROUTES (everything behind authentication)
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(repo, tokenCache))
	{
		secured.GET("/me", meHandler.GetMe)

		secured.GET("/users", userHandler.List)
		secured.POST("/users", userHandler.Create)
		secured.GET("/users/:id", userHandler.Get)
		secured.PATCH("/users/:id", userHandler.Update)
		secured.DELETE("/users/:id", userHandler.Delete)

		secured.GET("/contacts", contactHandler.List)
		secured.POST("/contacts", contactHandler.Create)
		secured.GET("/contacts/:id", contactHandler.Get)
		secured.PATCH("/contacts/:id", contactHandler.Update)
	}
}
