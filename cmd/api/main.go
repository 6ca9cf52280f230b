package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allanebarua/Tenant-Management-System/internal/config"
	dbpkg "github.com/allanebarua/Tenant-Management-System/internal/db"
	"github.com/allanebarua/Tenant-Management-System/internal/middleware"
	"github.com/allanebarua/Tenant-Management-System/internal/routes"
	"github.com/allanebarua/Tenant-Management-System/internal/validators"
)

func main() {

	cfg := config.Load()
	validators.DefaultPhoneRegion = cfg.PhoneRegion

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
