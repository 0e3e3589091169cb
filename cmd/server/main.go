package main

import (
	"log"
	"net/http"

	_ "restromart/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"restromart/internal/auth"
	"restromart/internal/cache"
	"restromart/internal/config"
	"restromart/internal/db"
	"restromart/internal/handler"
	"restromart/internal/model"
	"restromart/internal/repository"
	"restromart/internal/router"
	"restromart/internal/service"
)

// @title Restromart API
// @version 1.0
// @description Restaurant backend with JWT authentication and role-based access control over users and products.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL, cfg.TokenLeeway)

	// Services
	userService := service.NewUserService(userRepo, jwtService, cacheClient)
	productService := service.NewProductService(productRepo, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo)

	// Handlers
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	router.Register(e, jwtService, userRepo, userHandler, productHandler, categoryHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
