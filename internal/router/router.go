package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"restromart/internal/auth"
	"restromart/internal/handler"
	"restromart/internal/repository"
)

// Register wires routes and middleware. Protected groups run the bearer
// chain: token verification then subject lookup.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	categoryHandler *handler.CategoryHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	bearer := auth.Middleware(jwtService, userRepo)

	// Public routes
	e.POST("/users/register", userHandler.Register)
	e.POST("/users/login", userHandler.Login)
	e.GET("/products", productHandler.ListProducts)
	e.GET("/products/:id", productHandler.GetProduct)
	e.GET("/categories", categoryHandler.ListCategories)

	// Authenticated routes; role and ownership checks live in the access
	// policy, not here.
	users := e.Group("/users", bearer...)
	users.GET("/all", userHandler.ListUsers)
	users.GET("/my-profile", userHandler.MyProfile)
	users.PUT("/update-profile/:id", userHandler.UpdateProfile)
	users.PUT("/change-password", userHandler.ChangePassword)
	users.DELETE("/delete-user/:id", userHandler.DeleteUser)

	products := e.Group("/products", bearer...)
	products.POST("", productHandler.CreateProduct)
	products.PUT("/:id", productHandler.UpdateProduct)
	products.DELETE("/:id", productHandler.DeleteProduct)

	categories := e.Group("/categories", bearer...)
	categories.POST("", categoryHandler.CreateCategory)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
