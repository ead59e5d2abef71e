// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	TokenHandler   *handler.TokenHandler
	RoleHandler    *handler.RoleHandler
	SellerHandler  *handler.SellerHandler
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	ImageHandler   *handler.ImageHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	user    *handler.UserHandler
	token   *handler.TokenHandler
	role    *handler.RoleHandler
	seller  *handler.SellerHandler
	catalog *handler.CatalogHandler
	cart    *handler.CartHandler
	image   *handler.ImageHandler
	auth    *middleware.AuthMiddleware
	metrics *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		user:    params.UserHandler,
		token:   params.TokenHandler,
		role:    params.RoleHandler,
		seller:  params.SellerHandler,
		catalog: params.CatalogHandler,
		cart:    params.CartHandler,
		image:   params.ImageHandler,
		auth:    params.AuthMiddleware,
		metrics: params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	api := e.Group("/api")
	authn := r.auth.Authenticate

	api.POST("/token/refresh-token", r.token.RefreshToken)

	users := api.Group("/users")
	{
		users.POST("/create-user", r.user.RegisterUser)
		users.POST("/login", r.user.Login)
		users.GET("/me", r.user.Me, authn)
		users.GET("/getAllUsers", r.user.ListUsers, authn)
		users.GET("/getuser-by-id/:id", r.user.GetUser, authn)
		users.PUT("/updateUserById/:id", r.user.UpdateUser, authn)
		users.DELETE("/deleteUser/:id", r.user.DeleteUser, authn)
	}

	roles := api.Group("/userRole", authn)
	{
		roles.POST("/create-role", r.role.CreateRole)
		roles.GET("/getAllRoles", r.role.ListRoles)
		roles.GET("/getRoleById/:id", r.role.GetRole)
		roles.PUT("/updateRoleById/:id", r.role.UpdateRole)
		roles.DELETE("/deleteRoleById/:id", r.role.DeleteRole)
	}

	sellers := api.Group("/seller")
	{
		sellers.POST("/createSellers", r.seller.RegisterSeller)
		sellers.POST("/login", r.seller.Login)
		sellers.GET("/sellers/:id", r.seller.GetSeller)
		sellers.PUT("/sellers/:id", r.seller.UpdateSeller, authn)
		sellers.DELETE("/sellers/:id", r.seller.DeleteSeller, authn)
	}

	products := api.Group("/products")
	{
		products.POST("/create-category", r.catalog.CreateCategory)
		products.GET("/getAllCategory", r.catalog.ListCategories)
		products.POST("/create-subcategory", r.catalog.CreateSubcategory)
		products.GET("/getAllSubcategory", r.catalog.ListSubcategories)

		products.POST("/create-product", r.catalog.CreateProduct, authn)
		products.GET("/get-all-products", r.catalog.ListProducts)
		products.GET("/getProductById/:id", r.catalog.GetProduct)
		products.PUT("/update-product-by-id/:id", r.catalog.UpdateProduct, authn)
		products.DELETE("/delete-product-by-id/:id", r.catalog.DeleteProduct, authn)
		products.GET("/search-products", r.catalog.SearchProducts)
	}

	cart := api.Group("/cart", authn)
	{
		cart.POST("/createCart", r.cart.AddItem)
		cart.GET("/getCart/:user_id", r.cart.GetCart, r.auth.RequireSelf("user_id"))
		cart.PUT("/updateCart", r.cart.UpdateItem)
		cart.DELETE("/delete/:cart_id", r.cart.RemoveItem)
	}

	images := api.Group("/images")
	{
		images.POST("/upload", r.image.Upload, authn)
		images.GET("/getAllImages", r.image.ListImages)
	}
}
