package routes

import (
	"github.com/gin-gonic/gin"

	"purefarm/src/controller"
	"purefarm/src/middleware"
	"purefarm/src/models"
	"purefarm/src/service"
)

type Controllers struct {
	Auth       *controller.AuthController
	Users      *controller.UserController
	Products   *controller.ProductController
	Cart       *controller.CartController
	Payments   *controller.PaymentController
	Orders     *controller.OrderController
	Deliveries *controller.DeliveryController
}

//Register wires the storefront, account and dashboard routes.
func Register(r *gin.Engine, auth *service.AuthService, ct Controllers, uploadDir string) {
	r.Static("/uploads", uploadDir)

	//public storefront
	r.POST("/api/register", ct.Auth.Register)
	r.POST("/api/login", ct.Auth.Login)
	r.GET("/api/products", ct.Products.List)
	r.GET("/api/products/:id", ct.Products.Get)
	r.GET("/api/categories", ct.Products.ListCategories)
	r.GET("/api/categories/:id", ct.Products.GetCategory)

	//any approved account
	authed := r.Group("/api", middleware.RequireAuth(auth))
	{
		authed.GET("/me", ct.Auth.Me)
		authed.PUT("/me", ct.Auth.UpdateProfile)

		authed.GET("/cart", ct.Cart.List)
		authed.POST("/cart", ct.Cart.Add)
		authed.PUT("/cart/:id", ct.Cart.UpdateQuantity)
		authed.DELETE("/cart/:id", ct.Cart.Remove)
		authed.DELETE("/cart", ct.Cart.Clear)

		authed.POST("/payment", ct.Payments.CreateOrder)
		authed.POST("/payment/verify", ct.Payments.Verify)

		authed.GET("/orders", ct.Orders.Mine)
		authed.GET("/order-confirmation/:paymentID", ct.Orders.ByPayment)
		authed.GET("/order-items/:orderID/:productID", ct.Orders.ItemDetail)
	}

	//farmer/supplier/admin dashboard
	dashboard := r.Group("/api/dashboard", middleware.RequireAuth(auth))
	{
		selling := dashboard.Group("", middleware.RequireCapability(models.Role.CanManageProducts))
		{
			selling.GET("/products", ct.Products.Mine)
			selling.POST("/products", ct.Products.Create)
			selling.PUT("/products/:id", ct.Products.Update)
			selling.DELETE("/products/:id", ct.Products.Delete)
			selling.POST("/products/image", ct.Products.UploadImage)
			selling.GET("/orders", ct.Orders.ForMyProducts)
		}

		delivering := dashboard.Group("", middleware.RequireCapability(models.Role.CanManageDeliveries))
		{
			delivering.GET("/deliveries", ct.Deliveries.List)
			delivering.GET("/deliveries/:id", ct.Deliveries.Detail)
			delivering.PUT("/deliveries/:id/day", ct.Deliveries.UpdateDay)
			delivering.PUT("/deliveries/:id/future", ct.Deliveries.UpdateFuture)
			delivering.POST("/deliveries/:id/refresh", ct.Deliveries.Refresh)
		}

		admin := dashboard.Group("", middleware.RequireCapability(models.Role.CanManageUsers))
		{
			admin.GET("/users", ct.Users.ListUsers)
			admin.PUT("/users/:id/status", ct.Users.UpdateStatus)
			admin.POST("/categories", ct.Products.CreateCategory)
			admin.GET("/all-orders", ct.Orders.All)
			admin.GET("/revenue", ct.Orders.Revenue)
		}
	}
}
