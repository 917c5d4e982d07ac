// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"flyingpot/internal/delivery/http/middleware"
	"flyingpot/internal/delivery/http/router/handler"
)

// RouterParams holds every handler the router mounts, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	StoreHandler      *handler.StoreHandler
	CartHandler       *handler.CartHandler
	OrderHandler      *handler.OrderHandler
	ComplimentHandler *handler.ComplimentHandler
	PaymentHandler    *handler.PaymentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	user       *handler.UserHandler
	store      *handler.StoreHandler
	cart       *handler.CartHandler
	order      *handler.OrderHandler
	compliment *handler.ComplimentHandler
	payment    *handler.PaymentHandler
	auth       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the router.
func NewRouter(params RouterParams) *router {
	return &router{
		user:       params.UserHandler,
		store:      params.StoreHandler,
		cart:       params.CartHandler,
		order:      params.OrderHandler,
		compliment: params.ComplimentHandler,
		payment:    params.PaymentHandler,
		auth:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. The route
// shapes mirror the storefront's expectations under /api.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public surface: signup, sign-in, browsing, and the payment/mail
	// passthroughs the storefront calls before a session exists.
	api.POST("/check-user", r.user.CheckUser)
	api.POST("/users/add", r.user.Register)
	api.POST("/signin", r.user.SignIn)
	api.GET("/stores", r.store.ListStores)
	api.GET("/stores/:storeId", r.store.GetStoreByID)
	api.POST("/create-payment-intent", r.payment.CreatePaymentIntent)
	api.POST("/send-purchase-email", r.payment.SendPurchaseEmail)
	api.POST("/send-verification-code", r.payment.SendVerificationCode)

	// Session-scoped surface.
	authed := api.Group("", r.auth.Authenticate)
	authed.GET("/users", r.user.CurrentUser)
	authed.DELETE("/users/:id", r.user.DeleteUser)

	// Vendor store and catalog.
	authed.GET("/users/:id/store", r.store.GetStore)
	authed.POST("/users/:id/store", r.store.CreateStore)
	authed.PUT("/users/:id/store", r.store.UpdateStore)
	authed.DELETE("/users/:id/store", r.store.DeleteStore)
	authed.POST("/users/:id/store/items", r.store.AddItem)
	authed.PUT("/users/:id/store/items/:itemId", r.store.UpdateItem)
	authed.DELETE("/users/:id/store/items/:itemId", r.store.RemoveItem)
	authed.PUT("/stores/:storeId/items/:itemId/quantity", r.store.AdjustQuantity)

	// Cart.
	authed.GET("/users/:id/cart", r.cart.GetCart)
	authed.POST("/users/:id/cart", r.cart.AddToCart)
	authed.PUT("/users/:id/cart", r.cart.ReplaceCart)
	authed.DELETE("/users/:id/cart", r.cart.ClearCart)
	authed.PUT("/users/:id/cart/items/:itemId", r.cart.UpdateCartItem)
	authed.DELETE("/users/:id/cart/items/:itemId", r.cart.RemoveCartItem)

	// Orders, both views, plus the checkout saga.
	authed.POST("/users/:id/orders", r.order.CreateVendorOrder)
	authed.GET("/users/:id/orders", r.order.ListOrders)
	authed.DELETE("/users/:id/orders/:mainkey", r.order.DeleteOrder)
	authed.PUT("/users/:id/orders/:mainkey/status/ready", r.order.MarkReady)
	authed.PUT("/users/:id/orders/:mainkey/status/ready-in-10-minutes", r.order.MarkReadyIn10)
	authed.POST("/users/:id/patronOrders", r.order.CreatePatronOrder)
	authed.GET("/users/:id/patronOrders", r.order.ListPatronOrders)
	authed.DELETE("/users/:id/patronOrders/:orderNumber/:mainkey", r.order.DeletePatronOrder)
	authed.POST("/users/:id/checkout", r.order.Checkout)

	// Promotions.
	authed.POST("/users/:id/create-compliment", r.compliment.CreateGroup)
	authed.POST("/users/:id/send-compliments", r.compliment.SendCompliments)
	authed.DELETE("/users/:id/compliments/group/:groupId", r.compliment.DeleteGroup)
	authed.GET("/users/:id/compliments", r.compliment.ListCompliments)
	authed.GET("/users/:id/compliments/kitchen", r.compliment.ListKitchenCompliments)
	authed.GET("/users/:id/compliments/:codeId/qr", r.compliment.ComplimentQR)

	// Admin surface.
	authed.GET("/users/all", r.user.ListUsers, r.auth.RequireAdmin)
	admin := e.Group("/admin", r.auth.Authenticate, r.auth.RequireAdmin)
	admin.GET("/users", r.user.ListUsers)
}
