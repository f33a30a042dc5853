// Package router contains routing setup for the HTTP delivery.
package router

import (
	"bugstore/config"
	"bugstore/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler *handler.CustomerHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler *handler.CustomerHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler: params.CustomerHandler,
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")

	// Customer management routes
	customersGroup := v1.Group("/customers")
	{
		customersGroup.GET("", r.customerHandler.ListCustomers)
		customersGroup.POST("", r.customerHandler.CreateCustomer)
		customersGroup.GET("/email/:email", r.customerHandler.GetCustomerByEmail)
		customersGroup.GET("/:id", r.customerHandler.GetCustomer)
		customersGroup.PUT("/:id", r.customerHandler.UpdateCustomer)
		customersGroup.DELETE("/:id", r.customerHandler.DeleteCustomer)
	}

	// Product management routes
	productsGroup := v1.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.GET("/slug/:slug", r.productHandler.GetProductBySlug)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	// Order management routes
	ordersGroup := v1.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.PUT("/:id", r.orderHandler.UpdateOrder)
		ordersGroup.DELETE("/:id", r.orderHandler.DeleteOrder)
	}
}
