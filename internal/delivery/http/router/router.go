// Package router contains routing setup for the HTTP delivery.
package router

import (
	"bitefeed/internal/delivery/http/middleware"
	"bitefeed/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	InteractionHandler  *handler.InteractionHandler
	SubscriptionHandler *handler.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	interactionHandler  *handler.InteractionHandler
	subscriptionHandler *handler.SubscriptionHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		interactionHandler:  params.InteractionHandler,
		subscriptionHandler: params.SubscriptionHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	asUser := r.authMiddleware.AuthenticateUser
	asPartner := r.authMiddleware.AuthenticatePartner

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/user/register", r.authHandler.RegisterUser)
		authGroup.POST("/user/login", r.authHandler.LoginUser)
		authGroup.POST("/partner/register", r.authHandler.RegisterPartner)
		authGroup.POST("/partner/login", r.authHandler.LoginPartner)
	}

	// Interaction routes. Share and comment listing are public; everything
	// else acts on the caller's own sets and requires an end-user credential.
	interactionGroup := e.Group("/interactions")
	{
		interactionGroup.POST("/:itemID/like", r.interactionHandler.ToggleLike, asUser)
		interactionGroup.POST("/:itemID/save", r.interactionHandler.ToggleSave, asUser)
		interactionGroup.POST("/:itemID/share", r.interactionHandler.Share)
		interactionGroup.POST("/:itemID/comments", r.interactionHandler.AddComment, asUser)
		interactionGroup.GET("/:itemID/comments", r.interactionHandler.ListComments)
		interactionGroup.GET("/me", r.interactionHandler.GetMyInteractions, asUser)
	}

	// Subscription routes. Submission and status are end-user operations;
	// review and listing belong to partners.
	subscriptionGroup := e.Group("/subscriptions")
	{
		subscriptionGroup.POST("", r.subscriptionHandler.Submit, asUser)
		subscriptionGroup.GET("/status", r.subscriptionHandler.GetStatus, asUser)
		subscriptionGroup.GET("/qr", r.subscriptionHandler.PaymentQR)
		subscriptionGroup.GET("/pending", r.subscriptionHandler.ListPending, asPartner)
		subscriptionGroup.GET("", r.subscriptionHandler.ListAll, asPartner)
		subscriptionGroup.POST("/:id/approve", r.subscriptionHandler.Approve, asPartner)
		subscriptionGroup.POST("/:id/reject", r.subscriptionHandler.Reject, asPartner)
	}
}
