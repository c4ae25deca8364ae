// Package http exposes the coordination operations over a JSON HTTP API.
// The caller is identified by the X-User-ID header; every route is gated by
// the access policy and, where required, by the caller's registered role.
package http

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dispatch/internal/adapters/out/export"
	"dispatch/internal/core/application/deletion"
	"dispatch/internal/core/application/events"
	"dispatch/internal/core/application/registration"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// Server wires the HTTP routes to command and query handlers.
type Server struct {
	policy     *services.AccessPolicy
	dispatcher events.Dispatcher
	users      ports.UserReader
	logger     *slog.Logger

	registrationFlow *registration.Flow
	deletionFlow     *deletion.Flow
	exporter         *export.CSVExporter

	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	assignOrderHandler   commands.AssignOrderCommandHandler
	markDeliveredHandler commands.MarkDeliveredCommandHandler
	addCommentHandler    commands.AddCommentCommandHandler

	// Query handlers
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
	getShopOrdersHandler    queries.GetShopOrdersQueryHandler
	getCourierOrdersHandler queries.GetCourierOrdersQueryHandler
	getReportHandler        queries.GetDeliveryReportQueryHandler
	getUsersByRoleHandler   queries.GetUsersByRoleQueryHandler
}

// ServerParams collects the server's dependencies.
type ServerParams struct {
	Policy     *services.AccessPolicy
	Dispatcher events.Dispatcher
	Users      ports.UserReader
	Logger     *slog.Logger

	RegistrationFlow *registration.Flow
	DeletionFlow     *deletion.Flow
	Exporter         *export.CSVExporter

	CreateOrderHandler   commands.CreateOrderCommandHandler
	AssignOrderHandler   commands.AssignOrderCommandHandler
	MarkDeliveredHandler commands.MarkDeliveredCommandHandler
	AddCommentHandler    commands.AddCommentCommandHandler

	GetAllOrdersHandler     queries.GetAllOrdersQueryHandler
	GetPendingOrdersHandler queries.GetPendingOrdersQueryHandler
	GetShopOrdersHandler    queries.GetShopOrdersQueryHandler
	GetCourierOrdersHandler queries.GetCourierOrdersQueryHandler
	GetReportHandler        queries.GetDeliveryReportQueryHandler
	GetUsersByRoleHandler   queries.GetUsersByRoleQueryHandler
}

// NewServer creates the HTTP server facade.
func NewServer(params ServerParams) *Server {
	return &Server{
		policy:     params.Policy,
		dispatcher: params.Dispatcher,
		users:      params.Users,
		logger:     params.Logger.With("component", "http"),

		registrationFlow: params.RegistrationFlow,
		deletionFlow:     params.DeletionFlow,
		exporter:         params.Exporter,

		createOrderHandler:   params.CreateOrderHandler,
		assignOrderHandler:   params.AssignOrderHandler,
		markDeliveredHandler: params.MarkDeliveredHandler,
		addCommentHandler:    params.AddCommentHandler,

		getAllOrdersHandler:     params.GetAllOrdersHandler,
		getPendingOrdersHandler: params.GetPendingOrdersHandler,
		getShopOrdersHandler:    params.GetShopOrdersHandler,
		getCourierOrdersHandler: params.GetCourierOrdersHandler,
		getReportHandler:        params.GetReportHandler,
		getUsersByRoleHandler:   params.GetUsersByRoleHandler,
	}
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// NewEcho builds an echo instance with the server's middleware and routes.
func (s *Server) NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.Use(middleware.Recover())

	api := e.Group("/api/v1", s.resolveCaller, s.requireAccess)

	api.POST("/registration", s.handleRegistrationStep)
	api.POST("/registration/cancel", s.handleRegistrationCancel)
	api.POST("/registration/reset", s.handleRegistrationReset)

	api.POST("/orders", s.handleCreateOrder)
	api.GET("/orders", s.handleListAllOrders)
	api.GET("/orders/pending", s.handleListPendingOrders)
	api.POST("/orders/:id/assignment", s.handleAssignOrder)
	api.POST("/orders/:id/delivery", s.handleMarkDelivered)
	api.POST("/orders/:id/comments", s.handleAddComment)
	api.POST("/orders/export", s.handleExportOrders)

	api.GET("/shops/:id/orders", s.handleListShopOrders)
	api.GET("/couriers/:id/deliveries", s.handleListCourierOrders)
	api.GET("/couriers", s.handleListCouriers)

	api.GET("/report", s.handleReport)
	api.GET("/help", s.handleHelp)

	api.GET("/whitelist", s.handleListWhitelist)
	api.POST("/whitelist", s.handleAddToWhitelist)
	api.DELETE("/whitelist/:id", s.handleRemoveFromWhitelist)

	api.POST("/users/:id/deletion", s.handleProposeDeletion)
	api.POST("/users/:id/deletion/confirm", s.handleConfirmDeletion)

	return e
}
