package cmd

import (
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/export"
	"dispatch/internal/adapters/out/jsonstore"
	"dispatch/internal/adapters/out/notify"
	"dispatch/internal/core/application/deletion"
	"dispatch/internal/core/application/events"
	"dispatch/internal/core/application/registration"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// CompositionRoot wires the stores, handlers, flows and adapters together.
type CompositionRoot struct {
	config     Config
	store      *jsonstore.Store
	whitelist  *jsonstore.WhitelistStore
	dispatcher events.Dispatcher
	policy     *services.AccessPolicy
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph over an opened store pair.
func NewCompositionRoot(
	config Config,
	store *jsonstore.Store,
	whitelist *jsonstore.WhitelistStore,
	logger *slog.Logger,
) CompositionRoot {
	dispatcher := events.NewInMemoryDispatcher()

	return CompositionRoot{
		config:     config,
		store:      store,
		whitelist:  whitelist,
		dispatcher: dispatcher,
		policy: services.NewAccessPolicy(
			config.AdminIDs, config.DefaultWhitelist, config.WhitelistEnabled, whitelist,
		),
		logger: logger,
	}
}

// Dispatcher exposes the event dispatcher for adapter registration.
func (c *CompositionRoot) Dispatcher() events.Dispatcher {
	return c.dispatcher
}

// Policy exposes the access policy.
func (c *CompositionRoot) Policy() *services.AccessPolicy {
	return c.policy
}

// CreateMessenger picks the outbound channel: the webhook when configured,
// otherwise the log-only messenger.
func (c *CompositionRoot) CreateMessenger() ports.Messenger {
	if c.config.WebhookURL != "" {
		return notify.NewWebhookMessenger(c.config.WebhookURL)
	}
	return notify.NewLogMessenger(c.logger)
}

// RegisterNotifier subscribes the notifier to all domain events.
func (c *CompositionRoot) RegisterNotifier(messenger ports.Messenger) {
	notifier := notify.NewNotifier(messenger, c.config.AdminIDs, c.logger)
	notifier.Register(c.dispatcher)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return jsonstore.NewUnitOfWork(c.store)
	})
}

func (c *CompositionRoot) uowFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return jsonstore.NewUnitOfWork(c.store)
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateAddCommentCommandHandler() commands.AddCommentCommandHandler {
	return commands.NewAddCommentCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.uowFactory())
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(jsonstore.NewOrderReader(c.store))
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(jsonstore.NewOrderReader(c.store))
}

func (c *CompositionRoot) CreateGetShopOrdersQueryHandler() queries.GetShopOrdersQueryHandler {
	return queries.NewGetShopOrdersQueryHandler(jsonstore.NewOrderReader(c.store))
}

func (c *CompositionRoot) CreateGetCourierOrdersQueryHandler() queries.GetCourierOrdersQueryHandler {
	return queries.NewGetCourierOrdersQueryHandler(jsonstore.NewOrderReader(c.store))
}

func (c *CompositionRoot) CreateGetDeliveryReportQueryHandler() queries.GetDeliveryReportQueryHandler {
	return queries.NewGetDeliveryReportQueryHandler(jsonstore.NewOrderReader(c.store))
}

func (c *CompositionRoot) CreateGetUsersByRoleQueryHandler() queries.GetUsersByRoleQueryHandler {
	return queries.NewGetUsersByRoleQueryHandler(jsonstore.NewUserReader(c.store))
}

func (c *CompositionRoot) CreateRegistrationFlow() *registration.Flow {
	return registration.NewFlow(c.uowFactory(), c.policy, c.dispatcher)
}

func (c *CompositionRoot) CreateDeletionFlow() *deletion.Flow {
	return deletion.NewFlow(c.CreateDeleteUserCommandHandler())
}

func (c *CompositionRoot) CreateCSVExporter() *export.CSVExporter {
	return export.NewCSVExporter(jsonstore.NewOrderReader(c.store), c.config.ExportDir)
}

// CreateHTTPServer assembles the inbound HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.ServerParams{
		Policy:     c.policy,
		Dispatcher: c.dispatcher,
		Users:      jsonstore.NewUserReader(c.store),
		Logger:     c.logger,

		RegistrationFlow: c.CreateRegistrationFlow(),
		DeletionFlow:     c.CreateDeletionFlow(),
		Exporter:         c.CreateCSVExporter(),

		CreateOrderHandler:   c.CreateCreateOrderCommandHandler(),
		AssignOrderHandler:   c.CreateAssignOrderCommandHandler(),
		MarkDeliveredHandler: c.CreateMarkDeliveredCommandHandler(),
		AddCommentHandler:    c.CreateAddCommentCommandHandler(),

		GetAllOrdersHandler:     c.CreateGetAllOrdersQueryHandler(),
		GetPendingOrdersHandler: c.CreateGetPendingOrdersQueryHandler(),
		GetShopOrdersHandler:    c.CreateGetShopOrdersQueryHandler(),
		GetCourierOrdersHandler: c.CreateGetCourierOrdersQueryHandler(),
		GetReportHandler:        c.CreateGetDeliveryReportQueryHandler(),
		GetUsersByRoleHandler:   c.CreateGetUsersByRoleQueryHandler(),
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
