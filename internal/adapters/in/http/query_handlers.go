package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
)

// handleListAllOrders returns every order in the store. Admin only.
func (s *Server) handleListAllOrders(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, user.RoleAdmin); err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// handleListPendingOrders returns orders still waiting for a courier.
func (s *Server) handleListPendingOrders(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, user.RoleAdmin); err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// handleListShopOrders returns a shop's orders. A shop may only see its own;
// admins may see any shop's.
func (s *Server) handleListShopOrders(ctx echo.Context) error {
	role, err := s.requireRole(ctx, user.RoleAdmin, user.RoleShop)
	if err != nil {
		return s.respondError(ctx, err)
	}

	shopID, err := kernel.ParseUserID(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if role == user.RoleShop && shopID != callerFrom(ctx) {
		return s.respondError(ctx, errs.NewPermissionDeniedError(callerFrom(ctx).Int64(), "view another shop's orders"))
	}

	query, err := queries.NewGetShopOrdersQuery(shopID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.getShopOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// handleListCourierOrders returns a courier's assigned and delivered orders.
// A courier may only see their own; admins may see any courier's.
func (s *Server) handleListCourierOrders(ctx echo.Context) error {
	role, err := s.requireRole(ctx, user.RoleAdmin, user.RoleCourier)
	if err != nil {
		return s.respondError(ctx, err)
	}

	courierID, err := kernel.ParseUserID(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if role == user.RoleCourier && courierID != callerFrom(ctx) {
		return s.respondError(ctx, errs.NewPermissionDeniedError(callerFrom(ctx).Int64(), "view another courier's deliveries"))
	}

	query, err := queries.NewGetCourierOrdersQuery(courierID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.getCourierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// handleListCouriers returns all registered couriers, the set an admin picks
// from when assigning an order.
func (s *Server) handleListCouriers(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, user.RoleAdmin); err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetUsersByRoleQuery(user.RoleCourier)
	if err != nil {
		return s.respondError(ctx, err)
	}

	couriers, err := s.getUsersByRoleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, couriers)
}

// handleReport returns the order counters summary. Admin only.
func (s *Server) handleReport(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, user.RoleAdmin); err != nil {
		return s.respondError(ctx, err)
	}

	report, err := s.getReportHandler.Handle(ctx.Request().Context(), queries.NewGetDeliveryReportQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, report)
}

type helpResponse struct {
	Role     string   `json:"role"`
	Commands []string `json:"commands"`
}

// handleHelp lists the operations available to the caller's role. Callers
// who have not registered yet only see the registration commands.
func (s *Server) handleHelp(ctx echo.Context) error {
	role, err := s.callerRole(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrPermissionDenied) {
			return ctx.JSON(http.StatusOK, helpResponse{
				Role: "unregistered",
				Commands: []string{
					"POST /api/v1/registration",
					"POST /api/v1/registration/cancel",
				},
			})
		}

		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, helpResponse{Role: role.String(), Commands: commandsFor(role)})
}

func commandsFor(role user.Role) []string {
	switch role {
	case user.RoleShop:
		return []string{
			"POST /api/v1/orders",
			"GET /api/v1/shops/{id}/orders",
			"POST /api/v1/registration/reset",
		}
	case user.RoleCourier:
		return []string{
			"POST /api/v1/orders/{id}/delivery",
			"POST /api/v1/orders/{id}/comments",
			"GET /api/v1/couriers/{id}/deliveries",
			"POST /api/v1/registration/reset",
		}
	case user.RoleAdmin:
		return []string{
			"GET /api/v1/orders",
			"GET /api/v1/orders/pending",
			"POST /api/v1/orders/{id}/assignment",
			"POST /api/v1/orders/export",
			"GET /api/v1/shops/{id}/orders",
			"GET /api/v1/couriers/{id}/deliveries",
			"GET /api/v1/couriers",
			"GET /api/v1/report",
			"GET /api/v1/whitelist",
			"POST /api/v1/whitelist",
			"DELETE /api/v1/whitelist/{id}",
			"POST /api/v1/users/{id}/deletion",
			"POST /api/v1/users/{id}/deletion/confirm",
		}
	default:
		return nil
	}
}
