package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
)

type createOrderRequest struct {
	CustomerPhone string  `json:"customer_phone" validate:"required,min=5"`
	City          string  `json:"city" validate:"required"`
	Address       string  `json:"address" validate:"required"`
	PaymentAmount float64 `json:"payment_amount" validate:"gte=0"`
}

// handleCreateOrder registers a new pending order for the calling shop. The
// shop name on the order is the caller's stored display name.
func (s *Server) handleCreateOrder(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, user.RoleShop); err != nil {
		return s.respondError(ctx, err)
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	callerID := callerFrom(ctx)

	shop, err := s.users.Get(ctx.Request().Context(), callerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		callerID, shop.DisplayName(), req.CustomerPhone, req.City, req.Address, req.PaymentAmount,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]int64{"order_id": orderID.Int64()})
}

type assignOrderRequest struct {
	CourierID int64 `json:"courier_id" validate:"required,gt=0"`
}

// handleAssignOrder hands a pending order to a courier. Admin only; an
// already assigned or delivered order is never reassigned.
func (s *Server) handleAssignOrder(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, user.RoleAdmin); err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req assignOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	courierID, err := kernel.NewUserID(req.CourierID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	courier, err := s.users.Get(ctx.Request().Context(), courierID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if courier.Role() != user.RoleCourier {
		return s.respondError(ctx, errs.NewValueIsInvalidError("courier id"))
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, courierID, courier.DisplayName())
	if err != nil {
		return s.respondError(ctx, err)
	}

	assigned, err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.NewOrderResponse(assigned))
}

// handleMarkDelivered closes an order. Only the assigned courier may do it.
func (s *Server) handleMarkDelivered(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, user.RoleCourier); err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, callerFrom(ctx))
	if err != nil {
		return s.respondError(ctx, err)
	}

	delivered, err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.NewOrderResponse(delivered))
}

type addCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// handleAddComment relays a courier note about an order to the admins.
// Comments are not stored, only forwarded.
func (s *Server) handleAddComment(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, user.RoleCourier); err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req addCommentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cmd, err := commands.NewAddCommentCommand(orderID, callerFrom(ctx), req.Text)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.addCommentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, map[string]string{"status": "relayed"})
}

// handleExportOrders writes all orders to a CSV file and reports its path.
func (s *Server) handleExportOrders(ctx echo.Context) error {
	if _, err := s.requireRole(ctx, user.RoleAdmin); err != nil {
		return s.respondError(ctx, err)
	}

	path, err := s.exporter.Export(ctx.Request().Context())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"path": path})
}
