// Package http exposes the order fulfillment core over a REST surface.
// It binds requests into commands and queries, hands them to the application
// layer, and maps the error taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"foodexpress/internal/core/application/usecases/commands"
	"foodexpress/internal/core/application/usecases/queries"
	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned on request failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the checkout payload. The cart supplies the restaurant
// and the line items, so the request carries only the customer, the charged
// total, the drop address, and the payment gateway references.
type PlaceOrderRequest struct {
	CustomerID      int64   `json:"customerId"`
	TotalAmount     float64 `json:"totalAmount"`
	DeliveryAddress string  `json:"deliveryAddress"`
	GatewayOrderID  string  `json:"gatewayOrderId"`
	PaymentID       string  `json:"paymentId"`
	Signature       string  `json:"signature"`
}

// AssignAgentRequest identifies the order and the agent to bind together.
type AssignAgentRequest struct {
	OrderID int64 `json:"orderId"`
	AgentID int64 `json:"agentId"`
}

// AssignAgentResponse reports the handover outcome.
type AssignAgentResponse struct {
	OrderStatus string `json:"orderStatus"`
	AgentName   string `json:"agentName"`
}

// DeliverOrderResponse reports the delivery outcome.
type DeliverOrderResponse struct {
	OrderStatus string `json:"orderStatus"`
	AgentStatus string `json:"agentStatus"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler   commands.PlaceOrderCommandHandler
	assignAgentHandler  commands.AssignAgentCommandHandler
	deliverOrderHandler commands.DeliverOrderCommandHandler

	// Query handlers
	getOrdersHistoryHandler   queries.GetOrdersHistoryQueryHandler
	getAllOrdersHandler       queries.GetAllOrdersQueryHandler
	getOrderDetailsHandler    queries.GetOrderDetailsQueryHandler
	getAllAgentsHandler       queries.GetAllAgentsQueryHandler
	getAvailableAgentsHandler queries.GetAvailableAgentsQueryHandler
	getAgentDetailsHandler    queries.GetAgentDetailsQueryHandler
	getDashboardHandler       queries.GetDashboardQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	getOrdersHistoryHandler queries.GetOrdersHistoryQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderDetailsHandler queries.GetOrderDetailsQueryHandler,
	getAllAgentsHandler queries.GetAllAgentsQueryHandler,
	getAvailableAgentsHandler queries.GetAvailableAgentsQueryHandler,
	getAgentDetailsHandler queries.GetAgentDetailsQueryHandler,
	getDashboardHandler queries.GetDashboardQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:         placeOrderHandler,
		assignAgentHandler:        assignAgentHandler,
		deliverOrderHandler:       deliverOrderHandler,
		getOrdersHistoryHandler:   getOrdersHistoryHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		getOrderDetailsHandler:    getOrderDetailsHandler,
		getAllAgentsHandler:       getAllAgentsHandler,
		getAvailableAgentsHandler: getAvailableAgentsHandler,
		getAgentDetailsHandler:    getAgentDetailsHandler,
		getDashboardHandler:       getDashboardHandler,
	}
}

// RegisterRoutes attaches the REST surface to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.PlaceOrder)
	e.GET("/orders", s.GetAllOrders)
	e.GET("/orders/user/:id", s.GetOrdersHistory)
	e.PUT("/orders/assign", s.AssignAgent)
	e.PUT("/orders/:id/deliver", s.DeliverOrder)
	e.GET("/orders/:id", s.GetOrderDetails)

	e.GET("/agents", s.GetAllAgents)
	e.GET("/agents/available", s.GetAvailableAgents)
	e.GET("/agents/:id", s.GetAgentDetails)

	e.GET("/dashboard", s.GetDashboard)
}

// PlaceOrder handles POST /orders - places an order from the customer's cart.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.ID(req.CustomerID),
		req.TotalAmount,
		req.DeliveryAddress,
		req.GatewayOrderID,
		req.PaymentID,
		req.Signature,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	result, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	placed := result.Order
	items := make([]queries.OrderItemResponse, 0, len(placed.Items()))
	for _, item := range placed.Items() {
		items = append(items, queries.OrderItemResponse{
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
			ImageURL: item.ImageURL(),
		})
	}

	return ctx.JSON(http.StatusCreated, queries.OrderResponse{
		OrderID:           placed.ID().Int64(),
		Status:            placed.Status().String(),
		TotalAmount:       placed.TotalAmount(),
		OrderDate:         placed.OrderedAt(),
		RestaurantName:    result.RestaurantName,
		Items:             items,
		GatewayOrderID:    placed.Payment().GatewayOrderID,
		EstimatedDelivery: placed.EstimatedDelivery(),
	})
}

// GetOrdersHistory handles GET /orders/user/:id - a customer's orders, newest
// first. A known customer with no orders yields 204.
func (s *Server) GetOrdersHistory(ctx echo.Context) error {
	customerID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetOrdersHistoryQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	orders, err := s.getOrdersHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	if len(orders) == 0 {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetAllOrders handles GET /orders - order summaries for the operations view.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrderDetails handles GET /orders/:id - one order with its assignment
// candidates.
func (s *Server) GetOrderDetails(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	details, err := s.getOrderDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, details)
}

// AssignAgent handles PUT /orders/assign - binds an agent to a placed order.
func (s *Server) AssignAgent(ctx echo.Context) error {
	var req AssignAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignAgentCommand(kernel.ID(req.OrderID), kernel.ID(req.AgentID))
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	result, err := s.assignAgentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignAgentResponse{
		OrderStatus: result.OrderStatus.String(),
		AgentName:   result.AgentName,
	})
}

// DeliverOrder handles PUT /orders/:id/deliver - marks an order delivered and
// settles the carrying agent.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	result, err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliverOrderResponse{
		OrderStatus: result.OrderStatus.String(),
		AgentStatus: result.AgentStatus.String(),
	})
}

// GetAllAgents handles GET /agents - the full agent directory.
func (s *Server) GetAllAgents(ctx echo.Context) error {
	agents, err := s.getAllAgentsHandler.Handle(ctx.Request().Context(), queries.NewGetAllAgentsQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, agents)
}

// GetAvailableAgents handles GET /agents/available - agents free for
// assignment. An empty list is a success, not an error.
func (s *Server) GetAvailableAgents(ctx echo.Context) error {
	agents, err := s.getAvailableAgentsHandler.Handle(ctx.Request().Context(), queries.NewGetAvailableAgentsQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, agents)
}

// GetAgentDetails handles GET /agents/:id - one agent with its active order.
func (s *Server) GetAgentDetails(ctx echo.Context) error {
	agentID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid agent id")
	}

	query, err := queries.NewGetAgentDetailsQuery(agentID)
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	details, err := s.getAgentDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, details)
}

// GetDashboard handles GET /dashboard - the metrics snapshot.
func (s *Server) GetDashboard(ctx echo.Context) error {
	snapshot, err := s.getDashboardHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// pathID parses a positive integer path parameter into a kernel.ID.
func pathID(ctx echo.Context, name string) (kernel.ID, error) {
	raw, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return kernel.ID(raw), nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates application errors onto the HTTP status taxonomy:
// unresolved references are 404, violated preconditions are 400, and
// everything else is a 500 with a generic message.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrStatusConflict),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
