package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kossylee/fashionhive-backend/internal/core/application/usecases/commands"
	"github.com/kossylee/fashionhive-backend/internal/core/application/usecases/queries"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/inventory"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/order"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/tailor"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/services"
	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
)

// Server handles HTTP requests and coordinates between the REST surface and
// the application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	applyTransitionHandler commands.ApplyTransitionCommandHandler
	deleteOrderHandler     commands.DeleteOrderCommandHandler
	addMaterialHandler     commands.AddMaterialCommandHandler
	createTailorHandler    commands.CreateTailorCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	listOrdersHandler           queries.ListOrdersQueryHandler
	getLowStockMaterialsHandler queries.GetLowStockMaterialsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	applyTransitionHandler commands.ApplyTransitionCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	addMaterialHandler commands.AddMaterialCommandHandler,
	createTailorHandler commands.CreateTailorCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getLowStockMaterialsHandler queries.GetLowStockMaterialsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		applyTransitionHandler:      applyTransitionHandler,
		deleteOrderHandler:          deleteOrderHandler,
		addMaterialHandler:          addMaterialHandler,
		createTailorHandler:         createTailorHandler,
		getOrderHandler:             getOrderHandler,
		listOrdersHandler:           listOrdersHandler,
		getLowStockMaterialsHandler: getLowStockMaterialsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/status", s.ApplyTransition)
	api.POST("/materials", s.AddMaterial)
	api.GET("/inventory/low-stock", s.GetLowStockMaterials)
	api.POST("/tailors", s.CreateTailor)
}

// Error is the uniform JSON error body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type orderItemRequest struct {
	ProductName    string            `json:"productName"`
	Quantity       int               `json:"quantity"`
	UnitPrice      float64           `json:"unitPrice"`
	Customizations map[string]string `json:"customizations"`
}

type createOrderRequest struct {
	CustomerID      string             `json:"customerId"`
	Items           []orderItemRequest `json:"items"`
	ShippingAddress string             `json:"shippingAddress"`
}

type transitionRequest struct {
	Status         string `json:"status"`
	Note           string `json:"note"`
	TrackingNumber string `json:"trackingNumber"`
}

type addMaterialRequest struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Quantity     int     `json:"quantity"`
	ReorderPoint int     `json:"reorderPoint"`
	UnitPrice    float64 `json:"unitPrice"`
}

type createTailorRequest struct {
	Name              string   `json:"name"`
	Specialties       []string `json:"specialties"`
	MaxWeeklyCapacity int      `json:"maxWeeklyCapacity"`
}

type createdResponse struct {
	ID string `json:"id"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - creates a new draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+req.CustomerID)
	}

	items := make([]order.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		item, itemErr := order.NewOrderItem(line.ProductName, line.Quantity, line.UnitPrice, line.Customizations)
		if itemErr != nil {
			return badRequest(ctx, "Invalid order item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items, req.ShippingAddress)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusCreated)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its
// lines and status history.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListOrders handles GET /api/v1/orders - retrieves order summaries with
// optional status and customerId filters.
func (s *Server) ListOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status := order.Status(raw)
		if err := status.Validate(); err != nil {
			return badRequest(ctx, "Invalid status filter: "+raw)
		}
		statusFilter = &status
	}

	var customerFilter *kernel.UUID
	if raw := ctx.QueryParam("customerId"); raw != "" {
		customerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid customer id filter: "+raw)
		}
		customerFilter = &customerID
	}

	query, err := queries.NewListOrdersQuery(statusFilter, customerFilter)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - deletes a draft or
// cancelled order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyTransition handles POST /api/v1/orders/:id/status - moves an order to
// the requested lifecycle status with all side effects applied atomically.
func (s *Server) ApplyTransition(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req transitionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewApplyTransitionCommand(orderID, order.Status(req.Status), req.Note, req.TrackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid transition: "+err.Error())
	}

	if handleErr := s.applyTransitionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// respondWithOrder reads the order back through the query side so callers see
// the state the command produced, including generated fields such as the
// tracking number assigned on shipping.
func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID, code int) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(code, response)
}

// AddMaterial handles POST /api/v1/materials - registers a new material.
func (s *Server) AddMaterial(ctx echo.Context) error {
	var req addMaterialRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddMaterialCommand(req.SKU, req.Name, req.Description, req.Quantity, req.ReorderPoint, req.UnitPrice)
	if err != nil {
		return badRequest(ctx, "Invalid material data: "+err.Error())
	}

	if handleErr := s.addMaterialHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetLowStockMaterials handles GET /api/v1/inventory/low-stock - lists
// materials at or below their reorder point.
func (s *Server) GetLowStockMaterials(ctx echo.Context) error {
	query := queries.NewGetLowStockMaterialsQuery()

	materials, err := s.getLowStockMaterialsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, materials)
}

// CreateTailor handles POST /api/v1/tailors - registers a new tailor.
func (s *Server) CreateTailor(ctx echo.Context) error {
	var req createTailorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	specialties := make([]tailor.Specialty, 0, len(req.Specialties))
	for _, raw := range req.Specialties {
		specialty, parseErr := tailor.SpecialtyFromString(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid specialty: "+raw)
		}
		specialties = append(specialties, specialty)
	}

	tailorID := kernel.NewUUID()
	cmd, err := commands.NewCreateTailorCommand(tailorID, req.Name, specialties, req.MaxWeeklyCapacity)
	if err != nil {
		return badRequest(ctx, "Invalid tailor data: "+err.Error())
	}

	if handleErr := s.createTailorHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: tailorID.String()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application and domain errors to HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, commands.ErrNoOrderFound), errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrentUpdateConflict),
		errors.Is(err, errs.ErrDuplicateKey):
		code = http.StatusConflict
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderIsNotDeletable),
		errors.Is(err, inventory.ErrInsufficientStock),
		errors.Is(err, services.ErrNoAvailableTailor):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
