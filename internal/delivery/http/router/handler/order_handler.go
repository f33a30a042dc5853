package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bugstore/internal/delivery/http/response"
	"bugstore/internal/domain/entity"
	"bugstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderLineRequest is one requested line of a new order
type OrderLineRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required"`
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" validate:"required,uuid"`
	Lines      []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// UpdateOrderRequest represents the request body for updating an order.
// Only the customer reference is mutable.
type UpdateOrderRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
}

// OrderLineResponse is the wire representation of an order line
type OrderLineResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	Product   *ProductResponse `json:"product,omitempty"`
	Quantity  int              `json:"quantity"`
	Total     string           `json:"total"`
}

// OrderResponse is the wire representation of an order in the detailed projection
type OrderResponse struct {
	ID         string               `json:"id"`
	CustomerID string               `json:"customer_id"`
	Customer   *CustomerResponse    `json:"customer,omitempty"`
	Lines      []*OrderLineResponse `json:"lines"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

func toOrderResponse(order *entity.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:         order.ID.String(),
		CustomerID: order.CustomerID.String(),
		Lines:      make([]*OrderLineResponse, 0, len(order.Lines)),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
	if order.Customer != nil {
		resp.Customer = toCustomerResponse(order.Customer)
	}

	for _, line := range order.Lines {
		lineResp := &OrderLineResponse{
			ID:        line.ID.String(),
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			Total:     line.Total.String(),
		}
		if line.Product != nil {
			lineResp.Product = toProductResponse(line.Product)
		}
		resp.Lines = append(resp.Lines, lineResp)
	}

	return resp
}

func toOrderResponses(orders []*entity.Order) []*OrderResponse {
	responses := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}

	return responses
}

// ListOrders handles retrieving all orders in the detailed projection
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders))
}

// GetOrder handles retrieving a single order by ID
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// CreateOrder handles order creation
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	lines := make([]usecase.OrderLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
		}

		lines = append(lines, usecase.OrderLineInput{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	input := &usecase.CreateOrderInput{
		CustomerID: customerID,
		Lines:      lines,
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/v1/orders/"+order.ID.String())

	return response.Success(c, http.StatusCreated, toOrderResponse(order))
}

// UpdateOrder handles re-pointing an order at a different customer
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), id, &usecase.UpdateOrderInput{CustomerID: customerID})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// DeleteOrder handles order deletion together with its lines
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
