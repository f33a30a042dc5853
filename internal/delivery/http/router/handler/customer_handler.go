// Package handler contains the HTTP handlers for the store API.
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

// birthDateLayout is the wire format for customer birth dates.
const birthDateLayout = "2006-01-02"

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler holds dependencies for customer-related handlers
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// CustomerRequest represents the request body for creating or updating a customer.
// Updates replace every mutable field, so create and update share the shape.
type CustomerRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"max=30"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

// CustomerResponse is the wire representation of a customer
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	BirthDate string    `json:"birth_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCustomerResponse(customer *entity.Customer) *CustomerResponse {
	resp := &CustomerResponse{
		ID:        customer.ID.String(),
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
	if !customer.BirthDate.IsZero() {
		resp.BirthDate = customer.BirthDate.Format(birthDateLayout)
	}

	return resp
}

func toCustomerResponses(customers []*entity.Customer) []*CustomerResponse {
	responses := make([]*CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		responses = append(responses, toCustomerResponse(customer))
	}

	return responses
}

func parseBirthDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	return time.Parse(birthDateLayout, raw)
}

// ListCustomers handles retrieving all customers
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.customerUC.ListCustomers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCustomerResponses(customers))
}

// GetCustomer handles retrieving a single customer by ID
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	customer, err := h.customerUC.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCustomerResponse(customer))
}

// GetCustomerByEmail handles retrieving a single customer by email
func (h *CustomerHandler) GetCustomerByEmail(c echo.Context) error {
	email := c.Param("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_EMAIL", "Email must not be empty")
	}

	customer, err := h.customerUC.GetCustomerByEmail(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCustomerResponse(customer))
}

// CreateCustomer handles customer creation
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_BIRTH_DATE", "Birth date must use the YYYY-MM-DD format")
	}

	input := &usecase.CreateCustomerInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: birthDate,
	}

	customer, err := h.customerUC.CreateCustomer(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/v1/customers/"+customer.ID.String())

	return response.Success(c, http.StatusCreated, toCustomerResponse(customer))
}

// UpdateCustomer handles a wholesale customer update
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_BIRTH_DATE", "Birth date must use the YYYY-MM-DD format")
	}

	input := &usecase.UpdateCustomerInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: birthDate,
	}

	customer, err := h.customerUC.UpdateCustomer(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCustomerResponse(customer))
}

// DeleteCustomer handles customer deletion
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	if err := h.customerUC.DeleteCustomer(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
