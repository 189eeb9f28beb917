package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bangazon/bangazon-api/internal/domain/orders"
	"github.com/bangazon/bangazon-api/internal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Query parameters of the order list
const (
	queryCustomerID  = "customer_id"
	queryIsCompleted = "is_completed"
)

// OrderHandler defines the interface for handling order operations
type OrderHandler interface {
	List(ctx *gin.Context)
	Retrieve(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
}

// orderHandler struct holds the services
type orderHandler struct {
	orderService orders.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService orders.OrderService) OrderHandler {
	return &orderHandler{
		orderService: orderService,
	}
}

// List handles the GET request to list orders with optional filters
// @Summary List orders
// @Description Filters compose: customer_id restricts to one customer, is_completed to the completion flag.
// @Tags Order
// @Produce json
// @Param customer_id query int false "Customer ID"
// @Param is_completed query bool false "Completion flag (true/false, case-insensitive)"
// @Success 200 {array} OrderResponse
// @Failure 400 {object} ErrorResponse
// @Router /orders [get]
func (handler *orderHandler) List(ctx *gin.Context) {
	query := orders.NewOrderQuery()
	matchesNone := false

	if customerID, ok := ctx.GetQuery(queryCustomerID); ok {
		id, err := strconv.ParseInt(strings.TrimSpace(customerID), 10, 64)
		if err != nil {
			respondBadRequest(ctx, "Invalid customer_id")
			return
		}
		// customer ids are unsigned, a negative id matches no order
		if id < 0 {
			matchesNone = true
		} else {
			query.ByCustomer(uint(id))
		}
	}

	if isCompleted, ok := ctx.GetQuery(queryIsCompleted); ok {
		switch strings.ToLower(isCompleted) {
		case "true":
			query.ByCompletion(true)
		case "false":
			query.ByCompletion(false)
		default:
			respondBadRequest(ctx, "Invalid is_completed value")
			return
		}
	}

	if matchesNone {
		ctx.JSON(http.StatusOK, []OrderResponse{})
		return
	}

	orderList, err := handler.orderService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := make([]OrderResponse, 0, len(orderList))
	for _, order := range orderList {
		listResponse = append(listResponse, NewOrderResponse(order))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Retrieve handles the GET request to fetch a single order by its ID
// @Summary Retrieve an order
// @Tags Order
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} OrderResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (handler *orderHandler) Retrieve(ctx *gin.Context) {
	orderID, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	order, err := handler.orderService.GetByID(ctx.Request.Context(), orderID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewOrderResponse(order))
}

// Create handles the POST request to place an order
// @Summary Create an order
// @Tags Order
// @Accept json
// @Produce json
// @Param requestBody body OrderRequest true "Order"
// @Success 201 {object} OrderResponse
// @Failure 400 {object} ErrorResponse
// @Router /orders [post]
func (handler *orderHandler) Create(ctx *gin.Context) {
	fields, err := bindOrderRequest(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	order, err := handler.orderService.Create(ctx.Request.Context(), fields)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewOrderResponse(order))
}

// Update handles the PUT request to overwrite every field of an order
// @Summary Update an order
// @Tags Order
// @Accept json
// @Param id path int true "Order ID"
// @Param requestBody body OrderRequest true "Order"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [put]
func (handler *orderHandler) Update(ctx *gin.Context) {
	orderID, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	fields, err := bindOrderRequest(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := handler.orderService.UpdateByID(ctx.Request.Context(), orderID, fields); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func bindOrderRequest(ctx *gin.Context) (orders.OrderFields, error) {
	var request OrderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return orders.OrderFields{}, apperrors.Invalid("invalid order data: %v", err).Wrap(err)
	}
	if err := request.Validate(); err != nil {
		return orders.OrderFields{}, apperrors.Invalid("%v", err).Wrap(err)
	}
	return request.ToFields()
}
