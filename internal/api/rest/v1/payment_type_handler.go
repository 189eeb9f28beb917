package v1

import (
	"net/http"

	"github.com/bangazon/bangazon-api/internal/domain/paymenttypes"
	"github.com/bangazon/bangazon-api/internal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// PaymentTypeHandler defines the interface for handling payment type operations
type PaymentTypeHandler interface {
	List(ctx *gin.Context)
	Retrieve(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Destroy(ctx *gin.Context)
}

// paymentTypeHandler struct holds the services
type paymentTypeHandler struct {
	paymentTypeService paymenttypes.PaymentTypeService
}

// NewPaymentTypeHandler creates a new PaymentTypeHandler
func NewPaymentTypeHandler(paymentTypeService paymenttypes.PaymentTypeService) PaymentTypeHandler {
	return &paymentTypeHandler{
		paymentTypeService: paymentTypeService,
	}
}

// List handles the GET request to list all payment types
// @Summary List payment types
// @Tags PaymentType
// @Produce json
// @Success 200 {array} PaymentTypeResponse
// @Router /payment_types [get]
func (handler *paymentTypeHandler) List(ctx *gin.Context) {
	paymentTypeList, err := handler.paymentTypeService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := make([]PaymentTypeResponse, 0, len(paymentTypeList))
	for _, paymentType := range paymentTypeList {
		listResponse = append(listResponse, NewPaymentTypeResponse(paymentType))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Retrieve handles the GET request to fetch a single payment type by its ID
// @Summary Retrieve a payment type
// @Tags PaymentType
// @Produce json
// @Param id path int true "Payment type ID"
// @Success 200 {object} PaymentTypeResponse
// @Failure 404 {object} ErrorResponse
// @Router /payment_types/{id} [get]
func (handler *paymentTypeHandler) Retrieve(ctx *gin.Context) {
	paymentTypeID, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	paymentType, err := handler.paymentTypeService.GetByID(ctx.Request.Context(), paymentTypeID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewPaymentTypeResponse(paymentType))
}

// Create handles the POST request to create a payment type
// @Summary Create a payment type
// @Tags PaymentType
// @Accept json
// @Produce json
// @Param requestBody body PaymentTypeRequest true "Payment type"
// @Success 201 {object} PaymentTypeResponse
// @Failure 400 {object} ErrorResponse
// @Router /payment_types [post]
func (handler *paymentTypeHandler) Create(ctx *gin.Context) {
	request, err := bindPaymentTypeRequest(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	paymentType, err := handler.paymentTypeService.Create(ctx.Request.Context(), request.Label)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewPaymentTypeResponse(paymentType))
}

// Update handles the PUT request to overwrite the label of a payment type
// @Summary Update a payment type
// @Tags PaymentType
// @Accept json
// @Param id path int true "Payment type ID"
// @Param requestBody body PaymentTypeRequest true "Payment type"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /payment_types/{id} [put]
func (handler *paymentTypeHandler) Update(ctx *gin.Context) {
	paymentTypeID, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	request, err := bindPaymentTypeRequest(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := handler.paymentTypeService.UpdateByID(ctx.Request.Context(), paymentTypeID, request.Label); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Destroy handles the DELETE request to remove a payment type
// @Summary Delete a payment type
// @Tags PaymentType
// @Param id path int true "Payment type ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /payment_types/{id} [delete]
func (handler *paymentTypeHandler) Destroy(ctx *gin.Context) {
	paymentTypeID, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := handler.paymentTypeService.DeleteByID(ctx.Request.Context(), paymentTypeID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func bindPaymentTypeRequest(ctx *gin.Context) (*PaymentTypeRequest, error) {
	var request PaymentTypeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, apperrors.Invalid("invalid payment type data: %v", err).Wrap(err)
	}
	if err := request.Validate(); err != nil {
		return nil, apperrors.Invalid("%v", err).Wrap(err)
	}
	return &request, nil
}

