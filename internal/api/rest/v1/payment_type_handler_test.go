//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/bangazon/bangazon-api/internal/domain/paymenttypes"
	"github.com/bangazon/bangazon-api/internal/pkg/apperrors"
	"github.com/bangazon/bangazon-api/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentTypeHandler_List_Success(t *testing.T) {
	mockPaymentTypeService := new(MockPaymentTypeService)
	handler := NewPaymentTypeHandler(mockPaymentTypeService)

	mockPaymentTypeService.On("List", mock.Anything).Return([]*paymenttypes.PaymentType{{ID: 1, Label: "Cash"}}, nil)

	c, w := testutil.NewTestContext(testutil.NewJSONRequest(t, "GET", "/payment_types", nil))
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"label":"Cash"}]`, w.Body.String())
}

func TestPaymentTypeHandler_Retrieve_NotFound(t *testing.T) {
	mockPaymentTypeService := new(MockPaymentTypeService)
	handler := NewPaymentTypeHandler(mockPaymentTypeService)

	mockPaymentTypeService.On("GetByID", mock.Anything, uint(8)).Return(nil, apperrors.NotFound(paymenttypes.NotFoundMessage))

	c, w := testutil.NewTestContext(testutil.NewJSONRequest(t, "GET", "/payment_types/8", nil), gin.Param{Key: "id", Value: "8"})
	handler.Retrieve(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"PaymentType matching query does not exist."}`, w.Body.String())
}

func TestPaymentTypeHandler_Create_Success(t *testing.T) {
	mockPaymentTypeService := new(MockPaymentTypeService)
	handler := NewPaymentTypeHandler(mockPaymentTypeService)

	mockPaymentTypeService.On("Create", mock.Anything, "Visa").Return(&paymenttypes.PaymentType{ID: 5, Label: "Visa"}, nil)

	c, w := testutil.NewTestContext(testutil.NewJSONRequest(t, "POST", "/payment_types", map[string]string{"label": "Visa"}))
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":5,"label":"Visa"}`, w.Body.String())
	mockPaymentTypeService.AssertExpectations(t)
}

func TestPaymentTypeHandler_Create_MissingLabel(t *testing.T) {
	mockPaymentTypeService := new(MockPaymentTypeService)
	handler := NewPaymentTypeHandler(mockPaymentTypeService)

	c, w := testutil.NewTestContext(testutil.NewJSONRequest(t, "POST", "/payment_types", map[string]string{}))
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field: Label, Tag: required")
	mockPaymentTypeService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentTypeHandler_Create_MalformedJSON(t *testing.T) {
	mockPaymentTypeService := new(MockPaymentTypeService)
	handler := NewPaymentTypeHandler(mockPaymentTypeService)

	c, w := testutil.NewTestContext(testutil.NewJSONRequest(t, "POST", "/payment_types", `{"label":`))
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid payment type data")
}

func TestPaymentTypeHandler_Update_Success(t *testing.T) {
	mockPaymentTypeService := new(MockPaymentTypeService)
	handler := NewPaymentTypeHandler(mockPaymentTypeService)

	mockPaymentTypeService.On("UpdateByID", mock.Anything, uint(5), "Amex").Return(nil)

	c, w := testutil.NewTestContext(
		testutil.NewJSONRequest(t, "PUT", "/payment_types/5", map[string]string{"label": "Amex"}),
		gin.Param{Key: "id", Value: "5"},
	)
	handler.Update(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	mockPaymentTypeService.AssertExpectations(t)
}

func TestPaymentTypeHandler_Update_NotFound(t *testing.T) {
	mockPaymentTypeService := new(MockPaymentTypeService)
	handler := NewPaymentTypeHandler(mockPaymentTypeService)

	mockPaymentTypeService.On("UpdateByID", mock.Anything, uint(5), "Amex").Return(apperrors.NotFound(paymenttypes.NotFoundMessage))

	c, w := testutil.NewTestContext(
		testutil.NewJSONRequest(t, "PUT", "/payment_types/5", map[string]string{"label": "Amex"}),
		gin.Param{Key: "id", Value: "5"},
	)
	handler.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentTypeHandler_Destroy_Success(t *testing.T) {
	mockPaymentTypeService := new(MockPaymentTypeService)
	handler := NewPaymentTypeHandler(mockPaymentTypeService)

	mockPaymentTypeService.On("DeleteByID", mock.Anything, uint(5)).Return(nil)

	c, w := testutil.NewTestContext(testutil.NewJSONRequest(t, "DELETE", "/payment_types/5", nil), gin.Param{Key: "id", Value: "5"})
	handler.Destroy(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestPaymentTypeHandler_Destroy_Referenced(t *testing.T) {
	mockPaymentTypeService := new(MockPaymentTypeService)
	handler := NewPaymentTypeHandler(mockPaymentTypeService)

	mockPaymentTypeService.
		On("DeleteByID", mock.Anything, uint(5)).
		Return(apperrors.Invalid("payment type with id 5 is referenced by existing orders"))

	c, w := testutil.NewTestContext(testutil.NewJSONRequest(t, "DELETE", "/payment_types/5", nil), gin.Param{Key: "id", Value: "5"})
	handler.Destroy(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"payment type with id 5 is referenced by existing orders"}`, w.Body.String())
}
