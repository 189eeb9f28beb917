package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bangazon/bangazon-api/internal/pkg/apperrors"
	"github.com/bangazon/bangazon-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "internal server error"

// statusFor maps an application error kind to its HTTP status
func statusFor(kind string) int {
	switch kind {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindInvalid, apperrors.KindReferenceNotFound:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse. Causes of internal errors are logged, never returned.
func respondError(ctx *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		if status := statusFor(appErr.Kind); status != http.StatusInternalServerError {
			ctx.JSON(status, ErrorResponse{Message: appErr.Message})
			return
		}
	}

	if log, logErr := logger.GetLogger(); logErr == nil {
		log.Error("request ", ctx.Request.Method, " ", ctx.Request.URL.Path, " failed: ", err)
	}
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: internalErrorMessage})
}

// respondBadRequest writes a 400 with message
func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// parseID reads the :id path parameter as an unsigned integer
func parseID(ctx *gin.Context) (uint, error) {
	raw := ctx.Param("id")
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, apperrors.Invalid("invalid id: %s", raw).Wrap(err)
	}
	return uint(id), nil
}
