package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ventia/ventia/internal/auth"
	categorydomain "github.com/ventia/ventia/internal/category/domain"
	clientdomain "github.com/ventia/ventia/internal/client/domain"
	employeedomain "github.com/ventia/ventia/internal/employee/domain"
	"github.com/ventia/ventia/internal/integrity"
	invoicedomain "github.com/ventia/ventia/internal/invoice/domain"
	orderdomain "github.com/ventia/ventia/internal/order/domain"
	paymentdomain "github.com/ventia/ventia/internal/payment/domain"
	productdomain "github.com/ventia/ventia/internal/product/domain"
	"github.com/ventia/ventia/internal/providers/storage"
	servicesdomain "github.com/ventia/ventia/internal/services/domain"
)

var errInvalidBody = errors.New("invalid request body")

var notFoundErrors = []error{
	clientdomain.ErrNotFound,
	employeedomain.ErrNotFound,
	categorydomain.ErrNotFound,
	productdomain.ErrNotFound,
	servicesdomain.ErrNotFound,
	servicesdomain.ErrInputNotFound,
	servicesdomain.ErrProductNotFound,
	categorydomain.ErrProductNotFound,
	categorydomain.ErrNotAssigned,
	orderdomain.ErrNotFound,
	orderdomain.ErrLineNotFound,
	paymentdomain.ErrNotFound,
	invoicedomain.ErrOrderNotFound,
	invoicedomain.ErrClientNotFound,
	integrity.ErrNotFound,
	storage.ErrNotFound,
}

var conflictErrors = []error{
	clientdomain.ErrDuplicateEmail,
	clientdomain.ErrReferenced,
	employeedomain.ErrDuplicateEmail,
	employeedomain.ErrReferenced,
	categorydomain.ErrDuplicateName,
	categorydomain.ErrAlreadyAssigned,
	productdomain.ErrReferenced,
	servicesdomain.ErrReferenced,
	servicesdomain.ErrDuplicateInput,
	orderdomain.ErrDuplicateLine,
	orderdomain.ErrIllegalTransition,
	orderdomain.ErrOrderCompleted,
	paymentdomain.ErrIllegalTransition,
}

var badRequestErrors = []error{
	errInvalidBody,
	clientdomain.ErrInvalidEmail,
	clientdomain.ErrInvalidName,
	employeedomain.ErrInvalidEmail,
	employeedomain.ErrInvalidName,
	employeedomain.ErrInvalidRole,
	employeedomain.ErrWeakPassword,
	categorydomain.ErrInvalidName,
	productdomain.ErrInvalidName,
	productdomain.ErrInvalidPrice,
	productdomain.ErrInvalidStock,
	productdomain.ErrUnsupportedImage,
	productdomain.ErrNoImage,
	servicesdomain.ErrInvalidName,
	servicesdomain.ErrInvalidPrice,
	orderdomain.ErrInvalidQuantity,
	orderdomain.ErrInvalidStatus,
	orderdomain.ErrClientNotFound,
	orderdomain.ErrEmployeeNotFound,
	orderdomain.ErrProductNotFound,
	orderdomain.ErrServiceNotFound,
	paymentdomain.ErrInvalidAmount,
	paymentdomain.ErrInvalidMethod,
	paymentdomain.ErrCreditFields,
	paymentdomain.ErrAccountField,
	paymentdomain.ErrInvalidStatus,
	paymentdomain.ErrClientNotFound,
	invoicedomain.ErrInvalidTaxRate,
}

var unauthorizedErrors = []error{
	auth.ErrInvalidToken,
	auth.ErrMissingToken,
	employeedomain.ErrBadCredentials,
	employeedomain.ErrAccountDisabled,
}

func statusFor(err error) int {
	for _, candidate := range badRequestErrors {
		if errors.Is(err, candidate) {
			return http.StatusBadRequest
		}
	}
	for _, candidate := range unauthorizedErrors {
		if errors.Is(err, candidate) {
			return http.StatusUnauthorized
		}
	}
	for _, candidate := range notFoundErrors {
		if errors.Is(err, candidate) {
			return http.StatusNotFound
		}
	}
	for _, candidate := range conflictErrors {
		if errors.Is(err, candidate) {
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}

// respondError maps domain sentinels onto the wire contract: every non-2xx
// body is {"detail": reason}. Unrecognized errors surface as 500 without
// leaking internals.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"detail": "internal error"})
		return
	}
	c.JSON(status, gin.H{"detail": err.Error()})
}
