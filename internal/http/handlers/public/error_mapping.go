package public

import (
	"errors"

	"github.com/vietcart-next/internal/client"
	"github.com/vietcart-next/internal/http/response"
	"github.com/vietcart-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

// 后端透传调用共用的错误映射
var backendCommonErrorRules = []mappedHandlerError{
	{target: client.ErrUnauthorized, code: response.CodeUnauthorized, key: "error.session_expired"},
	{target: client.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
	{target: client.ErrRejected, code: response.CodeBadRequest, key: "error.backend_rejected"},
	{target: client.ErrResponseInvalid, code: response.CodeUpstreamFailed, key: "error.backend_response_invalid"},
	{target: client.ErrRequestFailed, code: response.CodeUpstreamFailed, key: "error.backend_unreachable"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCartItem, code: response.CodeBadRequest, key: "error.cart_item_invalid"},
	{target: service.ErrCartLineNotFound, code: response.CodeNotFound, key: "error.cart_line_not_found"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrEmptySelection, code: response.CodeBadRequest, key: "error.checkout_selection_empty"},
	{target: service.ErrShippingMethodInvalid, code: response.CodeBadRequest, key: "error.shipping_method_invalid"},
	{target: service.ErrVoucherNotFound, code: response.CodeBadRequest, key: "error.voucher_not_found"},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrAddressInvalid, code: response.CodeBadRequest, key: "error.address_invalid"},
	{target: service.ErrPhoneInvalid, code: response.CodeBadRequest, key: "error.phone_invalid"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(cartErrorRules, backendCommonErrorRules), response.CodeInternal, "error.cart_operation_failed")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(checkoutErrorRules, backendCommonErrorRules), response.CodeInternal, "error.checkout_failed")
}

func respondOrderError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(checkoutErrorRules, orderErrorRules, backendCommonErrorRules), response.CodeInternal, "error.order_operation_failed")
}

func respondVoucherError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(checkoutErrorRules, backendCommonErrorRules), response.CodeInternal, "error.voucher_operation_failed")
}
