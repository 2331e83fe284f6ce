package service

import "errors"

// 业务哨兵错误，由 handler 层映射为接口错误码
var (
	ErrInvalidCartItem       = errors.New("cart item invalid")
	ErrCartLineNotFound      = errors.New("cart line not found")
	ErrEmptySelection        = errors.New("checkout selection empty")
	ErrShippingMethodInvalid = errors.New("shipping method invalid")
	ErrVoucherNotFound       = errors.New("voucher not found")
	ErrAddressInvalid        = errors.New("address invalid")
	ErrPhoneInvalid          = errors.New("phone number invalid")
	ErrOrderNotFound         = errors.New("order not found")
)
