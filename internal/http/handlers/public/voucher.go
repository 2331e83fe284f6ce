package public

import (
	"github.com/vietcart-next/internal/http/response"
	"github.com/vietcart-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListAvailableVouchers 可领取优惠券列表
func (h *Handler) ListAvailableVouchers(c *gin.Context) {
	token, ok := getToken(c)
	if !ok {
		return
	}
	vouchers, err := h.VoucherService.ListAvailable(c.Request.Context(), token)
	if err != nil {
		respondVoucherError(c, err)
		return
	}
	response.Success(c, gin.H{"vouchers": vouchers})
}

// ListMyVouchers 用户持有的优惠券，按当前勾选小计标注可用性
func (h *Handler) ListMyVouchers(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	token, ok := getToken(c)
	if !ok {
		return
	}
	lines, err := h.CartService.SelectedLines(uid)
	if err != nil {
		respondVoucherError(c, err)
		return
	}
	items := make([]service.CheckoutItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, service.CheckoutItem{UnitPrice: line.UnitPrice, Quantity: line.Quantity})
	}
	subtotal := service.Subtotal(items)

	views, err := h.VoucherService.ListForCheckout(c.Request.Context(), token, uid, subtotal)
	if err != nil {
		respondVoucherError(c, err)
		return
	}
	response.Success(c, gin.H{
		"subtotal": subtotal,
		"vouchers": views,
	})
}

// ClaimVoucher 领取优惠券
func (h *Handler) ClaimVoucher(c *gin.Context) {
	token, ok := getToken(c)
	if !ok {
		return
	}
	voucherID, ok := parseUintParam(c, "voucher_id")
	if !ok {
		return
	}
	if err := h.VoucherService.Claim(c.Request.Context(), token, voucherID); err != nil {
		respondVoucherError(c, err)
		return
	}
	response.SuccessWithMsg(c, "voucher.claimed", gin.H{"voucher_id": voucherID})
}
