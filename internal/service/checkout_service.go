package service

import (
	"context"
	"time"

	"github.com/vietcart-next/internal/client"
	"github.com/vietcart-next/internal/config"
	"github.com/vietcart-next/internal/constants"
	"github.com/vietcart-next/internal/logger"
	"github.com/vietcart-next/internal/models"
)

// CheckoutService 结算服务。本地先算一份金额用于即时展示，
// 再请求后端预览；后端返回成功时以后端金额为准。
type CheckoutService struct {
	cartSvc    *CartService
	voucherSvc *VoucherService
	orderAPI   client.OrderAPI
	shipping   config.ShippingConfig
	now        func() time.Time
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(cartSvc *CartService, voucherSvc *VoucherService, orderAPI client.OrderAPI, shipping config.ShippingConfig) *CheckoutService {
	return &CheckoutService{
		cartSvc:    cartSvc,
		voucherSvc: voucherSvc,
		orderAPI:   orderAPI,
		shipping:   shipping,
		now:        time.Now,
	}
}

// PreviewInput 结算预览输入
type PreviewInput struct {
	ShippingMethod string `json:"shipping_method"`
	VoucherCode    string `json:"voucher_code"`
}

// CheckoutPreview 结算预览结果
type CheckoutPreview struct {
	Items         []models.CartLine `json:"items"`
	Totals        CheckoutTotals    `json:"totals"`
	Currency      string            `json:"currency"`
	VoucherCode   string            `json:"voucher_code,omitempty"`
	VoucherUsable bool              `json:"voucher_usable"`
	VoucherReason string            `json:"voucher_reason,omitempty"`
	Authoritative bool              `json:"authoritative"`
}

// ShippingFee 按配送方式取基础运费
func (s *CheckoutService) ShippingFee(method string) (models.Money, error) {
	switch method {
	case constants.ShippingMethodStandard:
		return models.NewMoneyFromInt(s.shipping.StandardFee), nil
	case constants.ShippingMethodExpress:
		return models.NewMoneyFromInt(s.shipping.ExpressFee), nil
	default:
		return models.NewMoneyFromInt(0), ErrShippingMethodInvalid
	}
}

// Preview 结算预览。勾选行为空时拒绝进入结算；
// 券不可用时按无券计算并带回原因，不阻断流程；
// 后端预览失败时退回本地金额（Authoritative=false）。
func (s *CheckoutService) Preview(ctx context.Context, token string, userID uint, input PreviewInput) (*CheckoutPreview, error) {
	lines, err := s.cartSvc.SelectedLines(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptySelection
	}

	shippingFee, err := s.ShippingFee(input.ShippingMethod)
	if err != nil {
		return nil, err
	}

	items := make([]CheckoutItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, CheckoutItem{UnitPrice: line.UnitPrice, Quantity: line.Quantity})
	}
	subtotal := Subtotal(items)

	preview := &CheckoutPreview{
		Items:    lines,
		Currency: constants.SiteCurrencyDefault,
	}

	var voucher *models.Voucher
	if input.VoucherCode != "" {
		found, err := s.voucherSvc.FindByCode(ctx, token, userID, input.VoucherCode)
		if err != nil && err != ErrVoucherNotFound {
			return nil, err
		}
		if err == ErrVoucherNotFound {
			preview.VoucherReason = VoucherReasonUnavailable
		} else {
			usable, _, reason := s.voucherSvc.Evaluate(found, subtotal, s.now())
			preview.VoucherCode = found.Code
			preview.VoucherUsable = usable
			preview.VoucherReason = reason
			if usable {
				voucher = found
			}
		}
	}

	preview.Totals = CalculateTotals(items, shippingFee, voucher)

	remote, err := s.orderAPI.Preview(ctx, token, buildOrderRequest(lines, input.ShippingMethod, preview.VoucherCode, nil))
	if err != nil {
		logger.Warnw("checkout_preview_fallback_local",
			"user_id", userID,
			"error", err,
		)
		return preview, nil
	}
	preview.Totals = CheckoutTotals{
		Subtotal:    remote.Subtotal,
		ShippingFee: remote.ShippingFee,
		Discount:    remote.Discount,
		GrandTotal:  remote.GrandTotal,
	}
	if remote.Currency != "" {
		preview.Currency = remote.Currency
	}
	preview.Authoritative = true
	return preview, nil
}

func buildOrderRequest(lines []models.CartLine, shippingMethod, voucherCode string, address *models.Address) client.OrderCreateRequest {
	items := make([]client.OrderCreateItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, client.OrderCreateItem{
			VariantID: line.VariantID,
			Quantity:  line.Quantity,
		})
	}
	return client.OrderCreateRequest{
		Items:          items,
		ShippingMethod: shippingMethod,
		VoucherCode:    voucherCode,
		Address:        address,
	}
}
