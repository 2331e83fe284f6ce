package service

import (
	"github.com/vietcart-next/internal/constants"
	"github.com/vietcart-next/internal/models"

	"github.com/shopspring/decimal"
)

// CheckoutItem 结算输入项（单价快照 × 数量）
type CheckoutItem struct {
	UnitPrice models.Money
	Quantity  int
}

// CheckoutTotals 结算金额（派生值，不落库）
type CheckoutTotals struct {
	Subtotal    models.Money `json:"subtotal"`
	ShippingFee models.Money `json:"shipping_fee"`
	Discount    models.Money `json:"discount"`
	GrandTotal  models.Money `json:"grand_total"`
}

// Subtotal 计算商品小计 Σ(单价 × 数量)
func Subtotal(items []CheckoutItem) models.Money {
	sum := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		sum = sum.Add(item.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return models.NewMoneyFromDecimal(sum)
}

// CalculateTotals 计算结算金额。纯函数：优惠不超过小计，总额不为负。
// 此处结果仅为前端预览，后端重新计算的金额为准。
func CalculateTotals(items []CheckoutItem, shippingFee models.Money, voucher *models.Voucher) CheckoutTotals {
	subtotal := Subtotal(items)
	discount := VoucherDiscount(voucher, subtotal)
	grand := subtotal.Decimal.Add(shippingFee.Decimal).Sub(discount.Decimal)
	if grand.IsNegative() {
		grand = decimal.Zero
	}
	return CheckoutTotals{
		Subtotal:    subtotal,
		ShippingFee: models.NewMoneyFromDecimal(shippingFee.Decimal),
		Discount:    discount,
		GrandTotal:  models.NewMoneyFromDecimal(grand),
	}
}

// VoucherDiscount 按优惠券类型计算折扣金额，封顶规则：
// 百分比类型先按 max_discount 封顶，任何类型最终不超过小计。
// 券数据缺失或类型未知时返回 0，不中断结算流程。
func VoucherDiscount(voucher *models.Voucher, subtotal models.Money) models.Money {
	if voucher == nil {
		return models.Money{Decimal: decimal.Zero}
	}
	value := voucher.DiscountValue.Decimal
	if value.LessThanOrEqual(decimal.Zero) {
		return models.Money{Decimal: decimal.Zero}
	}

	var discount decimal.Decimal
	switch voucher.DiscountType {
	case constants.VoucherTypePercent:
		discount = subtotal.Decimal.Mul(value.Div(decimal.NewFromInt(100)))
		if voucher.MaxDiscount != nil && voucher.MaxDiscount.Decimal.GreaterThan(decimal.Zero) &&
			discount.GreaterThan(voucher.MaxDiscount.Decimal) {
			discount = voucher.MaxDiscount.Decimal
		}
	case constants.VoucherTypeFixed:
		discount = value
	default:
		return models.Money{Decimal: decimal.Zero}
	}

	if discount.GreaterThan(subtotal.Decimal) {
		discount = subtotal.Decimal
	}
	return models.NewMoneyFromDecimal(discount)
}
