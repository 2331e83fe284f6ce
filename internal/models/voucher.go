package models

import "time"

// Voucher 优惠券（后端签发与核销，本地只读）
// 状态字段在客户端解码层已归一化为小写闭合枚举。
type Voucher struct {
	ID            uint       `json:"id"`
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type"`  // percentage / fixed
	DiscountValue Money      `json:"discount_value"` // 百分比数值或固定金额
	MaxDiscount   *Money     `json:"max_discount"`   // 最大优惠金额（仅百分比类型）
	MinOrderValue *Money     `json:"min_order_value"`
	StartsAt      *time.Time `json:"starts_at"`
	EndsAt        *time.Time `json:"ends_at"`
	Status        string     `json:"status"` // available / used / expired / unavailable
}
