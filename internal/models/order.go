package models

import "time"

// Order 订单视图（后端权威数据的只读镜像）
type Order struct {
	ID          uint        `json:"id"`
	OrderNo     string      `json:"order_no"`
	Status      string      `json:"status"`
	Subtotal    Money       `json:"subtotal"`
	ShippingFee Money       `json:"shipping_fee"`
	Discount    Money       `json:"discount"`
	GrandTotal  Money       `json:"grand_total"`
	Currency    string      `json:"currency"`
	VoucherCode string      `json:"voucher_code"`
	Address     *Address    `json:"address,omitempty"`
	Items       []OrderItem `json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
}

// OrderItem 订单项视图
type OrderItem struct {
	VariantID   uint   `json:"variant_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   Money  `json:"unit_price"`
	TotalPrice  Money  `json:"total_price"`
	AttrsJSON   Attrs  `json:"attrs"`
}
