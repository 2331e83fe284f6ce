package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vietcart-next/internal/models"
)

// OrderAPI 订单接口
type OrderAPI interface {
	Create(ctx context.Context, token string, req OrderCreateRequest) (*models.Order, error)
	Preview(ctx context.Context, token string, req OrderCreateRequest) (*CheckoutResponse, error)
	ListByUser(ctx context.Context, token string, userID uint) ([]models.Order, error)
	Get(ctx context.Context, token string, orderID uint) (*models.Order, error)
	Cancel(ctx context.Context, token string, orderID uint) error
}

// OrderCreateRequest 下单请求（后端定义的 JSON 契约）
type OrderCreateRequest struct {
	Items          []OrderCreateItem `json:"items"`
	ShippingMethod string            `json:"shipping_method"`
	VoucherCode    string            `json:"voucher_code,omitempty"`
	Address        *models.Address   `json:"address,omitempty"`
}

// OrderCreateItem 下单项
type OrderCreateItem struct {
	VariantID uint `json:"variant_id"`
	Quantity  int  `json:"quantity"`
}

// CheckoutResponse 后端结算金额响应（权威数据）
type CheckoutResponse struct {
	Subtotal    models.Money `json:"subtotal"`
	ShippingFee models.Money `json:"shipping_fee"`
	Discount    models.Money `json:"discount"`
	GrandTotal  models.Money `json:"grand_total"`
	Currency    string       `json:"currency"`
}

// Create 提交订单
func (b *Backend) Create(ctx context.Context, token string, req OrderCreateRequest) (*models.Order, error) {
	var order models.Order
	if err := b.doJSON(ctx, http.MethodPost, "/orders", token, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Preview 请求后端结算金额预览
func (b *Backend) Preview(ctx context.Context, token string, req OrderCreateRequest) (*CheckoutResponse, error) {
	var resp CheckoutResponse
	if err := b.doJSON(ctx, http.MethodPost, "/orders/preview", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListByUser 拉取用户订单列表
func (b *Backend) ListByUser(ctx context.Context, token string, userID uint) ([]models.Order, error) {
	var data struct {
		Orders []models.Order `json:"orders"`
	}
	path := fmt.Sprintf("/orders/user/%d", userID)
	if err := b.doJSON(ctx, http.MethodGet, path, token, nil, &data); err != nil {
		return nil, err
	}
	return data.Orders, nil
}

// Get 拉取订单详情
func (b *Backend) Get(ctx context.Context, token string, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := b.doJSON(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Cancel 取消订单
func (b *Backend) Cancel(ctx context.Context, token string, orderID uint) error {
	return b.doJSON(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/cancel", orderID), token, nil, nil)
}
