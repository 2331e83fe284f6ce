package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vietcart-next/internal/models"
)

// CartAPI 远端购物车接口（后端为权威数据源）
type CartAPI interface {
	List(ctx context.Context, token string) ([]RemoteCartItem, error)
	Upsert(ctx context.Context, token string, item RemoteCartItem) error
	Remove(ctx context.Context, token string, variantID uint) error
	Clear(ctx context.Context, token string) error
}

// RemoteCartItem 后端购物车项
type RemoteCartItem struct {
	VariantID    uint         `json:"variant_id"`
	Quantity     int          `json:"quantity"`
	UnitPrice    models.Money `json:"unit_price"`
	ProductName  string       `json:"product_name"`
	ProductImage string       `json:"product_image"`
	Attrs        models.Attrs `json:"attrs"`
}

// List 拉取远端购物车
func (b *Backend) List(ctx context.Context, token string) ([]RemoteCartItem, error) {
	var data struct {
		Items []RemoteCartItem `json:"items"`
	}
	if err := b.doJSON(ctx, http.MethodGet, "/cart", token, nil, &data); err != nil {
		return nil, err
	}
	return data.Items, nil
}

// Upsert 写入远端购物车项（后端按 variant_id 合并）
func (b *Backend) Upsert(ctx context.Context, token string, item RemoteCartItem) error {
	return b.doJSON(ctx, http.MethodPost, "/cart", token, item, nil)
}

// Remove 删除远端购物车项
func (b *Backend) Remove(ctx context.Context, token string, variantID uint) error {
	return b.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/cart/%d", variantID), token, nil, nil)
}

// Clear 清空远端购物车
func (b *Backend) Clear(ctx context.Context, token string) error {
	return b.doJSON(ctx, http.MethodDelete, "/cart", token, nil, nil)
}
