package service

import (
	"context"
	"time"

	"github.com/vietcart-next/internal/client"
	"github.com/vietcart-next/internal/models"
	"github.com/vietcart-next/internal/repository"
)

// CartService 购物车服务。远端购物车为权威数据源，
// 本地镜像仅在远端提交成功后写入（两阶段提交）。
type CartService struct {
	cartAPI  client.CartAPI
	cartRepo repository.CartLineRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartAPI client.CartAPI, cartRepo repository.CartLineRepository) *CartService {
	return &CartService{cartAPI: cartAPI, cartRepo: cartRepo}
}

// AddItemInput 加购输入
type AddItemInput struct {
	VariantID    uint         `json:"variant_id" binding:"required"`
	Quantity     int          `json:"quantity" binding:"required"`
	UnitPrice    models.Money `json:"unit_price"`
	ProductName  string       `json:"product_name"`
	ProductImage string       `json:"product_image"`
	Attrs        models.Attrs `json:"attrs"`
}

// CartView 购物车视图
type CartView struct {
	Lines            []models.CartLine `json:"lines"`
	SelectedSubtotal models.Money      `json:"selected_subtotal"`
	AllSelected      bool              `json:"all_selected"`
}

// List 获取购物车视图。合计仅统计勾选行；全选态由逐行勾选推导。
func (s *CartService) List(userID uint) (*CartView, error) {
	lines, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]CheckoutItem, 0, len(lines))
	allSelected := len(lines) > 0
	for _, line := range lines {
		if line.Selected {
			items = append(items, CheckoutItem{UnitPrice: line.UnitPrice, Quantity: line.Quantity})
		} else {
			allSelected = false
		}
	}
	return &CartView{
		Lines:            lines,
		SelectedSubtotal: Subtotal(items),
		AllSelected:      allSelected,
	}, nil
}

// Add 加购。同变体合并数量而不是新增行；远端提交成功后才落镜像。
func (s *CartService) Add(ctx context.Context, token string, userID uint, input AddItemInput) (*models.CartLine, error) {
	if input.VariantID == 0 || input.Quantity <= 0 {
		return nil, ErrInvalidCartItem
	}

	existing, err := s.cartRepo.GetByUserAndVariant(userID, input.VariantID)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	selected := true
	if existing != nil {
		quantity += existing.Quantity
		selected = existing.Selected
	}

	remote := client.RemoteCartItem{
		VariantID:    input.VariantID,
		Quantity:     quantity,
		UnitPrice:    input.UnitPrice,
		ProductName:  input.ProductName,
		ProductImage: input.ProductImage,
		Attrs:        input.Attrs,
	}
	if err := s.cartAPI.Upsert(ctx, token, remote); err != nil {
		return nil, err
	}

	line := &models.CartLine{
		UserID:       userID,
		VariantID:    input.VariantID,
		Quantity:     quantity,
		UnitPrice:    input.UnitPrice,
		ProductName:  input.ProductName,
		ProductImage: input.ProductImage,
		AttrsJSON:    input.Attrs,
		Selected:     selected,
		UpdatedAt:    time.Now(),
	}
	if err := s.cartRepo.Upsert(line); err != nil {
		return nil, err
	}
	return line, nil
}

// UpdateQuantity 修改数量。数量降到 0 或以下等同删除该行。
func (s *CartService) UpdateQuantity(ctx context.Context, token string, userID, variantID uint, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, token, userID, variantID)
	}

	existing, err := s.cartRepo.GetByUserAndVariant(userID, variantID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCartLineNotFound
	}

	remote := client.RemoteCartItem{
		VariantID:    variantID,
		Quantity:     quantity,
		UnitPrice:    existing.UnitPrice,
		ProductName:  existing.ProductName,
		ProductImage: existing.ProductImage,
		Attrs:        existing.AttrsJSON,
	}
	if err := s.cartAPI.Upsert(ctx, token, remote); err != nil {
		return err
	}

	existing.Quantity = quantity
	existing.UpdatedAt = time.Now()
	return s.cartRepo.Upsert(existing)
}

// Remove 删除购物车行
func (s *CartService) Remove(ctx context.Context, token string, userID, variantID uint) error {
	existing, err := s.cartRepo.GetByUserAndVariant(userID, variantID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCartLineNotFound
	}
	if err := s.cartAPI.Remove(ctx, token, variantID); err != nil {
		return err
	}
	return s.cartRepo.DeleteByUserAndVariant(userID, variantID)
}

// Clear 清空购物车
func (s *CartService) Clear(ctx context.Context, token string, userID uint) error {
	if err := s.cartAPI.Clear(ctx, token); err != nil {
		return err
	}
	return s.cartRepo.ClearByUser(userID)
}

// SetSelected 勾选或取消单行。勾选是本地会话状态，不回写远端。
func (s *CartService) SetSelected(userID, variantID uint, selected bool) error {
	existing, err := s.cartRepo.GetByUserAndVariant(userID, variantID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCartLineNotFound
	}
	return s.cartRepo.SetSelected(userID, variantID, selected)
}

// SetSelectedAll 全选或全不选
func (s *CartService) SetSelectedAll(userID uint, selected bool) error {
	return s.cartRepo.SetSelectedAll(userID, selected)
}

// SelectedLines 获取已勾选行（结算输入）
func (s *CartService) SelectedLines(userID uint) ([]models.CartLine, error) {
	lines, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	selected := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.Selected {
			selected = append(selected, line)
		}
	}
	return selected, nil
}

// SyncFromRemote 用远端数据重建本地镜像（登录后恢复会话）。
// 已有行的勾选状态按变体保留，新行默认勾选。
func (s *CartService) SyncFromRemote(ctx context.Context, token string, userID uint) error {
	remote, err := s.cartAPI.List(ctx, token)
	if err != nil {
		return err
	}
	current, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return err
	}
	selectedByVariant := make(map[uint]bool, len(current))
	for _, line := range current {
		selectedByVariant[line.VariantID] = line.Selected
	}

	now := time.Now()
	lines := make([]models.CartLine, 0, len(remote))
	for _, item := range remote {
		if item.VariantID == 0 || item.Quantity <= 0 {
			continue
		}
		selected, seen := selectedByVariant[item.VariantID]
		if !seen {
			selected = true
		}
		lines = append(lines, models.CartLine{
			UserID:       userID,
			VariantID:    item.VariantID,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			AttrsJSON:    item.Attrs,
			Selected:     selected,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return s.cartRepo.ReplaceAll(userID, lines)
}
