package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vietcart-next/internal/constants"
	"github.com/vietcart-next/internal/models"
)

// VoucherAPI 优惠券接口
type VoucherAPI interface {
	ListAvailable(ctx context.Context, token string) ([]models.Voucher, error)
	ListVouchersByUser(ctx context.Context, token string, userID uint) ([]models.Voucher, error)
	Claim(ctx context.Context, token string, voucherID uint) error
}

// voucherDTO 后端优惠券响应
// 状态与类型字段在上游存在大小写与空白不一致的脏数据，解码后立即归一化。
type voucherDTO struct {
	ID            uint          `json:"id"`
	Code          string        `json:"code"`
	DiscountType  string        `json:"discount_type"`
	DiscountValue *models.Money `json:"discount_value"`
	MaxDiscount   *models.Money `json:"max_discount"`
	MinOrderValue *models.Money `json:"min_order_value"`
	StartsAt      *time.Time    `json:"starts_at"`
	EndsAt        *time.Time    `json:"ends_at"`
	Status        string        `json:"status"`
}

// ListAvailable 拉取可领取优惠券
func (b *Backend) ListAvailable(ctx context.Context, token string) ([]models.Voucher, error) {
	var data struct {
		Vouchers []voucherDTO `json:"vouchers"`
	}
	if err := b.doJSON(ctx, http.MethodGet, "/vouchers/available", token, nil, &data); err != nil {
		return nil, err
	}
	return normalizeVouchers(data.Vouchers), nil
}

// ListVouchersByUser 拉取用户持有的优惠券
func (b *Backend) ListVouchersByUser(ctx context.Context, token string, userID uint) ([]models.Voucher, error) {
	var data struct {
		Vouchers []voucherDTO `json:"vouchers"`
	}
	path := fmt.Sprintf("/user-vouchers/user/%d", userID)
	if err := b.doJSON(ctx, http.MethodGet, path, token, nil, &data); err != nil {
		return nil, err
	}
	return normalizeVouchers(data.Vouchers), nil
}

// Claim 领取优惠券
func (b *Backend) Claim(ctx context.Context, token string, voucherID uint) error {
	return b.doJSON(ctx, http.MethodPost, fmt.Sprintf("/user-vouchers/%d", voucherID), token, nil, nil)
}

func normalizeVouchers(dtos []voucherDTO) []models.Voucher {
	vouchers := make([]models.Voucher, 0, len(dtos))
	for _, dto := range dtos {
		voucher := models.Voucher{
			ID:            dto.ID,
			Code:          strings.TrimSpace(dto.Code),
			DiscountType:  NormalizeVoucherType(dto.DiscountType),
			MaxDiscount:   dto.MaxDiscount,
			MinOrderValue: dto.MinOrderValue,
			StartsAt:      dto.StartsAt,
			EndsAt:        dto.EndsAt,
			Status:        NormalizeVoucherStatus(dto.Status),
		}
		if dto.DiscountValue != nil {
			voucher.DiscountValue = *dto.DiscountValue
		}
		vouchers = append(vouchers, voucher)
	}
	return vouchers
}

// NormalizeVoucherStatus 将上游状态字符串归一化为闭合枚举；无法识别的一律视为不可用
func NormalizeVoucherStatus(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case constants.VoucherStatusAvailable:
		return constants.VoucherStatusAvailable
	case constants.VoucherStatusUsed:
		return constants.VoucherStatusUsed
	case constants.VoucherStatusExpired:
		return constants.VoucherStatusExpired
	default:
		return constants.VoucherStatusUnavailable
	}
}

// NormalizeVoucherType 将折扣类型归一化；空或未知类型返回空串，由调用方按无效处理
func NormalizeVoucherType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case constants.VoucherTypePercent, "percent":
		return constants.VoucherTypePercent
	case constants.VoucherTypeFixed:
		return constants.VoucherTypeFixed
	default:
		return ""
	}
}
