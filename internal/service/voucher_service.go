package service

import (
	"context"
	"strings"
	"time"

	"github.com/vietcart-next/internal/client"
	"github.com/vietcart-next/internal/constants"
	"github.com/vietcart-next/internal/models"
)

// 不可用原因，前端据此展示置灰文案
const (
	VoucherReasonUsed        = "used"
	VoucherReasonExpired     = "expired"
	VoucherReasonUnavailable = "unavailable"
	VoucherReasonMinOrder    = "min_order_not_met"
	VoucherReasonMalformed   = "malformed"
)

// VoucherService 优惠券服务
type VoucherService struct {
	voucherAPI client.VoucherAPI
	now        func() time.Time
}

// NewVoucherService 创建优惠券服务
func NewVoucherService(voucherAPI client.VoucherAPI) *VoucherService {
	return &VoucherService{
		voucherAPI: voucherAPI,
		now:        time.Now,
	}
}

// VoucherView 优惠券视图：附带在当前小计下是否可用及预估折扣
type VoucherView struct {
	models.Voucher
	Usable   bool         `json:"usable"`
	Discount models.Money `json:"discount"`
	Reason   string       `json:"reason,omitempty"`
}

// Evaluate 判定优惠券在给定小计下是否可用并计算折扣。
// 规则：状态必须为 available，未过截止时间（严格小于判过期），
// 小计不低于门槛；字段缺失或类型非法的券一律不可用，不中断流程。
func (s *VoucherService) Evaluate(voucher *models.Voucher, subtotal models.Money, now time.Time) (bool, models.Money, string) {
	zero := models.NewMoneyFromInt(0)
	if voucher == nil {
		return false, zero, VoucherReasonMalformed
	}
	switch voucher.Status {
	case constants.VoucherStatusAvailable:
	case constants.VoucherStatusUsed:
		return false, zero, VoucherReasonUsed
	case constants.VoucherStatusExpired:
		return false, zero, VoucherReasonExpired
	default:
		return false, zero, VoucherReasonUnavailable
	}
	if voucher.EndsAt != nil && voucher.EndsAt.Before(now) {
		return false, zero, VoucherReasonExpired
	}
	if voucher.DiscountType != constants.VoucherTypePercent && voucher.DiscountType != constants.VoucherTypeFixed {
		return false, zero, VoucherReasonMalformed
	}
	if voucher.DiscountValue.Decimal.LessThanOrEqual(models.NewMoneyFromInt(0).Decimal) {
		return false, zero, VoucherReasonMalformed
	}
	if voucher.MinOrderValue != nil && subtotal.Decimal.LessThan(voucher.MinOrderValue.Decimal) {
		return false, zero, VoucherReasonMinOrder
	}
	return true, VoucherDiscount(voucher, subtotal), ""
}

// ListForCheckout 拉取用户优惠券并按当前小计标注可用性
func (s *VoucherService) ListForCheckout(ctx context.Context, token string, userID uint, subtotal models.Money) ([]VoucherView, error) {
	vouchers, err := s.voucherAPI.ListVouchersByUser(ctx, token, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	views := make([]VoucherView, 0, len(vouchers))
	for i := range vouchers {
		usable, discount, reason := s.Evaluate(&vouchers[i], subtotal, now)
		views = append(views, VoucherView{
			Voucher:  vouchers[i],
			Usable:   usable,
			Discount: discount,
			Reason:   reason,
		})
	}
	return views, nil
}

// ListAvailable 拉取可领取优惠券
func (s *VoucherService) ListAvailable(ctx context.Context, token string) ([]models.Voucher, error) {
	return s.voucherAPI.ListAvailable(ctx, token)
}

// Claim 领取优惠券
func (s *VoucherService) Claim(ctx context.Context, token string, voucherID uint) error {
	return s.voucherAPI.Claim(ctx, token, voucherID)
}

// FindByCode 按券码查找用户持有的优惠券（大小写不敏感）
func (s *VoucherService) FindByCode(ctx context.Context, token string, userID uint, code string) (*models.Voucher, error) {
	target := strings.ToLower(strings.TrimSpace(code))
	if target == "" {
		return nil, ErrVoucherNotFound
	}
	vouchers, err := s.voucherAPI.ListVouchersByUser(ctx, token, userID)
	if err != nil {
		return nil, err
	}
	for i := range vouchers {
		if strings.ToLower(vouchers[i].Code) == target {
			return &vouchers[i], nil
		}
	}
	return nil, ErrVoucherNotFound
}
