package service

import (
	"context"
	"time"

	"github.com/vietcart-next/internal/client"
	"github.com/vietcart-next/internal/constants"
	"github.com/vietcart-next/internal/logger"
	"github.com/vietcart-next/internal/models"
	"github.com/vietcart-next/internal/queue"

	"github.com/hibiken/asynq"
)

// 下单成功后延迟回查订单状态的间隔
const orderStatusRefreshDelay = 30 * time.Second

// TaskQueue 订单流程使用的异步任务入口
type TaskQueue interface {
	EnqueueOrderStatusRefresh(payload queue.OrderStatusRefreshPayload, delay time.Duration) error
	EnqueueCartMirrorSync(payload queue.CartMirrorSyncPayload, opts ...asynq.Option) error
}

// OrderService 订单服务。订单数据由后端持有，本服务负责
// 组装下单请求、下单后清理购物车镜像并调度状态回查。
type OrderService struct {
	orderAPI    client.OrderAPI
	cartSvc     *CartService
	addressSvc  *AddressService
	checkoutSvc *CheckoutService
	queueClient TaskQueue
}

// NewOrderService 创建订单服务
func NewOrderService(orderAPI client.OrderAPI, cartSvc *CartService, addressSvc *AddressService, checkoutSvc *CheckoutService, queueClient TaskQueue) *OrderService {
	return &OrderService{
		orderAPI:    orderAPI,
		cartSvc:     cartSvc,
		addressSvc:  addressSvc,
		checkoutSvc: checkoutSvc,
		queueClient: queueClient,
	}
}

// SubmitOrderInput 下单输入
type SubmitOrderInput struct {
	ShippingMethod string         `json:"shipping_method" binding:"required"`
	VoucherCode    string         `json:"voucher_code"`
	Address        models.Address `json:"address" binding:"required"`
}

// Submit 提交订单。勾选行为空时拒绝；下单成功后从镜像中
// 移除已购行（未勾选行保留），并调度订单状态回查任务。
func (s *OrderService) Submit(ctx context.Context, token string, userID uint, input SubmitOrderInput) (*models.Order, error) {
	lines, err := s.cartSvc.SelectedLines(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptySelection
	}
	if _, err := s.checkoutSvc.ShippingFee(input.ShippingMethod); err != nil {
		return nil, err
	}
	if err := s.addressSvc.ValidateAddress(&input.Address); err != nil {
		return nil, err
	}

	req := buildOrderRequest(lines, input.ShippingMethod, input.VoucherCode, &input.Address)
	order, err := s.orderAPI.Create(ctx, token, req)
	if err != nil {
		return nil, err
	}
	if order.Currency == "" {
		order.Currency = constants.SiteCurrencyDefault
	}

	for _, line := range lines {
		if err := s.cartSvc.cartRepo.DeleteByUserAndVariant(userID, line.VariantID); err != nil {
			logger.Warnw("cart_mirror_cleanup_failed",
				"user_id", userID,
				"variant_id", line.VariantID,
				"error", err,
			)
		}
	}

	if err := s.queueClient.EnqueueOrderStatusRefresh(queue.OrderStatusRefreshPayload{
		UserID:  userID,
		OrderID: order.ID,
		Token:   token,
	}, orderStatusRefreshDelay); err != nil {
		logger.Warnw("order_status_refresh_enqueue_failed",
			"user_id", userID,
			"order_id", order.ID,
			"error", err,
		)
	}

	// 下单后后端购物车同样发生变化，入队一次镜像重建做异步对账
	if err := s.queueClient.EnqueueCartMirrorSync(queue.CartMirrorSyncPayload{
		UserID: userID,
		Token:  token,
	}); err != nil {
		logger.Warnw("cart_mirror_sync_enqueue_failed",
			"user_id", userID,
			"error", err,
		)
	}

	return order, nil
}

// ListByUser 拉取用户订单列表
func (s *OrderService) ListByUser(ctx context.Context, token string, userID uint) ([]models.Order, error) {
	return s.orderAPI.ListByUser(ctx, token, userID)
}

// Get 拉取订单详情
func (s *OrderService) Get(ctx context.Context, token string, orderID uint) (*models.Order, error) {
	return s.orderAPI.Get(ctx, token, orderID)
}

// Cancel 取消订单。仅后端允许的状态可取消，由后端判定。
func (s *OrderService) Cancel(ctx context.Context, token string, orderID uint) error {
	return s.orderAPI.Cancel(ctx, token, orderID)
}

// RefreshStatus 回查订单状态（队列任务调用）
func (s *OrderService) RefreshStatus(ctx context.Context, token string, userID, orderID uint) (string, error) {
	order, err := s.orderAPI.Get(ctx, token, orderID)
	if err != nil {
		return "", err
	}
	logger.Debugw("order_status_refreshed",
		"user_id", userID,
		"order_id", orderID,
		"status", order.Status,
	)
	return order.Status, nil
}
