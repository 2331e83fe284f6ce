package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/vietcart-next/internal/client"
	"github.com/vietcart-next/internal/constants"
	"github.com/vietcart-next/internal/logger"
	"github.com/vietcart-next/internal/provider"
	"github.com/vietcart-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusRefresh, c.handleOrderStatusRefresh)
	mux.HandleFunc(queue.TaskCartMirrorSync, c.handleCartMirrorSync)
}

func (c *Consumer) handleOrderStatusRefresh(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_refresh_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusRefreshPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_refresh_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 || payload.Token == "" {
		logger.Debugw("worker_order_status_refresh_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.Container == nil || c.OrderService == nil {
		logger.Warnw("worker_order_status_refresh_skip_no_container", "order_id", payload.OrderID)
		return nil
	}
	status, err := c.OrderService.RefreshStatus(ctx, payload.Token, payload.UserID, payload.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrNotFound):
			logger.Debugw("worker_order_status_refresh_skip_order_not_found", "order_id", payload.OrderID)
			return nil
		case errors.Is(err, client.ErrUnauthorized):
			// 令牌过期的回查没有重试价值
			logger.Debugw("worker_order_status_refresh_skip_unauthorized", "order_id", payload.OrderID)
			return nil
		default:
			logger.Warnw("worker_order_status_refresh_failed", "order_id", payload.OrderID, "error", err)
			return err
		}
	}
	if constants.OrderStatusFinal(status) {
		logger.Infow("worker_order_status_refresh_final", "order_id", payload.OrderID, "status", status)
	} else {
		logger.Infow("worker_order_status_refresh_done", "order_id", payload.OrderID, "status", status)
	}
	return nil
}

func (c *Consumer) handleCartMirrorSync(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_cart_mirror_sync_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CartMirrorSyncPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_cart_mirror_sync_unmarshal_failed", "error", err)
		return err
	}
	if payload.UserID == 0 || payload.Token == "" {
		logger.Debugw("worker_cart_mirror_sync_skip_invalid_payload", "user_id", payload.UserID)
		return nil
	}
	if c.Container == nil || c.CartService == nil {
		logger.Warnw("worker_cart_mirror_sync_skip_no_container", "user_id", payload.UserID)
		return nil
	}
	if err := c.CartService.SyncFromRemote(ctx, payload.Token, payload.UserID); err != nil {
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			logger.Debugw("worker_cart_mirror_sync_skip_unauthorized", "user_id", payload.UserID)
			return nil
		default:
			logger.Warnw("worker_cart_mirror_sync_failed", "user_id", payload.UserID, "error", err)
			return err
		}
	}
	logger.Debugw("worker_cart_mirror_sync_done", "user_id", payload.UserID)
	return nil
}
