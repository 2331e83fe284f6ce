package queue

import (
	"encoding/json"

	"github.com/vietcart-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderStatusRefresh 订单状态回查任务
	TaskOrderStatusRefresh = constants.TaskOrderStatusRefresh
	// TaskCartMirrorSync 购物车镜像同步任务
	TaskCartMirrorSync = constants.TaskCartMirrorSync
)

// OrderStatusRefreshPayload 订单状态回查任务载荷
type OrderStatusRefreshPayload struct {
	UserID  uint   `json:"user_id"`
	OrderID uint   `json:"order_id"`
	Token   string `json:"token"`
}

// CartMirrorSyncPayload 购物车镜像同步任务载荷
type CartMirrorSyncPayload struct {
	UserID uint   `json:"user_id"`
	Token  string `json:"token"`
}

// NewOrderStatusRefreshTask 创建订单状态回查任务
func NewOrderStatusRefreshTask(payload OrderStatusRefreshPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusRefresh, body), nil
}

// NewCartMirrorSyncTask 创建购物车镜像同步任务
func NewCartMirrorSyncTask(payload CartMirrorSyncPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCartMirrorSync, body), nil
}
