package public

import (
	"github.com/vietcart-next/internal/http/response"
	"github.com/vietcart-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitOrder 提交订单
func (h *Handler) SubmitOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	token, ok := getToken(c)
	if !ok {
		return
	}
	var req service.SubmitOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	order, err := h.OrderService.Submit(c.Request.Context(), token, uid, req)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

// ListOrders 用户订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	token, ok := getToken(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.ListByUser(c.Request.Context(), token, uid)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, gin.H{"orders": orders})
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	token, ok := getToken(c)
	if !ok {
		return
	}
	orderID, ok := parseUintParam(c, "order_id")
	if !ok {
		return
	}
	order, err := h.OrderService.Get(c.Request.Context(), token, orderID)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

// CancelOrder 取消订单
func (h *Handler) CancelOrder(c *gin.Context) {
	token, ok := getToken(c)
	if !ok {
		return
	}
	orderID, ok := parseUintParam(c, "order_id")
	if !ok {
		return
	}
	if err := h.OrderService.Cancel(c.Request.Context(), token, orderID); err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, gin.H{"canceled": true})
}
