package public

import (
	"strconv"

	"github.com/vietcart-next/internal/http/response"
	"github.com/vietcart-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CartQuantityRequest 数量修改请求
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartSelectedRequest 勾选状态请求
type CartSelectedRequest struct {
	Selected bool `json:"selected"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	view, err := h.CartService.List(uid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// AddCartItem 加购（同变体合并数量）
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	token, ok := getToken(c)
	if !ok {
		return
	}
	var req service.AddItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	line, err := h.CartService.Add(c.Request.Context(), token, uid, req)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"line": line})
}

// UpdateCartItem 修改数量（数量降到 0 等同删除）
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	token, ok := getToken(c)
	if !ok {
		return
	}
	variantID, ok := parseUintParam(c, "variant_id")
	if !ok {
		return
	}
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.CartService.UpdateQuantity(c.Request.Context(), token, uid, variantID, req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// RemoveCartItem 删除购物车行
func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	token, ok := getToken(c)
	if !ok {
		return
	}
	variantID, ok := parseUintParam(c, "variant_id")
	if !ok {
		return
	}
	if err := h.CartService.Remove(c.Request.Context(), token, uid, variantID); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"removed": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	token, ok := getToken(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(c.Request.Context(), token, uid); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}

// SetCartItemSelected 勾选或取消单行
func (h *Handler) SetCartItemSelected(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	variantID, ok := parseUintParam(c, "variant_id")
	if !ok {
		return
	}
	var req CartSelectedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.CartService.SetSelected(uid, variantID, req.Selected); err != nil {
		respondCartError(c, err)
		return
	}
	view, err := h.CartService.List(uid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// SetCartSelectedAll 全选或全不选
func (h *Handler) SetCartSelectedAll(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartSelectedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.CartService.SetSelectedAll(uid, req.Selected); err != nil {
		respondCartError(c, err)
		return
	}
	view, err := h.CartService.List(uid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// SyncCart 用远端购物车重建本地镜像（登录后调用）
func (h *Handler) SyncCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	token, ok := getToken(c)
	if !ok {
		return
	}
	if err := h.CartService.SyncFromRemote(c.Request.Context(), token, uid); err != nil {
		respondCartError(c, err)
		return
	}
	view, err := h.CartService.List(uid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		response.BadRequest(c, "error.bad_request")
		return 0, false
	}
	return uint(value), true
}
