package public

import (
	"github.com/vietcart-next/internal/http/response"
	"github.com/vietcart-next/internal/service"

	"github.com/gin-gonic/gin"
)

// PreviewCheckout 结算预览。返回金额明细及券可用性；
// 后端预览不可达时返回本地估算（authoritative=false）。
func (h *Handler) PreviewCheckout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	token, ok := getToken(c)
	if !ok {
		return
	}
	var req service.PreviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	preview, err := h.CheckoutService.Preview(c.Request.Context(), token, uid, req)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, preview)
}
