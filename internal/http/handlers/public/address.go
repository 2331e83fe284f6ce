package public

import (
	"github.com/vietcart-next/internal/constants"
	"github.com/vietcart-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// 行政区划查询为公开接口，不要求登录。
// 上游不可达时返回空列表，前端据此提示稍后重试。

// ListProvinces 省级列表
func (h *Handler) ListProvinces(c *gin.Context) {
	options := h.AddressService.Provinces(c.Request.Context())
	response.Success(c, gin.H{
		"level":   constants.LocationLevelProvince,
		"options": options,
	})
}

// ListDistricts 按省代码取区级列表
func (h *Handler) ListDistricts(c *gin.Context) {
	code := c.Param("province_code")
	options := h.AddressService.Districts(c.Request.Context(), code)
	response.Success(c, gin.H{
		"level":       constants.LocationLevelDistrict,
		"parent_code": code,
		"options":     options,
	})
}

// ListWards 按区代码取坊级列表
func (h *Handler) ListWards(c *gin.Context) {
	code := c.Param("district_code")
	options := h.AddressService.Wards(c.Request.Context(), code)
	response.Success(c, gin.H{
		"level":       constants.LocationLevelWard,
		"parent_code": code,
		"options":     options,
	})
}
