package constants

// 订单状态常量（后端权威状态的本地镜像）
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipping  = "shipping"
	OrderStatusDelivered = "delivered"
	OrderStatusCompleted = "completed"
	OrderStatusCanceled  = "canceled"
)

// OrderStatusFinal 判断订单状态是否已终结（终结后无需再回查）
func OrderStatusFinal(status string) bool {
	switch status {
	case OrderStatusCompleted, OrderStatusCanceled:
		return true
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipping, OrderStatusDelivered:
		return false
	default:
		return false
	}
}

// 优惠券类型常量
const (
	VoucherTypePercent = "percentage"
	VoucherTypeFixed   = "fixed"
)

// 优惠券用户侧状态常量（入站时统一归一化为小写）
const (
	VoucherStatusAvailable   = "available"
	VoucherStatusUsed        = "used"
	VoucherStatusExpired     = "expired"
	VoucherStatusUnavailable = "unavailable"
)

// 配送方式常量
const (
	ShippingMethodStandard = "standard"
	ShippingMethodExpress  = "express"
)

// 行政区划层级常量
const (
	LocationLevelProvince = "province"
	LocationLevelDistrict = "district"
	LocationLevelWard     = "ward"
)

// 队列常量
const (
	QueueDefault           = "default"
	TaskOrderStatusRefresh = "order:status_refresh"
	TaskCartMirrorSync     = "cart:mirror_sync"
)

// 缓存键常量
const (
	RedisPrefixDefault     = "vc"
	CacheKeyProvinces      = "locations:provinces"
	CacheKeyDistrictPrefix = "locations:districts:"
	CacheKeyWardPrefix     = "locations:wards:"
)

// 币种常量（越南盾，无辅币单位）
const (
	SiteCurrencyDefault = "VND"
)
