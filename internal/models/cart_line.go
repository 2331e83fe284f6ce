package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Attrs 键值对类型，用于存储变体已选属性（尺码、颜色等）
type Attrs map[string]string

// Value 实现 driver.Valuer 接口
func (a Attrs) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan 实现 sql.Scanner 接口
func (a *Attrs) Scan(value interface{}) error {
	if value == nil {
		*a = make(Attrs)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// CartLine 购物车行镜像（会话延续用的本地快照，后端为权威数据）
type CartLine struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                      // 主键
	UserID       uint           `gorm:"not null;uniqueIndex:idx_cart_user_variant" json:"user_id"` // 用户ID
	VariantID    uint           `gorm:"not null;uniqueIndex:idx_cart_user_variant" json:"variant_id"`
	Quantity     int            `gorm:"not null" json:"quantity"`                            // 数量（恒 >= 1）
	UnitPrice    Money          `gorm:"type:decimal(20,0);not null" json:"unit_price"`       // 加入时的单价快照
	ProductName  string         `gorm:"type:varchar(255)" json:"product_name"`               // 商品名冗余
	ProductImage string         `gorm:"type:varchar(500)" json:"product_image"`              // 图片冗余
	AttrsJSON    Attrs          `gorm:"type:json" json:"attrs"`                              // 已选属性（键值对）
	Selected     bool           `gorm:"not null;default:false;index" json:"selected"`        // 是否勾选进入结算
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                             // 更新时间
}

// TableName 指定表名
func (CartLine) TableName() string {
	return "cart_lines"
}

// LineTotal 行小计（单价 × 数量）
func (l CartLine) LineTotal() Money {
	return NewMoneyFromDecimal(l.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(l.Quantity))))
}
