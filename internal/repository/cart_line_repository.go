package repository

import (
	"errors"

	"github.com/vietcart-next/internal/models"

	"gorm.io/gorm"
)

// CartLineRepository 购物车镜像数据访问接口
type CartLineRepository interface {
	ListByUser(userID uint) ([]models.CartLine, error)
	GetByUserAndVariant(userID, variantID uint) (*models.CartLine, error)
	Upsert(line *models.CartLine) error
	DeleteByUserAndVariant(userID, variantID uint) error
	ClearByUser(userID uint) error
	SetSelected(userID, variantID uint, selected bool) error
	SetSelectedAll(userID uint, selected bool) error
	ReplaceAll(userID uint, lines []models.CartLine) error
}

// GormCartLineRepository GORM 实现
type GormCartLineRepository struct {
	db *gorm.DB
}

// NewCartLineRepository 创建购物车镜像仓库
func NewCartLineRepository(db *gorm.DB) *GormCartLineRepository {
	return &GormCartLineRepository{db: db}
}

// ListByUser 获取用户购物车镜像行
func (r *GormCartLineRepository) ListByUser(userID uint) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := r.db.Where("user_id = ?", userID).Order("updated_at desc").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// GetByUserAndVariant 按用户与变体查询单行
func (r *GormCartLineRepository) GetByUserAndVariant(userID, variantID uint) (*models.CartLine, error) {
	var line models.CartLine
	err := r.db.Where("user_id = ? AND variant_id = ?", userID, variantID).First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// Upsert 写入或更新镜像行
func (r *GormCartLineRepository) Upsert(line *models.CartLine) error {
	if line == nil {
		return nil
	}
	var existing models.CartLine
	err := r.db.Where("user_id = ? AND variant_id = ?", line.UserID, line.VariantID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(line).Error
	}
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"quantity":      line.Quantity,
		"unit_price":    line.UnitPrice,
		"product_name":  line.ProductName,
		"product_image": line.ProductImage,
		"attrs_json":    line.AttrsJSON,
		"selected":      line.Selected,
		"updated_at":    line.UpdatedAt,
	}
	return r.db.Model(&existing).Updates(updates).Error
}

// DeleteByUserAndVariant 删除镜像行
func (r *GormCartLineRepository) DeleteByUserAndVariant(userID, variantID uint) error {
	return r.db.Where("user_id = ? AND variant_id = ?", userID, variantID).Delete(&models.CartLine{}).Error
}

// ClearByUser 清空用户镜像
func (r *GormCartLineRepository) ClearByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error
}

// SetSelected 更新单行勾选状态
func (r *GormCartLineRepository) SetSelected(userID, variantID uint, selected bool) error {
	return r.db.Model(&models.CartLine{}).
		Where("user_id = ? AND variant_id = ?", userID, variantID).
		Update("selected", selected).Error
}

// SetSelectedAll 更新全部行勾选状态
func (r *GormCartLineRepository) SetSelectedAll(userID uint, selected bool) error {
	return r.db.Model(&models.CartLine{}).
		Where("user_id = ?", userID).
		Update("selected", selected).Error
}

// ReplaceAll 用远端数据整体重建用户镜像（登录后的会话恢复）
func (r *GormCartLineRepository) ReplaceAll(userID uint, lines []models.CartLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].UserID = userID
			if err := tx.Create(&lines[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
