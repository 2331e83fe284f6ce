package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/vietcart-next/internal/cache"
	"github.com/vietcart-next/internal/client"
	"github.com/vietcart-next/internal/constants"
	"github.com/vietcart-next/internal/logger"
	"github.com/vietcart-next/internal/models"
)

// 越南手机号：0 或 +84 开头加 9 位数字
var phonePattern = regexp.MustCompile(`^(0|\+84)\d{9}$`)

// AddressService 收货地址服务。行政区划走第三方查询服务并缓存，
// 拉取失败时降级为空列表，不阻断填单。
type AddressService struct {
	locationAPI client.LocationAPI
	cacheTTL    time.Duration
}

// NewAddressService 创建地址服务
func NewAddressService(locationAPI client.LocationAPI, cacheTTL time.Duration) *AddressService {
	if cacheTTL <= 0 {
		cacheTTL = 12 * time.Hour
	}
	return &AddressService{locationAPI: locationAPI, cacheTTL: cacheTTL}
}

// Provinces 省级列表
func (s *AddressService) Provinces(ctx context.Context) []models.LocationOption {
	return s.cachedOptions(ctx, constants.CacheKeyProvinces, func() ([]models.LocationOption, error) {
		return s.locationAPI.Provinces(ctx)
	})
}

// Districts 按省代码取区级列表。省未选定时返回空列表。
func (s *AddressService) Districts(ctx context.Context, provinceCode string) []models.LocationOption {
	code := strings.TrimSpace(provinceCode)
	if code == "" {
		return []models.LocationOption{}
	}
	key := constants.CacheKeyDistrictPrefix + code
	return s.cachedOptions(ctx, key, func() ([]models.LocationOption, error) {
		return s.locationAPI.Districts(ctx, code)
	})
}

// Wards 按区代码取坊级列表。区未选定时返回空列表。
func (s *AddressService) Wards(ctx context.Context, districtCode string) []models.LocationOption {
	code := strings.TrimSpace(districtCode)
	if code == "" {
		return []models.LocationOption{}
	}
	key := constants.CacheKeyWardPrefix + code
	return s.cachedOptions(ctx, key, func() ([]models.LocationOption, error) {
		return s.locationAPI.Wards(ctx, code)
	})
}

func (s *AddressService) cachedOptions(ctx context.Context, key string, fetch func() ([]models.LocationOption, error)) []models.LocationOption {
	var cached []models.LocationOption
	hit, err := cache.GetJSON(ctx, key, &cached)
	if err != nil {
		logger.Warnw("location_cache_read_failed", "key", key, "error", err)
	}
	if hit {
		return cached
	}

	options, err := fetch()
	if err != nil {
		logger.Warnw("location_fetch_failed", "key", key, "error", err)
		return []models.LocationOption{}
	}
	if err := cache.SetJSON(ctx, key, options, s.cacheTTL); err != nil {
		logger.Warnw("location_cache_write_failed", "key", key, "error", err)
	}
	return options
}

// ValidateAddress 校验收货地址。省区坊三级必须齐全。
func (s *AddressService) ValidateAddress(addr *models.Address) error {
	if addr == nil {
		return ErrAddressInvalid
	}
	if strings.TrimSpace(addr.Name) == "" || strings.TrimSpace(addr.Street) == "" {
		return ErrAddressInvalid
	}
	if strings.TrimSpace(addr.Province) == "" || strings.TrimSpace(addr.District) == "" || strings.TrimSpace(addr.Ward) == "" {
		return ErrAddressInvalid
	}
	phone := strings.ReplaceAll(strings.TrimSpace(addr.Phone), " ", "")
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("%w: %s", ErrPhoneInvalid, addr.Phone)
	}
	return nil
}

// AddressCascade 省区坊三级联动选择器。
// 上级变更时清空下级选中项与选项列表。
type AddressCascade struct {
	svc *AddressService

	Province models.LocationOption
	District models.LocationOption
	Ward     models.LocationOption

	DistrictOptions []models.LocationOption
	WardOptions     []models.LocationOption
}

// NewAddressCascade 创建三级联动选择器
func (s *AddressService) NewAddressCascade() *AddressCascade {
	return &AddressCascade{
		svc:             s,
		DistrictOptions: []models.LocationOption{},
		WardOptions:     []models.LocationOption{},
	}
}

// SelectProvince 选定省份并加载区级选项，同时清空区、坊选中项
func (c *AddressCascade) SelectProvince(ctx context.Context, provinceCode string) {
	c.Province = c.resolve(c.svc.Provinces(ctx), provinceCode)
	c.District = models.LocationOption{}
	c.Ward = models.LocationOption{}
	c.WardOptions = []models.LocationOption{}
	c.DistrictOptions = c.svc.Districts(ctx, c.Province.Code)
}

// SelectDistrict 选定区并加载坊级选项，同时清空坊选中项
func (c *AddressCascade) SelectDistrict(ctx context.Context, districtCode string) {
	c.District = c.resolve(c.DistrictOptions, districtCode)
	c.Ward = models.LocationOption{}
	c.WardOptions = c.svc.Wards(ctx, c.District.Code)
}

// SelectWard 选定坊
func (c *AddressCascade) SelectWard(wardCode string) {
	c.Ward = c.resolve(c.WardOptions, wardCode)
}

// Complete 判断三级是否均已选定
func (c *AddressCascade) Complete() bool {
	return c.Province.Code != "" && c.District.Code != "" && c.Ward.Code != ""
}

// Apply 将选中的三级写入地址
func (c *AddressCascade) Apply(addr *models.Address) {
	if addr == nil {
		return
	}
	addr.ProvinceCode, addr.Province = c.Province.Code, c.Province.Name
	addr.DistrictCode, addr.District = c.District.Code, c.District.Name
	addr.WardCode, addr.Ward = c.Ward.Code, c.Ward.Name
}

func (c *AddressCascade) resolve(options []models.LocationOption, code string) models.LocationOption {
	target := strings.TrimSpace(code)
	for _, option := range options {
		if option.Code == target {
			return option
		}
	}
	return models.LocationOption{}
}
