package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vietcart-next/internal/models"
)

// LocationAPI 行政区划查询接口（省 → 区 → 坊）
type LocationAPI interface {
	Provinces(ctx context.Context) ([]models.LocationOption, error)
	Districts(ctx context.Context, provinceCode string) ([]models.LocationOption, error)
	Wards(ctx context.Context, districtCode string) ([]models.LocationOption, error)
}

// LocationClient 第三方行政区划服务客户端
type LocationClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewLocationClient 创建行政区划客户端
func NewLocationClient(baseURL string, timeout time.Duration) *LocationClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &LocationClient{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type locationDTO struct {
	Code json.Number `json:"code"`
	Name string      `json:"name"`
}

// Provinces 拉取省级列表
func (c *LocationClient) Provinces(ctx context.Context) ([]models.LocationOption, error) {
	return c.fetch(ctx, "/p/")
}

// Districts 按省代码拉取区级列表
func (c *LocationClient) Districts(ctx context.Context, provinceCode string) ([]models.LocationOption, error) {
	code := strings.TrimSpace(provinceCode)
	if code == "" {
		return []models.LocationOption{}, nil
	}
	var data struct {
		Districts []locationDTO `json:"districts"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/p/%s?depth=2", code), &data); err != nil {
		return nil, err
	}
	return toOptions(data.Districts), nil
}

// Wards 按区代码拉取坊级列表
func (c *LocationClient) Wards(ctx context.Context, districtCode string) ([]models.LocationOption, error) {
	code := strings.TrimSpace(districtCode)
	if code == "" {
		return []models.LocationOption{}, nil
	}
	var data struct {
		Wards []locationDTO `json:"wards"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/d/%s?depth=2", code), &data); err != nil {
		return nil, err
	}
	return toOptions(data.Wards), nil
}

func (c *LocationClient) fetch(ctx context.Context, path string) ([]models.LocationOption, error) {
	var dtos []locationDTO
	if err := c.getJSON(ctx, path, &dtos); err != nil {
		return nil, err
	}
	return toOptions(dtos), nil
}

func (c *LocationClient) getJSON(ctx context.Context, path string, dest interface{}) error {
	if c == nil {
		return ErrRequestFailed
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: http status %d", ErrRequestFailed, resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	return nil
}

func toOptions(dtos []locationDTO) []models.LocationOption {
	options := make([]models.LocationOption, 0, len(dtos))
	for _, dto := range dtos {
		name := strings.TrimSpace(dto.Name)
		if name == "" {
			continue
		}
		options = append(options, models.LocationOption{
			Code: dto.Code.String(),
			Name: name,
		})
	}
	return options
}
