package provider

import (
	"time"

	"github.com/vietcart-next/internal/cache"
	"github.com/vietcart-next/internal/client"
	"github.com/vietcart-next/internal/config"
	"github.com/vietcart-next/internal/queue"
	"github.com/vietcart-next/internal/repository"
	"github.com/vietcart-next/internal/service"

	"gorm.io/gorm"
)

// Container 依赖容器，集中完成装配
type Container struct {
	Cfg *config.Config
	DB  *gorm.DB

	QueueClient *queue.Client

	Backend        *client.Backend
	LocationClient *client.LocationClient

	CartLineRepo repository.CartLineRepository

	CartService     *service.CartService
	VoucherService  *service.VoucherService
	CheckoutService *service.CheckoutService
	AddressService  *service.AddressService
	OrderService    *service.OrderService
}

// NewContainer 创建依赖容器
func NewContainer(cfg *config.Config, db *gorm.DB) (*Container, error) {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		return nil, err
	}

	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		return nil, err
	}

	backend := client.NewBackend(cfg.Backend.BaseURL, time.Duration(cfg.Backend.TimeoutMS)*time.Millisecond)
	locationClient := client.NewLocationClient(cfg.Location.BaseURL, time.Duration(cfg.Location.TimeoutMS)*time.Millisecond)

	cartLineRepo := repository.NewCartLineRepository(db)

	cartService := service.NewCartService(backend, cartLineRepo)
	voucherService := service.NewVoucherService(backend)
	checkoutService := service.NewCheckoutService(cartService, voucherService, backend, cfg.Shipping)
	addressService := service.NewAddressService(locationClient, time.Duration(cfg.Location.CacheTTLMinutes)*time.Minute)
	orderService := service.NewOrderService(backend, cartService, addressService, checkoutService, queueClient)

	return &Container{
		Cfg:             cfg,
		DB:              db,
		QueueClient:     queueClient,
		Backend:         backend,
		LocationClient:  locationClient,
		CartLineRepo:    cartLineRepo,
		CartService:     cartService,
		VoucherService:  voucherService,
		CheckoutService: checkoutService,
		AddressService:  addressService,
		OrderService:    orderService,
	}, nil
}

// Close 释放容器持有的资源
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.QueueClient != nil {
		return c.QueueClient.Close()
	}
	return nil
}
