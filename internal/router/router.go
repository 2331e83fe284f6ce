package router

import (
	"github.com/vietcart-next/internal/config"
	publichandlers "github.com/vietcart-next/internal/http/handlers/public"
	"github.com/vietcart-next/internal/http/response"
	"github.com/vietcart-next/internal/logger"
	"github.com/vietcart-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(ctx *gin.Context) {
		response.Success(ctx, gin.H{"status": "ok"})
	})

	r.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "error.route_not_found")
	})

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口（填单用行政区划查询）
		locations := apiV1.Group("/locations")
		{
			locations.GET("/provinces", publicHandler.ListProvinces)
			locations.GET("/provinces/:province_code/districts", publicHandler.ListDistricts)
			locations.GET("/districts/:district_code/wards", publicHandler.ListWards)
		}

		// 用户接口（需登录）
		user := apiV1.Group("/user")
		user.Use(SessionAuthMiddleware(cfg.Session.SecretKey))
		{
			cart := user.Group("/cart")
			{
				cart.GET("", publicHandler.GetCart)
				cart.DELETE("", publicHandler.ClearCart)
				cart.POST("/items", publicHandler.AddCartItem)
				cart.PUT("/items/:variant_id", publicHandler.UpdateCartItem)
				cart.DELETE("/items/:variant_id", publicHandler.RemoveCartItem)
				cart.PUT("/items/:variant_id/selected", publicHandler.SetCartItemSelected)
				cart.PUT("/selected", publicHandler.SetCartSelectedAll)
				cart.POST("/sync", publicHandler.SyncCart)
			}

			user.POST("/checkout/preview", publicHandler.PreviewCheckout)

			vouchers := user.Group("/vouchers")
			{
				vouchers.GET("/available", publicHandler.ListAvailableVouchers)
				vouchers.GET("/mine", publicHandler.ListMyVouchers)
				vouchers.POST("/:voucher_id/claim", publicHandler.ClaimVoucher)
			}

			orders := user.Group("/orders")
			{
				orders.POST("", publicHandler.SubmitOrder)
				orders.GET("", publicHandler.ListOrders)
				orders.GET("/:order_id", publicHandler.GetOrder)
				orders.POST("/:order_id/cancel", publicHandler.CancelOrder)
			}
		}
	}

	return r
}
