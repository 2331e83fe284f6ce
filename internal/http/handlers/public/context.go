package public

import (
	"github.com/vietcart-next/internal/http/response"
	"github.com/vietcart-next/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func getUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		respondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return 0, false
	}
	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			respondError(c, response.CodeBadRequest, "error.user_id_invalid", nil)
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			respondError(c, response.CodeBadRequest, "error.user_id_invalid", nil)
			return 0, false
		}
		return uint(v), true
	default:
		respondError(c, response.CodeInternal, "error.user_id_type_invalid", nil)
		return 0, false
	}
}

// getToken 取出中间件解析后的原始令牌，透传给后端 API
func getToken(c *gin.Context) (string, bool) {
	value, exists := c.Get("session_token")
	if !exists {
		respondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return "", false
	}
	token, ok := value.(string)
	if !ok || token == "" {
		respondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return "", false
	}
	return token, true
}

// requestLog 提供携带 request_id 的日志实例
func requestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.S().With("request_id", id)
		}
	}
	return logger.S()
}

func respondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		requestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}
