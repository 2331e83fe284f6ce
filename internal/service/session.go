package service

import "github.com/golang-jwt/jwt/v5"

// SessionClaims 后端签发的用户会话 JWT 声明
type SessionClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
