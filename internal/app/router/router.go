// Package router assembles the gin engine and its routes.
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "account_backend/internal/feature/auth/transport/handler"
	jwtmw "account_backend/internal/platform/jwt"
	"account_backend/internal/platform/http/handler"
	"account_backend/internal/platform/http/middleware"
)

func NewRouter(authHandler *authhandler.AuthHandler, verifier jwtmw.Verifier,
	logger *slog.Logger, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(), middleware.RequestLogger(logger))
	r.Use(cors.New(corsConfig(allowedOrigins)))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)

	api := r.Group("/api")
	{
		// 新規ユーザー登録
		api.POST("/register", authHandler.Register)
		// ログイン（JWT 発行）
		api.POST("/login", authHandler.Login)
	}

	// 認証必須のルート
	// → Authorization: Bearer <token> が必要
	auth := api.Group("/")
	auth.Use(jwtmw.AuthRequired(verifier))
	{
		auth.GET("/me", authHandler.Me)
	}

	return r
}

// corsConfig allows every origin when the list is empty or contains "*".
func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range allowedOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = allowedOrigins
	return cfg
}
