// Package server assembles the HTTP surface: health check, origin
// filtering, CORS and the websocket route.
package server

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Charles-Go/croki/internal/config"
	"github.com/Charles-Go/croki/internal/game"
)

func New(cfg config.Config, lobby *game.Lobby, logger zerolog.Logger) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(ctx *gin.Context) { ctx.String(http.StatusOK, "healthy") })

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(func(ctx *gin.Context) {
			origin := ctx.Request.Header.Get("Origin")
			if origin == "" || slices.Contains(cfg.AllowedOrigins, origin) {
				ctx.Next()
				return
			}
			ctx.String(http.StatusForbidden, "forbidden origin")
			ctx.Abort()
		})

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowCredentials: true,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{
				"Content-Type",
				"Origin",
				"Upgrade",
				"Connection",
				"Sec-WebSocket-Key",
				"Sec-WebSocket-Version",
				"Sec-WebSocket-Extensions",
				"Sec-WebSocket-Protocol",
			},
		}))
	}

	game.RegisterRoute(r, lobby, logger)

	return r
}
