package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/notification-dispatcher/internal/api/handlers/notification"
)

func New(handler *notification.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.POST("/notify", handler.Notify)
	e.GET("/status/:id", handler.GetStatus)
	e.GET("/metrics", handler.GetMetrics)
	e.POST("/webhook/callback", handler.Webhook)
	e.GET("/health", handler.Health)

	return e
}
