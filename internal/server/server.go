package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New は運用用HTTPサーバー（死活監視とメトリクス公開だけ）を組み立てる。
// ボット本体はロングポーリングなので、外部公開するのはここだけ。
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	RegisterRoutes(e)
	return e
}

func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
