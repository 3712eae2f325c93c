package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RegisterRoutes configures all API routes, middleware, and error handlers.
func RegisterRoutes(e *echo.Echo, h *Handlers, cfg ServerConfig) {
	e.HTTPErrorHandler = NotFoundJSON()

	e.Use(SetJSONContentType)
	e.Use(SetNoCacheHeaders)

	if cfg.APIKey != "" {
		e.Use(middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
			KeyLookup: "header:X-API-Key",
			Validator: func(key string, c echo.Context) (bool, error) {
				return key == cfg.APIKey, nil
			},
		}))
	}

	v1 := e.Group("/v1")
	v1.GET("/health", h.Health)
	v1.GET("/balances/:owner", h.Balances)

	// Every quote endpoint hits RPC on a cache miss, so the group is rate
	// limited per remote IP.
	quoteGroup := v1.Group("")
	quoteGroup.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(10),
		Burst:     20,
		ExpiresIn: 2 * time.Minute,
	})))
	quoteGroup.GET("/quote/buy/:mint", h.BuyQuote)
	quoteGroup.GET("/quote/sell/:mint", h.SellQuote)
	quoteGroup.GET("/liquidity/deposit/:mint", h.DepositQuote)
	quoteGroup.GET("/liquidity/withdraw/:mint", h.WithdrawQuote)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found", Code: http.StatusNotFound})
	})
}
