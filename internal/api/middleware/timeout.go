package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SelectiveTimeoutConfig applies a short timeout to most endpoints and a
// longer one to the completion endpoints, which wait on the LLM provider
func SelectiveTimeoutConfig(defaultTimeout, llmTimeout time.Duration) echo.MiddlewareFunc {
	short := middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: defaultTimeout})
	long := middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: llmTimeout})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		shortHandler := short(next)
		longHandler := long(next)

		return func(c echo.Context) error {
			if strings.HasPrefix(c.Path(), "/api/v1/") {
				return longHandler(c)
			}
			return shortHandler(c)
		}
	}
}
