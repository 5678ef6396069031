package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// httpObserver lo implementa *metrics.Prometheus.
type httpObserver interface {
	ObserveHTTP(method, route string, status int, took time.Duration)
}

// RequestLogger registra método, ruta, status y latencia de cada solicitud.
// obs puede ser nil.
func RequestLogger(log zerolog.Logger, obs httpObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		took := time.Since(start)
		status := c.Response().StatusCode()

		route := c.Route().Path
		if obs != nil {
			obs.ObserveHTTP(c.Method(), route, status, took)
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", took).
			Msg("request")
		return nil
	}
}

// RequestTimeout fija un deadline al contexto que reciben los casos de uso.
func RequestTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if d <= 0 {
			return c.Next()
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
