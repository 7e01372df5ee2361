package requestcontext

import (
	"context"
	"strings"

	"github.com/dropforge/drop-engine/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

type clientIPKey struct{}

// Config for client IP extraction.
type Config struct {
	// TrustedHeader is an optional request header to read the client IP
	// from (e.g. "CF-Connecting-IP"). Falls back to the remote address.
	TrustedHeader string `mapstructure:"trusted_header"`
}

// GetClientIP get client IP from context. If not found, return empty string
//
// Warning: Request context should be setup before using this function
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}

func WithClientIP(conf Config) Option {
	header := strings.TrimSpace(conf.TrustedHeader)
	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		ip := ""
		if header != "" {
			ip = c.Get(header)
		}
		if ip == "" {
			ip = c.IP()
		}

		ctx = context.WithValue(ctx, clientIPKey{}, ip)
		ctx = logger.WithContext(ctx, "clientIP", ip)

		return ctx, nil
	}
}
