package handlers

import (
	"lexal/internal/repositories"
	"lexal/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// FlushCache empties the Redis cache. Admin-only; used after manual database
// fixes so stale customers and proposals do not linger.
func FlushCache(c *fiber.Ctx) error {
	if repositories.CacheService == nil {
		return response.ServerError(c, "cache is not configured")
	}

	if err := repositories.CacheService.FlushAll(c.Context()); err != nil {
		return response.ServerError(c, "failed to flush cache")
	}
	return response.Success(c, "Cache flushed", nil)
}
