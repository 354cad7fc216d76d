package middleware

import "github.com/gofiber/fiber/v2"

// apiHeaders are sent on every response. Nothing served here is HTML or
// cacheable, so the policy is as closed as browsers allow.
var apiHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	{"Referrer-Policy", "no-referrer"},
	{fiber.HeaderCacheControl, "no-store"},
}

func Security() fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, h := range apiHeaders {
			c.Set(h[0], h[1])
		}
		return c.Next()
	}
}
