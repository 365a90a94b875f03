package learning

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router) {
	r.Get("/categories", func(c *fiber.Ctx) error {
		return c.JSON(Categories)
	})

	r.Get("/modules", func(c *fiber.Ctx) error {
		return c.JSON(ByCategory(Modules, c.Query("category")))
	})
}
