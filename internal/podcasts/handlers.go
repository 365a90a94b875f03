package podcasts

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, catalog *Catalog) {
	r.Get("/", func(c *fiber.Ctx) error {
		lang, err := ParseLanguage(c.Query("lang"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "lang must be a language code or all")
		}
		return c.JSON(views(catalog.Filter(lang, c.Query("q"))))
	})

	r.Get("/languages", func(c *fiber.Ctx) error {
		langs := make([]Language, len(Languages))
		for i, code := range Languages {
			langs[i] = Language{Code: code, Label: Label(code)}
		}
		return c.JSON(langs)
	})
}
