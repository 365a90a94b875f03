package community

import (
	"time"

	"backend-brightway/internal/metrics"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, store *Store, m *metrics.Metrics) {
	r.Get("/moods", func(c *fiber.Ctx) error {
		return c.JSON(Moods)
	})

	r.Get("/posts", func(c *fiber.Ctx) error {
		return c.JSON(feedItems(store.List(), nowFn()))
	})

	r.Post("/posts", func(c *fiber.Ctx) error {
		var req CreatePostRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if !req.Mood.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "mood must be one of the listed moods")
		}
		post, ok := store.Create(req.Mood, req.Text)
		if !ok {
			return c.SendStatus(fiber.StatusNoContent)
		}
		m.PostCreated()
		return c.Status(fiber.StatusCreated).JSON(post)
	})

	r.Post("/posts/:id/reactions/:reaction", func(c *fiber.Ctx) error {
		key, ok := ParseReactionKey(c.Params("reaction"))
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "reaction must be hug, listen or thanks")
		}
		post, ok := store.React(c.Params("id"), key)
		if !ok {
			return c.SendStatus(fiber.StatusNoContent)
		}
		m.Reacted(string(key))
		return c.JSON(post)
	})
}

func feedItems(posts []Post, now time.Time) []FeedItem {
	items := make([]FeedItem, len(posts))
	for i, p := range posts {
		items[i] = FeedItem{
			Post:   p,
			Posted: humanize.RelTime(p.CreatedAt, now, "ago", "from now"),
		}
	}
	return items
}
