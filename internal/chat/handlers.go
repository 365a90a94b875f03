package chat

import (
	"log"
	"time"

	"backend-brightway/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func RegisterRoutes(r fiber.Router, replyDelay time.Duration, m *metrics.Metrics) {
	r.Get("/suggestions", func(c *fiber.Ctx) error {
		return c.JSON(Suggestions)
	})

	r.Get("/ws", websocket.New(func(c *websocket.Conn) {
		conv := NewConversation(replyDelay, m)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for msg := range conv.Send {
				if err := c.WriteJSON(msg); err != nil {
					log.Printf("chat write error: %v", err)
					return
				}
			}
		}()

		for {
			_, data, err := c.ReadMessage()
			if err != nil {
				break
			}
			conv.Post(string(data))
		}
		conv.Close()
		<-done
	}))
}
