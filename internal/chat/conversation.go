package chat

import (
	"log"
	"strings"
	"sync"
	"time"

	"backend-brightway/internal/metrics"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	Greeting    = "Hi. I’m here to support you with privacy-first guidance. What would you like to talk about today?"
	CannedReply = "Thanks for sharing. Consider how the other person might feel and focus on empathy and responsibility. Would you like a short checklist?"
)

var Suggestions = []string{
	"How do I apologize well?",
	"What is clear consent?",
	"I'm feeling anxious.",
	"How to set boundaries?",
}

var newIDFn = uuid.NewString

type Message struct {
	ID      string    `json:"id"`
	Role    string    `json:"role"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sent_at"`
}

// Conversation is one visitor's chat session. Every message appended to it,
// including the delayed assistant replies, is also pushed on Send. Delivery
// is best-effort: when Send is full the message stays in the log but is not
// pushed.
type Conversation struct {
	Send chan Message

	delay   time.Duration
	metrics *metrics.Metrics

	mu       sync.Mutex
	messages []Message
	pending  map[*time.Timer]struct{}
	closed   bool
}

func NewConversation(delay time.Duration, m *metrics.Metrics) *Conversation {
	c := &Conversation{
		Send:    make(chan Message, 64),
		delay:   delay,
		metrics: m,
		pending: map[*time.Timer]struct{}{},
	}
	c.mu.Lock()
	c.appendLocked(RoleAssistant, Greeting)
	c.mu.Unlock()
	return c
}

// Post appends a user message and schedules the assistant reply. Blank text
// and posts to a closed conversation are ignored.
func (c *Conversation) Post(text string) (Message, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return Message{}, false
	}

	msg := c.appendLocked(RoleUser, text)

	var timer *time.Timer
	timer = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if _, ok := c.pending[timer]; !ok {
			return
		}
		delete(c.pending, timer)
		c.appendLocked(RoleAssistant, CannedReply)
	})
	c.pending[timer] = struct{}{}
	return msg, true
}

func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Close cancels every scheduled reply and closes Send. It is safe to call
// more than once.
func (c *Conversation) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for timer := range c.pending {
		timer.Stop()
		delete(c.pending, timer)
	}
	close(c.Send)
}

func (c *Conversation) appendLocked(role, content string) Message {
	msg := Message{
		ID:      newIDFn(),
		Role:    role,
		Content: content,
		SentAt:  time.Now(),
	}
	c.messages = append(c.messages, msg)
	c.metrics.ChatMessage(role)

	select {
	case c.Send <- msg:
	default:
		log.Printf("chat send buffer full, dropped %s message %s", role, msg.ID)
	}
	return msg
}
