// Package metrics holds the Prometheus collectors the service exports on
// /metrics. A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "brightway"

type Metrics struct {
	Registry *prometheus.Registry

	postsCreated prometheus.Counter
	reactions    *prometheus.CounterVec
	chatMessages *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		postsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "community",
			Name:      "posts_created_total",
			Help:      "Community posts created.",
		}),
		reactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "community",
			Name:      "reactions_total",
			Help:      "Reactions applied to community posts.",
		}, []string{"reaction"}),
		chatMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "messages_total",
			Help:      "Chat messages appended to conversations.",
		}, []string{"role"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		m.postsCreated,
		m.reactions,
		m.chatMessages,
	)
	return m
}

func (m *Metrics) PostCreated() {
	if m == nil {
		return
	}
	m.postsCreated.Inc()
}

func (m *Metrics) Reacted(reaction string) {
	if m == nil {
		return
	}
	m.reactions.WithLabelValues(reaction).Inc()
}

func (m *Metrics) ChatMessage(role string) {
	if m == nil {
		return
	}
	m.chatMessages.WithLabelValues(role).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}
