package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics はbotの運用メトリクス。mainで1度だけ作って各層に配る。
type Metrics struct {
	// bot_events_total{event,outcome}
	BotEvents *prometheus.CounterVec
	// shopify_requests_total{op,outcome}
	ShopifyRequests *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BotEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bot_events_total",
				Help: "Total number of handled chat events.",
			},
			[]string{"event", "outcome"},
		),
		ShopifyRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopify_requests_total",
				Help: "Total number of Shopify Admin API requests.",
			},
			[]string{"op", "outcome"},
		),
	}
	reg.MustRegister(m.BotEvents, m.ShopifyRequests)
	return m
}
