package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics tracks placed orders and the carbon accounting attached to
// them.
type CheckoutMetrics struct {
	orders         *prometheus.CounterVec
	carbonOffsetKg prometheus.Counter
	carbonSavedKg  prometheus.Counter
}

// NewCheckoutMetrics registers the checkout metrics on the provided
// registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders placed, partitioned by sustainability options.",
	}, []string{"green_delivery", "carbon_offset"})
	carbonOffsetKg := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "carbon_offset_kg_total",
		Help: "Kilograms of CO2 customers paid to offset.",
	})
	carbonSavedKg := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "carbon_saved_kg_total",
		Help: "Kilograms of CO2 saved through sustainability options.",
	})
	reg.MustRegister(orders, carbonOffsetKg, carbonSavedKg)
	return &CheckoutMetrics{
		orders:         orders,
		carbonOffsetKg: carbonOffsetKg,
		carbonSavedKg:  carbonSavedKg,
	}
}

// ObserveOrder records one placed order and its carbon accounting.
func (c *CheckoutMetrics) ObserveOrder(greenDelivery, carbonOffset bool, offsetKg, savedKg float64) {
	if c == nil || c.orders == nil {
		return
	}
	c.orders.WithLabelValues(boolLabel(greenDelivery), boolLabel(carbonOffset)).Inc()
	if offsetKg > 0 {
		c.carbonOffsetKg.Add(offsetKg)
	}
	if savedKg > 0 {
		c.carbonSavedKg.Add(savedKg)
	}
}

func boolLabel(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
