package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MarketMetricsCollector exports the quotes of the last market visited
type MarketMetricsCollector struct {
	buyPrice    *prometheus.GaugeVec
	sellPrice   *prometheus.GaugeVec
	quantity    *prometheus.GaugeVec
	priceSpread *prometheus.HistogramVec
}

// NewMarketMetricsCollector creates a new market metrics collector
func NewMarketMetricsCollector() *MarketMetricsCollector {
	return &MarketMetricsCollector{
		buyPrice: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "market_buy_price",
				Help:      "Latest price the commander pays per unit",
			},
			[]string{"game_id", "system", "commodity"},
		),

		sellPrice: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "market_sell_price",
				Help:      "Latest price the market pays per unit",
			},
			[]string{"game_id", "system", "commodity"},
		),

		quantity: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "market_quantity",
				Help:      "Units on offer at the latest visit",
			},
			[]string{"game_id", "system", "commodity"},
		),

		priceSpread: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "market_price_spread_percent",
				Help:      "Markup of the buy quote over the sell quote",
				Buckets:   []float64{1, 2, 5, 10, 15, 20, 30, 50},
			},
			[]string{"commodity"},
		),
	}
}

// Register registers all market metrics with the Prometheus registry
func (c *MarketMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	for _, metric := range []prometheus.Collector{c.buyPrice, c.sellPrice, c.quantity, c.priceSpread} {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

// RecordQuote records one commodity quote
func (c *MarketMetricsCollector) RecordQuote(
	gameID string,
	system string,
	commodity string,
	buyPrice int,
	sellPrice int,
	quantity int,
) {
	c.buyPrice.WithLabelValues(gameID, system, commodity).Set(float64(buyPrice))
	c.sellPrice.WithLabelValues(gameID, system, commodity).Set(float64(sellPrice))
	c.quantity.WithLabelValues(gameID, system, commodity).Set(float64(quantity))
	if sellPrice > 0 {
		c.priceSpread.WithLabelValues(commodity).Observe(float64(buyPrice-sellPrice) / float64(sellPrice) * 100)
	}
}
