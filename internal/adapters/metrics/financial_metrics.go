package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// FinancialMetricsCollector tracks credits, journal entries and trade margins
type FinancialMetricsCollector struct {
	creditsBalance *prometheus.GaugeVec

	transactionsTotal *prometheus.CounterVec
	transactionAmount *prometheus.HistogramVec
	categoryNet       *prometheus.GaugeVec

	tradeProfitPerUnit *prometheus.HistogramVec
	tradeMarginPercent *prometheus.HistogramVec
}

// NewFinancialMetricsCollector creates a new financial metrics collector
func NewFinancialMetricsCollector() *FinancialMetricsCollector {
	return &FinancialMetricsCollector{
		creditsBalance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "credits_balance",
				Help:      "Credits held by the commander after the latest transaction",
			},
			[]string{"game_id"},
		),

		transactionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "transactions_total",
				Help:      "Total number of journal entries by type and category",
			},
			[]string{"game_id", "type", "category"},
		),

		transactionAmount: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "transaction_amount",
				Help:      "Absolute journal entry amount distribution",
				Buckets:   []float64{10, 50, 100, 500, 1000, 5000, 10000, 50000},
			},
			[]string{"game_id", "type", "category"},
		),

		// Running net per category: income adds, expenses subtract
		categoryNet: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "category_net",
				Help:      "Net credits moved per ledger category",
			},
			[]string{"game_id", "category"},
		),

		tradeProfitPerUnit: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "trade_profit_per_unit",
				Help:      "Profit per unit sold over the purchase basis",
				Buckets:   []float64{-500, -100, 0, 50, 100, 250, 500, 1000, 2500},
			},
			[]string{"game_id", "commodity"},
		),

		tradeMarginPercent: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "trade_margin_percent",
				Help:      "Trade margin percentage ((sell-buy)/buy * 100)",
				Buckets:   []float64{-50, 0, 5, 10, 25, 50, 100, 200},
			},
			[]string{"game_id", "commodity"},
		),
	}
}

// Register registers all financial metrics with the Prometheus registry
func (c *FinancialMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.creditsBalance,
		c.transactionsTotal,
		c.transactionAmount,
		c.categoryNet,
		c.tradeProfitPerUnit,
		c.tradeMarginPercent,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordTransaction records one journal entry
func (c *FinancialMetricsCollector) RecordTransaction(
	gameID string,
	transactionType string,
	category string,
	amount int,
	creditsBalance int,
) {
	c.creditsBalance.WithLabelValues(gameID).Set(float64(creditsBalance))
	c.transactionsTotal.WithLabelValues(gameID, transactionType, category).Inc()
	c.categoryNet.WithLabelValues(gameID, category).Add(float64(amount))

	absAmount := amount
	if absAmount < 0 {
		absAmount = -absAmount
	}
	c.transactionAmount.WithLabelValues(gameID, transactionType, category).Observe(float64(absAmount))
}

// RecordTrade records the margin of a sale against its purchase basis
func (c *FinancialMetricsCollector) RecordTrade(
	gameID string,
	commodity string,
	buyPrice int,
	sellPrice int,
	quantity int,
) {
	if buyPrice <= 0 || sellPrice <= 0 || quantity <= 0 {
		return
	}

	profitPerUnit := sellPrice - buyPrice
	c.tradeProfitPerUnit.WithLabelValues(gameID, commodity).Observe(float64(profitPerUnit))
	c.tradeMarginPercent.WithLabelValues(gameID, commodity).Observe(float64(profitPerUnit) / float64(buyPrice) * 100)
}
