package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "spacetrader"
	// Subsystem for simulation metrics
	subsystem = "sim"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalTravelCollector is set by SetGlobalTravelCollector() when metrics are enabled
	globalTravelCollector TravelMetricsRecorder

	// globalFinancialCollector is set by SetGlobalFinancialCollector() when metrics are enabled
	globalFinancialCollector FinancialMetricsRecorder

	// globalMarketCollector is set by SetGlobalMarketCollector() when metrics are enabled
	globalMarketCollector MarketMetricsRecorder
)

// TravelMetricsRecorder records warps and what happened on the way
type TravelMetricsRecorder interface {
	RecordWarp(gameID string, distance int, viaWormhole bool)
	RecordEncounter(gameID string, category string, outcome string)
	RecordFuelPurchase(gameID string, units int)
}

// FinancialMetricsRecorder records credit movements
type FinancialMetricsRecorder interface {
	RecordTransaction(gameID string, transactionType string, category string, amount int, creditsBalance int)
	RecordTrade(gameID string, commodity string, buyPrice int, sellPrice int, quantity int)
}

// MarketMetricsRecorder records the quotes seen on arrival
type MarketMetricsRecorder interface {
	RecordQuote(gameID string, system string, commodity string, buyPrice int, sellPrice int, quantity int)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalTravelCollector sets the global travel metrics collector
func SetGlobalTravelCollector(collector TravelMetricsRecorder) {
	globalTravelCollector = collector
}

// RecordWarp records a completed departure globally
func RecordWarp(gameID string, distance int, viaWormhole bool) {
	if globalTravelCollector != nil {
		globalTravelCollector.RecordWarp(gameID, distance, viaWormhole)
	}
}

// RecordEncounter records an encounter round globally
func RecordEncounter(gameID string, category string, outcome string) {
	if globalTravelCollector != nil {
		globalTravelCollector.RecordEncounter(gameID, category, outcome)
	}
}

// RecordFuelPurchase records a fuel purchase globally
func RecordFuelPurchase(gameID string, units int) {
	if globalTravelCollector != nil {
		globalTravelCollector.RecordFuelPurchase(gameID, units)
	}
}

// SetGlobalFinancialCollector sets the global financial metrics collector
func SetGlobalFinancialCollector(collector FinancialMetricsRecorder) {
	globalFinancialCollector = collector
}

// RecordTransaction records a transaction event globally
func RecordTransaction(gameID string, transactionType string, category string, amount int, creditsBalance int) {
	if globalFinancialCollector != nil {
		globalFinancialCollector.RecordTransaction(gameID, transactionType, category, amount, creditsBalance)
	}
}

// RecordTrade records trade profitability metrics globally
func RecordTrade(gameID string, commodity string, buyPrice int, sellPrice int, quantity int) {
	if globalFinancialCollector != nil {
		globalFinancialCollector.RecordTrade(gameID, commodity, buyPrice, sellPrice, quantity)
	}
}

// SetGlobalMarketCollector sets the global market metrics collector
func SetGlobalMarketCollector(collector MarketMetricsRecorder) {
	globalMarketCollector = collector
}

// RecordQuote records one commodity quote globally
func RecordQuote(gameID string, system string, commodity string, buyPrice int, sellPrice int, quantity int) {
	if globalMarketCollector != nil {
		globalMarketCollector.RecordQuote(gameID, system, commodity, buyPrice, sellPrice, quantity)
	}
}

// Collector is implemented by every metrics collector in this package
type Collector interface {
	Register() error
}

// Setup creates every collector, registers it and installs the globals.
// It returns the command collector for the mediator middleware.
func Setup() (*CommandMetricsCollector, error) {
	commands := NewCommandMetricsCollector()
	travel := NewTravelMetricsCollector()
	financial := NewFinancialMetricsCollector()
	market := NewMarketMetricsCollector()

	for _, c := range []Collector{commands, travel, financial, market} {
		if err := c.Register(); err != nil {
			return nil, err
		}
	}

	SetGlobalTravelCollector(travel)
	SetGlobalFinancialCollector(financial)
	SetGlobalMarketCollector(market)
	return commands, nil
}
