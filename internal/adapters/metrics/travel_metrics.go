package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// TravelMetricsCollector tracks warps, encounters and fuel
type TravelMetricsCollector struct {
	warpsTotal       *prometheus.CounterVec
	distanceTraveled *prometheus.CounterVec
	warpDistance     *prometheus.HistogramVec
	encountersTotal  *prometheus.CounterVec
	fuelPurchased    *prometheus.CounterVec
}

// NewTravelMetricsCollector creates a new travel metrics collector
func NewTravelMetricsCollector() *TravelMetricsCollector {
	return &TravelMetricsCollector{
		warpsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "warps_total",
				Help:      "Total number of departures",
			},
			[]string{"game_id", "wormhole"},
		),

		distanceTraveled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "distance_traveled_parsecs_total",
				Help:      "Total parsecs flown on fuel",
			},
			[]string{"game_id"},
		),

		warpDistance: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "warp_distance_parsecs",
				Help:      "Distance distribution of fuelled warps",
				Buckets:   []float64{2, 4, 6, 8, 10, 12, 14, 16, 18, 20},
			},
			[]string{"game_id"},
		),

		encountersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "encounter_rounds_total",
				Help:      "Encounter rounds by opponent category and outcome",
			},
			[]string{"game_id", "category", "outcome"},
		),

		fuelPurchased: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "fuel_purchased_parsecs_total",
				Help:      "Total parsecs of fuel purchased",
			},
			[]string{"game_id"},
		),
	}
}

// Register registers all travel metrics with the Prometheus registry
func (c *TravelMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.warpsTotal,
		c.distanceTraveled,
		c.warpDistance,
		c.encountersTotal,
		c.fuelPurchased,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordWarp records a departure. Wormhole jumps burn no fuel and are
// left out of the distance metrics.
func (c *TravelMetricsCollector) RecordWarp(gameID string, distance int, viaWormhole bool) {
	c.warpsTotal.WithLabelValues(gameID, strconv.FormatBool(viaWormhole)).Inc()
	if viaWormhole {
		return
	}
	c.distanceTraveled.WithLabelValues(gameID).Add(float64(distance))
	c.warpDistance.WithLabelValues(gameID).Observe(float64(distance))
}

// RecordEncounter records one encounter round
func (c *TravelMetricsCollector) RecordEncounter(gameID string, category string, outcome string) {
	c.encountersTotal.WithLabelValues(gameID, category, outcome).Inc()
}

// RecordFuelPurchase records a fuel purchase
func (c *TravelMetricsCollector) RecordFuelPurchase(gameID string, units int) {
	c.fuelPurchased.WithLabelValues(gameID).Add(float64(units))
}
