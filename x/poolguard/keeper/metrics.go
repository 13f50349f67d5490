package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GuardMetrics holds all Prometheus metrics for the poolguard module
type GuardMetrics struct {
	// Trade metrics
	TradesTotal   *prometheus.CounterVec
	TradeVolume   *prometheus.CounterVec
	FeesCollected *prometheus.CounterVec

	// Rejection metrics
	TradesRejected *prometheus.CounterVec

	// Protection metrics
	CircuitBreakerTriggers *prometheus.CounterVec
	RateLimitExceeds       *prometheus.CounterVec
	BlacklistHits          *prometheus.CounterVec

	// Pool metrics
	PoolsTotal       prometheus.Gauge
	PoolLiquidity    *prometheus.GaugeVec
	ParameterUpdates *prometheus.CounterVec
	EmergencyActions *prometheus.CounterVec
}

var (
	guardMetricsOnce sync.Once
	guardMetrics     *GuardMetrics
)

// GetMetrics returns the process-wide poolguard metrics, registering them on
// first use.
func GetMetrics() *GuardMetrics {
	guardMetricsOnce.Do(func() {
		guardMetrics = &GuardMetrics{
			TradesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "poolguard_trades_total",
				Help: "Total trades admitted per pool",
			}, []string{"pool_id", "fee_mode"}),
			TradeVolume: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "poolguard_trade_volume",
				Help: "Cumulative admitted trade volume per pool",
			}, []string{"pool_id"}),
			FeesCollected: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "poolguard_fees_collected",
				Help: "Cumulative trade fees collected per pool",
			}, []string{"pool_id"}),
			TradesRejected: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "poolguard_trades_rejected_total",
				Help: "Trades rejected per pool and reason",
			}, []string{"pool_id", "reason"}),
			CircuitBreakerTriggers: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "poolguard_circuit_breaker_triggers_total",
				Help: "Circuit breaker trips per pool",
			}, []string{"pool_id"}),
			RateLimitExceeds: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "poolguard_rate_limit_exceeds_total",
				Help: "Rate limit rejections per pool",
			}, []string{"pool_id"}),
			BlacklistHits: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "poolguard_blacklist_hits_total",
				Help: "Trades rejected due to blacklist membership per pool",
			}, []string{"pool_id"}),
			PoolsTotal: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "poolguard_pools_total",
				Help: "Number of protected pools",
			}),
			PoolLiquidity: promauto.NewGaugeVec(prometheus.GaugeOpts{
				Name: "poolguard_pool_liquidity",
				Help: "Current liquidity per pool",
			}, []string{"pool_id"}),
			ParameterUpdates: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "poolguard_parameter_updates_total",
				Help: "Parameter update lifecycle events per pool",
			}, []string{"pool_id", "phase"}),
			EmergencyActions: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "poolguard_emergency_actions_total",
				Help: "Emergency pause lifecycle events per pool",
			}, []string{"pool_id", "action"}),
		}
	})
	return guardMetrics
}
