package server

import (
	"math/big"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

type metrics struct {
	invocations  *prometheus.CounterVec
	treasury     prometheus.Gauge
	participants prometheus.Gauge
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	m := &metrics{
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bear",
			Name:      "remote_invocations_total",
			Help:      "Remote contract invocations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		treasury: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bear",
			Name:      "airdrop_treasury_base_units",
			Help:      "Last observed airdrop treasury balance.",
		}),
		participants: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bear",
			Name:      "airdrop_participants",
			Help:      "Last observed number of airdrop participants.",
		}),
	}
	registerer.MustRegister(m.invocations, m.treasury, m.participants)
	return m
}

func (m *metrics) observe(operation string, err error) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}
	m.invocations.WithLabelValues(operation, outcome).Inc()
}

func (m *metrics) setStatus(treasury *big.Int, participants int) {
	value, _ := new(big.Float).SetInt(treasury).Float64()
	m.treasury.Set(value)
	m.participants.Set(float64(participants))
}
