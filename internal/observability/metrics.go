// Package observability holds the bridge's Prometheus collectors.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics groups the bridge counters. Collectors are registered on the
// registerer passed to NewMetrics so tests can use a private registry.
type Metrics struct {
	StatusRefreshes *prometheus.CounterVec
	Commands        *prometheus.CounterVec
	Discovered      *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StatusRefreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_status_refreshes_total",
				Help: "Device status refreshes by accessory kind and result.",
			},
			[]string{"kind", "result"},
		),
		Commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_commands_total",
				Help: "Device commands by accessory kind, capability and result.",
			},
			[]string{"kind", "capability", "result"},
		),
		Discovered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_discovered_devices_total",
				Help: "Devices seen during discovery by outcome.",
			},
			[]string{"outcome"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.StatusRefreshes, m.Commands, m.Discovered)
	}
	return m
}

// Nop returns unregistered collectors.
func Nop() *Metrics {
	return NewMetrics(nil)
}

func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
