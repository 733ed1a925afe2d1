// Package metrics exposes engine notifications as Prometheus metrics.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"moduled/internal/engine"
	"moduled/pkg/types"
)

// Collectors are the engine metrics registered by Instrument.
type Collectors struct {
	Notifications *prometheus.CounterVec
	CurrentModule prometheus.Gauge
}

func newCollectors() Collectors {
	return Collectors{
		Notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "moduled",
				Subsystem: "engine",
				Name:      "notifications_total",
				Help:      "Total number of engine notifications by signal",
			},
			[]string{"signal"},
		),
		CurrentModule: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "moduled",
				Subsystem: "engine",
				Name:      "current_module",
				Help:      "Numeric identifier of the current module",
			},
		),
	}
}

// Instrument registers engine collectors with reg and connects them to the
// engine signals. The returned func disconnects them; it does not unregister.
// Collectors already registered with reg are reused.
func Instrument(e *engine.Engine, reg prometheus.Registerer) (Collectors, func(), error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := newCollectors()
	if err := register(reg, c.Notifications, &c.Notifications); err != nil {
		return Collectors{}, nil, err
	}
	if err := register(reg, c.CurrentModule, &c.CurrentModule); err != nil {
		return Collectors{}, nil, err
	}

	c.CurrentModule.Set(float64(e.CurrentModuleID()))
	stopModule := e.ModuleChanged.Connect(func(*engine.Module) {
		c.Notifications.WithLabelValues(engine.EventModuleChanged).Inc()
	})
	stopID := e.ModuleIDChanged.Connect(func(id types.ModuleID) {
		c.Notifications.WithLabelValues(engine.EventModuleIDChanged).Inc()
		c.CurrentModule.Set(float64(id))
	})
	return c, func() {
		stopModule()
		stopID()
	}, nil
}

// register registers col, swapping *dst for the existing collector when an
// equal one is already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, col C, dst *C) error {
	err := reg.Register(col)
	if err == nil {
		return nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			*dst = existing
			return nil
		}
	}
	return err
}
