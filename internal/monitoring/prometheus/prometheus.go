// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependencies *prometheus.GaugeVec
	redemptions  *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencies.With(tags).Set(value)

	return nil
}

func (m *Monitor) IncInviteRedemptionMetric(tags map[string]string) error {
	if m.redemptions == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.redemptions.With(tags).Inc()

	return nil
}

func (m *Monitor) registerHistograms() {
	m.responseTime = register(
		m.logger,
		prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_response_time_seconds",
				Help:        "http_response_time_seconds",
				ConstLabels: prometheus.Labels{"service": m.service},
			},
			[]string{"route", "status"},
		),
	)
}

func (m *Monitor) registerGauges() {
	m.dependencies = register(
		m.logger,
		prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "dependency_available",
				Help:        "dependency_available",
				ConstLabels: prometheus.Labels{"service": m.service},
			},
			[]string{"component"},
		),
	)
}

func (m *Monitor) registerCounters() {
	m.redemptions = register(
		m.logger,
		prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "invite_redemptions_total",
				Help:        "invite redemption attempts by outcome",
				ConstLabels: prometheus.Labels{"service": m.service},
			},
			[]string{"outcome"},
		),
	)
}

// register returns the already registered collector when one with the same
// descriptor exists, so multiple monitors can share the default registry.
func register[T prometheus.Collector](logger logging.LoggerInterface, c T) T {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		logger.Errorf("failed to register collector: %v", err)
	}

	return c
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
